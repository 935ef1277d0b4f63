// Package cart implements the shopping cart state manager: a mapping from
// product id to a quantity-bearing line item, with totals derived from the
// mapping on demand so they can never drift out of sync with it.
package cart

import (
	"github.com/shopspring/decimal"

	"Lebaba/internal/catalog"
)

// Item is one cart line. Name, Price and Image are a snapshot of the
// product at the time it was first added; later catalog changes do not
// reach items already in the cart.
type Item struct {
	ID        int     `json:"id"`
	ProductID int     `json:"productId"`
	Quantity  int     `json:"quantity"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
}

// Cart holds at most one Item per product id and keeps insertion order.
// It is a plain synchronous value: callers that share a Cart across
// goroutines must serialize access themselves (see Sessions).
type Cart struct {
	items  map[int]Item
	order  []int
	nextID int
}

func New() *Cart {
	return &Cart{items: make(map[int]Item)}
}

// Add puts qty units of p into the cart, merging into the existing line if
// the product is already present. Quantities below 1 are treated as 1.
func (c *Cart) Add(p catalog.Product, qty int) Item {
	if qty < 1 {
		qty = 1
	}

	if it, ok := c.items[p.ID]; ok {
		it.Quantity += qty
		c.items[p.ID] = it
		return it
	}

	c.nextID++
	it := Item{
		ID:        c.nextID,
		ProductID: p.ID,
		Quantity:  qty,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
	}
	c.items[p.ID] = it
	c.order = append(c.order, p.ID)
	return it
}

// SetQuantity sets the line for productID to an absolute quantity. A
// quantity below 1 removes the line; an unknown productID is a no-op and
// never creates or resurrects a line.
func (c *Cart) SetQuantity(productID, qty int) {
	it, ok := c.items[productID]
	if !ok {
		return
	}
	if qty < 1 {
		c.Remove(productID)
		return
	}
	it.Quantity = qty
	c.items[productID] = it
}

// Remove drops the line for productID if present.
func (c *Cart) Remove(productID int) {
	if _, ok := c.items[productID]; !ok {
		return
	}
	delete(c.items, productID)
	for i, id := range c.order {
		if id == productID {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
}

// Clear empties the cart. Called on checkout completion.
func (c *Cart) Clear() {
	c.items = make(map[int]Item)
	c.order = nil
}

// Items returns the lines in the order their products were first added.
func (c *Cart) Items() []Item {
	out := make([]Item, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

// TotalItems is the sum of all line quantities.
func (c *Cart) TotalItems() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// TotalPrice sums price times quantity over all lines. The sum runs on
// decimals so that display prices like 79.99 add up without float drift.
func (c *Cart) TotalPrice() float64 {
	total := decimal.Zero
	for _, it := range c.items {
		line := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		total = total.Add(line)
	}
	f, _ := total.Float64()
	return f
}
