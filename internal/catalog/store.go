package catalog

import (
	"context"
	"errors"
)

// MinSearchLength is the shortest free-text query the store accepts,
// counted in characters rather than bytes.
const MinSearchLength = 2

var ErrQueryTooShort = errors.New("search query too short")

type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Discount    float64 `json:"discount"`
	Image       string  `json:"image"`
	CategoryID  string  `json:"categoryId"`
	Rating      float64 `json:"rating"`
	InStock     bool    `json:"inStock"`
}

// NewProduct carries the caller-supplied fields of a product; the store
// assigns the id.
type NewProduct struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Discount    float64 `json:"discount"`
	Image       string  `json:"image"`
	CategoryID  string  `json:"categoryId"`
	Rating      float64 `json:"rating"`
	InStock     bool    `json:"inStock"`
}

type NewCategory struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Store is the catalog read/write contract. Product ids are integers and
// category ids are string-encoded counters; the two id spaces are
// intentionally distinct. CategoryID on a product is not checked against
// the category collection.
type Store interface {
	Ping(ctx context.Context) error

	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id int) (Product, bool, error)
	ListProductsByCategory(ctx context.Context, categoryID string) ([]Product, error)
	SearchProducts(ctx context.Context, query string) ([]Product, error)
	CreateProduct(ctx context.Context, p NewProduct) (Product, error)

	ListCategories(ctx context.Context) ([]Category, error)
	GetCategory(ctx context.Context, id string) (Category, bool, error)
	CreateCategory(ctx context.Context, c NewCategory) (Category, error)
}
