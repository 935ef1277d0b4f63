package catalog

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"
)

// MemStore keeps the whole catalog in process memory. Products and
// categories are returned in insertion order. Ids are handed out by
// monotonic counters and never reused.
type MemStore struct {
	mu sync.RWMutex

	products      map[int]Product
	productOrder  []int
	categories    map[string]Category
	categoryOrder []string

	nextProductID  int
	nextCategoryID int
}

func NewMemStore() *MemStore {
	return &MemStore{
		products:       make(map[int]Product),
		categories:     make(map[string]Category),
		nextProductID:  1,
		nextCategoryID: 1,
	}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

func (s *MemStore) ListProducts(ctx context.Context) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0, len(s.productOrder))
	for _, id := range s.productOrder {
		out = append(out, s.products[id])
	}
	return out, nil
}

func (s *MemStore) GetProduct(ctx context.Context, id int) (Product, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	return p, ok, nil
}

func (s *MemStore) ListProductsByCategory(ctx context.Context, categoryID string) ([]Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0)
	for _, id := range s.productOrder {
		if p := s.products[id]; p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemStore) SearchProducts(ctx context.Context, query string) ([]Product, error) {
	if utf8.RuneCountInString(query) < MinSearchLength {
		return nil, ErrQueryTooShort
	}

	q := strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, 0)
	for _, id := range s.productOrder {
		p := s.products[id]
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *MemStore) CreateProduct(ctx context.Context, np NewProduct) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextProductID
	s.nextProductID++

	p := Product{
		ID:          id,
		Name:        np.Name,
		Description: np.Description,
		Price:       np.Price,
		Discount:    np.Discount,
		Image:       np.Image,
		CategoryID:  np.CategoryID,
		Rating:      np.Rating,
		InStock:     np.InStock,
	}
	s.products[id] = p
	s.productOrder = append(s.productOrder, id)
	return p, nil
}

func (s *MemStore) ListCategories(ctx context.Context) ([]Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Category, 0, len(s.categoryOrder))
	for _, id := range s.categoryOrder {
		out = append(out, s.categories[id])
	}
	return out, nil
}

func (s *MemStore) GetCategory(ctx context.Context, id string) (Category, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories[id]
	return c, ok, nil
}

func (s *MemStore) CreateCategory(ctx context.Context, nc NewCategory) (Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Category ids are stringified counters, unlike product ids.
	id := strconv.Itoa(s.nextCategoryID)
	s.nextCategoryID++

	c := Category{ID: id, Name: nc.Name, Image: nc.Image}
	s.categories[id] = c
	s.categoryOrder = append(s.categoryOrder, id)
	return c, nil
}
