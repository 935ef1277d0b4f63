package catalog

import (
	"context"
	"database/sql"
	"time"
	"unicode/utf8"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
)

const productColumns = `id, name, description, price, discount, image, category_id, rating, in_stock`

// PostgresStore backs the catalog contract with two tables. Ids come from
// sequences so the monotonic, never-reused guarantee holds even when an
// insert fails; category ids stay text to preserve the distinct id spaces.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.db.PingContext(ctx)
	})
}

func (s *PostgresStore) ListProducts(ctx context.Context) ([]Product, error) {
	return s.queryProducts(ctx, `
		SELECT `+productColumns+`
		FROM products
		ORDER BY id ASC
	`)
}

func (s *PostgresStore) GetProduct(ctx context.Context, id int) (Product, bool, error) {
	var p Product

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return scanProduct(s.db.QueryRowContext(ctx, `
			SELECT `+productColumns+`
			FROM products
			WHERE id = $1
		`, id), &p)
	})

	if err == sql.ErrNoRows {
		return Product{}, false, nil
	}
	if err != nil {
		return Product{}, false, err
	}
	return p, true, nil
}

func (s *PostgresStore) ListProductsByCategory(ctx context.Context, categoryID string) ([]Product, error) {
	return s.queryProducts(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE category_id = $1
		ORDER BY id ASC
	`, categoryID)
}

func (s *PostgresStore) SearchProducts(ctx context.Context, query string) ([]Product, error) {
	if utf8.RuneCountInString(query) < MinSearchLength {
		return nil, ErrQueryTooShort
	}

	pattern := "%" + query + "%"
	return s.queryProducts(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE name ILIKE $1 OR description ILIKE $1
		ORDER BY id ASC
	`, pattern)
}

func (s *PostgresStore) CreateProduct(ctx context.Context, np NewProduct) (Product, error) {
	p := Product{
		Name:        np.Name,
		Description: np.Description,
		Price:       np.Price,
		Discount:    np.Discount,
		Image:       np.Image,
		CategoryID:  np.CategoryID,
		Rating:      np.Rating,
		InStock:     np.InStock,
	}

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			INSERT INTO products (name, description, price, discount, image, category_id, rating, in_stock)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id
		`, np.Name, np.Description, np.Price, np.Discount, np.Image, np.CategoryID, np.Rating, np.InStock).Scan(&p.ID)
	})

	if err != nil {
		return Product{}, err
	}
	return p, nil
}

func (s *PostgresStore) ListCategories(ctx context.Context) ([]Category, error) {
	var out []Category

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, `
			SELECT id, name, image
			FROM categories
			ORDER BY id::bigint ASC
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]Category, 0, 8)
		for rows.Next() {
			var c Category
			if err := rows.Scan(&c.ID, &c.Name, &c.Image); err != nil {
				return err
			}
			out = append(out, c)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) GetCategory(ctx context.Context, id string) (Category, bool, error) {
	var c Category

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			SELECT id, name, image
			FROM categories
			WHERE id = $1
		`, id).Scan(&c.ID, &c.Name, &c.Image)
	})

	if err == sql.ErrNoRows {
		return Category{}, false, nil
	}
	if err != nil {
		return Category{}, false, err
	}
	return c, true, nil
}

func (s *PostgresStore) CreateCategory(ctx context.Context, nc NewCategory) (Category, error) {
	c := Category{Name: nc.Name, Image: nc.Image}

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.QueryRowContext(ctx, `
			INSERT INTO categories (id, name, image)
			VALUES (nextval('category_id_seq')::text, $1, $2)
			RETURNING id
		`, nc.Name, nc.Image).Scan(&c.ID)
	})

	if err != nil {
		return Category{}, err
	}
	return c, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner, p *Product) error {
	return row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Discount,
		&p.Image, &p.CategoryID, &p.Rating, &p.InStock,
	)
}

func (s *PostgresStore) queryProducts(ctx context.Context, q string, args ...any) ([]Product, error) {
	var out []Product

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, q, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]Product, 0, 16)
		for rows.Next() {
			var p Product
			if err := scanProduct(rows, &p); err != nil {
				return err
			}
			out = append(out, p)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, err
	}
	return out, nil
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
