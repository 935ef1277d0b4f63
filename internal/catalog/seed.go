package catalog

import "context"

// SeedDefaults loads the stock storefront catalog into an empty store.
// Product categoryIds use slug values that do not line up with the counter
// ids the store assigns to categories; the product/category link is
// informational only and is preserved as-is.
func SeedDefaults(ctx context.Context, s Store) error {
	categories := []NewCategory{
		{Name: "Electronics", Image: "https://images.unsplash.com/photo-1498049794561-7780e7231661?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=300&h=200&q=80"},
		{Name: "Clothing", Image: "https://images.unsplash.com/photo-1489987707025-afc232f7ea0f?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=300&h=200&q=80"},
		{Name: "Home & Kitchen", Image: "https://images.unsplash.com/photo-1484154218962-a197022b5858?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=300&h=200&q=80"},
		{Name: "Beauty", Image: "https://images.unsplash.com/photo-1522335789203-aabd1fc54bc9?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=300&h=200&q=80"},
	}

	products := []NewProduct{
		{
			Name:        "Wireless Earbuds",
			Price:       79.99,
			Discount:    99.99,
			Rating:      4.5,
			Image:       "https://images.unsplash.com/photo-1606220838315-056192d5e927?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=600&q=80",
			CategoryID:  "electronics",
			Description: "High-quality wireless earbuds with noise cancellation and long battery life.",
			InStock:     true,
		},
		{
			Name:        "Smart Watch Series 7",
			Price:       349.99,
			Discount:    399.99,
			Rating:      4.8,
			Image:       "https://images.unsplash.com/photo-1579586337278-3befd40fd17a?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=600&q=80",
			CategoryID:  "electronics",
			Description: "The latest smartwatch with health monitoring, GPS, and customizable bands.",
			InStock:     true,
		},
		{
			Name:        "Cotton T-Shirt",
			Price:       29.99,
			Discount:    39.99,
			Rating:      4.2,
			Image:       "https://images.unsplash.com/photo-1581655353564-df123a1eb820?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=600&q=80",
			CategoryID:  "clothing",
			Description: "Comfortable cotton t-shirt available in multiple colors and sizes.",
			InStock:     true,
		},
		{
			Name:        "Coffee Maker",
			Price:       89.99,
			Discount:    119.99,
			Rating:      4.7,
			Image:       "https://images.unsplash.com/photo-1570287357410-8e5389aef389?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=600&q=80",
			CategoryID:  "home",
			Description: "Programmable coffee maker that brews the perfect cup every time.",
			InStock:     true,
		},
		{
			Name:        "Running Shoes",
			Price:       119.99,
			Discount:    149.99,
			Rating:      4.6,
			Image:       "https://images.unsplash.com/photo-1542291026-7eec264c27ff?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=600&q=80",
			CategoryID:  "clothing",
			Description: "Lightweight and durable running shoes with superior cushioning.",
			InStock:     true,
		},
		{
			Name:        "Skincare Set",
			Price:       59.99,
			Discount:    79.99,
			Rating:      4.3,
			Image:       "https://images.unsplash.com/photo-1556228578-397bc69f7f99?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=600&q=80",
			CategoryID:  "beauty",
			Description: "Complete skincare set with cleanser, moisturizer, and serum.",
			InStock:     true,
		},
		{
			Name:        "Digital Camera",
			Price:       499.99,
			Discount:    599.99,
			Rating:      4.4,
			Image:       "https://images.unsplash.com/photo-1516724562728-afc824a36e84?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=600&q=80",
			CategoryID:  "electronics",
			Description: "Professional digital camera with 4K video recording and image stabilization.",
			InStock:     true,
		},
		{
			Name:        "Kitchen Mixer",
			Price:       249.99,
			Discount:    299.99,
			Rating:      4.9,
			Image:       "https://images.unsplash.com/photo-1578643463396-0997cb5328c1?ixlib=rb-4.0.3&ixid=M3wxMjA3fDB8MHxwaG90by1wYWdlfHx8fGVufDB8fHx8fA%3D%3D&auto=format&fit=crop&w=600&q=80",
			CategoryID:  "home",
			Description: "Powerful kitchen mixer with multiple attachments for all your baking needs.",
			InStock:     true,
		},
	}

	for _, c := range categories {
		if _, err := s.CreateCategory(ctx, c); err != nil {
			return err
		}
	}
	for _, p := range products {
		if _, err := s.CreateProduct(ctx, p); err != nil {
			return err
		}
	}
	return nil
}
