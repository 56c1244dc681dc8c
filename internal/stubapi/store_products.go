package stubapi

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hardwarehub/storefront/internal/core/domain"
)

// CreateProduct adds a catalog entry.
func (s *Store) CreateProduct(in domain.ProductInput) *domain.Product {
	now := time.Now().UTC()
	p := &domain.Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Stock:       in.Stock,
		MinStock:    in.MinStock,
		ImageURL:    in.ImageURL,
		Supplier:    in.Supplier,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
	out := *p
	return &out
}

// ListProducts filters the catalog by q.
func (s *Store) ListProducts(q domain.ProductQuery) []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Product, 0, len(s.products))
	for _, p := range s.products {
		if q.Category != "" && p.Category != q.Category {
			continue
		}
		if q.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(q.Search)) {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })

	if q.Limit > 0 {
		start := 0
		if q.Page > 1 {
			start = (q.Page - 1) * q.Limit
		}
		if start >= len(out) {
			return []domain.Product{}
		}
		end := start + q.Limit
		if end > len(out) {
			end = len(out)
		}
		out = out[start:end]
	}
	return out
}

// ProductByID returns a copy of the product.
func (s *Store) ProductByID(id string) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil, errNotFound
	}
	out := *p
	return &out, nil
}

// Categories lists the distinct categories in the catalog.
func (s *Store) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	seen := make(map[string]struct{})
	for _, p := range s.products {
		seen[p.Category] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// LowStockProducts lists products at or below their minimum stock level.
func (s *Store) LowStockProducts() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Product{}
	for _, p := range s.products {
		if p.LowOnStock() {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// UpdateProduct replaces a product's fields.
func (s *Store) UpdateProduct(id string, in domain.ProductInput) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil, errNotFound
	}
	p.Name = in.Name
	p.Description = in.Description
	p.Category = in.Category
	p.Price = in.Price
	p.Stock = in.Stock
	p.MinStock = in.MinStock
	p.ImageURL = in.ImageURL
	p.Supplier = in.Supplier
	p.UpdatedAt = time.Now().UTC()
	out := *p
	return &out, nil
}

// UpdateStock sets a product's absolute stock quantity.
func (s *Store) UpdateStock(id string, stock int) (*domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil, errNotFound
	}
	p.Stock = stock
	p.UpdatedAt = time.Now().UTC()
	out := *p
	return &out, nil
}

// DeleteProduct removes a catalog entry.
func (s *Store) DeleteProduct(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return errNotFound
	}
	delete(s.products, id)
	return nil
}
