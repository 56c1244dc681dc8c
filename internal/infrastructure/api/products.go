package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hardwarehub/storefront/internal/core/domain"
)

// ProductClient talks to the /products catalog endpoints.
type ProductClient struct {
	c *Client
}

func NewProductClient(c *Client) *ProductClient {
	return &ProductClient{c: c}
}

// List fetches catalog entries matching q.
func (p *ProductClient) List(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error) {
	v := url.Values{}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}

	env, err := do[[]domain.Product](ctx, p.c, http.MethodGet, "/products"+query(v), nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Get fetches a single product.
func (p *ProductClient) Get(ctx context.Context, id string) (*domain.Product, error) {
	env, err := do[*domain.Product](ctx, p.c, http.MethodGet, "/products/"+id, nil)
	if err != nil {
		return nil, err
	}
	return requireProduct(env, "/products/"+id)
}

// Categories lists the distinct catalog categories.
func (p *ProductClient) Categories(ctx context.Context) ([]string, error) {
	env, err := do[[]string](ctx, p.c, http.MethodGet, "/products/categories", nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// LowStock lists products at or below their minimum stock level.
func (p *ProductClient) LowStock(ctx context.Context) ([]domain.Product, error) {
	env, err := do[[]domain.Product](ctx, p.c, http.MethodGet, "/products/low-stock", nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Create adds a product to the catalog.
func (p *ProductClient) Create(ctx context.Context, in domain.ProductInput) (*domain.Product, error) {
	env, err := do[*domain.Product](ctx, p.c, http.MethodPost, "/products", in)
	if err != nil {
		return nil, err
	}
	return requireProduct(env, "/products")
}

// Update replaces a product.
func (p *ProductClient) Update(ctx context.Context, id string, in domain.ProductInput) (*domain.Product, error) {
	env, err := do[*domain.Product](ctx, p.c, http.MethodPut, "/products/"+id, in)
	if err != nil {
		return nil, err
	}
	return requireProduct(env, "/products/"+id)
}

// UpdateStock sets a product's absolute stock quantity.
func (p *ProductClient) UpdateStock(ctx context.Context, id string, in domain.StockUpdate) (*domain.Product, error) {
	env, err := do[*domain.Product](ctx, p.c, http.MethodPatch, "/products/"+id+"/stock", in)
	if err != nil {
		return nil, err
	}
	return requireProduct(env, "/products/"+id+"/stock")
}

// Delete removes a product.
func (p *ProductClient) Delete(ctx context.Context, id string) error {
	_, err := do[struct{}](ctx, p.c, http.MethodDelete, "/products/"+id, nil)
	return err
}

func requireProduct(env *envelope[*domain.Product], path string) (*domain.Product, error) {
	if env.Data == nil || env.Data.ID == "" {
		return nil, fmt.Errorf("%w: %s: missing product", domain.ErrBadResponse, path)
	}
	return env.Data, nil
}
