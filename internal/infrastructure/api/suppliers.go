package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hardwarehub/storefront/internal/core/domain"
)

// SupplierClient talks to the /suppliers endpoints (admin only, enforced
// server-side).
type SupplierClient struct {
	c *Client
}

func NewSupplierClient(c *Client) *SupplierClient {
	return &SupplierClient{c: c}
}

// Create registers a supplier.
func (s *SupplierClient) Create(ctx context.Context, in domain.SupplierInput) (*domain.Supplier, error) {
	env, err := do[*domain.Supplier](ctx, s.c, http.MethodPost, "/suppliers", in)
	if err != nil {
		return nil, err
	}
	return requireSupplier(env, "/suppliers")
}

// List fetches one page of suppliers.
func (s *SupplierClient) List(ctx context.Context, q domain.SupplierQuery) (*domain.SupplierPage, error) {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.Limit > 0 {
		v.Set("limit", strconv.Itoa(q.Limit))
	}
	if q.IsActive != nil {
		v.Set("isActive", strconv.FormatBool(*q.IsActive))
	}

	env, err := do[*domain.SupplierPage](ctx, s.c, http.MethodGet, "/suppliers"+query(v), nil)
	if err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, fmt.Errorf("%w: /suppliers: missing page", domain.ErrBadResponse)
	}
	return env.Data, nil
}

// Get fetches a single supplier.
func (s *SupplierClient) Get(ctx context.Context, id string) (*domain.Supplier, error) {
	env, err := do[*domain.Supplier](ctx, s.c, http.MethodGet, "/suppliers/"+id, nil)
	if err != nil {
		return nil, err
	}
	return requireSupplier(env, "/suppliers/"+id)
}

// Update replaces a supplier.
func (s *SupplierClient) Update(ctx context.Context, id string, in domain.SupplierInput) (*domain.Supplier, error) {
	env, err := do[*domain.Supplier](ctx, s.c, http.MethodPut, "/suppliers/"+id, in)
	if err != nil {
		return nil, err
	}
	return requireSupplier(env, "/suppliers/"+id)
}

// Delete removes a supplier.
func (s *SupplierClient) Delete(ctx context.Context, id string) error {
	_, err := do[struct{}](ctx, s.c, http.MethodDelete, "/suppliers/"+id, nil)
	return err
}

// ExpiredAgreements lists suppliers whose agreements have lapsed.
func (s *SupplierClient) ExpiredAgreements(ctx context.Context) ([]domain.Supplier, error) {
	env, err := do[[]domain.Supplier](ctx, s.c, http.MethodGet, "/suppliers/expired-agreements", nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// NotifyLowStock asks the backend to email the supplier about low-stock
// products.
func (s *SupplierClient) NotifyLowStock(ctx context.Context, id string) error {
	_, err := do[struct{}](ctx, s.c, http.MethodPost, "/suppliers/"+id+"/notify-low-stock", nil)
	return err
}

func requireSupplier(env *envelope[*domain.Supplier], path string) (*domain.Supplier, error) {
	if env.Data == nil || env.Data.ID == "" {
		return nil, fmt.Errorf("%w: %s: missing supplier", domain.ErrBadResponse, path)
	}
	return env.Data, nil
}
