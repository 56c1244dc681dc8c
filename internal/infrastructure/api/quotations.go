package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hardwarehub/storefront/internal/core/domain"
)

// QuotationClient talks to the /quotations endpoints.
type QuotationClient struct {
	c *Client
}

func NewQuotationClient(c *Client) *QuotationClient {
	return &QuotationClient{c: c}
}

// Create submits a quotation request.
func (q *QuotationClient) Create(ctx context.Context, in domain.QuotationInput) (*domain.Quotation, error) {
	env, err := do[*domain.Quotation](ctx, q.c, http.MethodPost, "/quotations", in)
	if err != nil {
		return nil, err
	}
	return requireQuotation(env, "/quotations")
}

// List fetches all quotations (admin).
func (q *QuotationClient) List(ctx context.Context) ([]domain.Quotation, error) {
	env, err := do[[]domain.Quotation](ctx, q.c, http.MethodGet, "/quotations", nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Mine fetches the authenticated customer's own quotations.
func (q *QuotationClient) Mine(ctx context.Context) ([]domain.Quotation, error) {
	env, err := do[[]domain.Quotation](ctx, q.c, http.MethodGet, "/quotations/my-quotations", nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Get fetches a single quotation.
func (q *QuotationClient) Get(ctx context.Context, id string) (*domain.Quotation, error) {
	env, err := do[*domain.Quotation](ctx, q.c, http.MethodGet, "/quotations/"+id, nil)
	if err != nil {
		return nil, err
	}
	return requireQuotation(env, "/quotations/"+id)
}

// Stats fetches per-status quotation counts (admin).
func (q *QuotationClient) Stats(ctx context.Context) (*domain.QuotationStats, error) {
	env, err := do[*domain.QuotationStats](ctx, q.c, http.MethodGet, "/quotations/stats", nil)
	if err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, fmt.Errorf("%w: /quotations/stats: missing stats", domain.ErrBadResponse)
	}
	return env.Data, nil
}

// ByStatus fetches quotations in one lifecycle state (admin).
func (q *QuotationClient) ByStatus(ctx context.Context, status domain.QuotationStatus) ([]domain.Quotation, error) {
	env, err := do[[]domain.Quotation](ctx, q.c, http.MethodGet, "/quotations/status/"+string(status), nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

type statusBody struct {
	Status string `json:"status"`
}

// UpdateStatus transitions a quotation's lifecycle state (admin).
func (q *QuotationClient) UpdateStatus(ctx context.Context, id string, status domain.QuotationStatus) (*domain.Quotation, error) {
	env, err := do[*domain.Quotation](ctx, q.c, http.MethodPatch, "/quotations/"+id+"/status", statusBody{Status: string(status)})
	if err != nil {
		return nil, err
	}
	return requireQuotation(env, "/quotations/"+id+"/status")
}

// Delete removes a quotation.
func (q *QuotationClient) Delete(ctx context.Context, id string) error {
	_, err := do[struct{}](ctx, q.c, http.MethodDelete, "/quotations/"+id, nil)
	return err
}

func requireQuotation(env *envelope[*domain.Quotation], path string) (*domain.Quotation, error) {
	if env.Data == nil || env.Data.ID == "" {
		return nil, fmt.Errorf("%w: %s: missing quotation", domain.ErrBadResponse, path)
	}
	return env.Data, nil
}
