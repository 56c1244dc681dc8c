package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/hardwarehub/storefront/internal/core/domain"
)

// ReservationClient talks to the /reservations endpoints.
type ReservationClient struct {
	c *Client
}

func NewReservationClient(c *Client) *ReservationClient {
	return &ReservationClient{c: c}
}

// Create books a pickup reservation.
func (r *ReservationClient) Create(ctx context.Context, in domain.ReservationInput) (*domain.Reservation, error) {
	env, err := do[*domain.Reservation](ctx, r.c, http.MethodPost, "/reservations", in)
	if err != nil {
		return nil, err
	}
	return requireReservation(env, "/reservations")
}

// List fetches all reservations (admin).
func (r *ReservationClient) List(ctx context.Context) ([]domain.Reservation, error) {
	env, err := do[[]domain.Reservation](ctx, r.c, http.MethodGet, "/reservations", nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Mine fetches the authenticated customer's own reservations.
func (r *ReservationClient) Mine(ctx context.Context) ([]domain.Reservation, error) {
	env, err := do[[]domain.Reservation](ctx, r.c, http.MethodGet, "/reservations/my-reservations", nil)
	if err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Get fetches a single reservation.
func (r *ReservationClient) Get(ctx context.Context, id string) (*domain.Reservation, error) {
	env, err := do[*domain.Reservation](ctx, r.c, http.MethodGet, "/reservations/"+id, nil)
	if err != nil {
		return nil, err
	}
	return requireReservation(env, "/reservations/"+id)
}

// Update replaces a reservation's booking details.
func (r *ReservationClient) Update(ctx context.Context, id string, in domain.ReservationInput) (*domain.Reservation, error) {
	env, err := do[*domain.Reservation](ctx, r.c, http.MethodPut, "/reservations/"+id, in)
	if err != nil {
		return nil, err
	}
	return requireReservation(env, "/reservations/"+id)
}

// UpdateStatus transitions a reservation's lifecycle state (admin).
func (r *ReservationClient) UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) (*domain.Reservation, error) {
	env, err := do[*domain.Reservation](ctx, r.c, http.MethodPatch, "/reservations/"+id+"/status", statusBody{Status: string(status)})
	if err != nil {
		return nil, err
	}
	return requireReservation(env, "/reservations/"+id+"/status")
}

// Delete removes a reservation.
func (r *ReservationClient) Delete(ctx context.Context, id string) error {
	_, err := do[struct{}](ctx, r.c, http.MethodDelete, "/reservations/"+id, nil)
	return err
}

func requireReservation(env *envelope[*domain.Reservation], path string) (*domain.Reservation, error) {
	if env.Data == nil || env.Data.ID == "" {
		return nil, fmt.Errorf("%w: %s: missing reservation", domain.ErrBadResponse, path)
	}
	return env.Data, nil
}
