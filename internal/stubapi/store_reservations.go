package stubapi

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/hardwarehub/storefront/internal/core/domain"
)

// CreateReservation books a product for pickup.
func (s *Store) CreateReservation(customerID string, in domain.ReservationInput) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[in.ProductID]; !ok {
		return nil, errNotFound
	}

	now := time.Now().UTC()
	r := &domain.Reservation{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		ProductID:  in.ProductID,
		Quantity:   in.Quantity,
		PickupDate: in.PickupDate,
		Status:     domain.ReservationPending,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.reservations[r.ID] = r
	out := *r
	return &out, nil
}

// ListReservations returns reservations, optionally filtered by customer.
func (s *Store) ListReservations(customerID string) []domain.Reservation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Reservation{}
	for _, r := range s.reservations {
		if customerID != "" && r.CustomerID != customerID {
			continue
		}
		out = append(out, *r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// ReservationByID returns a copy of the reservation.
func (s *Store) ReservationByID(id string) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reservations[id]
	if !ok {
		return nil, errNotFound
	}
	out := *r
	return &out, nil
}

// UpdateReservation replaces the booking details of a pending reservation.
func (s *Store) UpdateReservation(id string, in domain.ReservationInput) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reservations[id]
	if !ok {
		return nil, errNotFound
	}
	if _, ok := s.products[in.ProductID]; !ok {
		return nil, errNotFound
	}
	r.ProductID = in.ProductID
	r.Quantity = in.Quantity
	r.PickupDate = in.PickupDate
	r.Notes = in.Notes
	r.UpdatedAt = time.Now().UTC()
	out := *r
	return &out, nil
}

// UpdateReservationStatus transitions a reservation, enforcing the state
// machine.
func (s *Store) UpdateReservationStatus(id string, next domain.ReservationStatus) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.reservations[id]
	if !ok {
		return nil, errNotFound
	}
	if !r.Status.CanTransitionTo(next) {
		return nil, domain.ErrInvalidTransition
	}
	r.Status = next
	r.UpdatedAt = time.Now().UTC()
	out := *r
	return &out, nil
}

// DeleteReservation removes a reservation.
func (s *Store) DeleteReservation(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reservations[id]; !ok {
		return errNotFound
	}
	delete(s.reservations, id)
	return nil
}
