package domain

import "time"

// ReservationStatus is the lifecycle state of a pickup reservation.
type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationReady     ReservationStatus = "ready"
	ReservationCompleted ReservationStatus = "completed"
	ReservationCancelled ReservationStatus = "cancelled"
)

var reservationTransitions = map[ReservationStatus][]ReservationStatus{
	ReservationPending:   {ReservationConfirmed, ReservationCancelled},
	ReservationConfirmed: {ReservationReady, ReservationCancelled},
	ReservationReady:     {ReservationCompleted, ReservationCancelled},
}

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s ReservationStatus) CanTransitionTo(next ReservationStatus) bool {
	for _, allowed := range reservationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Reservation books products for in-store pickup on a chosen date.
type Reservation struct {
	ID         string            `json:"_id"`
	CustomerID string            `json:"customer"`
	ProductID  string            `json:"product"`
	Quantity   int               `json:"quantity"`
	PickupDate time.Time         `json:"pickupDate"`
	Status     ReservationStatus `json:"status"`
	Notes      string            `json:"notes,omitempty"`
	CreatedAt  time.Time         `json:"createdAt,omitempty"`
	UpdatedAt  time.Time         `json:"updatedAt,omitempty"`
}

// ReservationInput is the payload for creating or replacing a reservation.
type ReservationInput struct {
	ProductID  string    `json:"product" validate:"required"`
	Quantity   int       `json:"quantity" validate:"gt=0"`
	PickupDate time.Time `json:"pickupDate" validate:"required"`
	Notes      string    `json:"notes,omitempty"`
}
