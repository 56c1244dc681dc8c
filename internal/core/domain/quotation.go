package domain

import (
	"errors"
	"time"
)

// QuotationStatus is the lifecycle state of a quotation request.
type QuotationStatus string

const (
	QuotationPending   QuotationStatus = "pending"
	QuotationApproved  QuotationStatus = "approved"
	QuotationRejected  QuotationStatus = "rejected"
	QuotationCompleted QuotationStatus = "completed"
)

// quotationTransitions defines the allowed status transitions. Enforced by
// the backend; mirrored here so the stub API behaves like the real one.
var quotationTransitions = map[QuotationStatus][]QuotationStatus{
	QuotationPending:  {QuotationApproved, QuotationRejected},
	QuotationApproved: {QuotationCompleted, QuotationRejected},
}

var ErrInvalidTransition = errors.New("invalid status transition")

// CanTransitionTo reports whether a transition from the current status to
// next is valid.
func (s QuotationStatus) CanTransitionTo(next QuotationStatus) bool {
	for _, allowed := range quotationTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// QuotationItem is one requested line in a quotation.
type QuotationItem struct {
	ProductID string  `json:"product"`
	Name      string  `json:"name,omitempty"`
	Quantity  int     `json:"quantity" validate:"gt=0"`
	UnitPrice float64 `json:"unitPrice,omitempty"`
}

// Quotation is a customer's request for a priced offer.
type Quotation struct {
	ID         string          `json:"_id"`
	CustomerID string          `json:"customer"`
	Items      []QuotationItem `json:"items"`
	Status     QuotationStatus `json:"status"`
	Total      float64         `json:"totalAmount,omitempty"`
	Notes      string          `json:"notes,omitempty"`
	CreatedAt  time.Time       `json:"createdAt,omitempty"`
	UpdatedAt  time.Time       `json:"updatedAt,omitempty"`
}

// QuotationInput is the payload for creating a quotation.
type QuotationInput struct {
	Items []QuotationItem `json:"items" validate:"required,min=1,dive"`
	Notes string          `json:"notes,omitempty"`
}

// QuotationStats summarizes quotations per status for the admin dashboard.
type QuotationStats struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Approved  int `json:"approved"`
	Rejected  int `json:"rejected"`
	Completed int `json:"completed"`
}
