package domain

import "time"

// Supplier is a vendor the store buys from.
type Supplier struct {
	ID           string    `json:"_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	IsActive     bool      `json:"isActive"`
	AgreementEnd time.Time `json:"agreementEndDate,omitempty"`
	CreatedAt    time.Time `json:"createdAt,omitempty"`
	UpdatedAt    time.Time `json:"updatedAt,omitempty"`
}

// AgreementExpired reports whether the supply agreement lapsed before now.
func (s *Supplier) AgreementExpired(now time.Time) bool {
	return !s.AgreementEnd.IsZero() && s.AgreementEnd.Before(now)
}

// SupplierInput is the payload for creating or replacing a supplier.
type SupplierInput struct {
	Name         string    `json:"name" validate:"required"`
	Email        string    `json:"email" validate:"required,email"`
	Phone        string    `json:"phone,omitempty"`
	Address      string    `json:"address,omitempty"`
	IsActive     *bool     `json:"isActive,omitempty"`
	AgreementEnd time.Time `json:"agreementEndDate,omitempty"`
}

// SupplierQuery pages and filters supplier listings.
type SupplierQuery struct {
	Page  int
	Limit int
	// IsActive filters by active flag when non-nil.
	IsActive *bool
}

// SupplierPage is one page of suppliers plus paging totals.
type SupplierPage struct {
	Suppliers []Supplier `json:"suppliers"`
	Total     int        `json:"total"`
	Page      int        `json:"page"`
	Pages     int        `json:"pages"`
}
