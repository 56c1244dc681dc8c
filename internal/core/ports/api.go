package ports

import (
	"context"

	"github.com/hardwarehub/storefront/internal/core/domain"
)

// Collaborator interfaces for the backend endpoint groups. Implementations
// route every call through the authorized request pipeline; server-reported
// failures come back as *domain.APIError, transport faults as plain errors.

// AuthAPI covers the /users/* identity endpoints.
type AuthAPI interface {
	Login(ctx context.Context, email, password string) (*domain.Credentials, error)
	Register(ctx context.Context, in domain.RegisterInput) (*domain.Credentials, error)
	// Logout asks the server to invalidate the session. Best effort: callers
	// swallow any error.
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*domain.User, error)
	UpdateProfile(ctx context.Context, in domain.ProfileUpdate) (*domain.User, error)
	DeleteAccount(ctx context.Context) error
}

// ProductAPI covers the catalog endpoints.
type ProductAPI interface {
	List(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Categories(ctx context.Context) ([]string, error)
	LowStock(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, in domain.ProductInput) (*domain.Product, error)
	Update(ctx context.Context, id string, in domain.ProductInput) (*domain.Product, error)
	UpdateStock(ctx context.Context, id string, in domain.StockUpdate) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// QuotationAPI covers the quotation lifecycle endpoints.
type QuotationAPI interface {
	Create(ctx context.Context, in domain.QuotationInput) (*domain.Quotation, error)
	List(ctx context.Context) ([]domain.Quotation, error)
	Mine(ctx context.Context) ([]domain.Quotation, error)
	Get(ctx context.Context, id string) (*domain.Quotation, error)
	Stats(ctx context.Context) (*domain.QuotationStats, error)
	ByStatus(ctx context.Context, status domain.QuotationStatus) ([]domain.Quotation, error)
	UpdateStatus(ctx context.Context, id string, status domain.QuotationStatus) (*domain.Quotation, error)
	Delete(ctx context.Context, id string) error
}

// ReservationAPI covers the reservation lifecycle endpoints.
type ReservationAPI interface {
	Create(ctx context.Context, in domain.ReservationInput) (*domain.Reservation, error)
	List(ctx context.Context) ([]domain.Reservation, error)
	Mine(ctx context.Context) ([]domain.Reservation, error)
	Get(ctx context.Context, id string) (*domain.Reservation, error)
	Update(ctx context.Context, id string, in domain.ReservationInput) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, status domain.ReservationStatus) (*domain.Reservation, error)
	Delete(ctx context.Context, id string) error
}

// UserAPI covers the admin user-management endpoints.
type UserAPI interface {
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id string, in domain.ProfileUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}

// SupplierAPI covers the supplier-management endpoints.
type SupplierAPI interface {
	Create(ctx context.Context, in domain.SupplierInput) (*domain.Supplier, error)
	List(ctx context.Context, q domain.SupplierQuery) (*domain.SupplierPage, error)
	Get(ctx context.Context, id string) (*domain.Supplier, error)
	Update(ctx context.Context, id string, in domain.SupplierInput) (*domain.Supplier, error)
	Delete(ctx context.Context, id string) error
	ExpiredAgreements(ctx context.Context) ([]domain.Supplier, error)
	NotifyLowStock(ctx context.Context, id string) error
}
