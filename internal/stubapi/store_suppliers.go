package stubapi

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/hardwarehub/storefront/internal/core/domain"
)

// CreateSupplier registers a vendor. New suppliers default to active unless
// the input says otherwise.
func (s *Store) CreateSupplier(in domain.SupplierInput) *domain.Supplier {
	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	now := time.Now().UTC()
	sup := &domain.Supplier{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		Address:      in.Address,
		IsActive:     active,
		AgreementEnd: in.AgreementEnd,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.suppliers[sup.ID] = sup
	out := *sup
	return &out
}

// ListSuppliers returns one page of suppliers plus totals.
func (s *Store) ListSuppliers(q domain.SupplierQuery) domain.SupplierPage {
	s.mu.Lock()
	defer s.mu.Unlock()

	all := []domain.Supplier{}
	for _, sup := range s.suppliers {
		if q.IsActive != nil && sup.IsActive != *q.IsActive {
			continue
		}
		all = append(all, *sup)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })

	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}

	total := len(all)
	pages := (total + limit - 1) / limit
	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	return domain.SupplierPage{
		Suppliers: all[start:end],
		Total:     total,
		Page:      page,
		Pages:     pages,
	}
}

// SupplierByID returns a copy of the supplier.
func (s *Store) SupplierByID(id string) (*domain.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sup, ok := s.suppliers[id]
	if !ok {
		return nil, errNotFound
	}
	out := *sup
	return &out, nil
}

// UpdateSupplier replaces a supplier's fields.
func (s *Store) UpdateSupplier(id string, in domain.SupplierInput) (*domain.Supplier, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sup, ok := s.suppliers[id]
	if !ok {
		return nil, errNotFound
	}
	sup.Name = in.Name
	sup.Email = in.Email
	sup.Phone = in.Phone
	sup.Address = in.Address
	if in.IsActive != nil {
		sup.IsActive = *in.IsActive
	}
	sup.AgreementEnd = in.AgreementEnd
	sup.UpdatedAt = time.Now().UTC()
	out := *sup
	return &out, nil
}

// DeleteSupplier removes a supplier.
func (s *Store) DeleteSupplier(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.suppliers[id]; !ok {
		return errNotFound
	}
	delete(s.suppliers, id)
	return nil
}

// ExpiredAgreements lists suppliers whose agreements lapsed before now.
func (s *Store) ExpiredAgreements(now time.Time) []domain.Supplier {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Supplier{}
	for _, sup := range s.suppliers {
		if sup.AgreementExpired(now) {
			out = append(out, *sup)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
