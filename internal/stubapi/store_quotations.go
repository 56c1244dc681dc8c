package stubapi

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/hardwarehub/storefront/internal/core/domain"
)

// CreateQuotation records a quotation request, pricing each line from the
// current catalog.
func (s *Store) CreateQuotation(customerID string, in domain.QuotationInput) (*domain.Quotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]domain.QuotationItem, 0, len(in.Items))
	total := 0.0
	for _, it := range in.Items {
		p, ok := s.products[it.ProductID]
		if !ok {
			return nil, errNotFound
		}
		line := domain.QuotationItem{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  it.Quantity,
			UnitPrice: p.Price,
		}
		total += p.Price * float64(it.Quantity)
		items = append(items, line)
	}

	now := time.Now().UTC()
	q := &domain.Quotation{
		ID:         uuid.NewString(),
		CustomerID: customerID,
		Items:      items,
		Status:     domain.QuotationPending,
		Total:      total,
		Notes:      in.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	s.quotations[q.ID] = q
	out := *q
	return &out, nil
}

// ListQuotations returns all quotations, optionally filtered by customer
// and/or status (empty means no filter).
func (s *Store) ListQuotations(customerID string, status domain.QuotationStatus) []domain.Quotation {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Quotation{}
	for _, q := range s.quotations {
		if customerID != "" && q.CustomerID != customerID {
			continue
		}
		if status != "" && q.Status != status {
			continue
		}
		out = append(out, *q)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}

// QuotationByID returns a copy of the quotation.
func (s *Store) QuotationByID(id string) (*domain.Quotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.quotations[id]
	if !ok {
		return nil, errNotFound
	}
	out := *q
	return &out, nil
}

// QuotationStats counts quotations per lifecycle state.
func (s *Store) QuotationStats() domain.QuotationStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := domain.QuotationStats{Total: len(s.quotations)}
	for _, q := range s.quotations {
		switch q.Status {
		case domain.QuotationPending:
			stats.Pending++
		case domain.QuotationApproved:
			stats.Approved++
		case domain.QuotationRejected:
			stats.Rejected++
		case domain.QuotationCompleted:
			stats.Completed++
		}
	}
	return stats
}

// UpdateQuotationStatus transitions a quotation, enforcing the state
// machine.
func (s *Store) UpdateQuotationStatus(id string, next domain.QuotationStatus) (*domain.Quotation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.quotations[id]
	if !ok {
		return nil, errNotFound
	}
	if !q.Status.CanTransitionTo(next) {
		return nil, domain.ErrInvalidTransition
	}
	q.Status = next
	q.UpdatedAt = time.Now().UTC()
	out := *q
	return &out, nil
}

// DeleteQuotation removes a quotation.
func (s *Store) DeleteQuotation(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.quotations[id]; !ok {
		return errNotFound
	}
	delete(s.quotations, id)
	return nil
}
