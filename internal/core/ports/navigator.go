package ports

import "github.com/hardwarehub/storefront/internal/core/domain"

// Navigator moves the view to another route. The application shell owns the
// only implementation; transport and session code never navigate directly.
type Navigator interface {
	To(route domain.Route)
}
