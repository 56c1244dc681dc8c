package domain

// Route names a navigable view. Only the two redirect targets are fixed by
// the access-control contract; everything else is shell-defined.
type Route string

const (
	RouteLogin Route = "/login"
	RouteHome  Route = "/"
)

// Requirement declares what a view demands from the session before it may
// render.
type Requirement struct {
	Authenticated bool
	// AdminOnly implies Authenticated.
	AdminOnly bool
}

// Decision is the route guard's verdict for one navigation attempt.
type Decision int

const (
	// DecisionPending: hydration has not settled yet; render nothing and do
	// not redirect.
	DecisionPending Decision = iota
	DecisionAllow
	DecisionRedirectLogin
	DecisionRedirectHome
)

func (d Decision) String() string {
	switch d {
	case DecisionPending:
		return "pending"
	case DecisionAllow:
		return "allow"
	case DecisionRedirectLogin:
		return "redirect-login"
	case DecisionRedirectHome:
		return "redirect-home"
	}
	return "unknown"
}
