package service

import "github.com/hardwarehub/storefront/internal/core/domain"

// Decide is the route guard: a pure function from session state and view
// requirements to a navigation verdict.
//
//   - While hydration is in flight nothing renders and nothing redirects;
//     redirecting before Bootstrap settles would bounce a valid session.
//   - Unauthenticated access to a protected view goes to login. No return
//     path is preserved.
//   - An authenticated but non-admin session asking for an admin view goes
//     to home, not to login.
func Decide(state domain.SessionState, req domain.Requirement) domain.Decision {
	if state.IsLoading() {
		return domain.DecisionPending
	}

	needsAuth := req.Authenticated || req.AdminOnly
	if needsAuth && !state.IsAuthenticated() {
		return domain.DecisionRedirectLogin
	}
	if req.AdminOnly && !state.IsAdmin() {
		return domain.DecisionRedirectHome
	}
	return domain.DecisionAllow
}
