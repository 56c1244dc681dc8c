package domain

// SessionPhase is the lifecycle state of the client session.
type SessionPhase string

const (
	// PhaseBootstrapping is the sole initial phase, entered once at process
	// start and left as soon as persisted credentials have been inspected.
	PhaseBootstrapping   SessionPhase = "bootstrapping"
	PhaseUnauthenticated SessionPhase = "unauthenticated"
	PhaseAuthenticated   SessionPhase = "authenticated"
)

// Credentials is the persisted credential record: the bearer token and the
// serialized user it belongs to. The pair is written together and removed
// together; a record missing either half is treated as absent.
type Credentials struct {
	Token string
	User  *User
}

// SessionState is an immutable snapshot of the session at one point in time.
// Token and User are set and cleared together: no snapshot ever carries one
// without the other once the phase has settled.
type SessionState struct {
	Phase SessionPhase
	User  *User
	Token string
	// Error holds the last auth-operation failure message, empty when none.
	Error string
}

// IsLoading reports whether startup hydration is still in progress.
func (s SessionState) IsLoading() bool {
	return s.Phase == PhaseBootstrapping
}

// IsAuthenticated holds exactly when both halves of the credential are
// present.
func (s SessionState) IsAuthenticated() bool {
	return s.Phase == PhaseAuthenticated && s.User != nil && s.Token != ""
}

// IsAdmin reports whether the session belongs to an admin. Always false for
// an unauthenticated session; never an error.
func (s SessionState) IsAdmin() bool {
	return s.IsAuthenticated() && s.User.IsAdmin()
}

// AuthResult is the structured outcome of a session-mutating operation.
// Failures are reported here, not raised: callers decide presentation.
type AuthResult struct {
	Success bool
	Message string
}
