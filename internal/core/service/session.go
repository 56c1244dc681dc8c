package service

import (
	"context"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/hardwarehub/storefront/internal/core/domain"
	"github.com/hardwarehub/storefront/internal/core/ports"
)

// Generic messages shown when a collaborator fails at the transport level.
// Server-reported messages are surfaced verbatim instead.
const (
	msgLoginFailed    = "Login failed"
	msgRegisterFailed = "Registration failed"
	msgUpdateFailed   = "Profile update failed"
)

// Session is the single source of truth for the authenticated identity.
// All mutations funnel through it, and every mutation settles the state into
// exactly one of {authenticated, unauthenticated}: token and user are set
// and cleared together, never observed half-present.
//
// Mutating operations are serialized by a generation counter: each captures
// the current generation before suspending on the network and discards its
// result if another operation started in the meantime. The last operation
// to start wins, regardless of completion order.
type Session struct {
	auth  ports.AuthAPI
	creds ports.CredentialStore
	log   zerolog.Logger

	mu    sync.Mutex
	gen   uint64
	state domain.SessionState
}

// NewSession constructs a session in the bootstrapping phase. Call
// Bootstrap once at startup before consulting State.
func NewSession(auth ports.AuthAPI, creds ports.CredentialStore, log zerolog.Logger) *Session {
	return &Session{
		auth:  auth,
		creds: creds,
		log:   log,
		state: domain.SessionState{Phase: domain.PhaseBootstrapping},
	}
}

// State returns a snapshot of the current session.
func (s *Session) State() domain.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// IsAdmin reports whether the current session belongs to an admin. False,
// not an error, when unauthenticated.
func (s *Session) IsAdmin() bool {
	return s.State().IsAdmin()
}

// Bootstrap hydrates the session from the persisted credential pair. A
// missing or malformed record settles the session as unauthenticated with
// no error; Bootstrap itself never fails.
func (s *Session) Bootstrap() {
	creds, err := s.creds.Load()
	if err != nil {
		s.log.Warn().Err(err).Msg("session: credential load failed, starting unauthenticated")
		creds = nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if creds != nil {
		s.state = domain.SessionState{
			Phase: domain.PhaseAuthenticated,
			User:  creds.User,
			Token: creds.Token,
		}
		s.log.Debug().Str("user", creds.User.ID).Msg("session: restored from storage")
		return
	}
	s.state = domain.SessionState{Phase: domain.PhaseUnauthenticated}
}

// Login exchanges credentials for a session. On success the pair is
// persisted and the session becomes authenticated; on failure the session
// settles unauthenticated carrying the failure message.
func (s *Session) Login(ctx context.Context, email, password string) domain.AuthResult {
	gen := s.begin()
	creds, err := s.auth.Login(ctx, email, password)
	return s.settleAuth(gen, creds, err, msgLoginFailed)
}

// Register creates an account and logs it in. Same contract as Login.
func (s *Session) Register(ctx context.Context, in domain.RegisterInput) domain.AuthResult {
	gen := s.begin()
	creds, err := s.auth.Register(ctx, in)
	return s.settleAuth(gen, creds, err, msgRegisterFailed)
}

// Logout invalidates the server-side session best-effort and always clears
// the local one. Network or server failures are swallowed: the user's goal
// is to be logged out locally, and that must not be blocked by a fault.
func (s *Session) Logout(ctx context.Context) {
	gen := s.begin()
	if err := s.auth.Logout(ctx); err != nil {
		s.log.Debug().Err(err).Msg("session: server-side logout failed, clearing locally anyway")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		return
	}
	s.clearLocked()
}

// UpdateProfile replaces the user record on success, leaving the token
// untouched. On failure the previously authenticated user is unchanged.
func (s *Session) UpdateProfile(ctx context.Context, in domain.ProfileUpdate) domain.AuthResult {
	gen := s.currentGen()
	user, err := s.auth.UpdateProfile(ctx, in)
	if err != nil || user == nil {
		return failure(err, msgUpdateFailed)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen || !s.state.IsAuthenticated() {
		return domain.AuthResult{Success: false, Message: domain.ErrSessionSuperseded.Error()}
	}
	s.state.User = user
	s.state.Error = ""
	if err := s.creds.Save(domain.Credentials{Token: s.state.Token, User: user}); err != nil {
		s.log.Warn().Err(err).Msg("session: persisting updated profile failed")
	}
	return domain.AuthResult{Success: true}
}

// ClearError drops the last auth-operation failure message. No other state
// changes.
func (s *Session) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Error = ""
}

// ForceLogout tears the session down without a server round-trip. Invoked
// by the shell's unauthorized listener when the pipeline reports a 401.
func (s *Session) ForceLogout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.clearLocked()
}

// begin opens a mutating operation and returns its generation.
func (s *Session) begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	return s.gen
}

func (s *Session) currentGen() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// settleAuth applies the outcome of a login or registration, unless a later
// operation has superseded it.
func (s *Session) settleAuth(gen uint64, creds *domain.Credentials, err error, generic string) domain.AuthResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen != gen {
		// A later operation owns the state now. A failure message still goes
		// back to this caller (a 401 on login forces a teardown mid-call, and
		// the form must show "Invalid credentials", not a race artifact); a
		// stale success is discarded outright.
		if err != nil {
			return failure(err, generic)
		}
		return domain.AuthResult{Success: false, Message: domain.ErrSessionSuperseded.Error()}
	}

	if err != nil {
		res := failure(err, generic)
		s.state = domain.SessionState{Phase: domain.PhaseUnauthenticated, Error: res.Message}
		return res
	}

	if err := s.creds.Save(*creds); err != nil {
		// The in-memory session still authenticates; only the reload
		// round-trip is lost.
		s.log.Warn().Err(err).Msg("session: persisting credentials failed")
	}
	s.state = domain.SessionState{
		Phase: domain.PhaseAuthenticated,
		User:  creds.User,
		Token: creds.Token,
	}
	return domain.AuthResult{Success: true}
}

// clearLocked resets to unauthenticated and removes the persisted pair.
// Callers hold s.mu.
func (s *Session) clearLocked() {
	if err := s.creds.Clear(); err != nil {
		s.log.Warn().Err(err).Msg("session: clearing credentials failed")
	}
	s.state = domain.SessionState{Phase: domain.PhaseUnauthenticated}
}

// failure maps an error to the user-facing result: server messages pass
// through verbatim, transport faults collapse to the generic message.
func failure(err error, generic string) domain.AuthResult {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return domain.AuthResult{Success: false, Message: apiErr.Message}
	}
	return domain.AuthResult{Success: false, Message: generic}
}
