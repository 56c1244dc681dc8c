package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hardwarehub/storefront/internal/core/domain"
)

// memCreds is an in-memory ports.CredentialStore with the same pair
// semantics as the file-backed one.
type memCreds struct {
	token string
	user  *domain.User
}

func (m *memCreds) Load() (*domain.Credentials, error) {
	if m.token == "" || m.user == nil {
		return nil, nil
	}
	return &domain.Credentials{Token: m.token, User: m.user}, nil
}

func (m *memCreds) Save(c domain.Credentials) error {
	if c.Token == "" || c.User == nil {
		return errors.New("partial credentials")
	}
	m.token, m.user = c.Token, c.User
	return nil
}

func (m *memCreds) Clear() error {
	m.token, m.user = "", nil
	return nil
}

func (m *memCreds) Token() string { return m.token }

// fakeAuth scripts the collaborator's responses.
type fakeAuth struct {
	loginCreds *domain.Credentials
	loginErr   error
	logoutErr  error
	updated    *domain.User
	updateErr  error
	// started is closed once Login is in flight; block, when non-nil, is
	// received from before Login returns. Together they let tests control
	// completion order.
	started chan struct{}
	block   chan struct{}
}

func (f *fakeAuth) Login(context.Context, string, string) (*domain.Credentials, error) {
	if f.started != nil {
		close(f.started)
	}
	if f.block != nil {
		<-f.block
	}
	return f.loginCreds, f.loginErr
}

func (f *fakeAuth) Register(context.Context, domain.RegisterInput) (*domain.Credentials, error) {
	return f.loginCreds, f.loginErr
}

func (f *fakeAuth) Logout(context.Context) error { return f.logoutErr }

func (f *fakeAuth) Me(context.Context) (*domain.User, error) { return f.updated, f.updateErr }

func (f *fakeAuth) UpdateProfile(context.Context, domain.ProfileUpdate) (*domain.User, error) {
	return f.updated, f.updateErr
}

func (f *fakeAuth) DeleteAccount(context.Context) error { return nil }

func newTestSession(auth *fakeAuth, creds *memCreds) *Session {
	return NewSession(auth, creds, zerolog.Nop())
}

func TestBootstrap_NoCredentials(t *testing.T) {
	s := newTestSession(&fakeAuth{}, &memCreds{})

	require.True(t, s.State().IsLoading(), "session must start bootstrapping")
	s.Bootstrap()

	st := s.State()
	assert.False(t, st.IsLoading())
	assert.False(t, st.IsAuthenticated())
	assert.Empty(t, st.Error)
}

func TestBootstrap_RestoresStoredSession(t *testing.T) {
	creds := &memCreds{token: "tok-1", user: &domain.User{ID: "u1", Role: domain.RoleCustomer}}
	s := newTestSession(&fakeAuth{}, creds)

	s.Bootstrap()

	st := s.State()
	require.True(t, st.IsAuthenticated())
	assert.Equal(t, "u1", st.User.ID)
	assert.Equal(t, "tok-1", st.Token)
	assert.False(t, s.IsAdmin())
}

func TestLogin_Success(t *testing.T) {
	creds := &memCreds{}
	auth := &fakeAuth{loginCreds: &domain.Credentials{
		Token: "tok-2",
		User:  &domain.User{ID: "u2", Role: domain.RoleAdmin},
	}}
	s := newTestSession(auth, creds)
	s.Bootstrap()

	res := s.Login(context.Background(), "a@b.com", "secret")

	require.True(t, res.Success)
	st := s.State()
	assert.True(t, st.IsAuthenticated())
	assert.True(t, s.IsAdmin())
	assert.Equal(t, "tok-2", creds.token, "successful login must persist the pair")
	assert.Equal(t, "u2", creds.user.ID)
}

func TestLogin_ServerRejection(t *testing.T) {
	auth := &fakeAuth{loginErr: &domain.APIError{Status: 400, Message: "Invalid credentials"}}
	s := newTestSession(auth, &memCreds{})
	s.Bootstrap()

	res := s.Login(context.Background(), "a@b.com", "wrong")

	require.False(t, res.Success)
	assert.Equal(t, "Invalid credentials", res.Message, "server message passes through verbatim")
	st := s.State()
	assert.False(t, st.IsAuthenticated())
	assert.Equal(t, "Invalid credentials", st.Error)
}

func TestLogin_TransportFault(t *testing.T) {
	auth := &fakeAuth{loginErr: errors.New("dial tcp: connection refused")}
	s := newTestSession(auth, &memCreds{})
	s.Bootstrap()

	res := s.Login(context.Background(), "a@b.com", "secret")

	require.False(t, res.Success)
	assert.Equal(t, msgLoginFailed, res.Message, "transport faults map to the generic message")
	assert.Equal(t, msgLoginFailed, s.State().Error)
}

func TestLogin_ThenBootstrap_RoundTrips(t *testing.T) {
	creds := &memCreds{}
	auth := &fakeAuth{loginCreds: &domain.Credentials{
		Token: "tok-3",
		User:  &domain.User{ID: "u3", Role: domain.RoleCustomer},
	}}
	s := newTestSession(auth, creds)
	s.Bootstrap()
	require.True(t, s.Login(context.Background(), "a@b.com", "secret").Success)

	// Simulate a reload: a fresh session hydrating from the same storage.
	fresh := newTestSession(&fakeAuth{}, creds)
	fresh.Bootstrap()

	st := fresh.State()
	require.True(t, st.IsAuthenticated())
	assert.Equal(t, "u3", st.User.ID)
	assert.Equal(t, "tok-3", st.Token)
}

func TestLogout_ClearsDespiteServerFault(t *testing.T) {
	creds := &memCreds{token: "tok-1", user: &domain.User{ID: "u1"}}
	auth := &fakeAuth{logoutErr: errors.New("network down")}
	s := newTestSession(auth, creds)
	s.Bootstrap()
	require.True(t, s.State().IsAuthenticated())

	s.Logout(context.Background())

	st := s.State()
	assert.False(t, st.IsAuthenticated())
	assert.Empty(t, st.Error, "logout failures are swallowed")
	assert.Empty(t, creds.token)
	assert.Nil(t, creds.user)
}

func TestLogout_Idempotent(t *testing.T) {
	creds := &memCreds{token: "tok-1", user: &domain.User{ID: "u1"}}
	s := newTestSession(&fakeAuth{}, creds)
	s.Bootstrap()

	s.Logout(context.Background())
	first := s.State()
	s.Logout(context.Background())
	second := s.State()

	assert.Equal(t, first, second)
	assert.False(t, second.IsAuthenticated())
}

func TestUpdateProfile_Success(t *testing.T) {
	creds := &memCreds{token: "tok-1", user: &domain.User{ID: "u1", Name: "Old"}}
	auth := &fakeAuth{updated: &domain.User{ID: "u1", Name: "New"}}
	s := newTestSession(auth, creds)
	s.Bootstrap()

	res := s.UpdateProfile(context.Background(), domain.ProfileUpdate{Name: "New"})

	require.True(t, res.Success)
	assert.Equal(t, "New", s.State().User.Name)
	assert.Equal(t, "tok-1", s.State().Token, "token is untouched by profile updates")
	assert.Equal(t, "New", creds.user.Name, "persisted user is replaced")
}

func TestUpdateProfile_FailureLeavesUserUnchanged(t *testing.T) {
	creds := &memCreds{token: "tok-1", user: &domain.User{ID: "u1", Name: "Old"}}
	auth := &fakeAuth{updateErr: &domain.APIError{Status: 400, Message: "Email already registered"}}
	s := newTestSession(auth, creds)
	s.Bootstrap()

	res := s.UpdateProfile(context.Background(), domain.ProfileUpdate{Email: "taken@b.com"})

	require.False(t, res.Success)
	assert.Equal(t, "Email already registered", res.Message)
	assert.Equal(t, "Old", s.State().User.Name)
	assert.True(t, s.State().IsAuthenticated())
}

func TestClearError(t *testing.T) {
	auth := &fakeAuth{loginErr: &domain.APIError{Status: 400, Message: "nope"}}
	s := newTestSession(auth, &memCreds{})
	s.Bootstrap()
	s.Login(context.Background(), "a@b.com", "wrong")
	require.NotEmpty(t, s.State().Error)

	s.ClearError()

	assert.Empty(t, s.State().Error)
	assert.False(t, s.State().IsAuthenticated(), "only the error field changes")
}

func TestForceLogout_TearsDownSession(t *testing.T) {
	creds := &memCreds{token: "tok-1", user: &domain.User{ID: "u1"}}
	s := newTestSession(&fakeAuth{}, creds)
	s.Bootstrap()
	require.True(t, s.State().IsAuthenticated())

	s.ForceLogout()

	assert.False(t, s.State().IsAuthenticated())
	assert.Empty(t, creds.token)
	assert.Nil(t, creds.user)
}

// A login that resolves after a forced logout must not resurrect the
// session: the later operation wins by start order.
func TestLogin_SupersededByForcedLogout(t *testing.T) {
	creds := &memCreds{}
	auth := &fakeAuth{
		loginCreds: &domain.Credentials{Token: "tok-9", User: &domain.User{ID: "u9"}},
		started:    make(chan struct{}),
		block:      make(chan struct{}),
	}
	s := newTestSession(auth, creds)
	s.Bootstrap()

	done := make(chan domain.AuthResult, 1)
	go func() {
		done <- s.Login(context.Background(), "a@b.com", "secret")
	}()

	<-auth.started
	s.ForceLogout()
	close(auth.block)
	res := <-done

	assert.False(t, res.Success)
	assert.Equal(t, domain.ErrSessionSuperseded.Error(), res.Message)
	assert.False(t, s.State().IsAuthenticated(), "stale success must not re-authenticate")
	assert.Empty(t, creds.token)
}

// Invariant sweep: isAuthenticated must track (user, token) presence in
// every state the operations can reach.
func TestSessionInvariant(t *testing.T) {
	creds := &memCreds{}
	auth := &fakeAuth{loginCreds: &domain.Credentials{Token: "t", User: &domain.User{ID: "u"}}}
	s := newTestSession(auth, creds)

	check := func(step string) {
		st := s.State()
		if st.Phase == domain.PhaseBootstrapping {
			return
		}
		want := st.User != nil && st.Token != ""
		assert.Equal(t, want, st.IsAuthenticated(), "invariant broken after %s", step)
	}

	check("construction")
	s.Bootstrap()
	check("bootstrap")
	s.Login(context.Background(), "a@b.com", "x")
	check("login")
	s.UpdateProfile(context.Background(), domain.ProfileUpdate{})
	check("update")
	s.Logout(context.Background())
	check("logout")
	s.ForceLogout()
	check("forced logout")
}
