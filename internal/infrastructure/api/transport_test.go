package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hardwarehub/storefront/internal/core/domain"
)

// memCreds is a minimal in-memory credential store for pipeline tests.
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
	m.token, m.user = c.Token, c.User
	return nil
}

func (m *memCreds) Clear() error {
	m.token, m.user = "", nil
	return nil
}

func (m *memCreds) Token() string { return m.token }

func TestTransport_InjectsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	creds := &memCreds{token: "tok-1", user: &domain.User{ID: "u1"}}
	client := &http.Client{Transport: NewTransport(nil, creds, nil, zerolog.Nop())}

	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if gotAuth != "Bearer tok-1" {
		t.Fatalf("expected bearer header, got %q", gotAuth)
	}
}

func TestTransport_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := &http.Client{Transport: NewTransport(nil, &memCreds{}, nil, zerolog.Nop())}

	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if gotAuth != "" {
		t.Fatalf("expected no Authorization header, got %q", gotAuth)
	}
}

func TestTransport_401ClearsCredentialsAndFiresHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	creds := &memCreds{token: "tok-1", user: &domain.User{ID: "u1"}}
	hookCalls := 0
	client := &http.Client{Transport: NewTransport(nil, creds, func() { hookCalls++ }, zerolog.Nop())}

	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if creds.token != "" || creds.user != nil {
		t.Fatalf("expected credential pair cleared, got token=%q user=%v", creds.token, creds.user)
	}
	if hookCalls != 1 {
		t.Fatalf("expected hook fired once, got %d", hookCalls)
	}
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("401 must still reach the caller, got %d", resp.StatusCode)
	}
}

func TestTransport_OtherFailuresPassThrough(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	creds := &memCreds{token: "tok-1", user: &domain.User{ID: "u1"}}
	hookCalls := 0
	client := &http.Client{Transport: NewTransport(nil, creds, func() { hookCalls++ }, zerolog.Nop())}

	resp, err := client.Get(srv.URL)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	resp.Body.Close()

	if hookCalls != 0 {
		t.Fatalf("hook must only fire on 401, fired %d times", hookCalls)
	}
	if creds.token == "" {
		t.Fatalf("non-401 failures must not clear credentials")
	}
}
