package api

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/hardwarehub/storefront/internal/core/ports"
)

// Transport is the authorized request pipeline. On the way out it attaches
// the persisted bearer token to every request; on the way back it watches
// for 401 and performs the forced-logout sequence: remove the credential
// pair, then fire the unauthorized hook. This is the only place 401 is
// handled — collaborators never special-case it.
//
// The hook is a callback rather than a navigation call so the transport
// stays ignorant of the routing layer; the application shell installs the
// single listener that redirects to login.
type Transport struct {
	base           http.RoundTripper
	creds          ports.CredentialStore
	onUnauthorized func()
	log            zerolog.Logger
}

// NewTransport wires the pipeline. base may be nil, in which case
// http.DefaultTransport is used. onUnauthorized may be nil.
func NewTransport(base http.RoundTripper, creds ports.CredentialStore, onUnauthorized func(), log zerolog.Logger) *Transport {
	if base == nil {
		base = http.DefaultTransport
	}
	return &Transport{base: base, creds: creds, onUnauthorized: onUnauthorized, log: log}
}

// RoundTrip implements http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if token := t.creds.Token(); token != "" {
		// Per-request clone: RoundTrippers must not mutate the caller's request.
		req = req.Clone(req.Context())
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusUnauthorized {
		t.log.Info().
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Msg("pipeline: 401 received, tearing session down")
		if err := t.creds.Clear(); err != nil {
			t.log.Warn().Err(err).Msg("pipeline: clearing credentials failed")
		}
		if t.onUnauthorized != nil {
			t.onUnauthorized()
		}
	}

	return resp, nil
}
