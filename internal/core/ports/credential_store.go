package ports

import "github.com/hardwarehub/storefront/internal/core/domain"

// CredentialStore persists the bearer token and user record as a single
// pair. Both the session store and the request pipeline write through this
// interface, and both rely on its pair semantics: Save writes token and
// user together, Clear removes them together, and Load never returns a
// partial record.
type CredentialStore interface {
	// Load returns the persisted pair, or (nil, nil) when it is absent or
	// malformed. Corrupt data is treated as absence, never as an error.
	Load() (*domain.Credentials, error)

	// Save writes the pair. A record with an empty token or nil user is
	// rejected.
	Save(creds domain.Credentials) error

	// Clear removes the pair. Idempotent: clearing an empty store succeeds.
	Clear() error

	// Token returns the persisted bearer token, or "" when absent. Called
	// on the hot path by the request pipeline.
	Token() string
}
