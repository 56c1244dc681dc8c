// Package storage persists the client's only durable state: the bearer
// token and the serialized user record, kept as two files under the
// configuration directory and always written or removed as a pair.
package storage

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hardwarehub/storefront/internal/core/domain"
)

const (
	tokenFile = "token"
	userFile  = "user.json"
)

// CredentialFile implements ports.CredentialStore on top of two files in
// dir. Writes go through a temp file + rename so a crash never leaves a
// torn entry behind.
type CredentialFile struct {
	dir string
}

// NewCredentialFile returns a store rooted at dir. The directory is created
// on first Save.
func NewCredentialFile(dir string) *CredentialFile {
	return &CredentialFile{dir: dir}
}

// DefaultDir resolves the conventional credential directory:
// $XDG_CONFIG_HOME/storefront, falling back to ~/.config/storefront.
func DefaultDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "storefront")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "storefront")
}

// Load returns the persisted pair, or (nil, nil) when either half is
// missing or the user record does not deserialize. Corrupt or partial state
// is treated as absence, never as an error.
func (c *CredentialFile) Load() (*domain.Credentials, error) {
	token, err := os.ReadFile(filepath.Join(c.dir, tokenFile))
	if err != nil {
		return nil, ignoreNotExist(err)
	}

	raw, err := os.ReadFile(filepath.Join(c.dir, userFile))
	if err != nil {
		return nil, ignoreNotExist(err)
	}

	var user domain.User
	if err := json.Unmarshal(raw, &user); err != nil || user.ID == "" {
		return nil, nil
	}

	tok := strings.TrimSpace(string(token))
	if tok == "" {
		return nil, nil
	}
	return &domain.Credentials{Token: tok, User: &user}, nil
}

// Save writes the pair. The user record lands first so a reader that sees
// the token also finds a user to go with it.
func (c *CredentialFile) Save(creds domain.Credentials) error {
	if creds.Token == "" || creds.User == nil {
		return errors.New("storage: refusing to save partial credentials")
	}
	if err := os.MkdirAll(c.dir, 0o700); err != nil {
		return err
	}

	raw, err := json.Marshal(creds.User)
	if err != nil {
		return err
	}
	if err := writeAtomic(filepath.Join(c.dir, userFile), raw); err != nil {
		return err
	}
	return writeAtomic(filepath.Join(c.dir, tokenFile), []byte(creds.Token))
}

// Clear removes both entries. Idempotent: missing files are not an error.
func (c *CredentialFile) Clear() error {
	tokenErr := os.Remove(filepath.Join(c.dir, tokenFile))
	userErr := os.Remove(filepath.Join(c.dir, userFile))
	if err := ignoreNotExist(tokenErr); err != nil {
		return err
	}
	return ignoreNotExist(userErr)
}

// Token returns the persisted bearer token, or "" when absent.
func (c *CredentialFile) Token() string {
	b, err := os.ReadFile(filepath.Join(c.dir, tokenFile))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

func writeAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".cred-*")
	if err != nil {
		return err
	}
	name := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(name)
		return err
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(name)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(name)
		return err
	}
	return os.Rename(name, path)
}

func ignoreNotExist(err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}
