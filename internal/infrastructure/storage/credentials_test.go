package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hardwarehub/storefront/internal/core/domain"
)

func TestCredentialFile_RoundTrip(t *testing.T) {
	store := NewCredentialFile(t.TempDir())

	err := store.Save(domain.Credentials{
		Token: "tok-1",
		User:  &domain.User{ID: "u1", Email: "a@b.com", Role: domain.RoleCustomer},
	})
	require.NoError(t, err)

	got, err := store.Load()
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "tok-1", got.Token)
	assert.Equal(t, "u1", got.User.ID)
	assert.Equal(t, "tok-1", store.Token())
}

func TestCredentialFile_EmptyDirIsAbsent(t *testing.T) {
	store := NewCredentialFile(t.TempDir())

	got, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Empty(t, store.Token())
}

func TestCredentialFile_CorruptUserIsAbsent(t *testing.T) {
	dir := t.TempDir()
	store := NewCredentialFile(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "token"), []byte("tok-1"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "user.json"), []byte("{not json"), 0o600))

	got, err := store.Load()
	require.NoError(t, err, "corrupt data is absence, not an error")
	assert.Nil(t, got)
}

func TestCredentialFile_TokenWithoutUserIsAbsent(t *testing.T) {
	dir := t.TempDir()
	store := NewCredentialFile(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "token"), []byte("tok-1"), 0o600))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, got, "half a pair is no pair")
}

func TestCredentialFile_RejectsPartialSave(t *testing.T) {
	store := NewCredentialFile(t.TempDir())

	assert.Error(t, store.Save(domain.Credentials{Token: "tok-1"}))
	assert.Error(t, store.Save(domain.Credentials{User: &domain.User{ID: "u1"}}))
}

func TestCredentialFile_ClearRemovesPair(t *testing.T) {
	dir := t.TempDir()
	store := NewCredentialFile(dir)
	require.NoError(t, store.Save(domain.Credentials{
		Token: "tok-1",
		User:  &domain.User{ID: "u1"},
	}))

	require.NoError(t, store.Clear())

	_, tokenErr := os.Stat(filepath.Join(dir, "token"))
	_, userErr := os.Stat(filepath.Join(dir, "user.json"))
	assert.True(t, os.IsNotExist(tokenErr))
	assert.True(t, os.IsNotExist(userErr))

	// Idempotent: a second clear on an empty store is fine.
	assert.NoError(t, store.Clear())
}
