package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"gaia/internal/core/domain"
)

const testSecret = "test-secret-at-least-32-chars-long!!"

func TestTokenManager_IssueAndVerify(t *testing.T) {
	m := NewTokenManager(testSecret, "gaia-test", 15*time.Minute, 24*time.Hour)
	userID := uuid.New()

	token, err := m.Issue(userID, "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	ident, err := m.Verify(token)
	require.NoError(t, err)
	require.Equal(t, userID, ident.UserID)
	require.Equal(t, "alice@example.com", ident.Email)
	require.False(t, ident.IsGuest)
}

func TestTokenManager_IssueGuest(t *testing.T) {
	m := NewTokenManager(testSecret, "gaia-test", 15*time.Minute, 24*time.Hour)

	token, err := m.IssueGuest()
	require.NoError(t, err)

	ident, err := m.Verify(token)
	require.NoError(t, err)
	require.True(t, ident.IsGuest)
	require.Equal(t, domain.GuestID, ident.UserID)
	require.Equal(t, domain.GuestEmail, ident.Email)
}

func TestTokenManager_Expired(t *testing.T) {
	m := NewTokenManager(testSecret, "gaia-test", -time.Hour, 24*time.Hour)

	token, err := m.Issue(uuid.New(), "a@b.c")
	require.NoError(t, err)

	_, err = m.Verify(token)
	require.Error(t, err)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	m1 := NewTokenManager(testSecret, "gaia-test", 15*time.Minute, 24*time.Hour)
	m2 := NewTokenManager("another-secret-also-32-chars-long!!!", "gaia-test", 15*time.Minute, 24*time.Hour)

	token, err := m1.Issue(uuid.New(), "a@b.c")
	require.NoError(t, err)

	_, err = m2.Verify(token)
	require.Error(t, err)
}

func TestTokenManager_WrongIssuer(t *testing.T) {
	m1 := NewTokenManager(testSecret, "gaia", 15*time.Minute, 24*time.Hour)
	m2 := NewTokenManager(testSecret, "not-gaia", 15*time.Minute, 24*time.Hour)

	token, err := m1.Issue(uuid.New(), "a@b.c")
	require.NoError(t, err)

	_, err = m2.Verify(token)
	require.Error(t, err)
}

func TestTokenManager_Malformed(t *testing.T) {
	m := NewTokenManager(testSecret, "gaia-test", 15*time.Minute, 24*time.Hour)

	for _, token := range []string{"", "not.a.jwt", "garbage"} {
		_, err := m.Verify(token)
		require.Error(t, err, "token %q", token)
	}
}
