package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testTokens() TokenService {
	return TokenService{
		Secret:   []byte("test-secret"),
		Issuer:   "pitchmate",
		Duration: 30 * time.Minute,
	}
}

func TestSignParseRoundtrip(t *testing.T) {
	ts := testTokens()
	token, exp, err := ts.Sign("user-1", "a@b.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.WithinDuration(t, time.Now().Add(30*time.Minute), exp, 5*time.Second)

	claims, err := ts.Parse(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", claims.UserID)
	require.Equal(t, "a@b.com", claims.Email)
	require.Equal(t, "a@b.com", claims.Subject)
	require.Equal(t, "pitchmate", claims.Issuer)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	ts := testTokens()
	token, _, err := ts.Sign("user-1", "a@b.com")
	require.NoError(t, err)

	other := testTokens()
	other.Secret = []byte("different-secret")
	_, err = other.Parse(token)
	require.Error(t, err)
}

func TestParseRejectsExpired(t *testing.T) {
	ts := testTokens()
	ts.Duration = -time.Minute
	token, _, err := ts.Sign("user-1", "a@b.com")
	require.NoError(t, err)

	_, err = ts.Parse(token)
	require.Error(t, err)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := testTokens().Parse("not.a.token")
	require.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("hunter2secret")
	require.NoError(t, err)
	require.NotEqual(t, "hunter2secret", hash)
	require.True(t, CheckPassword(hash, "hunter2secret"))
	require.False(t, CheckPassword(hash, "wrong-password"))
}
