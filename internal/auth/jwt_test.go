package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTokens() TokenService {
	return TokenService{
		Secret:   []byte("test-secret"),
		Issuer:   "tacotango-test",
		Duration: time.Hour,
	}
}

func TestSignAndParseRoundTrip(t *testing.T) {
	ts := testTokens()
	admin := &Admin{ID: "a1", Username: "rosa", Email: "rosa@tacotango.example", TokenVersion: 3}

	token, exp, err := ts.Sign(admin)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := ts.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "a1", claims.AdminID)
	assert.Equal(t, "rosa", claims.Username)
	assert.Equal(t, 3, claims.TokenVersion)
	assert.Equal(t, "tacotango-test", claims.Issuer)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	ts := testTokens()
	token, _, err := ts.Sign(&Admin{ID: "a1"})
	require.NoError(t, err)

	other := TokenService{Secret: []byte("different"), Issuer: ts.Issuer, Duration: ts.Duration}
	_, err = other.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	ts := testTokens()
	ts.Duration = -time.Minute

	token, _, err := ts.Sign(&Admin{ID: "a1"})
	require.NoError(t, err)

	_, err = ts.Parse(token)
	assert.Error(t, err)
}
