package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("qwerty")
	require.NoError(t, err)
	assert.NotEqual(t, "qwerty", hash)

	assert.NoError(t, CheckPassword(hash, "qwerty"))
	assert.ErrorIs(t, CheckPassword(hash, "wrong"), ErrPasswordMismatch)
	assert.Error(t, CheckPassword("not-a-hash", "qwerty"))
}

func TestTokenService_SignAndParse(t *testing.T) {
	ts := NewTokenService("secret", "media-catalog", time.Hour)

	token, exp, err := ts.Sign(42, "dada")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := ts.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "dada", claims.Login)
	assert.Equal(t, "42", claims.Subject)
}

func TestTokenService_ParseRejects(t *testing.T) {
	ts := NewTokenService("secret", "media-catalog", time.Hour)
	valid, _, err := ts.Sign(1, "dada")
	require.NoError(t, err)

	expired, _, err := NewTokenService("secret", "media-catalog", -time.Minute).Sign(1, "dada")
	require.NoError(t, err)

	otherIssuer, _, err := NewTokenService("secret", "someone-else", time.Hour).Sign(1, "dada")
	require.NoError(t, err)

	tests := []struct {
		name  string
		svc   TokenService
		token string
	}{
		{name: "wrong secret", svc: NewTokenService("other", "media-catalog", time.Hour), token: valid},
		{name: "expired", svc: ts, token: expired},
		{name: "issuer mismatch", svc: ts, token: otherIssuer},
		{name: "garbage", svc: ts, token: "not.a.token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.svc.Parse(tt.token)
			assert.Error(t, err)
		})
	}
}
