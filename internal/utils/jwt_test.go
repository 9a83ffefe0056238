// internal/utils/jwt_test.go
package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func token(t *testing.T, claims SessionClaims, secret string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestParseSessionToken(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	valid := SessionClaims{
		Email: "admin@anvogue.fr",
		Role:  "ADMIN",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
	}
	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(now.Add(-time.Second))

	t.Run("verified", func(t *testing.T) {
		claims, err := ParseSessionToken(token(t, valid, "s3"), "s3", now)
		require.NoError(t, err)
		assert.Equal(t, "ADMIN", claims.Role)
		assert.Equal(t, "u1", claims.Subject)
		assert.True(t, claims.Verified)
	})

	t.Run("bad signature", func(t *testing.T) {
		_, err := ParseSessionToken(token(t, valid, "other"), "s3", now)
		assert.ErrorIs(t, err, ErrTokenMalformed)
	})

	t.Run("unverified decode", func(t *testing.T) {
		claims, err := ParseSessionToken(token(t, valid, "backend"), "", now)
		require.NoError(t, err)
		assert.Equal(t, "admin@anvogue.fr", claims.Email)
		assert.False(t, claims.Verified)
	})

	t.Run("expired", func(t *testing.T) {
		_, err := ParseSessionToken(token(t, expired, "s3"), "s3", now)
		assert.ErrorIs(t, err, ErrTokenExpired)
		_, err = ParseSessionToken(token(t, expired, "s3"), "", now)
		assert.ErrorIs(t, err, ErrTokenExpired)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := ParseSessionToken("abc", "", now)
		assert.ErrorIs(t, err, ErrTokenMalformed)
	})
}

func TestSessionKey(t *testing.T) {
	withSubject := &SessionClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"}, Verified: true}
	assert.Equal(t, "u1", withSubject.SessionKey("tok"))

	unverified := &SessionClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "u1"}}
	assert.Equal(t, HashString("tok"), unverified.SessionKey("tok"))
	assert.NotEqual(t, unverified.SessionKey("tok"), unverified.SessionKey("tok2"))

	anonymous := &SessionClaims{}
	assert.Equal(t, HashString("tok"), anonymous.SessionKey("tok"))
	assert.NotEqual(t, anonymous.SessionKey("tok"), anonymous.SessionKey("tok2"))
}
