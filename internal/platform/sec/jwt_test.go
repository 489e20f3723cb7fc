// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"crypto/rand"
	"crypto/rsa"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/feedback/internal/platform/sec"
)

func signToken(t *testing.T, key *rsa.PrivateKey, issuer string, expiresAt time.Time) string {
	t.Helper()

	claims := sec.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-123",
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID:   "user-123",
		Username: "staff",
		Role:     "staff",
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(key)
	require.NoError(t, err)
	return signed
}

func TestTokenVerifier_VerifyToken(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	otherKey, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	verifier := sec.NewTokenVerifierFromKey(&key.PublicKey, "feedback.test")

	t.Run("valid_token", func(t *testing.T) {
		claims, err := verifier.VerifyToken(signToken(t, key, "feedback.test", time.Now().Add(time.Hour)))
		require.NoError(t, err)
		assert.Equal(t, "user-123", claims.UserID)
		assert.Equal(t, "staff", claims.Username)
	})

	t.Run("expired_token", func(t *testing.T) {
		_, err := verifier.VerifyToken(signToken(t, key, "feedback.test", time.Now().Add(-time.Minute)))
		assert.Error(t, err)
	})

	t.Run("wrong_issuer", func(t *testing.T) {
		_, err := verifier.VerifyToken(signToken(t, key, "someone.else", time.Now().Add(time.Hour)))
		assert.Error(t, err)
	})

	t.Run("wrong_key", func(t *testing.T) {
		_, err := verifier.VerifyToken(signToken(t, otherKey, "feedback.test", time.Now().Add(time.Hour)))
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := verifier.VerifyToken("not-a-jwt")
		assert.Error(t, err)
	})
}
