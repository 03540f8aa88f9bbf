// Package testutil holds helpers shared by HTTP tests.
package testutil

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stpnv0/StayBooker/internal/domain"
	"github.com/stretchr/testify/require"
)

// Token signs an HS256 token carrying the claims the auth middleware expects.
func Token(t testing.TB, secret, userID string, role domain.Role, ttl time.Duration) string {
	t.Helper()

	now := time.Now()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"role":    string(role),
		"iat":     now.Unix(),
		"exp":     now.Add(ttl).Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)

	return token
}
