package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTokens(t *testing.T) *TokenService {
	t.Helper()
	s, err := NewTokenService("test-secret", 0)
	require.NoError(t, err)
	return s
}

func TestIssueAndVerify(t *testing.T) {
	s := newTokens(t)

	raw, err := s.Issue(map[string]any{"email": "a@x.com", "name": "Alya"})
	require.NoError(t, err)

	claims, err := s.Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, "Alya", claims.Raw["name"])

	iat, ok := claims.Raw["iat"].(float64)
	require.True(t, ok)
	exp, ok := claims.Raw["exp"].(float64)
	require.True(t, ok)
	assert.Equal(t, DefaultAccessTTL.Seconds(), exp-iat)
}

func TestIssueDoesNotMutatePayload(t *testing.T) {
	s := newTokens(t)
	payload := map[string]any{"email": "a@x.com"}

	_, err := s.Issue(payload)
	require.NoError(t, err)
	assert.Len(t, payload, 1)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	s := newTokens(t)
	past := s.WithClock(func() time.Time { return time.Now().Add(-3 * time.Hour) })

	raw, err := past.Issue(map[string]any{"email": "a@x.com"})
	require.NoError(t, err)

	_, err = s.Verify(raw)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerifyRejectsForeignSecret(t *testing.T) {
	other, err := NewTokenService("other-secret", time.Hour)
	require.NoError(t, err)
	raw, err := other.Issue(map[string]any{"email": "a@x.com"})
	require.NoError(t, err)

	_, err = newTokens(t).Verify(raw)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerifyRejectsTokenWithoutExp(t *testing.T) {
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"email": "a@x.com"}).
		SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = newTokens(t).Verify(raw)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerifyRejectsNoneAlgorithm(t *testing.T) {
	raw, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"email": "a@x.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = newTokens(t).Verify(raw)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	s := newTokens(t)
	for _, raw := range []string{"", "   ", "not-a-token", "a.b.c"} {
		_, err := s.Verify(raw)
		assert.ErrorIs(t, err, ErrUnauthorized, raw)
	}
}

func TestNewTokenServiceRequiresSecret(t *testing.T) {
	_, err := NewTokenService("  ", time.Hour)
	assert.Error(t, err)
}

func TestVerifyUsesServiceClockForExpiry(t *testing.T) {
	issued := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	s := newTokens(t).WithClock(func() time.Time { return issued })

	raw, err := s.Issue(map[string]any{"email": "a@x.com"})
	require.NoError(t, err)

	// jam nyata jauh setelah exp, tapi jam service masih di jendela TTL
	claims, err := s.WithClock(func() time.Time { return issued.Add(119 * time.Minute) }).Verify(raw)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)

	_, err = s.WithClock(func() time.Time { return issued.Add(DefaultAccessTTL + time.Second) }).Verify(raw)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestVerifyRejectsTokenIssuedAfterServiceClock(t *testing.T) {
	issued := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	raw, err := newTokens(t).WithClock(func() time.Time { return issued }).
		Issue(map[string]any{"email": "a@x.com"})
	require.NoError(t, err)

	_, err = newTokens(t).WithClock(func() time.Time { return issued.Add(-time.Hour) }).Verify(raw)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
