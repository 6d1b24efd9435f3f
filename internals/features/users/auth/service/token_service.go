// internals/features/users/auth/service/token_service.go
package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// ErrUnauthorized: signature salah, algoritma salah, atau token expired.
var ErrUnauthorized = errors.New("unauthorized")

const DefaultAccessTTL = 2 * time.Hour

// Claims adalah payload token yang sudah diverifikasi.
type Claims struct {
	Email string
	Raw   jwt.MapClaims
}

// TokenService stateless: tidak ada refresh, tidak ada blacklist.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	secret = strings.TrimSpace(secret)
	if secret == "" {
		return nil, errors.New("token service: empty secret")
	}
	if ttl <= 0 {
		ttl = DefaultAccessTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// WithClock dipakai test untuk menggeser waktu penerbitan.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	cp := *s
	cp.now = now
	return &cp
}

// Issue menandatangani identitas user apa adanya + iat/exp.
func (s *TokenService) Issue(payload map[string]any) (string, error) {
	now := s.now()
	claims := jwt.MapClaims{}
	for k, v := range payload {
		claims[k] = v
	}
	claims["iat"] = now.Unix()
	claims["exp"] = now.Add(s.ttl).Unix()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify mengembalikan claims atau ErrUnauthorized.
func (s *TokenService) Verify(raw string) (*Claims, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrUnauthorized
	}
	claims := jwt.MapClaims{}
	// validasi waktu dikerjakan sendiri dengan s.now, bukan jam milik parser
	parser := jwt.NewParser(jwt.WithoutClaimsValidation())
	tok, err := parser.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	now := s.now().Unix()
	// token tanpa exp ditolak
	if !claims.VerifyExpiresAt(now, true) {
		return nil, fmt.Errorf("%w: missing or expired exp", ErrUnauthorized)
	}
	if !claims.VerifyIssuedAt(now, false) || !claims.VerifyNotBefore(now, false) {
		return nil, fmt.Errorf("%w: token used before issued", ErrUnauthorized)
	}

	email, _ := claims["email"].(string)
	return &Claims{Email: email, Raw: claims}, nil
}
