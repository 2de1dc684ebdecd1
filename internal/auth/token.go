// Package auth issues and validates the signed bearer tokens used by the
// workforce API. Tokens are self-contained HS256 JWTs carrying the username
// as subject plus role and employee-id claims; nothing is stored server-side
// and a token is only ever invalidated by its own expiry.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/teamforge/workforce-system/internal/core/domain"
)

var (
	ErrTokenMalformed    = errors.New("malformed token")
	ErrSignatureMismatch = errors.New("token signature mismatch")
	ErrTokenExpired      = errors.New("token expired")
)

// Claims is the claim set embedded in every issued token.
type Claims struct {
	Role       string `json:"role"`
	EmployeeID string `json:"id,omitempty"`
	jwt.RegisteredClaims
}

// TokenProvider signs and verifies tokens with a process-wide symmetric secret.
type TokenProvider struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenProvider builds a TokenProvider. A non-positive ttl falls back to
// the default 24 hour lifetime.
func NewTokenProvider(secret string, ttl time.Duration) *TokenProvider {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenProvider{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue mints a compact signed token for the given employee. Signing only
// fails on a malformed key, which is surfaced as an error rather than a panic.
func (p *TokenProvider) Issue(username string, role domain.Role, employeeID string) (string, error) {
	now := p.now().UTC()
	claims := Claims{
		Role:       string(role),
		EmployeeID: employeeID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Parse verifies structure, signature and expiry and returns the claim set.
// The three failure modes come back as distinct sentinel errors so callers
// can log the reason; none of them may ever reach an HTTP response body.
func (p *TokenProvider) Parse(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	claims := &Claims{}
	token, err := parser.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (any, error) {
		return p.secret, nil
	})
	switch {
	case err == nil:
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return nil, ErrSignatureMismatch
	default:
		return nil, ErrTokenMalformed
	}
	if !token.Valid {
		return nil, ErrSignatureMismatch
	}

	// Expiry is compared by hand: a token whose expiration equals "now" is
	// already expired (strict less-than for validity).
	if claims.ExpiresAt == nil || !p.now().Before(claims.ExpiresAt.Time) {
		return nil, ErrTokenExpired
	}

	return claims, nil
}

// IsValid collapses every parse failure to false, leaking no detail.
func (p *TokenProvider) IsValid(tokenStr string) bool {
	_, err := p.Parse(tokenStr)
	return err == nil
}
