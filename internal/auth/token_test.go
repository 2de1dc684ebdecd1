package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/teamforge/workforce-system/internal/core/domain"
)

func TestTokenProvider_IssueAndParse(t *testing.T) {
	p := NewTokenProvider("secret", time.Hour)

	token, err := p.Issue("alice", domain.RolePM, "emp-1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}

	claims, err := p.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if claims.Subject != "alice" {
		t.Fatalf("expected subject alice, got %q", claims.Subject)
	}
	if claims.Role != string(domain.RolePM) {
		t.Fatalf("expected role PM, got %q", claims.Role)
	}
	if claims.EmployeeID != "emp-1" {
		t.Fatalf("expected employee id emp-1, got %q", claims.EmployeeID)
	}
	if claims.IssuedAt == nil || claims.ExpiresAt == nil {
		t.Fatalf("expected iat and exp claims")
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != time.Hour {
		t.Fatalf("expected 1h lifetime, got %v", got)
	}
}

func TestTokenProvider_DefaultTTL(t *testing.T) {
	p := NewTokenProvider("secret", 0)

	token, err := p.Issue("bob", domain.RoleEmployee, "")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	claims, err := p.Parse(token)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if got := claims.ExpiresAt.Sub(claims.IssuedAt.Time); got != 24*time.Hour {
		t.Fatalf("expected 24h default lifetime, got %v", got)
	}
}

func TestTokenProvider_ExpiryIsStrict(t *testing.T) {
	p := NewTokenProvider("secret", time.Hour)
	issued := time.Now().UTC()

	token, err := p.Issue("alice", domain.RoleEmployee, "emp-1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Valid just before expiry, invalid exactly at and after expiry.
	cases := []struct {
		name  string
		now   time.Time
		valid bool
	}{
		{"at issuance", issued.Add(time.Second), true},
		{"just before expiry", issued.Add(time.Hour - time.Second), true},
		{"exactly at expiry", issued.Add(time.Hour), false},
		{"after expiry", issued.Add(2 * time.Hour), false},
	}
	for _, tc := range cases {
		p.now = func() time.Time { return tc.now }
		_, err := p.Parse(token)
		if tc.valid && err != nil {
			t.Errorf("%s: expected valid, got %v", tc.name, err)
		}
		if !tc.valid && !errors.Is(err, ErrTokenExpired) {
			t.Errorf("%s: expected ErrTokenExpired, got %v", tc.name, err)
		}
	}
}

func TestTokenProvider_Malformed(t *testing.T) {
	p := NewTokenProvider("secret", time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b", "a.b.c.d"} {
		if _, err := p.Parse(tok); !errors.Is(err, ErrTokenMalformed) {
			t.Errorf("Parse(%q): expected ErrTokenMalformed, got %v", tok, err)
		}
		if p.IsValid(tok) {
			t.Errorf("IsValid(%q): expected false", tok)
		}
	}
}

func TestTokenProvider_TamperedToken(t *testing.T) {
	p := NewTokenProvider("secret", time.Hour)

	token, err := p.Issue("alice", domain.RoleEmployee, "emp-1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Swap the payload for one claiming the PM role; the signature no
	// longer matches.
	forged, err := NewTokenProvider("secret", time.Hour).Issue("alice", domain.RolePM, "emp-1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	origParts := strings.Split(token, ".")
	forgedParts := strings.Split(forged, ".")
	tampered := origParts[0] + "." + forgedParts[1] + "." + origParts[2]

	if _, err := p.Parse(tampered); !errors.Is(err, ErrSignatureMismatch) {
		t.Fatalf("expected ErrSignatureMismatch, got %v", err)
	}
	if p.IsValid(tampered) {
		t.Fatalf("tampered token must not validate")
	}
}

func TestTokenProvider_WrongSecret(t *testing.T) {
	issuer := NewTokenProvider("secret-a", time.Hour)
	verifier := NewTokenProvider("secret-b", time.Hour)

	token, err := issuer.Issue("alice", domain.RoleEmployee, "emp-1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := verifier.Parse(token); !errors.Is(err, ErrSignatureMismatch) {
		t.Fatalf("expected ErrSignatureMismatch, got %v", err)
	}
}

func TestTokenProvider_RejectsNoneAlgorithm(t *testing.T) {
	p := NewTokenProvider("secret", time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"sub": "alice",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if p.IsValid(token) {
		t.Fatalf("token signed with none algorithm must not validate")
	}
}
