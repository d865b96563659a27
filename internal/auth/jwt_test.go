package auth

import (
	"errors"
	"testing"
	"time"
)

func TestJWTGenerateValidate(t *testing.T) {
	manager := NewJWTManager("secret", time.Hour, "issuer")
	jwtToken, err := manager.Generate("42", "open-abc", "admin")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := manager.Validate(jwtToken)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if claims.Subject != "42" || claims.OpenID != "open-abc" || claims.Role != "admin" {
		t.Fatalf("unexpected claims: %#v", claims)
	}
}

func TestJWTGenerateInvalid(t *testing.T) {
	manager := NewJWTManager("secret", time.Hour, "issuer")
	if _, err := manager.Generate("", "open-abc", "admin"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
	if _, err := manager.Generate("42", "", "admin"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestJWTValidateMissing(t *testing.T) {
	manager := NewJWTManager("secret", time.Hour, "issuer")
	if _, err := manager.Validate(""); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected missing token error, got %v", err)
	}
}

func TestJWTValidateWrongSecret(t *testing.T) {
	manager := NewJWTManager("secret", time.Hour, "issuer")
	jwtToken, err := manager.Generate("42", "open-abc", "user")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	other := NewJWTManager("other-secret", time.Hour, "issuer")
	if _, err := other.Validate(jwtToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestJWTValidateExpired(t *testing.T) {
	manager := NewJWTManager("secret", -time.Minute, "issuer")
	jwtToken, err := manager.Generate("42", "open-abc", "user")
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	if _, err := manager.Validate(jwtToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestTokenFromHeader(t *testing.T) {
	if _, err := TokenFromHeader("nope"); !errors.Is(err, ErrMissingToken) {
		t.Fatalf("expected missing token error, got %v", err)
	}
	if token, err := TokenFromHeader("Bearer token"); err != nil || token != "token" {
		t.Fatalf("expected token, got %s err %v", token, err)
	}
	if token, err := TokenFromHeader("bearer token"); err != nil || token != "token" {
		t.Fatalf("expected case-insensitive scheme, got %s err %v", token, err)
	}
}
