package auth

import (
	"testing"
	"time"
)

func TestGenerateAndValidate(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)

	token, err := ts.Generate(42)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := ts.Validate(token)
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if claims.UserID != 42 {
		t.Errorf("UserID = %d, want 42", claims.UserID)
	}
	if claims.Subject != "42" {
		t.Errorf("Subject = %q, want %q", claims.Subject, "42")
	}
}

func TestValidate_WrongSecret(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)
	other := NewTokenService("other-secret", time.Hour)

	token, err := ts.Generate(1)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := other.Validate(token); err == nil {
		t.Error("expected validation with a different secret to fail")
	}
}

func TestValidate_Expired(t *testing.T) {
	ts := NewTokenService("test-secret", -time.Minute)

	token, err := ts.Generate(1)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, err := ts.Validate(token); err == nil {
		t.Error("expected expired token to fail validation")
	}
}

func TestValidate_Garbage(t *testing.T) {
	ts := NewTokenService("test-secret", time.Hour)
	if _, err := ts.Validate("not.a.token"); err == nil {
		t.Error("expected garbage token to fail validation")
	}
}
