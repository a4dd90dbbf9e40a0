package utils

import (
	"testing"
	"time"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	token, err := m.GenerateAccessToken("shreya")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	claims, err := m.ValidateAccessToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Username != "shreya" {
		t.Errorf("username = %q, want shreya", claims.Username)
	}
	if claims.Subject != "shreya" {
		t.Errorf("subject = %q, want shreya", claims.Subject)
	}
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, 24*time.Hour)

	token, err := m.GenerateRefreshToken("shreya")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	username, err := m.ValidateRefreshToken(token)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if username != "shreya" {
		t.Errorf("username = %q, want shreya", username)
	}
}

func TestValidateRejectsWrongSecret(t *testing.T) {
	issuer := NewJWTManager("secret-a", time.Hour, 24*time.Hour)
	verifier := NewJWTManager("secret-b", time.Hour, 24*time.Hour)

	token, err := issuer.GenerateAccessToken("shreya")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := verifier.ValidateAccessToken(token); err == nil {
		t.Error("expected validation failure with wrong secret")
	}
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	m := NewJWTManager("test-secret", -time.Minute, -time.Minute)

	access, err := m.GenerateAccessToken("shreya")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := m.ValidateAccessToken(access); err == nil {
		t.Error("expected expired access token to fail validation")
	}

	refresh, err := m.GenerateRefreshToken("shreya")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if _, err := m.ValidateRefreshToken(refresh); err == nil {
		t.Error("expected expired refresh token to fail validation")
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	m := NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	if _, err := m.ValidateAccessToken("not.a.token"); err == nil {
		t.Error("expected garbage access token to fail")
	}
	if _, err := m.ValidateRefreshToken(""); err == nil {
		t.Error("expected empty refresh token to fail")
	}
}
