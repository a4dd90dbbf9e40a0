package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shreya-jain12/JainTriad/pkg/apperror"
	"github.com/shreya-jain12/JainTriad/pkg/utils"
)

func writeUserFile(t *testing.T, lines string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "khataa_users.txt")
	if err := os.WriteFile(path, []byte(lines), 0o644); err != nil {
		t.Fatalf("write user file: %v", err)
	}
	return path
}

func newTestAuthService(t *testing.T, lines string) *AuthService {
	t.Helper()
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(writeUserFile(t, lines), jwtManager)
}

func TestLogin(t *testing.T) {
	svc := newTestAuthService(t, "shreya,secret123\nravi,pa,ss\n")

	tests := []struct {
		name     string
		username string
		password string
		wantErr  bool
	}{
		{name: "valid credentials", username: "shreya", password: "secret123"},
		{name: "password containing comma", username: "ravi", password: "pa,ss"},
		{name: "wrong password", username: "shreya", password: "nope", wantErr: true},
		{name: "unknown user", username: "meena", password: "secret123", wantErr: true},
		{name: "empty credentials", username: "", password: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := svc.Login(context.Background(), &LoginInput{Username: tt.username, Password: tt.password})
			if tt.wantErr {
				if !errors.Is(err, apperror.ErrInvalidCredentials) {
					t.Fatalf("err = %v, want ErrInvalidCredentials", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login: %v", err)
			}
			if out.Username != tt.username {
				t.Errorf("username = %q, want %q", out.Username, tt.username)
			}
			if out.AccessToken == "" || out.RefreshToken == "" {
				t.Errorf("expected a token pair, got %+v", out)
			}
		})
	}
}

func TestLoginSkipsMalformedLines(t *testing.T) {
	svc := newTestAuthService(t, "no-comma-here\n\nshreya,secret123\n")

	if _, err := svc.Login(context.Background(), &LoginInput{Username: "no-comma-here", Password: ""}); err == nil {
		t.Error("malformed line must not authenticate")
	}
	if _, err := svc.Login(context.Background(), &LoginInput{Username: "shreya", Password: "secret123"}); err != nil {
		t.Errorf("valid line after malformed ones: %v", err)
	}
}

func TestLoginMissingUserFile(t *testing.T) {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	svc := NewAuthService(filepath.Join(t.TempDir(), "absent.txt"), jwtManager)

	_, err := svc.Login(context.Background(), &LoginInput{Username: "shreya", Password: "secret123"})
	if !errors.Is(err, apperror.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRefresh(t *testing.T) {
	svc := newTestAuthService(t, "shreya,secret123\n")
	ctx := context.Background()

	out, err := svc.Login(ctx, &LoginInput{Username: "shreya", Password: "secret123"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	refreshed, err := svc.Refresh(ctx, out.RefreshToken)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if refreshed.Username != "shreya" {
		t.Errorf("username = %q, want shreya", refreshed.Username)
	}
	if refreshed.AccessToken == "" || refreshed.RefreshToken == "" {
		t.Errorf("expected a token pair, got %+v", refreshed)
	}

	if _, err := svc.Refresh(ctx, "not-a-token"); !errors.Is(err, apperror.ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
	if _, err := svc.Refresh(ctx, ""); !errors.Is(err, apperror.ErrInvalidToken) {
		t.Errorf("err = %v, want ErrInvalidToken", err)
	}
}
