package service

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func testTokenConfig() TokenConfig {
	return TokenConfig{
		Secret:        "test-secret",
		RefreshSecret: "test-refresh-secret",
		AccessTTL:     time.Hour,
		RefreshTTL:    24 * time.Hour,
	}
}

func TestAdminRegisterAndLogin(t *testing.T) {
	admins := NewAdminService(newTestDB(t), testTokenConfig())

	admin, err := admins.Register(AdminInput{
		FullName: "Victoria Admin",
		Email:    "Admin@VictoriaClean.com.au",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if admin.Email != "admin@victoriaclean.com.au" {
		t.Fatalf("email not normalized: %q", admin.Email)
	}
	if admin.Password == "secret1" {
		t.Fatal("password stored in plaintext")
	}

	logged, pair, err := admins.Login("admin@victoriaclean.com.au", "secret1")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if logged.LastLogin == nil {
		t.Fatal("login should stamp LastLogin")
	}
	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens")
	}

	token, err := jwt.Parse(pair.AccessToken, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("access token does not verify: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if claims["role"] != "admin" {
		t.Fatalf("unexpected role claim %v", claims["role"])
	}
	if sub, _ := claims.GetSubject(); sub == "" {
		t.Fatal("expected subject claim")
	}
}

func TestAdminRegisterDuplicateEmail(t *testing.T) {
	admins := NewAdminService(newTestDB(t), testTokenConfig())

	input := AdminInput{FullName: "A", Email: "a@b.com", Password: "secret1"}
	if _, err := admins.Register(input); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, err := admins.Register(input); !errors.Is(err, ErrAdminExists) {
		t.Fatalf("expected ErrAdminExists, got %v", err)
	}
}

func TestAdminLoginRejectsBadCredentials(t *testing.T) {
	admins := NewAdminService(newTestDB(t), testTokenConfig())

	if _, _, err := admins.Login("ghost@b.com", "whatever"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}

	if _, err := admins.Register(AdminInput{FullName: "A", Email: "a@b.com", Password: "secret1"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, _, err := admins.Login("a@b.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
}

func TestAdminChangePassword(t *testing.T) {
	admins := NewAdminService(newTestDB(t), testTokenConfig())

	admin, err := admins.Register(AdminInput{FullName: "A", Email: "a@b.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := admins.ChangePassword(admin.ID, "wrong", "newsecret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected current-password check, got %v", err)
	}
	if err := admins.ChangePassword(admin.ID, "secret1", "short"); err == nil {
		t.Fatal("expected length validation on new password")
	}
	if err := admins.ChangePassword(admin.ID, "secret1", "newsecret"); err != nil {
		t.Fatalf("change password failed: %v", err)
	}
	if _, _, err := admins.Login("a@b.com", "newsecret"); err != nil {
		t.Fatalf("login with new password failed: %v", err)
	}
}
