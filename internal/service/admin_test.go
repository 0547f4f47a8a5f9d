package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/arundev/portfolio-api/internal/auth"
	"github.com/arundev/portfolio-api/internal/entity"
)

func newAdminService(t *testing.T, st *stubStore, password string) *AdminService {
	t.Helper()
	hash := ""
	if password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("hash password: %v", err)
		}
		hash = string(hashed)
	}
	manager := auth.NewJWTManager("test-secret", time.Hour)
	return NewAdminService(st, manager, "admin", hash)
}

func TestAdminLogin(t *testing.T) {
	svc := newAdminService(t, &stubStore{}, "letmein")

	t.Run("valid credentials", func(t *testing.T) {
		token, err := svc.Login("admin", "letmein")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if token == "" {
			t.Fatalf("expected a token")
		}
	})

	t.Run("wrong password", func(t *testing.T) {
		if _, err := svc.Login("admin", "guess"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})

	t.Run("wrong username", func(t *testing.T) {
		if _, err := svc.Login("root", "letmein"); !errors.Is(err, ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestAdminLoginDisabledWithoutHash(t *testing.T) {
	svc := newAdminService(t, &stubStore{}, "")

	if _, err := svc.Login("admin", "anything"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected login disabled, got %v", err)
	}
}

func TestAdminMessages(t *testing.T) {
	st := &stubStore{messages: []entity.ContactMessage{
		{ID: "1", Name: "First"},
		{ID: "2", Name: "Second"},
	}}
	svc := newAdminService(t, st, "letmein")

	messages, err := svc.Messages(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(messages) != 2 || messages[1].Name != "Second" {
		t.Fatalf("unexpected messages: %+v", messages)
	}
}
