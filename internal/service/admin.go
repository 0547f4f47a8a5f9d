package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/arundev/portfolio-api/internal/auth"
	"github.com/arundev/portfolio-api/internal/entity"
	"github.com/arundev/portfolio-api/internal/store"
)

// ErrInvalidCredentials indicates a failed admin login attempt.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AdminService authenticates the portfolio operator and exposes the stored
// contact log for review. With no password hash configured, login always
// fails and the admin surface stays mounted but unreachable.
type AdminService struct {
	store        store.Store
	jwt          *auth.JWTManager
	username     string
	passwordHash string
}

// NewAdminService wires the admin surface.
func NewAdminService(st store.Store, jwt *auth.JWTManager, username, passwordHash string) *AdminService {
	return &AdminService{store: st, jwt: jwt, username: username, passwordHash: passwordHash}
}

// Login verifies the credentials and issues a bearer token.
func (s *AdminService) Login(username, password string) (string, error) {
	if s.passwordHash == "" || username != s.username {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.passwordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}
	return s.jwt.GenerateToken(username)
}

// Messages returns the full contact log in append order.
func (s *AdminService) Messages(ctx context.Context) ([]entity.ContactMessage, error) {
	return s.store.List(ctx)
}
