package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/gravadigital/promoter-portal-api/internal/domain/user"
	"github.com/gravadigital/promoter-portal-api/internal/logger"
	"github.com/gravadigital/promoter-portal-api/internal/middleware/auth"
	"github.com/gravadigital/promoter-portal-api/internal/storage/postgres"
)

// ErrInvalidCredentials is returned for any failed login attempt. The
// caller never learns whether the email or the password was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// TokenResult is a successful login.
type TokenResult struct {
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthService issues tokens for admin and customer logins.
type AuthService struct {
	users     postgres.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(users postgres.UserRepository, jwtSecret string, tokenTTL time.Duration) *AuthService {
	return &AuthService{
		users:     users,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

// LoginAdmin verifies an admin password and issues an admin token.
// Emails on the customer allow-list never get admin access, even if an
// admin row with the same address exists.
func (s *AuthService) LoginAdmin(email, password string) (*TokenResult, error) {
	log := logger.Auth()
	email = strings.ToLower(strings.TrimSpace(email))

	isCustomer, err := s.users.IsCustomerEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to check customer list: %w", err)
	}
	if isCustomer {
		log.Warn("Admin login attempted with customer email", "email", email)
		return nil, ErrInvalidCredentials
	}

	admin, err := s.users.GetAdminByEmail(email)
	if err != nil {
		log.Warn("Admin login failed", "email", email)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		log.Warn("Admin login failed", "email", email)
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(admin.ID.String(), admin.Email, auth.RoleAdmin)
}

// LoginCustomer issues a customer token when the email is on the active
// allow-list. Customers carry no password of their own.
func (s *AuthService) LoginCustomer(email string) (*TokenResult, error) {
	log := logger.Auth()
	email = strings.ToLower(strings.TrimSpace(email))

	customer, err := s.users.GetCustomerByEmail(email)
	if err != nil {
		log.Warn("Customer login failed", "email", email)
		return nil, ErrInvalidCredentials
	}
	if !customer.IsActive {
		log.Warn("Customer login with deactivated account", "email", email)
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(customer.ID.String(), customer.Email, auth.RoleCustomer)
}

// RegisterAdmin creates an admin account with a bcrypt password hash.
func (s *AuthService) RegisterAdmin(email, password string) (*user.AdminUser, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if len(password) < 8 {
		return nil, errors.New("password must be at least 8 characters long")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &user.AdminUser{
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.users.CreateAdmin(admin); err != nil {
		return nil, err
	}

	logger.Auth().Info("Admin account created", "email", email)
	return admin, nil
}

func (s *AuthService) issueToken(userID, email, role string) (*TokenResult, error) {
	token, err := auth.NewToken(s.jwtSecret, userID, email, role, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	logger.Auth().Info("Login succeeded", "email", email, "role", role)
	return &TokenResult{
		Token:     token,
		Role:      role,
		Email:     email,
		ExpiresAt: time.Now().Add(s.tokenTTL),
	}, nil
}
