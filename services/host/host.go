package host

import (
	"fmt"
	"strings"
	"time"

	hostRepo "slotify/database/repository/host"
	"slotify/models"
	"slotify/services/booking"
	"slotify/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AuthError covers failed registration or login attempts.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

// TokenTTL is the lifetime of an issued session token.
const TokenTTL = 24 * time.Hour

// HostService handles host registration and login.
type HostService interface {
	// Register creates an account and returns the host plus a session token.
	Register(email, name, password string) (*models.Host, string, error)
	// Login verifies credentials and returns the host plus a session token.
	Login(email, password string) (*models.Host, string, error)
	// Get returns the host, or a NotFoundError.
	Get(id string) (*models.Host, error)
}

type DefaultHostService struct {
	Repo hostRepo.HostRepository
}

func (s *DefaultHostService) Register(email, name, password string) (*models.Host, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, "", booking.NewValidationError("email", "a valid email is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, "", booking.NewValidationError("name", "name is required")
	}
	if len(password) < 8 {
		return nil, "", booking.NewValidationError("password", "password must be at least 8 characters")
	}

	existing, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to check host email: %w", err)
	}
	if existing != nil {
		return nil, "", &AuthError{Message: "an account with this email already exists"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	h := &models.Host{
		ID:           uuid.New().String(),
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(h); err != nil {
		return nil, "", fmt.Errorf("failed to create host: %w", err)
	}

	token, err := utils.GenerateToken(h.ID, h.Email, TokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	utils.GetLogger().Info("host registered", zap.String("hostID", h.ID))
	return h, token, nil
}

func (s *DefaultHostService) Login(email, password string) (*models.Host, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	h, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load host: %w", err)
	}
	if h == nil {
		return nil, "", &AuthError{Message: "invalid email or password"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(h.PasswordHash), []byte(password)); err != nil {
		return nil, "", &AuthError{Message: "invalid email or password"}
	}

	token, err := utils.GenerateToken(h.ID, h.Email, TokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("failed to issue token: %w", err)
	}
	utils.GetLogger().Info("host logged in", zap.String("hostID", h.ID))
	return h, token, nil
}

func (s *DefaultHostService) Get(id string) (*models.Host, error) {
	h, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to load host: %w", err)
	}
	if h == nil {
		return nil, booking.NewNotFoundError("host", id)
	}
	return h, nil
}
