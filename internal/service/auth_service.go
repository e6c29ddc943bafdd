package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/threaded-comments-api/internal/config"
	"github.com/threaded-comments-api/internal/models"
	"github.com/threaded-comments-api/internal/repository"
	"github.com/threaded-comments-api/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService
type authService struct {
	users    repository.UserRepository
	sessions repository.SessionRepository
	cfg      config.AuthConfig
	log      zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(users repository.UserRepository, sessions repository.SessionRepository, cfg config.AuthConfig, log zerolog.Logger) AuthService {
	return &authService{
		users:    users,
		sessions: sessions,
		cfg:      cfg,
		log:      log.With().Str("service", "auth").Logger(),
	}
}

// Register creates a new user and logs them in. The repository enforces
// email/username uniqueness atomically, so retries can never create a
// second account.
func (s *authService) Register(ctx context.Context, email, username, password string) (*models.AuthResponse, error) {
	if errs := validation.ValidateRegistration(email, username, password, s.cfg.MinPasswordLength); len(errs) > 0 {
		return nil, errs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cfg.BcryptCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Email:        email,
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if err == repository.ErrDuplicateEmail || err == repository.ErrDuplicateUsername {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}

	session, err := s.startSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("User registered")

	return &models.AuthResponse{User: user, Token: session.Token}, nil
}

// Login verifies credentials and opens a new session. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *authService) Login(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	session, err := s.startSession(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("User logged in")

	return &models.AuthResponse{User: user, Token: session.Token}, nil
}

// Logout invalidates the session token. Unknown tokens are a no-op.
func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}

// Authenticate resolves a bearer token to its user
func (s *authService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	session, err := s.sessions.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrUnauthorized
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUnauthorized
	}

	return user, nil
}

func (s *authService) startSession(ctx context.Context, userID string) (*models.Session, error) {
	session := &models.Session{
		Token:     uuid.New().String(),
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}
