package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/teamforge/workforce-system/internal/api/metrics"
	"github.com/teamforge/workforce-system/internal/core/domain"
	"github.com/teamforge/workforce-system/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	repo    ports.EmployeeRepository
	tokens  ports.TokenIssuer
	limiter ports.LoginLimiter
	logger  zerolog.Logger
}

func NewAuthService(repo ports.EmployeeRepository, tokens ports.TokenIssuer, limiter ports.LoginLimiter, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, tokens: tokens, limiter: limiter, logger: logger}
}

// Register creates a new employee account. The plaintext password is hashed
// with bcrypt before it ever reaches the repository and is never logged.
// A duplicate username yields domain.ErrUserExists; registration never
// returns a token, a subsequent login is required.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.Employee, error) {
	if input.Username == "" || input.Password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	role := domain.RoleEmployee
	if input.Role != "" {
		parsed, err := domain.ParseRole(input.Role)
		if err != nil {
			return nil, err
		}
		role = parsed
	}

	classification := domain.ClassificationJuniorDeveloper
	if input.Classification != "" {
		parsed, err := domain.ParseClassification(input.Classification)
		if err != nil {
			return nil, err
		}
		classification = parsed
	}

	if _, err := s.repo.FindByUsername(ctx, input.Username); err == nil {
		metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrEmployeeNotFound) {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		return nil, err
	}

	now := time.Now().UTC()
	employee := &domain.Employee{
		Name:           input.Name,
		Username:       input.Username,
		PasswordHash:   string(hash),
		Role:           role,
		Classification: classification,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Create(ctx, employee)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.RegistrationsTotal.WithLabelValues("conflict").Inc()
		} else {
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		}
		return nil, err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	s.logger.Info().Str("username", created.Username).Str("role", string(created.Role)).Msg("employee registered")
	return created, nil
}

// Login authenticates an employee and returns a signed token. An unknown
// username, a wrong password and any unexpected failure all collapse to
// domain.ErrInvalidCredentials so callers cannot enumerate usernames; the
// real cause is logged server-side only.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return "", domain.ErrInvalidCredentials
	}

	if err := s.limiter.Allow(ctx, username); err != nil {
		if errors.Is(err, domain.ErrTooManyAttempts) {
			metrics.LoginsTotal.WithLabelValues("locked").Inc()
			return "", err
		}
		// Limiter backend trouble fails open; the attempt proceeds.
		s.logger.Warn().Err(err).Msg("login limiter unavailable")
	}

	employee, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, domain.ErrEmployeeNotFound) {
			s.logger.Error().Err(err).Msg("employee lookup failed during login")
		}
		s.recordFailure(ctx, username)
		return "", domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(employee.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, username)
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(employee.Username, employee.Role, employee.ID)
	if err != nil {
		s.logger.Error().Err(err).Msg("token issuance failed")
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return "", domain.ErrInvalidCredentials
	}

	if err := s.limiter.Reset(ctx, username); err != nil {
		s.logger.Warn().Err(err).Msg("login limiter reset failed")
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	metrics.TokensIssuedTotal.Inc()
	s.logger.Info().Str("username", username).Msg("login successful")
	return token, nil
}

func (s *AuthService) recordFailure(ctx context.Context, username string) {
	metrics.LoginsTotal.WithLabelValues("invalid").Inc()
	if err := s.limiter.RecordFailure(ctx, username); err != nil {
		s.logger.Warn().Err(err).Msg("login limiter record failed")
	}
}
