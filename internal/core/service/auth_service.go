package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/bookmarkd/bookmarkd/internal/core/domain"
	"github.com/bookmarkd/bookmarkd/internal/core/password"
	"github.com/bookmarkd/bookmarkd/internal/core/ports"
	"github.com/bookmarkd/bookmarkd/internal/core/token"
)

// AuthService implements signup and signin. It holds no state of its own;
// the credential store is the only shared resource.
type AuthService struct {
	repo    ports.UserRepository
	issuer  *token.Issuer
	limiter ports.AttemptLimiter
	log     zerolog.Logger
}

// NewAuthService wires the auth orchestrator. limiter may be nil, in which
// case failed signins are not throttled.
func NewAuthService(repo ports.UserRepository, issuer *token.Issuer, limiter ports.AttemptLimiter, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, issuer: issuer, limiter: limiter, log: log}
}

// Signup hashes the password, persists the credential, and returns a signed
// bearer token for the new identity. A uniqueness violation surfaces as
// domain.ErrCredentialsTaken without revealing which constraint collided.
func (s *AuthService) Signup(ctx context.Context, email, plain string) (string, error) {
	if email == "" || plain == "" {
		return "", domain.ErrInvalidCredentials
	}

	hash, err := password.Hash(plain)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.User{
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return "", err
	}

	return s.issuer.Issue(created.ID, created.Email)
}

// Signin verifies the supplied password against the stored hash and returns a
// fresh token. Unknown email and wrong password both yield
// domain.ErrInvalidCredentials; the two cases are indistinguishable.
func (s *AuthService) Signin(ctx context.Context, email, plain string) (string, error) {
	if email == "" || plain == "" {
		return "", domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, email)
		if err != nil {
			// fail open: a limiter outage must not lock out signin
			s.log.Warn().Err(err).Msg("attempt limiter unavailable")
		} else if !allowed {
			return "", domain.ErrTooManyAttempts
		}
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", s.rejectCredentials(ctx, email)
		}
		return "", err
	}

	ok, err := password.Verify(user.PasswordHash, plain)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", s.rejectCredentials(ctx, email)
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("attempt limiter reset failed")
		}
	}

	return s.issuer.Issue(user.ID, user.Email)
}

func (s *AuthService) rejectCredentials(ctx context.Context, email string) error {
	if s.limiter != nil {
		if err := s.limiter.RecordFailure(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("attempt limiter record failed")
		}
	}
	return domain.ErrInvalidCredentials
}
