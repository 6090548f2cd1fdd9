// Package service implements authentication, visibility scoping, and guarded
// mutations over the org graph repositories.
package service

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	"peopled/internal/domain"
	"peopled/internal/token"
)

// dummyHash is compared against the supplied password when no user matches
// the email, keeping the work factor of the miss path close to the hit path.
// bcrypt hash of a random throwaway string; never a valid credential.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService verifies credentials and issues session tokens.
type AuthService struct {
	users  domain.UserRepository
	tokens *token.Issuer
}

func NewAuthService(users domain.UserRepository, tokens *token.Issuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Authenticate verifies an email/password pair and returns the principal it
// identifies. Malformed input fails with a ValidationError before any lookup;
// an unknown email and a wrong password both fail with the same
// InvalidCredentialsError so callers cannot probe which emails exist.
//
// There is no retry or lockout policy.
func (s *AuthService) Authenticate(ctx context.Context, req domain.LoginRequest) (*domain.Principal, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	u, err := s.users.GetByEmail(ctx, req.Email)
	if err != nil {
		var notFound *domain.NotFoundError
		if errors.As(err, &notFound) {
			// Burn a comparison anyway so the miss path is not observably faster.
			_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(req.Password))
			return nil, domain.ErrInvalidCredentials()
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return nil, domain.ErrInvalidCredentials()
	}

	return &domain.Principal{UserID: u.ID, Role: u.Role, EmployeeID: u.EmployeeID}, nil
}

// Login authenticates and mints a session token carrying the principal's
// claims. The token is trusted until expiry; role changes require re-login.
func (s *AuthService) Login(ctx context.Context, req domain.LoginRequest) (string, *domain.Principal, error) {
	p, err := s.Authenticate(ctx, req)
	if err != nil {
		return "", nil, err
	}
	signed, err := s.tokens.Mint(*p)
	if err != nil {
		return "", nil, err
	}
	return signed, p, nil
}
