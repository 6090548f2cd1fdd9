// Package token mints and validates the stateless session tokens that carry
// a principal's claims between requests.
package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"peopled/internal/domain"
)

// Issuer signs and validates HS256 session tokens. Claims are embedded at
// login and trusted for the token's lifetime without re-querying the store,
// so a role change only takes effect after re-login.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates an Issuer with the given shared secret and token lifetime.
func NewIssuer(secret string, ttl time.Duration) (*Issuer, error) {
	if secret == "" {
		return nil, fmt.Errorf("JWT secret is required")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Issuer{secret: []byte(secret), ttl: ttl}, nil
}

// Mint signs a token embedding the principal's identity claims.
func (i *Issuer) Mint(p domain.Principal) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  p.UserID,
		"role": string(p.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(i.ttl).Unix(),
	}
	if p.EmployeeID != nil {
		claims["employee_id"] = *p.EmployeeID
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate verifies the signature and expiry of a session token and
// reconstructs the principal from its claims.
func (i *Issuer) Validate(tokenString string) (domain.Principal, error) {
	tok, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method == nil || token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return domain.Principal{}, fmt.Errorf("token verification failed: %w", err)
	}

	raw, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return domain.Principal{}, fmt.Errorf("parse claims: unsupported claim type %T", tok.Claims)
	}

	var p domain.Principal
	if sub, ok := raw["sub"].(string); ok {
		p.UserID = sub
	}
	if role, ok := raw["role"].(string); ok {
		p.Role = domain.Role(role)
	}
	if empID, ok := raw["employee_id"].(string); ok && empID != "" {
		p.EmployeeID = &empID
	}

	if p.UserID == "" || !p.Role.Valid() {
		return domain.Principal{}, fmt.Errorf("token missing identity claims")
	}
	return p, nil
}
