package auth

import (
	"errors"
	"time"

	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is what a validated access token carries
type TokenClaims struct {
	UserID    kernel.UserID
	Email     string
	Scopes    []string
	ExpiresAt time.Time
}

type accessClaims struct {
	Email  string   `json:"email,omitempty"`
	Scopes []string `json:"scopes"`
	jwt.RegisteredClaims
}

// TokenService issues and validates access tokens
type TokenService interface {
	GenerateAccessToken(userID kernel.UserID, email string, scopes []string) (string, error)
	ValidateAccessToken(token string) (*TokenClaims, error)
}

// JWTService signs HS256 access tokens
type JWTService struct {
	secret []byte
	issuer string
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTService(secret, issuer string, ttl time.Duration) *JWTService {
	return &JWTService{
		secret: []byte(secret),
		issuer: issuer,
		ttl:    ttl,
		now:    time.Now,
	}
}

var _ TokenService = (*JWTService)(nil)

func (s *JWTService) GenerateAccessToken(userID kernel.UserID, email string, scopes []string) (string, error) {
	if userID.IsEmpty() {
		return "", ErrTokenGeneration().WithDetail("reason", "empty user id")
	}

	now := s.now()
	claims := accessClaims{
		Email:  email,
		Scopes: scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", ErrRegistry.NewWithCause(CodeTokenGeneration, err)
	}
	return signed, nil
}

func (s *JWTService) ValidateAccessToken(token string) (*TokenClaims, error) {
	var claims accessClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, ErrRegistry.NewWithCause(CodeInvalidToken, err)
	}
	if !parsed.Valid || claims.Subject == "" {
		return nil, ErrRegistry.NewWithCause(CodeInvalidToken, errors.New("token has no subject"))
	}

	out := &TokenClaims{
		UserID: kernel.UserID(claims.Subject),
		Email:  claims.Email,
		Scopes: claims.Scopes,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
