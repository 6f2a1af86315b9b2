package auth

import (
	"strings"

	"github.com/Abraxas-365/hirematch/pkg/kernel"
	"github.com/gofiber/fiber/v2"
)

const authContextKey = "auth_context"

// AuthContext is the authenticated caller of a request
type AuthContext struct {
	UserID kernel.UserID
	Email  string
	Scopes []string
}

func (a *AuthContext) HasScope(scope string) bool {
	return HasScope(a.Scopes, scope)
}

// Middleware validates bearer tokens and enforces scopes
type Middleware struct {
	tokens TokenService
}

func NewMiddleware(tokens TokenService) *Middleware {
	return &Middleware{tokens: tokens}
}

// Authenticate requires a valid "Bearer <token>" header
func (m *Middleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return ErrMissingToken()
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return ErrInvalidToken().WithDetail("reason", "invalid authorization format")
		}

		claims, err := m.tokens.ValidateAccessToken(parts[1])
		if err != nil {
			return err
		}

		c.Locals(authContextKey, &AuthContext{
			UserID: claims.UserID,
			Email:  claims.Email,
			Scopes: claims.Scopes,
		})
		return c.Next()
	}
}

// RequireScope rejects callers whose token does not grant scope.
// It must run after Authenticate.
func (m *Middleware) RequireScope(scope string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authCtx, ok := GetAuthContext(c)
		if !ok {
			return ErrMissingToken()
		}
		if !authCtx.HasScope(scope) {
			return ErrInsufficientScope().WithDetail("required_scope", scope)
		}
		return c.Next()
	}
}

// GetAuthContext extracts the caller placed by Authenticate
func GetAuthContext(c *fiber.Ctx) (*AuthContext, bool) {
	authCtx, ok := c.Locals(authContextKey).(*AuthContext)
	return authCtx, ok
}
