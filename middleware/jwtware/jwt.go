// Package jwtware guards protected routes: it extracts the bearer token
// from the Authorization header, validates it, and attaches the decoded
// identity to the request context. It never touches the database; a user
// deleted after issuance stays authenticated until the token expires.
package jwtware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
)

// ErrJWTMissingOrMalformed is returned when no usable bearer token is
// present on the request.
var ErrJWTMissingOrMalformed = goerrors.New("missing or malformed JWT", goerrors.CategoryAuth).
	WithCode(goerrors.CodeUnauthorized)

// TokenValidator interface for validating tokens without import cycles.
// This mirrors the TokenService.Validate method from the linkkeep package.
type TokenValidator interface {
	Validate(tokenString string) (AuthClaims, error)
}

// AuthClaims interface for structured claims without import cycles.
// This mirrors the AuthClaims interface from the linkkeep package.
type AuthClaims interface {
	Subject() string
	UserID() (int64, error)
	UserEmail() string
}

type Config struct {
	// Filter skips the middleware when it returns true.
	Filter         func(*fiber.Ctx) bool
	SuccessHandler fiber.Handler
	ErrorHandler   fiber.ErrorHandler
	ContextKey     string
	AuthScheme     string
	// TokenValidator is required for token validation
	TokenValidator TokenValidator

	// ContextEnricher propagates the validated claims to the standard
	// Go context so handlers can read the caller id without fiber types.
	ContextEnricher func(c context.Context, claims AuthClaims) context.Context
}

// New returns a fiber middleware enforcing a valid bearer token.
func New(config ...Config) fiber.Handler {
	cfg := GetDefaultConfig(config...)

	return func(c *fiber.Ctx) error {
		if cfg.Filter != nil && cfg.Filter(c) {
			return c.Next()
		}

		raw, err := TokenFromHeader(c, cfg.AuthScheme)
		if err != nil {
			return cfg.ErrorHandler(c, err)
		}

		claims, err := cfg.TokenValidator.Validate(raw)
		if err != nil {
			return cfg.ErrorHandler(c, err)
		}

		c.Locals(cfg.ContextKey, claims)

		if cfg.ContextEnricher != nil {
			c.SetUserContext(cfg.ContextEnricher(c.UserContext(), claims))
		}

		return cfg.SuccessHandler(c)
	}
}

func GetDefaultConfig(config ...Config) (cfg Config) {
	if len(config) > 0 {
		cfg = config[0]
	}

	if cfg.SuccessHandler == nil {
		cfg.SuccessHandler = func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	if cfg.ErrorHandler == nil {
		cfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
			var richErr *goerrors.Error
			if !goerrors.As(err, &richErr) {
				richErr = goerrors.Wrap(err, goerrors.CategoryAuth, "invalid or expired token").
					WithCode(goerrors.CodeUnauthorized)
			}
			return richErr
		}
	}

	if cfg.TokenValidator == nil {
		panic("jwtware: middleware configuration: TokenValidator is required.")
	}

	if cfg.ContextKey == "" {
		cfg.ContextKey = "user"
	}

	if cfg.AuthScheme == "" {
		cfg.AuthScheme = "Bearer"
	}

	return cfg
}

// TokenFromHeader extracts the raw token from the Authorization header.
func TokenFromHeader(c *fiber.Ctx, authScheme string) (string, error) {
	a := c.Get(fiber.HeaderAuthorization)
	l := len(authScheme)
	if l == 0 {
		return "", ErrJWTMissingOrMalformed
	}

	authScheme = strings.TrimSpace(authScheme)
	if len(a) > l+1 && strings.EqualFold(a[:l], authScheme) {
		token := strings.TrimSpace(a[l:])
		if token != "" {
			return token, nil
		}
	}

	return "", ErrJWTMissingOrMalformed
}

// ClaimsFromLocals reads back the claims a successful guard run stored.
func ClaimsFromLocals(c *fiber.Ctx, key string) (AuthClaims, bool) {
	if key == "" {
		key = "user"
	}
	raw := c.Locals(key)
	if raw == nil {
		return nil, false
	}
	claims, ok := raw.(AuthClaims)
	return claims, ok
}
