package middleware

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/sahilchouksey/unimatch-api/utils/auth"
	"github.com/sahilchouksey/unimatch-api/utils/logger"
	"github.com/sahilchouksey/unimatch-api/utils/response"
)

const (
	localUserID = "user_id"
	localEmail  = "user_email"
	localRole   = "user_role"
	localClaims = "claims"
)

// StudentProvisioner creates the student profile the first time a token is seen
type StudentProvisioner interface {
	EnsureStudent(ctx context.Context, id uint, email string) error
}

// AuthMiddleware verifies identity tokens issued by the hosted identity service
type AuthMiddleware struct {
	jwtManager *auth.JWTManager
	students   StudentProvisioner
	log        zerolog.Logger
}

// NewAuthMiddleware creates the middleware. students may be nil.
func NewAuthMiddleware(jwtManager *auth.JWTManager, students StudentProvisioner) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		students:   students,
		log:        logger.With("auth"),
	}
}

func bearerToken(c *fiber.Ctx) (string, bool) {
	parts := strings.SplitN(c.Get(fiber.HeaderAuthorization), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

func (m *AuthMiddleware) authenticate(c *fiber.Ctx) (*auth.Claims, error) {
	if c.Get(fiber.HeaderAuthorization) == "" {
		return nil, response.Unauthorized(c, "Missing authorization token")
	}
	token, ok := bearerToken(c)
	if !ok {
		return nil, response.Unauthorized(c, "Invalid authorization format")
	}

	claims, err := m.jwtManager.Verify(token)
	if err != nil {
		if err == auth.ErrExpiredToken {
			return nil, response.Unauthorized(c, "Token has expired")
		}
		return nil, response.Unauthorized(c, "Invalid token")
	}

	c.Locals(localUserID, claims.UserID)
	c.Locals(localEmail, claims.Email)
	c.Locals(localRole, claims.Role)
	c.Locals(localClaims, claims)
	return claims, nil
}

// Required accepts any valid token and makes sure the student profile exists
func (m *AuthMiddleware) Required() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := m.authenticate(c)
		if claims == nil {
			return err
		}

		if m.students != nil && claims.Role == auth.RoleStudent {
			if err := m.students.EnsureStudent(c.UserContext(), claims.UserID, claims.Email); err != nil {
				m.log.Error().Err(err).Uint("user_id", claims.UserID).Msg("Failed to provision student")
				return response.ServiceUnavailable(c, "Failed to load student profile")
			}
		}
		return c.Next()
	}
}

// RequireAdmin accepts only tokens carrying the admin role
func (m *AuthMiddleware) RequireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := m.authenticate(c)
		if claims == nil {
			return err
		}
		if claims.Role != auth.RoleAdmin {
			return response.Forbidden(c, "Admin access required")
		}
		return c.Next()
	}
}

// GetUserID extracts the authenticated user id from context
func GetUserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals(localUserID).(uint)
	return id, ok && id != 0
}

func GetUserRole(c *fiber.Ctx) (string, bool) {
	role, ok := c.Locals(localRole).(string)
	return role, ok
}

func GetClaims(c *fiber.Ctx) (*auth.Claims, bool) {
	claims, ok := c.Locals(localClaims).(*auth.Claims)
	return claims, ok
}
