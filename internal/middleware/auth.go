package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/promptdeck/promptdeck-backend/internal/common"
	"github.com/promptdeck/promptdeck-backend/internal/domain"
	"github.com/promptdeck/promptdeck-backend/internal/repository"
	"github.com/promptdeck/promptdeck-backend/pkg/jwt"
)

const actorKey = "actor"

// JWTAuth verifies the bearer token and resolves the acting user from
// the database, so role changes and deactivation apply immediately
// instead of at token expiry. Deleted accounts fail authentication.
func JWTAuth(jwtManager *jwt.Manager, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, err := resolveActor(c, jwtManager, users)
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				common.ErrorResponse(c, http.StatusUnauthorized, "Token expired", err)
			} else {
				common.ErrorResponse(c, http.StatusUnauthorized, "Unauthorized", nil)
			}
			c.Abort()
			return
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

// OptionalJWTAuth resolves the actor when a valid token is present and
// continues anonymously otherwise.
func OptionalJWTAuth(jwtManager *jwt.Manager, users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		if actor, err := resolveActor(c, jwtManager, users); err == nil {
			c.Set(actorKey, actor)
		}
		c.Next()
	}
}

func resolveActor(c *gin.Context, jwtManager *jwt.Manager, users repository.UserRepository) (*domain.User, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, common.ErrUnauthorized
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, common.ErrUnauthorized
	}

	claims, err := jwtManager.VerifyAccessToken(parts[1])
	if err != nil {
		return nil, err
	}

	actor, err := users.FindByID(claims.UserID, false)
	if err != nil {
		return nil, common.ErrUnauthorized
	}
	if !actor.IsActive {
		return nil, common.ErrAccountInactive
	}
	return actor, nil
}

// GetActor extracts the authenticated user from context, nil when
// anonymous.
func GetActor(c *gin.Context) *domain.User {
	v, exists := c.Get(actorKey)
	if !exists {
		return nil
	}
	if actor, ok := v.(*domain.User); ok {
		return actor
	}
	return nil
}
