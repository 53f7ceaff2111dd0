package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/yigit/devcamper/internal/app/auth"
	"github.com/yigit/devcamper/internal/app/models"
	"github.com/yigit/devcamper/internal/app/models/dto"
	"github.com/yigit/devcamper/internal/pkg/apperrors"
	jwtauth "github.com/yigit/devcamper/internal/pkg/auth"
)

// Context keys set by JWTAuth
const (
	ContextUserID   = "userID"
	ContextRoleType = "roleType"
)

// AuthMiddleware for authentication and authorization
type AuthMiddleware struct {
	jwtService *jwtauth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *jwtauth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// JWTAuth middleware for JWT token validation
func (m *AuthMiddleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Not authorized to access this route").
				WithDetails("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		tokenString, err := jwtauth.ExtractBearerToken(authHeader)
		if err != nil {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Not authorized to access this route").
				WithDetails("Invalid token format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		claims, err := m.jwtService.ValidateAndExtractClaims(tokenString)
		if err != nil {
			errorCode := dto.ErrorCodeInvalidToken
			errorDetails := "Invalid token"
			if errors.Is(err, apperrors.ErrTokenExpired) {
				errorCode = dto.ErrorCodeExpiredToken
				errorDetails = "Token has expired"
			}

			errorDetail := dto.NewErrorDetail(errorCode, "Not authorized to access this route").
				WithDetails(errorDetails)
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		// ValidateAndExtractClaims guarantees a parseable id
		userID, _ := uuid.Parse(claims.UserID)
		c.Set(ContextUserID, userID)
		c.Set(ContextRoleType, claims.RoleType)

		c.Next()
	}
}

// RoleRequired allows the request when the caller has one of roles
func (m *AuthMiddleware) RoleRequired(roles ...models.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get(ContextRoleType)
		if !exists {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Not authorized to access this route").
				WithDetails("User role not found")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}

		roleStr, _ := role.(string)
		for _, allowed := range roles {
			if roleStr == string(allowed) {
				c.Next()
				return
			}
		}

		errorDetail := dto.NewErrorDetail(dto.ErrorCodeForbidden, "User role "+roleStr+" is not authorized to access this route")
		c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(errorDetail))
	}
}

// ActorFromContext returns the caller set by JWTAuth
func ActorFromContext(c *gin.Context) (auth.Actor, error) {
	rawID, ok := c.Get(ContextUserID)
	if !ok {
		return auth.Actor{}, apperrors.ErrUnauthorized
	}
	userID, ok := rawID.(uuid.UUID)
	if !ok {
		return auth.Actor{}, apperrors.ErrUnauthorized
	}

	role := c.GetString(ContextRoleType)
	return auth.Actor{UserID: userID, Role: models.RoleType(role)}, nil
}
