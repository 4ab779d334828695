package v1

import (
	"net/http"
	"strings"

	"github.com/devansh/disaster_management/internal/models"
	"github.com/devansh/disaster_management/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	userContextKey  = "user"
	requestIDKey    = "request_id"
	requestIDHeader = "X-Request-ID"
)

// RequestIDMiddleware - проставляет X-Request-ID (берет из запроса или генерирует)
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// JWTAuthMiddleware - middleware для аутентификации по access-токену в Authorization: Bearer
func JWTAuthMiddleware(users service.UserService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			log.WithField("request_id", c.GetString(requestIDKey)).Warn("Bearer token missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "bearer token required"})
			return
		}

		user, err := users.FindByJwtToken(c.Request.Context(), strings.TrimSpace(token))
		if err != nil {
			status, message := errorStatus(err)
			log.WithError(err).WithField("request_id", c.GetString(requestIDKey)).Warn("Rejected bearer token")
			c.AbortWithStatusJSON(status, gin.H{"error": message})
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// AdminOnly пропускает только пользователей с ролью ADMIN. Ставится после JWTAuthMiddleware.
func AdminOnly(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if !user.IsAdmin() {
			log.WithField("request_id", c.GetString(requestIDKey)).Warn("Non-admin access to admin route")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// currentUser возвращает пользователя, положенного JWTAuthMiddleware, или nil
func currentUser(c *gin.Context) *models.User {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil
	}
	user, _ := v.(*models.User)
	return user
}
