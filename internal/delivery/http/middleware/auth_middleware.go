package middleware

import (
	"context"
	"net/http"
	"strings"

	"grh-backend/config"
	"grh-backend/internal/delivery/http/response"
	"grh-backend/internal/domain"
	"grh-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

// SessionCookieName is the cookie carrying the session token.
const SessionCookieName = "auth_token"

// AuthMiddleware resolves the session token (Authorization header or cookie)
// to a user row and stores the identity on the request context. The role is
// always read fresh from the database, never trusted from the token.
func AuthMiddleware(cfg *config.Config, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else if cookie, err := c.Cookie(SessionCookieName); err == nil {
			tokenString = cookie
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Non authentifié", nil)
			c.Abort()
			return
		}

		userID, err := auth.ParseSessionToken(cfg.JWTSecret, tokenString)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Non authentifié", nil)
			c.Abort()
			return
		}

		user, err := authUC.GetCurrentUser(c.Request.Context(), userID)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "Utilisateur non trouvé", nil)
			c.Abort()
			return
		}

		ctx := context.WithValue(c.Request.Context(), domain.KeyUserID, user.ID)
		ctx = context.WithValue(ctx, domain.KeyUserEmail, user.Email)
		ctx = context.WithValue(ctx, domain.KeyUserRole, user.Role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
