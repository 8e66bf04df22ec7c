package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"farmtotable-be/internal/auth"
	"farmtotable-be/internal/httpctx"
	"farmtotable-be/internal/metrics"
)

// Auth parses the session token when present and stores the identity in
// the request context. Requests without a valid token pass through
// anonymously; guarded routes enforce identity with RequireAuth.
func Auth(tokens *auth.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := auth.ExtractAccessToken(c.Request)
		if tokenStr == "" {
			c.Next()
			return
		}

		claims, err := tokens.Parse(tokenStr)
		if err != nil {
			c.Next()
			return
		}

		ctx := httpctx.WithUser(c.Request.Context(), claims.UserID, claims.Email, claims.Role)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// RequireAuth rejects requests that did not present a valid session token.
func RequireAuth(reg *metrics.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := httpctx.UserID(c.Request.Context()); !ok {
			reg.AuthFailures.Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}
