package httpapi

import (
	"time"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

// authRequired resolves the Authorization header into an account and
// stores it in the request context. The client always sees a uniform 401;
// the underlying reason goes to the log only.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		user, err := s.users.Authenticate(c.Request.Context(), header, time.Now())
		if err != nil {
			s.logger.Debug(c.Request.Context(), "authentication failed", "reason", err.Error(), "path", c.Request.URL.Path)
			respondError(c, err)
			return
		}
		c.Set(currentUserKey, user)
		c.Next()
	}
}

// requestLogger logs one line per request after it completes.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info(c.Request.Context(), "request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
