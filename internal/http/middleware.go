package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"expense-tracko-api/internal/config"
	"expense-tracko-api/internal/logger"
	"expense-tracko-api/internal/models"
)

func cors(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", cfg.AllowOrigins)
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, GET, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}

func logging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Get().Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// visitLogger counts hits on the landing route. Failures are logged and
// swallowed; a broken counter must not break the request.
func (s *Server) visitLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet && c.Request.URL.Path == "/" {
			visit := &models.Visit{IP: c.ClientIP()}
			if err := s.store.CreateVisit(c.Request.Context(), visit); err != nil {
				logger.Get().Warn("failed to log visit", zap.Error(err))
			}
		}
		c.Next()
	}
}

// requireSession resolves the session cookie to an authenticated user and
// stores the user id and username in the request context. Everything behind
// it can trust those values.
func (s *Server) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(s.cfg.SessionCookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(401, gin.H{"success": false, "message": "Unauthorized. Please login."})
			return
		}

		session, err := s.store.SessionByToken(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(500, gin.H{"success": false, "message": "Something went wrong"})
			return
		}
		if session == nil || session.Expired(time.Now()) {
			c.AbortWithStatusJSON(401, gin.H{"success": false, "message": "Unauthorized. Please login."})
			return
		}

		user, err := s.store.UserByID(c.Request.Context(), session.UserID)
		if err != nil || user == nil {
			c.AbortWithStatusJSON(401, gin.H{"success": false, "message": "Unauthorized. Please login."})
			return
		}

		c.Set("userID", user.ID)
		c.Set("username", user.Username)
		c.Next()
	}
}
