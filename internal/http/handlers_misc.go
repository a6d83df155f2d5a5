package http

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"expense-tracko-api/internal/logger"
)

// AIUnavailableReply replaces the chat answer whenever the AI call fails.
const AIUnavailableReply = "AI service is currently unavailable."

// GET /stats — public counters.
func (s *Server) getStats(c *gin.Context) {
	users, err := s.store.CountUsers(c.Request.Context())
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	visits, err := s.store.CountVisits(c.Request.Context())
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	expenses, err := s.store.CountExpenses(c.Request.Context())
	if err != nil {
		writeLedgerError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"totalUsers":    users,
		"totalVisits":   visits,
		"totalExpenses": expenses,
	})
}

// POST /aichat — free-text reply grounded on the user's all-time records. AI
// failures degrade to a fixed reply, never to a request failure.
func (s *Server) aiChat(c *gin.Context) {
	userID := c.MustGet("userID").(uint)

	var input struct {
		Message string `json:"message"`
	}
	if !bindValidated(c, s.schemas.aichat, &input) {
		return
	}

	profile, err := s.aggregator.Profile(c.Request.Context(), userID)
	if err != nil {
		writeLedgerError(c, err)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), time.Duration(s.cfg.AITimeoutSec)*time.Second)
	defer cancel()

	reply, err := s.ai.ChatReply(ctx, input.Message, *profile)
	if err != nil {
		logger.Get().Warn("ai chat failed", zap.Error(err))
		reply = AIUnavailableReply
	}

	c.JSON(200, gin.H{"reply": reply})
}
