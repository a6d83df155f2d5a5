package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"expense-tracko-api/internal/models"
)

// POST /auth/register
func (s *Server) register(c *gin.Context) {
	var input struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !bindValidated(c, s.schemas.register, &input) {
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := s.store.UserByEmail(c.Request.Context(), email)
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	if existing != nil {
		c.JSON(400, gin.H{"success": false, "message": "User already exists"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		writeLedgerError(c, err)
		return
	}

	user := &models.User{
		Username:     strings.TrimSpace(input.Username),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.store.CreateUser(c.Request.Context(), user); err != nil {
		writeLedgerError(c, err)
		return
	}

	if err := s.openSession(c, user); err != nil {
		writeLedgerError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success":  true,
		"message":  "Registered successfully",
		"userId":   user.ID,
		"username": user.Username,
	})
}

// POST /auth/login
func (s *Server) login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if !bindValidated(c, s.schemas.login, &input) {
		return
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := s.store.UserByEmail(c.Request.Context(), email)
	if err != nil {
		writeLedgerError(c, err)
		return
	}
	if user == nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	if err := s.openSession(c, user); err != nil {
		writeLedgerError(c, err)
		return
	}

	c.JSON(200, gin.H{
		"success":  true,
		"message":  "Login successful",
		"userId":   user.ID,
		"username": user.Username,
	})
}

// POST /auth/logout
func (s *Server) logout(c *gin.Context) {
	if token, err := c.Cookie(s.cfg.SessionCookieName); err == nil && token != "" {
		if err := s.store.DeleteSession(c.Request.Context(), token); err != nil {
			writeLedgerError(c, err)
			return
		}
	}
	s.writeSessionCookie(c, "", -1)
	c.JSON(200, gin.H{"success": true, "message": "Logged out successfully"})
}

func (s *Server) openSession(c *gin.Context, user *models.User) error {
	session := &models.Session{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.cfg.SessionTTL),
	}
	if err := s.store.CreateSession(c.Request.Context(), session); err != nil {
		return err
	}
	s.writeSessionCookie(c, session.Token, int(s.cfg.SessionTTL.Seconds()))
	return nil
}

// writeSessionCookie is the single place cookie attributes are chosen, so
// setting and clearing always agree; a clear with different attributes is
// ignored by browsers.
func (s *Server) writeSessionCookie(c *gin.Context, value string, maxAge int) {
	sameSite := http.SameSiteNoneMode
	if !s.cfg.CookieSecure {
		sameSite = http.SameSiteLaxMode
	}
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     s.cfg.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   s.cfg.CookieSecure,
		SameSite: sameSite,
	})
}
