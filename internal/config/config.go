package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port              string
	AllowOrigins      string
	Development       bool
	LogLevel          string
	TZDefault         string
	SessionCookieName string
	SessionTTL        time.Duration
	CookieSecure      bool
	GroqKey           string
	GroqBaseURL       string
	GroqModel         string
	ReqTimeoutSec     int
	AITimeoutSec      int
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func abool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func Load() *Config {
	return &Config{
		Port:              getenv("PORT", "5000"),
		AllowOrigins:      getenv("ALLOW_ORIGINS", "*"),
		Development:       abool("DEV_MODE", false),
		LogLevel:          getenv("LOG_LEVEL", "info"),
		TZDefault:         getenv("TZ_DEFAULT", "Asia/Kolkata"),
		SessionCookieName: getenv("SESSION_COOKIE_NAME", "et_session"),
		SessionTTL:        time.Duration(atoi("SESSION_TTL_HOURS", 24)) * time.Hour,
		CookieSecure:      abool("COOKIE_SECURE", true),
		GroqKey:           getenv("GROQ_API_KEY", ""),
		GroqBaseURL:       getenv("GROQ_BASE_URL", "https://api.groq.com/openai/v1"),
		GroqModel:         getenv("GROQ_LLM_MODEL", "llama-3.3-70b-versatile"),
		ReqTimeoutSec:     atoi("REQUEST_TIMEOUT_SECONDS", 30),
		AITimeoutSec:      atoi("AI_TIMEOUT_SECONDS", 10),
	}
}
