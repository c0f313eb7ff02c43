package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/Mastra10/App-Distinta/internal/ratelimit"
)

const sessionCookie = "distinta_session"

// gate the password check in front of generation and downloads
type gate struct {
	passwordHash []byte
	sessionTTL   time.Duration
	sessions     *tokenStore[time.Time]
	limiter      *ratelimit.KeyedRateLimiter
	secure       bool
}

func newGate(passwordHash string, ttl time.Duration, limiter *ratelimit.KeyedRateLimiter, secure bool) *gate {
	g := &gate{
		sessionTTL: ttl,
		sessions:   newTokenStore[time.Time](),
		limiter:    limiter,
		secure:     secure,
	}
	if passwordHash != "" {
		g.passwordHash = []byte(passwordHash)
	}
	return g
}

func (g *gate) enabled() bool {
	return len(g.passwordHash) > 0
}

func (g *gate) authenticated(c *gin.Context) bool {
	if !g.enabled() {
		return true
	}
	token, err := c.Cookie(sessionCookie)
	if err != nil || token == "" {
		return false
	}
	_, ok := g.sessions.get(token)
	return ok
}

func (g *gate) require(c *gin.Context) {
	if !g.authenticated(c) {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Accesso richiesto"})
		return
	}
	c.Next()
}

type loginRequest struct {
	Password string `json:"password" form:"password"`
}

// Login checks the password and opens a session
// POST /api/login
func (h *Handler) Login(c *gin.Context) {
	g := h.gate
	if !g.enabled() {
		c.JSON(http.StatusOK, gin.H{"authenticated": true})
		return
	}

	if !g.limiter.Allow(c.ClientIP()) {
		log.Warn().Str("client_ip", c.ClientIP()).Msg("Login rate limited")
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Troppi tentativi, riprova tra poco"})
		return
	}

	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Richiesta non valida"})
		return
	}

	if bcrypt.CompareHashAndPassword(g.passwordHash, []byte(req.Password)) != nil {
		log.Info().Str("client_ip", c.ClientIP()).Msg("Login failed")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Password errata"})
		return
	}

	token := g.sessions.put(time.Now(), g.sessionTTL)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, token, int(g.sessionTTL.Seconds()), "/", "", g.secure, true)
	c.JSON(http.StatusOK, gin.H{"authenticated": true})
}

// Logout closes the current session
// POST /api/logout
func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(sessionCookie); err == nil {
		h.gate.sessions.delete(token)
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sessionCookie, "", -1, "/", "", h.gate.secure, true)
	c.JSON(http.StatusOK, gin.H{"authenticated": false})
}
