// Package api exposes the team sheet generator over HTTP.
package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Mastra10/App-Distinta/internal/distinta"
	"github.com/Mastra10/App-Distinta/internal/ratelimit"
	"github.com/Mastra10/App-Distinta/internal/roster"
	"github.com/Mastra10/App-Distinta/internal/validation"
)

// RosterInfo reports the roster cache state.
type RosterInfo interface {
	Info() roster.Info
}

// Options tunes the handler.
type Options struct {
	PasswordHash string // bcrypt; empty disables the password gate
	SessionTTL   time.Duration
	DownloadTTL  time.Duration
	LoginRate    float64
	LoginBurst   int
	SecureCookie bool
}

// maxRequestBytes caps JSON request bodies.
const maxRequestBytes = 64 << 10

type download struct {
	filename string
	data     []byte
}

// Handler API handler
type Handler struct {
	service     *distinta.Service
	roster      RosterInfo
	validate    *validation.Validator
	gate        *gate
	downloads   *tokenStore[download]
	downloadTTL time.Duration
}

// NewHandler creates the API handler.
func NewHandler(service *distinta.Service, roster RosterInfo, opts Options) *Handler {
	if opts.DownloadTTL <= 0 {
		opts.DownloadTTL = 10 * time.Minute
	}
	if opts.SessionTTL <= 0 {
		opts.SessionTTL = 12 * time.Hour
	}
	return &Handler{
		service:     service,
		roster:      roster,
		validate:    validation.New(),
		gate:        newGate(opts.PasswordHash, opts.SessionTTL, ratelimit.New(opts.LoginRate, opts.LoginBurst), opts.SecureCookie),
		downloads:   newTokenStore[download](),
		downloadTTL: opts.DownloadTTL,
	}
}

// RegisterRoutes registers the API routes on router.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/status", h.GetStatus)
	router.POST("/login", h.Login)
	router.POST("/logout", h.Logout)

	protected := router.Group("")
	protected.Use(h.gate.require, limitBody(maxRequestBytes))
	{
		protected.POST("/generate", h.Generate)
		protected.GET("/download/:token", h.Download)
	}
}

// limitBody makes reads past n bytes fail, so binding returns 400.
func limitBody(n int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, n)
		}
		c.Next()
	}
}

// PurgeExpired drops expired sessions, download links and idle rate-limit
// entries. Called periodically by the scheduler.
func (h *Handler) PurgeExpired() (sessions, downloads, limiters int) {
	sessions = h.gate.sessions.purgeExpired()
	downloads = h.downloads.purgeExpired()
	limiters = h.gate.limiter.Prune(time.Hour)
	return sessions, downloads, limiters
}
