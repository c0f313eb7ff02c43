package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mastra10/App-Distinta/internal/roster"
)

// StatusResponse system status
type StatusResponse struct {
	AuthRequired  bool        `json:"authRequired"`
	Authenticated bool        `json:"authenticated"`
	MaxPlayers    int         `json:"maxPlayers"`
	Roster        roster.Info `json:"roster"`
}

// GetStatus reports the gate and roster cache state
// GET /api/status
func (h *Handler) GetStatus(c *gin.Context) {
	resp := StatusResponse{
		AuthRequired:  h.gate.enabled(),
		Authenticated: h.gate.authenticated(c),
		MaxPlayers:    h.service.Layout().MaxPlayers,
	}
	if resp.Authenticated && h.roster != nil {
		resp.Roster = h.roster.Info()
	}
	c.JSON(http.StatusOK, resp)
}
