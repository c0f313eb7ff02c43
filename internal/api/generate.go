package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Mastra10/App-Distinta/internal/model"
	"github.com/Mastra10/App-Distinta/internal/normalize"
)

type generateRequest struct {
	Team        string `json:"team" validate:"required,max=100"`
	Match       string `json:"match" validate:"required,max=200"`
	Date        string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Venue       string `json:"venue" validate:"max=200"`
	Competition string `json:"competition" validate:"max=200"`
	Surnames    string `json:"surnames" validate:"required,max=4000"` // one per line
}

// GenerateResponse result of a generation
type GenerateResponse struct {
	GenerationID string        `json:"generationId"`
	Filename     string        `json:"filename"`
	DownloadURL  string        `json:"downloadUrl"`
	ExpiresAt    time.Time     `json:"expiresAt"`
	Report       *model.Report `json:"report"`
	Messages     []string      `json:"messages"`
}

func (r generateRequest) metadata() model.MatchMetadata {
	meta := model.MatchMetadata{
		TeamName:    strings.TrimSpace(r.Team),
		MatchLabel:  strings.TrimSpace(r.Match),
		Venue:       strings.TrimSpace(r.Venue),
		Competition: strings.TrimSpace(r.Competition),
	}
	if r.Date != "" {
		// already checked by the datetime tag
		meta.MatchDate, _ = time.Parse("2006-01-02", r.Date)
	}
	return meta
}

// Generate fills the team sheet and registers a one-shot download link
// POST /api/generate
func (h *Handler) Generate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Richiesta non valida: " + err.Error()})
		return
	}
	if err := h.validate.Validate(req); err != nil {
		respondError(c, err)
		return
	}

	result, err := h.service.Submit(c.Request.Context(), req.metadata(), normalize.SplitLines(req.Surnames))
	if err != nil {
		respondError(c, err)
		return
	}

	token := h.downloads.put(download{
		filename: result.Artifact.Filename,
		data:     result.Artifact.Data,
	}, h.downloadTTL)

	messages := result.Report.Messages(h.service.Layout().MaxPlayers)
	if messages == nil {
		messages = []string{}
	}

	c.JSON(http.StatusOK, GenerateResponse{
		GenerationID: result.ID,
		Filename:     result.Artifact.Filename,
		DownloadURL:  "/api/download/" + token,
		ExpiresAt:    time.Now().Add(h.downloadTTL),
		Report:       result.Report,
		Messages:     messages,
	})
}
