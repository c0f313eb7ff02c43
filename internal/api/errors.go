package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Mastra10/App-Distinta/internal/distinta"
	"github.com/Mastra10/App-Distinta/internal/roster"
	"github.com/Mastra10/App-Distinta/internal/validation"
)

// respondError maps domain errors to status codes and user-facing messages.
func respondError(c *gin.Context, err error) {
	var (
		validationErr *validation.Error
		schemaErr     *roster.SchemaError
		dateErr       *roster.DateError
		rowErr        *roster.RowError
		serializeErr  *distinta.SerializationError
	)

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dati non validi", "fields": validationErr.Fields})
	case errors.Is(err, distinta.ErrEmptyRosterRequest):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Inserisci almeno un cognome"})
	case errors.Is(err, roster.ErrSourceUnavailable):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Database giocatori non raggiungibile", "detail": err.Error()})
	case errors.As(err, &schemaErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Database giocatori: colonne mancanti", "missing": schemaErr.Missing})
	case errors.As(err, &dateErr), errors.As(err, &rowErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "Database giocatori non valido", "detail": err.Error()})
	case errors.Is(err, distinta.ErrTemplateStructure):
		log.Error().Err(err).Msg("Template error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Modello della distinta non valido"})
	case errors.As(err, &serializeErr):
		log.Error().Err(err).Msg("Serialization error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossibile generare il file"})
	default:
		log.Error().Err(err).Msg("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Errore interno"})
	}
}
