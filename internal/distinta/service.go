package distinta

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Mastra10/App-Distinta/internal/model"
	"github.com/Mastra10/App-Distinta/internal/normalize"
)

// RosterProvider supplies the current roster table (normally a roster.Cache).
type RosterProvider interface {
	Get(ctx context.Context) (*model.RosterTable, error)
}

// Result of one submitted generation
type Result struct {
	ID       string
	Artifact *model.Artifact
	Report   *model.Report
}

// Service combines the roster cache and the generator; it is what the
// HTTP API and the CLI call.
type Service struct {
	roster    RosterProvider
	generator *Generator
}

// NewService creates the generation service.
func NewService(roster RosterProvider, generator *Generator) *Service {
	return &Service{roster: roster, generator: generator}
}

// Layout returns the generator layout.
func (s *Service) Layout() Layout {
	return s.generator.Layout()
}

// Submit validates the request, loads the roster and generates the sheet.
// An empty request fails before the roster is fetched.
func (s *Service) Submit(ctx context.Context, meta model.MatchMetadata, surnames []string) (*Result, error) {
	id := uuid.New().String()
	logger := log.With().Str("generation_id", id).Str("team", meta.TeamName).Logger()

	if len(normalize.Surnames(surnames)) == 0 {
		logger.Info().Msg("Generation rejected: no surnames")
		return nil, ErrEmptyRosterRequest
	}

	start := time.Now()
	roster, err := s.roster.Get(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("Roster unavailable")
		return nil, err
	}

	artifact, report, err := s.generator.Generate(roster, surnames, meta)
	if err != nil {
		logger.Error().Err(err).Msg("Generation failed")
		return nil, err
	}

	logger.Info().
		Int("requested", report.Requested).
		Int("matched", report.Matched()).
		Int("not_found", len(report.NotFound)).
		Int("ambiguous", len(report.Ambiguous)).
		Bool("truncated", report.Truncated).
		Dur("elapsed", time.Since(start)).
		Msg("Team sheet generated")

	return &Result{ID: id, Artifact: artifact, Report: report}, nil
}
