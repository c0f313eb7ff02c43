package distinta

import (
	"fmt"

	"github.com/Mastra10/App-Distinta/internal/model"
	"github.com/Mastra10/App-Distinta/internal/normalize"
)

// Request normalized surnames ready for population
type Request struct {
	Surnames  []string
	Requested int // usable surnames before truncation
	Truncated bool
}

// PrepareRequest normalizes the submitted surnames, drops empty entries and
// keeps the first max in input order.
func PrepareRequest(surnames []string, max int) (Request, error) {
	names := normalize.Surnames(surnames)
	if len(names) == 0 {
		return Request{}, ErrEmptyRosterRequest
	}
	req := Request{Surnames: names, Requested: len(names)}
	if max > 0 && len(names) > max {
		req.Surnames = names[:max]
		req.Truncated = true
	}
	return req, nil
}

// Resolve looks one normalized surname up in the roster.
func Resolve(roster *model.RosterTable, surname string) model.Resolution {
	matches := roster.Lookup(surname)
	res := model.Resolution{Surname: surname, Candidates: len(matches)}
	switch len(matches) {
	case 0:
		res.Status = model.StatusNotFound
	case 1:
		p := matches[0]
		res.Status = model.StatusMatched
		res.Player = &p
	default:
		res.Status = model.StatusAmbiguous
	}
	return res
}

// Populate writes metadata, clears the player rows and fills one row per
// surname in order. Rows are strictly positional: ambiguous and missing
// names still take their row.
func Populate(s Surface, layout Layout, roster *model.RosterTable, surnames []string, meta model.MatchMetadata) ([]model.Resolution, error) {
	if len(surnames) > layout.MaxPlayers {
		return nil, fmt.Errorf("%d surnames exceed the %d player rows", len(surnames), layout.MaxPlayers)
	}

	values := map[string]string{
		FieldTeam:        meta.TeamName,
		FieldMatch:       meta.MatchLabel,
		FieldDate:        meta.FormattedDate(),
		FieldVenue:       meta.Venue,
		FieldCompetition: meta.Competition,
	}
	for _, field := range fieldOrder {
		cell, ok := layout.Fields[field]
		if !ok {
			continue
		}
		if err := s.SetCell(cell, values[field]); err != nil {
			return nil, fmt.Errorf("write %s (%s): %w", field, cell, err)
		}
	}

	if err := clearPlayerRows(s, layout); err != nil {
		return nil, err
	}

	resolutions := make([]model.Resolution, 0, len(surnames))
	for i, surname := range surnames {
		nameCell, regCell, dobCell, err := layout.PlayerCells(i)
		if err != nil {
			return nil, err
		}

		res := Resolve(roster, surname)
		res.Row = layout.FirstPlayerRow + i

		var name, reg, dob string
		switch res.Status {
		case model.StatusMatched:
			name = res.Player.FullName(surname)
			reg = res.Player.RegistrationID
			dob = res.Player.DateOfBirth
		case model.StatusAmbiguous:
			name, reg = surname, layout.AmbiguousMarker
		default:
			name, reg = surname, layout.NotFoundMarker
		}

		if err := setRow(s, []string{nameCell, regCell, dobCell}, []string{name, reg, dob}); err != nil {
			return nil, fmt.Errorf("write player row %d: %w", res.Row, err)
		}
		resolutions = append(resolutions, res)
	}
	return resolutions, nil
}

func clearPlayerRows(s Surface, layout Layout) error {
	for i := 0; i < layout.MaxPlayers; i++ {
		nameCell, regCell, dobCell, err := layout.PlayerCells(i)
		if err != nil {
			return err
		}
		if err := setRow(s, []string{nameCell, regCell, dobCell}, []string{"", "", ""}); err != nil {
			return fmt.Errorf("clear player row %d: %w", layout.FirstPlayerRow+i, err)
		}
	}
	return nil
}

func setRow(s Surface, cells, values []string) error {
	for i, c := range cells {
		if err := s.SetCell(c, values[i]); err != nil {
			return err
		}
	}
	return nil
}

// BuildReport summarizes resolutions: one NotFound entry per occurrence,
// ambiguous names with their candidate counts, both in input order.
func BuildReport(req Request, resolutions []model.Resolution) *model.Report {
	report := &model.Report{
		Requested:   req.Requested,
		Truncated:   req.Truncated,
		NotFound:    []string{},
		Ambiguous:   []model.AmbiguousName{},
		Resolutions: resolutions,
	}
	for _, res := range resolutions {
		switch res.Status {
		case model.StatusNotFound:
			report.NotFound = append(report.NotFound, res.Surname)
		case model.StatusAmbiguous:
			report.Ambiguous = append(report.Ambiguous, model.AmbiguousName{Surname: res.Surname, Candidates: res.Candidates})
		}
	}
	return report
}
