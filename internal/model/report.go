package model

import "fmt"

// ResolutionStatus outcome of resolving one requested surname
type ResolutionStatus string

const (
	StatusMatched   ResolutionStatus = "matched"
	StatusAmbiguous ResolutionStatus = "ambiguous"
	StatusNotFound  ResolutionStatus = "not_found"
)

// Resolution per-surname result, in request order
type Resolution struct {
	Surname    string           `json:"surname"` // normalized
	Status     ResolutionStatus `json:"status"`
	Player     *PlayerRecord    `json:"player,omitempty"`
	Candidates int              `json:"candidates"`
	Row        int              `json:"row"` // 1-based sheet row
}

// AmbiguousName surname matching more than one roster record
type AmbiguousName struct {
	Surname    string `json:"surname"`
	Candidates int    `json:"candidates"`
}

// Report diagnostics of one generation
type Report struct {
	Requested   int             `json:"requested"`
	Truncated   bool            `json:"truncated"`
	NotFound    []string        `json:"notFound"`
	Ambiguous   []AmbiguousName `json:"ambiguous"`
	Resolutions []Resolution    `json:"resolutions"`
}

// Matched number of rows filled from the roster
func (r *Report) Matched() int {
	n := 0
	for _, res := range r.Resolutions {
		if res.Status == StatusMatched {
			n++
		}
	}
	return n
}

// Clean reports whether nothing needs the user's attention.
func (r *Report) Clean() bool {
	return !r.Truncated && len(r.NotFound) == 0 && len(r.Ambiguous) == 0
}

// Messages renders the diagnostics shown to the user.
func (r *Report) Messages(maxPlayers int) []string {
	var msgs []string
	if r.Truncated {
		msgs = append(msgs, fmt.Sprintf("Inseriti %d cognomi: considerati solo i primi %d", r.Requested, maxPlayers))
	}
	for _, s := range r.NotFound {
		msgs = append(msgs, fmt.Sprintf("%s: non trovato nel database", s))
	}
	for _, a := range r.Ambiguous {
		msgs = append(msgs, fmt.Sprintf("%s: %d giocatori con lo stesso cognome", a.Surname, a.Candidates))
	}
	return msgs
}
