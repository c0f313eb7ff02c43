package model

import "time"

// MatchMetadata free-form match data written into the sheet header
type MatchMetadata struct {
	TeamName    string    `json:"teamName"`
	MatchLabel  string    `json:"matchLabel"`
	MatchDate   time.Time `json:"matchDate"`
	Venue       string    `json:"venue"`
	Competition string    `json:"competition"`
}

// FormattedDate returns the match date as DD/MM/YYYY, or "" when unset.
func (m MatchMetadata) FormattedDate() string {
	if m.MatchDate.IsZero() {
		return ""
	}
	return m.MatchDate.Format("02/01/2006")
}
