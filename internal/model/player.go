package model

import "time"

// PlayerRecord one eligible player from the roster source
type PlayerRecord struct {
	Surname        string `json:"surname"`
	GivenName      string `json:"givenName"`
	RegistrationID string `json:"registrationId"`
	DateOfBirth    string `json:"dateOfBirth"` // DD/MM/YYYY
}

// FullName the name written on the team sheet: "{SURNAME} {GivenName}"
func (p PlayerRecord) FullName(normalizedSurname string) string {
	if p.GivenName == "" {
		return normalizedSurname
	}
	return normalizedSurname + " " + p.GivenName
}

// RosterTable ordered roster, indexed (non-uniquely) by normalized surname
type RosterTable struct {
	Players   []PlayerRecord `json:"players"`
	FetchedAt time.Time      `json:"fetchedAt"`

	bySurname map[string][]int
}

// NewRosterTable builds the table and its surname index.
// key must return the normalized surname used for lookups.
func NewRosterTable(players []PlayerRecord, fetchedAt time.Time, key func(string) string) *RosterTable {
	t := &RosterTable{
		Players:   players,
		FetchedAt: fetchedAt,
		bySurname: make(map[string][]int, len(players)),
	}
	for i, p := range players {
		k := key(p.Surname)
		t.bySurname[k] = append(t.bySurname[k], i)
	}
	return t
}

// Lookup returns every record whose normalized surname equals key, in roster order.
func (t *RosterTable) Lookup(key string) []PlayerRecord {
	if t == nil {
		return nil
	}
	idx := t.bySurname[key]
	if len(idx) == 0 {
		return nil
	}
	out := make([]PlayerRecord, 0, len(idx))
	for _, i := range idx {
		out = append(out, t.Players[i])
	}
	return out
}

// Len number of records
func (t *RosterTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.Players)
}
