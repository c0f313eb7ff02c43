package distinta

import (
	"time"

	"github.com/Mastra10/App-Distinta/internal/model"
	"github.com/Mastra10/App-Distinta/internal/normalize"
)

func testRoster(players ...model.PlayerRecord) *model.RosterTable {
	return model.NewRosterTable(players, time.Now(), normalize.Surname)
}

func sampleRoster() *model.RosterTable {
	return testRoster(
		model.PlayerRecord{Surname: "ROSSI", GivenName: "MARIO", RegistrationID: "123", DateOfBirth: "10/04/2005"},
		model.PlayerRecord{Surname: "BIANCHI", GivenName: "LUCA", RegistrationID: "456", DateOfBirth: "02/01/2004"},
		model.PlayerRecord{Surname: "BIANCHI", GivenName: "MARCO", RegistrationID: "457", DateOfBirth: "04/03/2006"},
		model.PlayerRecord{Surname: "Verdi", GivenName: "Anna", RegistrationID: "0089", DateOfBirth: "28/02/1999"},
		model.PlayerRecord{Surname: "DE ROSSI", GivenName: "DANIELE", RegistrationID: "16", DateOfBirth: "24/07/1983"},
	)
}

func sampleMeta() model.MatchMetadata {
	return model.MatchMetadata{
		TeamName:   "FRAORE",
		MatchLabel: "LANGHIRANO - FRAORE",
		MatchDate:  time.Date(2026, 10, 18, 0, 0, 0, 0, time.UTC),
		Venue:      "Langhirano",
	}
}

// rowValues reads the three player cells of the i-th row.
func rowValues(s Surface, layout Layout, i int) [3]string {
	nameCell, regCell, dobCell, err := layout.PlayerCells(i)
	if err != nil {
		panic(err)
	}
	var out [3]string
	for j, c := range []string{nameCell, regCell, dobCell} {
		v, err := s.Cell(c)
		if err != nil {
			panic(err)
		}
		out[j] = v
	}
	return out
}
