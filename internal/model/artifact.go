package model

import (
	"strings"
	"unicode"
)

const defaultArtifactName = "DISTINTA_COMPILATA.xlsx"

// Artifact populated workbook ready for download
type Artifact struct {
	Filename string
	Data     []byte
}

// ArtifactFilename derives the download name from the team name.
func ArtifactFilename(team string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(team)) {
		switch {
		case r <= unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)), r == '-', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	name := strings.Trim(b.String(), "_")
	if name == "" {
		return defaultArtifactName
	}
	return "DISTINTA_" + name + ".xlsx"
}
