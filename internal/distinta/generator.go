// Package distinta fills the team sheet ("distinta") template with match
// metadata and the players resolved from the roster.
package distinta

import (
	"github.com/Mastra10/App-Distinta/internal/model"
)

// Generator produces populated team sheets from one template and layout.
type Generator struct {
	template *Template
	layout   Layout
}

// NewGenerator creates a generator.
func NewGenerator(tmpl *Template, layout Layout) *Generator {
	return &Generator{template: tmpl, layout: layout}
}

// Layout returns the cell layout in use.
func (g *Generator) Layout() Layout {
	return g.layout
}

// Generate runs the whole procedure against a fresh copy of the template.
// Fatal errors return no artifact; unmatched names only show up in the report.
func (g *Generator) Generate(roster *model.RosterTable, surnames []string, meta model.MatchMetadata) (*model.Artifact, *model.Report, error) {
	req, err := PrepareRequest(surnames, g.layout.MaxPlayers)
	if err != nil {
		return nil, nil, err
	}

	doc, err := g.template.Open()
	if err != nil {
		return nil, nil, err
	}
	defer doc.Close()

	return generate(doc, g.layout, roster, req, meta)
}

func generate(doc Document, layout Layout, roster *model.RosterTable, req Request, meta model.MatchMetadata) (*model.Artifact, *model.Report, error) {
	surface, err := doc.Surface(layout.Sheet)
	if err != nil {
		return nil, nil, err
	}

	resolutions, err := Populate(surface, layout, roster, req.Surnames, meta)
	if err != nil {
		return nil, nil, err
	}

	data, err := doc.Bytes()
	if err != nil {
		return nil, nil, &SerializationError{Err: err}
	}

	artifact := &model.Artifact{
		Filename: model.ArtifactFilename(meta.TeamName),
		Data:     data,
	}
	return artifact, BuildReport(req, resolutions), nil
}

// GenerateDocument runs the procedure against an already opened document,
// e.g. a MemoryDocument.
func GenerateDocument(doc Document, layout Layout, roster *model.RosterTable, surnames []string, meta model.MatchMetadata) (*model.Artifact, *model.Report, error) {
	req, err := PrepareRequest(surnames, layout.MaxPlayers)
	if err != nil {
		return nil, nil, err
	}
	return generate(doc, layout, roster, req, meta)
}
