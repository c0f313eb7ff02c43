// Package app builds the roster cache and generation service from config.
package app

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/Mastra10/App-Distinta/internal/config"
	"github.com/Mastra10/App-Distinta/internal/distinta"
	"github.com/Mastra10/App-Distinta/internal/roster"
)

// App the wired components shared by the server and the CLI
type App struct {
	Config  *config.AppConfig
	Roster  *roster.Cache
	Service *distinta.Service

	closers []io.Closer
}

// New wires the roster source, cache, template and service.
func New(cfg *config.AppConfig) (*App, error) {
	a := &App{Config: cfg}

	source, err := a.rosterSource()
	if err != nil {
		return nil, err
	}
	a.Roster = roster.NewCache(source, cfg.CacheTTL(), nil)

	layout := cfg.Layout()
	tmpl, err := loadTemplate(cfg.Template.Path, layout)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.Service = distinta.NewService(a.Roster, distinta.NewGenerator(tmpl, layout))
	return a, nil
}

func (a *App) rosterSource() (roster.Source, error) {
	rc := a.Config.Roster
	switch rc.Source {
	case config.SourceSQLite:
		src, err := roster.NewSQLiteSource(rc.SQLitePath, rc.SQLiteTable)
		if err != nil {
			return nil, fmt.Errorf("open roster database: %w", err)
		}
		a.closers = append(a.closers, src)
		log.Info().Str("path", rc.SQLitePath).Str("table", rc.SQLiteTable).Msg("Roster source: sqlite")
		return src, nil
	case config.SourceWorkbook:
		log.Info().Str("sheet", rc.Sheet).Bool("remote", roster.IsURL(rc.Location)).Msg("Roster source: workbook")
		return roster.NewWorkbookSource(rc.Location, rc.Sheet, rc.Token, a.Config.FetchTimeout()), nil
	default:
		return nil, fmt.Errorf("unknown roster source %q", rc.Source)
	}
}

// loadTemplate reads the configured template, or builds the default one,
// and checks it against layout.
func loadTemplate(path string, layout distinta.Layout) (*distinta.Template, error) {
	var (
		tmpl *distinta.Template
		err  error
	)
	if path == "" {
		tmpl, err = distinta.DefaultTemplate(layout)
	} else {
		tmpl, err = distinta.LoadTemplate(path)
	}
	if err != nil {
		return nil, err
	}
	if err := tmpl.Check(layout); err != nil {
		return nil, err
	}
	log.Info().Str("template", tmpl.Name).Str("sheet", layout.Sheet).Msg("Team sheet template ready")
	return tmpl, nil
}

// WatchPath the local file backing the roster, or "" when the source is
// remote or watching is disabled.
func (a *App) WatchPath() string {
	rc := a.Config.Roster
	if !rc.Watch {
		return ""
	}
	switch rc.Source {
	case config.SourceSQLite:
		return rc.SQLitePath
	case config.SourceWorkbook:
		if !roster.IsURL(rc.Location) {
			return rc.Location
		}
	}
	return ""
}

// Close releases the roster source.
func (a *App) Close() error {
	var first error
	for _, c := range a.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}
