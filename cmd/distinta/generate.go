package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/Mastra10/App-Distinta/internal/app"
	"github.com/Mastra10/App-Distinta/internal/model"
	"github.com/Mastra10/App-Distinta/internal/normalize"
)

var (
	genTeam        string
	genMatch       string
	genDate        string
	genVenue       string
	genCompetition string
	genSurnames    string
	genOut         string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Fill a team sheet from the command line",
	Long: `Fill the team sheet for one match and write the .xlsx file.

Surnames are read one per line from --surnames (a file, or - for stdin).
The diagnostic report (names not found, ambiguous names, truncation) is
printed to stdout.`,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&genTeam, "team", "", "team name")
	f.StringVar(&genMatch, "match", "", "match label, e.g. \"LANGHIRANO - FRAORE\"")
	f.StringVar(&genDate, "date", "", "match date (YYYY-MM-DD)")
	f.StringVar(&genVenue, "venue", "", "venue")
	f.StringVar(&genCompetition, "competition", "", "competition")
	f.StringVar(&genSurnames, "surnames", "", "file with one surname per line, - for stdin")
	f.StringVarP(&genOut, "out", "o", ".", "output file or directory")
	_ = generateCmd.MarkFlagRequired("team")
	_ = generateCmd.MarkFlagRequired("match")
	_ = generateCmd.MarkFlagRequired("surnames")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	meta := model.MatchMetadata{
		TeamName:    genTeam,
		MatchLabel:  genMatch,
		Venue:       genVenue,
		Competition: genCompetition,
	}
	if genDate != "" {
		d, err := time.Parse("2006-01-02", genDate)
		if err != nil {
			return fmt.Errorf("invalid --date %q: expected YYYY-MM-DD", genDate)
		}
		meta.MatchDate = d
	}

	surnames, err := readSurnames(genSurnames, cmd.InOrStdin())
	if err != nil {
		return err
	}

	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.FetchTimeout()+30*time.Second)
	defer cancel()

	res, err := a.Service.Submit(ctx, meta, surnames)
	if err != nil {
		return err
	}

	path := outputPath(genOut, res.Artifact.Filename)
	if err := os.WriteFile(path, res.Artifact.Data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d/%d giocatori inseriti\n", path, res.Report.Matched(), len(res.Report.Resolutions))
	for _, msg := range res.Report.Messages(a.Service.Layout().MaxPlayers) {
		fmt.Fprintln(out, "  -", msg)
	}
	return nil
}

func readSurnames(source string, stdin io.Reader) ([]string, error) {
	var (
		data []byte
		err  error
	)
	if source == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("read surnames: %w", err)
	}
	return normalize.SplitLines(string(data)), nil
}

// outputPath writes into out when it is a directory, otherwise to out itself.
func outputPath(out, filename string) string {
	if out == "" {
		return filename
	}
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		return filepath.Join(out, filename)
	}
	return out
}
