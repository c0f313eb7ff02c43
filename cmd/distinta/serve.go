package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/Mastra10/App-Distinta/internal/api"
	"github.com/Mastra10/App-Distinta/internal/app"
	"github.com/Mastra10/App-Distinta/internal/roster"
	"github.com/Mastra10/App-Distinta/internal/scheduler"
	"github.com/Mastra10/App-Distinta/internal/server"
	"github.com/Mastra10/App-Distinta/internal/util"
)

var (
	servePort int
	serveDev  bool
	serveOpen bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web form",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "listen port (ignored when config.toml sets server.port)")
	serveCmd.Flags().BoolVar(&serveDev, "dev", false, "development mode")
	serveCmd.Flags().BoolVar(&serveOpen, "open", false, "open the browser once the server is up")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, info, err := loadConfig()
	if err != nil {
		return err
	}
	if servePort > 0 && !info.PortSpecified {
		cfg.Server.Port = servePort
	}
	if serveDev {
		cfg.Server.DevMode = true
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	a, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	handler := api.NewHandler(a.Service, a.Roster, api.Options{
		PasswordHash: cfg.Auth.PasswordHash,
		SessionTTL:   cfg.SessionTTL(),
		DownloadTTL:  cfg.DownloadTTL(),
		LoginRate:    cfg.Auth.LoginRate,
		LoginBurst:   cfg.Auth.LoginBurst,
	})
	if cfg.Auth.PasswordHash == "" {
		log.Warn().Msg("No password configured: the form is open to anyone who can reach it")
	}

	sched, err := scheduler.New()
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}
	if err := scheduler.RegisterMaintenance(sched, handler); err != nil {
		return err
	}
	if interval := cfg.PrewarmInterval(); interval > 0 {
		if err := scheduler.RegisterRosterPrewarm(sched, a.Roster, interval, cfg.FetchTimeout()); err != nil {
			return err
		}
	}

	var watcher *roster.FileWatcher
	if path := a.WatchPath(); path != "" {
		if watcher, err = roster.NewFileWatcher(path, a.Roster, cfg.FetchTimeout()); err != nil {
			return err
		}
	}

	srv := server.NewServer(cfg.Server.Port, cfg.Server.DevMode, handler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sched.Start()
	defer func() {
		if err := sched.Stop(); err != nil {
			log.Error().Err(err).Msg("Scheduler shutdown failed")
		}
	}()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Run(ctx, cfg.ShutdownTimeout())
	})
	if watcher != nil {
		g.Go(func() error {
			if err := watcher.Run(ctx); err != nil {
				// the cache TTL still applies without the watcher
				log.Warn().Err(err).Msg("Roster file watcher stopped")
			}
			return nil
		})
	}

	url := util.LocalURL(cfg.Server.Port)
	if serveOpen && !cfg.Server.DevMode {
		if err := util.OpenBrowser(url); err != nil {
			log.Warn().Err(err).Str("url", url).Msg("Could not open the browser")
		}
	}
	log.Info().Str("url", url).Msg("Compilatore Distinta ready, press Ctrl+C to stop")

	if err := g.Wait(); err != nil {
		return err
	}
	log.Info().Msg("Server stopped")
	return nil
}
