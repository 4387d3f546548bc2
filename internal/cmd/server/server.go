// Package server parses server command flags and starts the API runtime.
package server

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/louisbranch/bridge-engine/internal/api"
	"github.com/louisbranch/bridge-engine/internal/bridge/solver"
	entrypoint "github.com/louisbranch/bridge-engine/internal/platform/cmd"
	"github.com/louisbranch/bridge-engine/internal/platform/timeouts"
	"github.com/louisbranch/bridge-engine/internal/storage/sqlite"
)

// Config holds server command configuration.
type Config struct {
	Port      int    `env:"BRIDGE_ENGINE_PORT" envDefault:"8090"`
	Addr      string `env:"BRIDGE_ENGINE_ADDR"`
	DBPath    string `env:"BRIDGE_ENGINE_DB"`
	SolverURL string `env:"BRIDGE_ENGINE_SOLVER_URL"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.IntVar(&cfg.Port, "port", cfg.Port, "The API server port")
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "The API server listen address (overrides -port)")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite database path for board persistence (empty disables)")
	fs.StringVar(&cfg.SolverURL, "solver-url", cfg.SolverURL, "Double-dummy solver service base URL (empty disables)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the rules engine API service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceServer, func(ctx context.Context) error {
		var deps api.Dependencies

		if cfg.SolverURL != "" {
			deps.Solver = solver.NewHTTPSolver(cfg.SolverURL, &http.Client{Timeout: timeouts.SolverRequest})
		}

		if cfg.DBPath != "" {
			store, err := sqlite.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("open board store: %w", err)
			}
			defer func() {
				if err := store.Close(); err != nil {
					log.Printf("close board store: %v", err)
				}
			}()
			deps.Store = store
		}

		addr := cfg.Addr
		if addr == "" {
			addr = fmt.Sprintf(":%d", cfg.Port)
		}

		srv, err := api.NewServer(api.Config{HTTPAddr: addr}, deps)
		if err != nil {
			return err
		}
		return srv.ListenAndServe(ctx)
	})
}
