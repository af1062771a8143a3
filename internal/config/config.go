// Package config loads command settings from the environment, then lets
// command-line flags override them.
package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server configures cmd/server.
type Server struct {
	GRPCPort       int           `env:"TICTACTOE_GRPC_PORT" envDefault:"50051"`
	HTTPPort       int           `env:"TICTACTOE_HTTP_PORT" envDefault:"8080"`
	Shards         int           `env:"TICTACTOE_SHARDS" envDefault:"64"`
	SessionTTL     time.Duration `env:"TICTACTOE_SESSION_TTL" envDefault:"30m"`
	ReapInterval   time.Duration `env:"TICTACTOE_REAP_INTERVAL" envDefault:"1m"`
	ShutdownPeriod time.Duration `env:"TICTACTOE_SHUTDOWN_PERIOD" envDefault:"10s"`
}

// Client configures cmd/play.
type Client struct {
	// Addr is the gRPC server address; empty plays locally.
	Addr   string `env:"TICTACTOE_ADDR"`
	GameID string `env:"TICTACTOE_GAME_ID"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadServer reads the environment and then flags from args.
func LoadServer(fs *flag.FlagSet, args []string) (Server, error) {
	var cfg Server
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}

	fs.IntVar(&cfg.GRPCPort, "grpc-port", cfg.GRPCPort, "The gRPC server port")
	fs.IntVar(&cfg.HTTPPort, "http-port", cfg.HTTPPort, "The HTTP/REST server port")
	fs.IntVar(&cfg.Shards, "shards", cfg.Shards, "Number of shards for the game store (higher = better concurrency)")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "Delete games idle for longer than this")
	fs.DurationVar(&cfg.ReapInterval, "reap-interval", cfg.ReapInterval, "How often to look for idle games")
	fs.DurationVar(&cfg.ShutdownPeriod, "shutdown-period", cfg.ShutdownPeriod, "Grace period for in-flight requests on shutdown")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

// Validate checks the server settings.
func (c Server) Validate() error {
	var errs []error
	if c.GRPCPort < 0 || c.GRPCPort > 65535 {
		errs = append(errs, fmt.Errorf("grpc port %d out of range", c.GRPCPort))
	}
	if c.HTTPPort < 0 || c.HTTPPort > 65535 {
		errs = append(errs, fmt.Errorf("http port %d out of range", c.HTTPPort))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("session ttl must be positive"))
	}
	if c.ReapInterval <= 0 {
		errs = append(errs, errors.New("reap interval must be positive"))
	}
	return errors.Join(errs...)
}

// LoadClient reads the environment and then flags from args.
func LoadClient(fs *flag.FlagSet, args []string) (Client, error) {
	var cfg Client
	if err := ParseEnv(&cfg); err != nil {
		return cfg, err
	}

	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "gRPC server address (empty plays locally)")
	fs.StringVar(&cfg.GameID, "game", cfg.GameID, "Resume an existing remote game by ID")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	return cfg, nil
}
