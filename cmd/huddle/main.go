package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/avdeenkov/huddle/internal/client/cli"
	"github.com/avdeenkov/huddle/internal/client/iocli"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	c := cli.New(iocli.NewStdio(), cli.Options{
		ServerURL: envOr("HUDDLE_SERVER", "http://localhost:8000"),
		DBPath:    envOr("HUDDLE_DB", defaultDBPath()),
		Version:   Version,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
	})

	if err := c.Command().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func envOr(name, fallback string) string {
	if value := os.Getenv(name); value != "" {
		return value
	}
	return fallback
}

// defaultDBPath кладет базу сессии в домашний каталог,
// при его отсутствии — в текущий
func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "huddle.db"
	}
	return filepath.Join(home, ".huddle.db")
}
