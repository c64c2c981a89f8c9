// Command ledger_seed creates and funds wallets listed in a YAML file
// against the store configured for the backend.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/SscSPs/wallet_ledger/internal/core/services"
	"github.com/SscSPs/wallet_ledger/internal/platform/config"
	"github.com/SscSPs/wallet_ledger/internal/platform/storage"
)

func main() {
	path := flag.String("file", "seed.yaml", "path to the YAML seed file")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	data, err := os.ReadFile(*path)
	if err != nil {
		logger.Error("Failed to read seed file", slog.String("path", *path), slog.String("error", err.Error()))
		os.Exit(1)
	}
	seedFile, err := parseSeedFile(data)
	if err != nil {
		logger.Error("Invalid seed file", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()
	repos, err := storage.Open(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to open store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if repos.Close != nil {
		defer repos.Close()
	}

	container := services.NewServiceContainer(cfg, repos)
	seeded, err := seedWallets(ctx, container.Ledger, seedFile, logger)
	if err != nil {
		logger.Error("Seeding stopped", slog.Int("seeded", len(seeded)), slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Seeding complete", slog.Int("wallets", len(seeded)))
}
