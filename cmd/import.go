package main

import (
	"context"

	"terms/internal/config"
	"terms/internal/seed"
	"terms/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// importCommand constructs the 'import' subcommand that upserts the terms of
// a YAML seed file into the database.
func importCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <seed.yml>",
		Short: "Imports terms from a YAML seed file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			terms, err := seed.Load(args[0])
			if err != nil {
				logger.Fatal(ctx, "could not load seed file", zap.String("path", args[0]), zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			if _, err = seed.Import(ctx, strg, terms); err != nil {
				logger.Fatal(ctx, "could not import terms", zap.Error(err))
			}
		},
	}

	return cmd
}
