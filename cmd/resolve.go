package main

import (
	"context"
	"fmt"

	"terms/internal/api/handler/v1handler"
	"terms/internal/config"
	"terms/internal/seed"
	"terms/pkg/logger"
	"terms/pkg/loose"
	"terms/pkg/resolver"
	"terms/pkg/storage"
	"terms/pkg/storage/memory"

	"github.com/go-faster/jx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// resolveCommand constructs the 'resolve' subcommand that resolves a JSON
// encoded input and prints the result. With --seed the terms are read from a
// seed file into memory instead of the database.
func resolveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "resolve <json>",
		Short: "Resolves a JSON input into terms",
		Example: `  terms resolve 12
  terms resolve '"category"'
  terms resolve '{"taxonomy": "tags", "number": 5}' --seed terms.yml`,
		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			input, err := loose.DecodeJSON([]byte(args[0]))
			if err != nil {
				logger.Fatal(ctx, "could not decode input", zap.Error(err))
			}

			var strg storage.TermStorage
			if seedPath, _ := cmd.Flags().GetString("seed"); seedPath != "" {
				terms, err := seed.Load(seedPath)
				if err != nil {
					logger.Fatal(ctx, "could not load seed file", zap.String("path", seedPath), zap.Error(err))
				}
				strg = memory.New(terms...)
			} else {
				pgsql, closeStrg := getPostgres(ctx, cfg)
				defer closeStrg()
				strg = pgsql
			}

			registry, closeClassMap := setupClassMap(ctx, cfg)
			defer closeClassMap()

			res, err := resolver.New(strg, resolver.Options{Classes: registry}).Resolve(ctx, input)
			if err != nil {
				logger.Fatal(ctx, "could not resolve input", zap.Error(err))
			}

			e := jx.GetEncoder()
			defer jx.PutEncoder(e)
			e.SetIdent(2)
			v1handler.EncodeResult(e, res)
			fmt.Println(e.String()) //nolint: forbidigo
		},
	}

	cmd.Flags().String("seed", "", "Resolve against the terms of this seed file instead of the database")

	return cmd
}
