package main

import (
	"context"

	root "codescanner"
	"codescanner/internal/config"
	"codescanner/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// migrateCommand constructs the 'migrate' subcommand that applies the capture
// journal migrations to the latest version using goose.
func migrateCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Migrates the capture journal database to the latest version",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			applied, err := strg.Migrate(ctx, root.Migrations, "migrations")
			if err != nil {
				logger.Fatal(ctx, "could not migrate pgsql", zap.Error(err))
			}
			logger.Info(ctx, "journal database is up to date", zap.Int("applied", len(applied)))
		},
	}

	return cmd
}
