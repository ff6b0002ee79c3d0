package commands

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"license-management/internal/adapters/fixtures"
	pg "license-management/internal/adapters/storage/postgres"
	"license-management/internal/domain/activity"
	"license-management/internal/domain/licenses"
	"license-management/internal/platform/logger"
)

func seedCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the postgres schema and load fixtures into it",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cfg.UsePostgres() {
				return errors.New("seed: database.dsn (DB_DSN) is required")
			}
			if path == "" {
				path = cfg.Fixtures.Path
			}

			ctx := cmd.Context()
			pool, err := pg.Open(ctx, cfg.Database.DSN)
			if err != nil {
				return err
			}
			defer pool.Close()

			if err := pg.Migrate(ctx, cfg.Database.DSN); err != nil {
				return err
			}

			set, err := fixtures.Load(path, time.Now())
			if err != nil {
				return err
			}

			n, err := fixtures.Seed(ctx, set,
				licenses.NewService(pg.NewLicensesRepo(pool)),
				activity.NewService(pg.NewActivityRepo(pool)),
			)
			if err != nil {
				return err
			}

			log.Info("fixtures loaded", logger.Fields{
				"inserted": n,
				"skipped":  len(set.Licenses) + len(set.Activities) - n,
			})
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "fixtures", "", "fixtures YAML (default embedded mock data)")
	return cmd
}
