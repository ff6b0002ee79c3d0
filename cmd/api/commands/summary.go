package commands

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"license-management/internal/adapters/fixtures"
	mem "license-management/internal/adapters/storage/memory"
	pg "license-management/internal/adapters/storage/postgres"
	"license-management/internal/domain/activity"
	"license-management/internal/domain/licenses"
)

func summaryCmd() *cobra.Command {
	var window int

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print license metrics, records and recent activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if window <= 0 {
				window = cfg.Dashboard.ExpiringWindowDays
			}

			var (
				licenseRepo  licenses.Repository
				activityRepo activity.Repository
			)
			if cfg.UsePostgres() {
				pool, err := pg.Open(ctx, cfg.Database.DSN)
				if err != nil {
					return err
				}
				defer pool.Close()
				licenseRepo = pg.NewLicensesRepo(pool)
				activityRepo = pg.NewActivityRepo(pool)
			} else {
				licenseRepo = mem.NewLicenseRepo()
				activityRepo = mem.NewActivityRepo()
			}

			licSvc := licenses.NewService(licenseRepo, licenses.WithWindowDays(window))
			actSvc := activity.NewService(activityRepo)

			if !cfg.UsePostgres() {
				set, err := fixtures.Load(cfg.Fixtures.Path, time.Now())
				if err != nil {
					return err
				}
				if _, err := fixtures.Seed(ctx, set, licSvc, actSvc); err != nil {
					return err
				}
			}

			rows, m, err := licSvc.Rows(ctx)
			if err != nil {
				return err
			}
			feed, err := actSvc.Feed(ctx)
			if err != nil {
				return err
			}

			return printSummary(cmd.OutOrStdout(), rows, m, feed, licSvc.WindowDays())
		},
	}

	cmd.Flags().IntVar(&window, "window", 0, "expiring-soon window in days (default dashboard.expiring_window_days)")
	return cmd
}

func printSummary(out io.Writer, rows []licenses.Row, m licenses.Metrics, feed []activity.FeedItem, window int) error {
	fmt.Fprintf(out, "Licenses: %d (expiring window %d days)\n", m.Total, window)
	fmt.Fprintf(out, "  active=%d expiring_soon=%d pending=%d suspended=%d expired=%d\n\n",
		m.Active, m.ExpiringSoon, m.Pending, m.Suspended, m.Expired)

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LICENSE NO.\tCOMPANY\tTYPE\tISSUED\tEXPIRES\tSTATUS\tISSUED BY")
	for _, r := range rows {
		expires := r.ExpiryDateLabel
		if r.ExpiringSoon {
			expires += " (!)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.LicenseNumber, r.CompanyName, r.LicenseType, r.IssueDateLabel, expires, r.Status, r.IssuedBy)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out, "\nRecent activity:")
	for _, it := range feed {
		fmt.Fprintf(out, "  %s %s (%s)\n", it.Icon, it.Description, it.Label)
	}
	return nil
}
