package vita

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dareyes/vita-cli/internal/service"
	"github.com/spf13/cobra"
)

var (
	reportFrom string
	reportTo   string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Score every day in a date range",
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := parseDateOrNow(reportFrom)
		if err != nil {
			return err
		}
		to := time.Now()
		if reportTo != "" {
			to, err = parseDateOrNow(reportTo)
			if err != nil {
				return err
			}
		}
		return withDB(func(sqldb *sql.DB) error {
			report, err := service.ScoreRange(sqldb, nil, from, to)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Report %s to %s (%d days)\n", report.FromDate, report.ToDate, len(report.Days))
			for _, d := range report.Days {
				fmt.Fprintf(out, "  %s: %d/100\n", d.Date, d.Score.Total)
			}
			fmt.Fprintf(out, "Average: %.1f\n", report.AverageScore)
			if report.BestDay != nil {
				fmt.Fprintf(out, "Best:    %s (%d)\n", report.BestDay.Date, report.BestDay.Score.Total)
			}
			if report.WorstDay != nil {
				fmt.Fprintf(out, "Worst:   %s (%d)\n", report.WorstDay.Date, report.WorstDay.Score.Total)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&reportFrom, "from", "", "Start date YYYY-MM-DD")
	reportCmd.Flags().StringVar(&reportTo, "to", "", "End date YYYY-MM-DD (default today)")
	reportCmd.MarkFlagRequired("from")
}
