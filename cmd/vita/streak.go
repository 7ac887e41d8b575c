package vita

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dareyes/vita-cli/internal/engine"
	"github.com/dareyes/vita-cli/internal/service"
	"github.com/spf13/cobra"
)

var streakCmd = &cobra.Command{
	Use:   "streak",
	Short: "Show the current consecutive-day logging streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			dates, err := service.ActiveDates(sqldb)
			if err != nil {
				return err
			}
			streak := engine.CurrentStreak(dates, time.Now())
			switch streak {
			case 0:
				fmt.Fprintln(cmd.OutOrStdout(), "No active streak. Log a meal to start one.")
			case 1:
				fmt.Fprintln(cmd.OutOrStdout(), "Current streak: 1 day")
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "Current streak: %d days\n", streak)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(streakCmd)
}
