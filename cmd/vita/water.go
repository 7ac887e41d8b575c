package vita

import (
	"database/sql"
	"fmt"

	"github.com/dareyes/vita-cli/internal/service"
	"github.com/spf13/cobra"
)

var waterCmd = &cobra.Command{
	Use:   "water",
	Short: "Log and review water intake",
}

var (
	waterAmount   int
	waterDate     string
	waterListDate string
	waterListMax  int
)

var waterAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log water intake",
	RunE: func(cmd *cobra.Command, args []string) error {
		consumed, err := parseDateOrNow(waterDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.AddWater(sqldb, service.AddWaterInput{
				AmountMl:   waterAmount,
				ConsumedAt: consumed,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged water #%d: %d ml\n", id, waterAmount)
			return nil
		})
	},
}

var waterListCmd = &cobra.Command{
	Use:   "list",
	Short: "List water logs",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			logs, err := service.ListWater(sqldb, waterListDate, waterListMax)
			if err != nil {
				return err
			}
			if len(logs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No water logs found")
				return nil
			}
			for _, w := range logs {
				fmt.Fprintf(cmd.OutOrStdout(), "#%d %s | %d ml\n", w.ID, w.ConsumedAt.Format("2006-01-02 15:04"), w.AmountMl)
			}
			return nil
		})
	},
}

var waterDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a water log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("water log id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteWater(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted water log #%d\n", id)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(waterCmd)
	waterCmd.AddCommand(waterAddCmd)
	waterCmd.AddCommand(waterListCmd)
	waterCmd.AddCommand(waterDeleteCmd)

	waterAddCmd.Flags().IntVar(&waterAmount, "amount", 0, "Amount in ml")
	waterAddCmd.Flags().StringVar(&waterDate, "date", "", "Date YYYY-MM-DD (default today)")
	waterAddCmd.MarkFlagRequired("amount")

	waterListCmd.Flags().StringVar(&waterListDate, "date", "", "Filter by date YYYY-MM-DD")
	waterListCmd.Flags().IntVar(&waterListMax, "limit", 50, "Maximum rows")
}
