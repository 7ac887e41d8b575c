package vita

import (
	"database/sql"
	"fmt"

	"github.com/dareyes/vita-cli/internal/service"
	"github.com/spf13/cobra"
)

var targetsCmd = &cobra.Command{
	Use:   "targets",
	Short: "Show daily calorie, macro, and water targets",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			summary, err := service.SummarizeProfile(sqldb, nil)
			if err != nil {
				return err
			}
			t := summary.Targets
			fmt.Fprintf(cmd.OutOrStdout(), "Calories: %d kcal\n", t.CalorieGoal)
			fmt.Fprintf(cmd.OutOrStdout(), "Macros: P %dg | C %dg | F %dg\n", t.Macros.ProteinG, t.Macros.CarbsG, t.Macros.FatG)
			fmt.Fprintf(cmd.OutOrStdout(), "Water: %d ml\n", t.WaterMl)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(targetsCmd)
}
