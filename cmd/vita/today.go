package vita

import (
	"database/sql"
	"fmt"

	"github.com/dareyes/vita-cli/internal/service"
	"github.com/spf13/cobra"
)

var todayDate string

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's intake against targets with the daily score",
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := parseDateOrNow(todayDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			status, err := service.SummarizeDay(sqldb, nil, date)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s\n", status.Date)
			fmt.Fprintf(out, "Calories: %d / %d kcal\n", status.Actuals.CaloriesConsumed, status.Targets.CalorieGoal)
			fmt.Fprintf(out, "Water:    %d / %d ml\n", status.Actuals.WaterMl, status.Targets.WaterMl)
			fmt.Fprintf(out, "Exercise: %d min\n", status.Actuals.ExerciseMinutes)
			fmt.Fprintf(out, "Meals:    %d\n", status.Actuals.MealsLogged)
			s := status.Score
			fmt.Fprintf(out, "Score: %d/100 (calories %d, water %d, exercise %d, meals %d)\n",
				s.Total, s.CaloriePoints, s.WaterPoints, s.ExercisePoints, s.MealPoints)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
	todayCmd.Flags().StringVar(&todayDate, "date", "", "Date YYYY-MM-DD (default today)")
}
