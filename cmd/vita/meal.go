package vita

import (
	"database/sql"
	"fmt"

	"github.com/dareyes/vita-cli/internal/service"
	"github.com/spf13/cobra"
)

var mealCmd = &cobra.Command{
	Use:   "meal",
	Short: "Log and review meals",
}

var (
	mealName     string
	mealCalories int
	mealProtein  float64
	mealCarbs    float64
	mealFat      float64
	mealType     string
	mealDate     string
	mealNotes    string

	mealListDate string
	mealListFrom string
	mealListTo   string
	mealListType string
	mealListMax  int
)

var mealAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log a meal",
	RunE: func(cmd *cobra.Command, args []string) error {
		consumed, err := parseDateOrNow(mealDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			id, err := service.AddMeal(sqldb, service.AddMealInput{
				Name:       mealName,
				Calories:   mealCalories,
				ProteinG:   mealProtein,
				CarbsG:     mealCarbs,
				FatG:       mealFat,
				MealType:   mealType,
				ConsumedAt: consumed,
				Notes:      mealNotes,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged meal #%d: %s (%d kcal)\n", id, mealName, mealCalories)
			return nil
		})
	},
}

var mealListCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged meals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			meals, err := service.ListMeals(sqldb, service.ListMealsFilter{
				Date:     mealListDate,
				FromDate: mealListFrom,
				ToDate:   mealListTo,
				MealType: mealListType,
				Limit:    mealListMax,
			})
			if err != nil {
				return err
			}
			if len(meals) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No meals found")
				return nil
			}
			for _, m := range meals {
				fmt.Fprintf(cmd.OutOrStdout(), "#%d %s | %s | %s | %d kcal | P %.1fg C %.1fg F %.1fg\n",
					m.ID, m.ConsumedAt.Format("2006-01-02 15:04"), m.MealType, m.Name, m.Calories, m.ProteinG, m.CarbsG, m.FatG)
			}
			return nil
		})
	},
}

var mealDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a logged meal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("meal id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteMeal(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted meal #%d\n", id)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(mealCmd)
	mealCmd.AddCommand(mealAddCmd)
	mealCmd.AddCommand(mealListCmd)
	mealCmd.AddCommand(mealDeleteCmd)

	mealAddCmd.Flags().StringVar(&mealName, "name", "", "Meal name")
	mealAddCmd.Flags().IntVar(&mealCalories, "calories", 0, "Calories (kcal)")
	mealAddCmd.Flags().Float64Var(&mealProtein, "protein", 0, "Protein (g)")
	mealAddCmd.Flags().Float64Var(&mealCarbs, "carbs", 0, "Carbs (g)")
	mealAddCmd.Flags().Float64Var(&mealFat, "fat", 0, "Fat (g)")
	mealAddCmd.Flags().StringVar(&mealType, "type", "snack", "Meal type (breakfast, lunch, dinner, snack)")
	mealAddCmd.Flags().StringVar(&mealDate, "date", "", "Date YYYY-MM-DD (default today)")
	mealAddCmd.Flags().StringVar(&mealNotes, "notes", "", "Optional notes")
	mealAddCmd.MarkFlagRequired("name")
	mealAddCmd.MarkFlagRequired("calories")

	mealListCmd.Flags().StringVar(&mealListDate, "date", "", "Filter by date YYYY-MM-DD")
	mealListCmd.Flags().StringVar(&mealListFrom, "from", "", "Filter from date YYYY-MM-DD")
	mealListCmd.Flags().StringVar(&mealListTo, "to", "", "Filter to date YYYY-MM-DD (inclusive)")
	mealListCmd.Flags().StringVar(&mealListType, "type", "", "Filter by meal type")
	mealListCmd.Flags().IntVar(&mealListMax, "limit", 50, "Maximum rows")
}
