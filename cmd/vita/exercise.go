package vita

import (
	"database/sql"
	"fmt"

	"github.com/dareyes/vita-cli/internal/service"
	"github.com/spf13/cobra"
)

var exerciseCmd = &cobra.Command{
	Use:   "exercise",
	Short: "Log and review exercise sessions",
}

var (
	exerciseType      string
	exerciseIntensity string
	exerciseDuration  int
	exerciseDate      string
	exerciseNotes     string

	exerciseListDate  string
	exerciseListFrom  string
	exerciseListTo    string
	exerciseListType  string
	exerciseListLimit int
)

var exerciseAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Log an exercise session with an estimated calorie burn",
	RunE: func(cmd *cobra.Command, args []string) error {
		performed, err := parseDateOrNow(exerciseDate)
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			id, burned, err := service.AddExercise(sqldb, nil, service.AddExerciseInput{
				ExerciseType: exerciseType,
				Intensity:    exerciseIntensity,
				DurationMin:  exerciseDuration,
				PerformedAt:  performed,
				Notes:        exerciseNotes,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged exercise #%d: %s, %d min (~%d kcal burned)\n", id, exerciseType, exerciseDuration, burned)
			return nil
		})
	},
}

var exerciseListCmd = &cobra.Command{
	Use:   "list",
	Short: "List exercise sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			logs, err := service.ListExercise(sqldb, service.ListExerciseFilter{
				Date:         exerciseListDate,
				FromDate:     exerciseListFrom,
				ToDate:       exerciseListTo,
				ExerciseType: exerciseListType,
				Limit:        exerciseListLimit,
			})
			if err != nil {
				return err
			}
			if len(logs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No exercise logs found")
				return nil
			}
			for _, e := range logs {
				fmt.Fprintf(cmd.OutOrStdout(), "#%d %s | %s (%s) | %d min | %d kcal\n",
					e.ID, e.PerformedAt.Format("2006-01-02 15:04"), e.ExerciseType, e.Intensity, e.DurationMin, e.CaloriesBurned)
				if e.Notes != "" {
					fmt.Fprintf(cmd.OutOrStdout(), "    %s\n", e.Notes)
				}
			}
			return nil
		})
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an exercise log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseInt64Arg("exercise id", args[0])
		if err != nil {
			return err
		}
		return withDB(func(sqldb *sql.DB) error {
			if err := service.DeleteExercise(sqldb, id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted exercise log #%d\n", id)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(exerciseCmd)
	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseDeleteCmd)

	exerciseAddCmd.Flags().StringVar(&exerciseType, "type", "", "Exercise type (walking, running, cycling, swimming, strength_training, yoga, hiit)")
	exerciseAddCmd.Flags().StringVar(&exerciseIntensity, "intensity", "", "Intensity (low, moderate, high); defaults to moderate")
	exerciseAddCmd.Flags().IntVar(&exerciseDuration, "duration", 0, "Duration in minutes")
	exerciseAddCmd.Flags().StringVar(&exerciseDate, "date", "", "Date YYYY-MM-DD (default today)")
	exerciseAddCmd.Flags().StringVar(&exerciseNotes, "notes", "", "Optional notes")
	exerciseAddCmd.MarkFlagRequired("type")
	exerciseAddCmd.MarkFlagRequired("duration")

	exerciseListCmd.Flags().StringVar(&exerciseListDate, "date", "", "Filter by date YYYY-MM-DD")
	exerciseListCmd.Flags().StringVar(&exerciseListFrom, "from", "", "Start date YYYY-MM-DD")
	exerciseListCmd.Flags().StringVar(&exerciseListTo, "to", "", "End date YYYY-MM-DD (inclusive)")
	exerciseListCmd.Flags().StringVar(&exerciseListType, "type", "", "Filter by exercise type")
	exerciseListCmd.Flags().IntVar(&exerciseListLimit, "limit", 50, "Maximum rows")
}
