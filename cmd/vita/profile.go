package vita

import (
	"database/sql"
	"fmt"

	"github.com/dareyes/vita-cli/internal/engine"
	"github.com/dareyes/vita-cli/internal/service"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your body profile",
}

var (
	profileWeight       float64
	profileHeight       float64
	profileAge          int
	profileGender       string
	profileActivity     string
	profileGoal         string
	profileTargetWeight float64
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set body measurements, activity level, and goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			in := service.SetProfileInput{
				WeightKg:      profileWeight,
				HeightCm:      profileHeight,
				AgeYears:      profileAge,
				Gender:        profileGender,
				ActivityLevel: profileActivity,
				Goal:          profileGoal,
			}
			if cmd.Flags().Changed("target-weight") {
				in.TargetWeightKg = &profileTargetWeight
			}
			if err := service.SetProfile(sqldb, in); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile saved")
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show profile and derived body metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			summary, err := service.SummarizeProfile(sqldb, nil)
			if err != nil {
				return err
			}
			p := summary.Profile
			fmt.Fprintf(cmd.OutOrStdout(), "Weight: %.1f kg | Height: %.1f cm | Age: %d | %s\n", p.WeightKg, p.HeightCm, p.AgeYears, p.Gender)
			fmt.Fprintf(cmd.OutOrStdout(), "Activity: %s | Goal: %s\n", p.ActivityLevel, p.Goal)
			fmt.Fprintf(cmd.OutOrStdout(), "BMI: %.1f (%s)\n", summary.BMI, summary.BMICategory)
			fmt.Fprintf(cmd.OutOrStdout(), "BMR: %d kcal | TDEE: %d kcal\n", summary.BMR, summary.TDEE)
			fmt.Fprintf(cmd.OutOrStdout(), "Ideal weight: %d–%d kg\n", summary.IdealWeight.MinKg, summary.IdealWeight.MaxKg)
			if p.TargetWeightKg != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "Target weight: %.1f kg", *p.TargetWeightKg)
				if summary.WeeksToGoal != nil {
					fmt.Fprintf(cmd.OutOrStdout(), " (~%d weeks at %.1f kg/week)", *summary.WeeksToGoal, engine.DefaultWeeklyRateKg)
				}
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd)
	profileCmd.AddCommand(profileShowCmd)

	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Weight in kg")
	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().StringVar(&profileGender, "gender", "", "Gender (male or female)")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "Activity level (sedentary, lightly_active, moderately_active, very_active, extremely_active)")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "", "Goal (lose_weight, maintain_weight, gain_weight, build_muscle)")
	profileSetCmd.Flags().Float64Var(&profileTargetWeight, "target-weight", 0, "Target weight in kg")
	profileSetCmd.MarkFlagRequired("weight")
	profileSetCmd.MarkFlagRequired("height")
	profileSetCmd.MarkFlagRequired("age")
	profileSetCmd.MarkFlagRequired("gender")
	profileSetCmd.MarkFlagRequired("activity")
	profileSetCmd.MarkFlagRequired("goal")
}
