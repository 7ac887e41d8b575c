package vita

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:   "vita",
	Short: "vita tracks nutrition, exercise, and healthy habits from your terminal",
	Long:  "vita is a local-first health tracking CLI: it derives calorie, macro, and water targets from your profile, scores each day's adherence, and keeps streaks and achievements.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
}
