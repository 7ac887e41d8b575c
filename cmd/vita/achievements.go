package vita

import (
	"database/sql"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dareyes/vita-cli/internal/catalog"
	"github.com/dareyes/vita-cli/internal/engine"
	"github.com/dareyes/vita-cli/internal/service"
	"github.com/spf13/cobra"
)

var achievementsCatalogPath string

var achievementsCmd = &cobra.Command{
	Use:   "achievements",
	Short: "Show unlocked, in-progress, and locked achievements",
	RunE: func(cmd *cobra.Command, args []string) error {
		var cfg *engine.Config
		if strings.TrimSpace(achievementsCatalogPath) != "" {
			loaded, err := catalog.Load(achievementsCatalogPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		return withDB(func(sqldb *sql.DB) error {
			status, err := service.SummarizeAchievements(sqldb, cfg, time.Now())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			eng := engine.NewAchievementEngine(cfg)

			fmt.Fprintf(out, "Unlocked (%d points)\n", status.UnlockedPoints)
			if len(status.Classification.Unlocked) == 0 {
				fmt.Fprintln(out, "  none yet")
			}
			for _, a := range status.Classification.Unlocked {
				fmt.Fprintf(out, "  [x] %s (%s, %d pts) - %s\n", a.Name, a.Rarity, a.Points, a.Description)
			}

			fmt.Fprintln(out, "In progress")
			if len(status.Classification.InProgress) == 0 {
				fmt.Fprintln(out, "  none")
			}
			for _, a := range status.Classification.InProgress {
				printProgress(out, eng, a, status.Stats)
			}

			fmt.Fprintf(out, "Locked: %d\n", len(status.Classification.Locked))
			return nil
		})
	},
}

func printProgress(out io.Writer, eng *engine.AchievementEngine, a engine.AchievementDef, stats engine.UserStats) {
	progress, err := eng.Progress(a.ID, stats)
	if err != nil {
		fmt.Fprintf(out, "  [ ] %s\n", a.Name)
		return
	}
	fmt.Fprintf(out, "  [ ] %s: %d/%d (%d%%)\n", a.Name, progress.Current, progress.Target, progress.Percentage)
}

func init() {
	rootCmd.AddCommand(achievementsCmd)
	achievementsCmd.Flags().StringVar(&achievementsCatalogPath, "catalog", "", "Path to a YAML achievement catalog override")
}
