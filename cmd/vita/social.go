package vita

import (
	"database/sql"
	"fmt"

	"github.com/dareyes/vita-cli/internal/service"
	"github.com/spf13/cobra"
)

var (
	socialPosts int
	socialLikes int
)

// Social counters come from an external feed sync; this command imports the
// deltas so the social achievements can progress.
var socialCmd = &cobra.Command{
	Use:   "social",
	Short: "Import social activity counters",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := service.RecordSocial(sqldb, socialPosts, socialLikes); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %d posts and %d likes\n", socialPosts, socialLikes)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(socialCmd)
	socialCmd.Flags().IntVar(&socialPosts, "posts", 0, "Number of new posts")
	socialCmd.Flags().IntVar(&socialLikes, "likes", 0, "Number of new likes received")
}
