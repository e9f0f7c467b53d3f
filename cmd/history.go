package cmd

import (
	"github.com/spf13/cobra"

	"github.com/benjilabs/creditline/pkg/application"
	"github.com/benjilabs/creditline/pkg/snapshot"
)

// NewHistoryCmd creates the `history` command listing saved runs.
func NewHistoryCmd(app *application.CreditLine) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List balance snapshots from previous verify runs",
		Long: `Lists the snapshots saved by 'creditline verify --snapshot', oldest
first, so balance drift across demo steps can be reviewed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := snapshot.Open(app.GetSnapshotDir())
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.List()
			if err != nil {
				return err
			}
			if len(records) == 0 {
				cmd.Println("No snapshots recorded. Run 'creditline verify --snapshot' first.")
				return nil
			}

			for _, rec := range records {
				cmd.Printf("%s (%s):\n", rec.Time.Format("2006-01-02 15:04:05 MST"), rec.Network)
				for _, r := range rec.Results {
					cmd.Printf("   %-18s %s   (should be %s)\n", r.Label+":", r.Observed, r.Expected)
				}
				cmd.Println()
			}

			return nil
		},
	}

	return cmd
}
