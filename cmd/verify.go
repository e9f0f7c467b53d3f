package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/benjilabs/creditline/configs"
	"github.com/benjilabs/creditline/pkg/application"
	"github.com/benjilabs/creditline/pkg/deployment"
	"github.com/benjilabs/creditline/pkg/snapshot"
	"github.com/benjilabs/creditline/pkg/stellar"
	"github.com/benjilabs/creditline/pkg/verify"
)

// NewVerifyCmd creates the `verify` command, the deployment check.
func NewVerifyCmd(app *application.CreditLine) *cobra.Command {
	var (
		source       string
		saveSnapshot bool
	)

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Print contract addresses, explorer links and balances next to expected values",
		Long: `Loads the contract identifiers from the deployment .env file and prints a
verification report: the three contract addresses, their block-explorer
links, and four token balance lookups (alice/BENJI, bob/BENJI,
credit-line/USDC, deployer/USDC) alongside the values they should hold
after the demo flow.

Balances are read through the stellar CLI and printed as-is; comparing
observed and expected values is left to the reader.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			net := configs.GetNetwork(network)
			if net == nil {
				return fmt.Errorf("unknown network %q", network)
			}

			addrs, err := deployment.Load(envFile)
			if err != nil {
				return err
			}
			app.Log.Info("Loaded deployment", "env-file", envFile, "network", net.Name)

			reporter := &verify.Reporter{
				CLI:    stellar.New(net.Name),
				Net:    net,
				Source: source,
				Out:    cmd.OutOrStdout(),
			}

			results, err := reporter.Run(addrs)
			if err != nil {
				return err
			}

			if saveSnapshot {
				store, err := snapshot.Open(app.GetSnapshotDir())
				if err != nil {
					return err
				}
				defer store.Close()

				rec := snapshot.Record{
					Time:    time.Now().UTC(),
					Network: net.Name,
					Results: results,
				}
				if err := store.Save(rec); err != nil {
					return fmt.Errorf("failed to save snapshot: %w", err)
				}
				app.Log.Info("Snapshot saved", "dir", app.GetSnapshotDir(), "results", len(results))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&source, "source", "deployer", "signing alias for the read-only invocations")
	cmd.Flags().BoolVar(&saveSnapshot, "snapshot", false, "persist observed balances to the local snapshot store")

	return cmd
}
