package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/benjilabs/creditline/configs"
	"github.com/benjilabs/creditline/pkg/application"
	"github.com/benjilabs/creditline/pkg/deployment"
	"github.com/benjilabs/creditline/pkg/stellar"
	"github.com/benjilabs/creditline/pkg/strkey"
)

// NewBalanceCmd creates the `balance` command for ad-hoc lookups.
func NewBalanceCmd(app *application.CreditLine) *cobra.Command {
	var (
		contract string
		account  string
		source   string
	)

	cmd := &cobra.Command{
		Use:   "balance",
		Short: "Check one token balance through the stellar CLI",
		Long: `Runs a single read-only balance invocation against a token contract.

--contract accepts the aliases benji and usdc (resolved from the
deployment .env file) or a raw C... contract ID. --account accepts a
configured key alias (alice, bob, deployer), the alias credit-line for
the deployed contract, or a raw G.../C... identifier.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if contract == "" {
				return fmt.Errorf("the --contract flag is required")
			}
			if account == "" {
				return fmt.Errorf("the --account flag is required")
			}

			net := configs.GetNetwork(network)
			if net == nil {
				return fmt.Errorf("unknown network %q", network)
			}
			cli := stellar.New(net.Name)

			contractID, holder, err := resolveTargets(contract, account, envFile)
			if err != nil {
				return err
			}

			if !strkey.IsValidAccountID(holder) && !strkey.IsValidContractID(holder) {
				resolved, err := cli.KeysAddress(holder)
				if err != nil {
					return fmt.Errorf("failed to resolve account %q: %w", holder, err)
				}
				holder = resolved
			}

			app.Log.Info("Querying balance", "contract", contractID, "holder", holder)

			observed, err := cli.Invoke(contractID, source, "balance", "--id", holder)
			if err != nil {
				return fmt.Errorf("balance query failed: %w (output: %s)", err, observed)
			}

			cmd.Printf("Balance: %s\n", observed)
			cmd.Printf("Holder:  %s\n", holder)
			cmd.Printf("Token:   %s\n", net.ContractURL(contractID))

			return nil
		},
	}

	cmd.Flags().StringVar(&contract, "contract", "", "token contract: benji, usdc, or a C... ID")
	cmd.Flags().StringVar(&account, "account", "", "holder: key alias, credit-line, or a G.../C... ID")
	cmd.Flags().StringVar(&source, "source", "deployer", "signing alias for the read-only invocation")

	return cmd
}

// resolveTargets maps the benji/usdc contract aliases and the
// credit-line holder alias to deployed IDs, reading the env file only
// when an alias needs it. The holder may still be a key alias for the
// stellar CLI to resolve afterwards.
func resolveTargets(contract, account, envFile string) (string, string, error) {
	contractID := contract
	holder := account

	lineAlias := strings.EqualFold(account, "credit-line") || strings.EqualFold(account, "creditline")

	if !strkey.IsValidContractID(contract) || lineAlias {
		addrs, err := deployment.Load(envFile)
		if err != nil {
			return "", "", err
		}
		if !strkey.IsValidContractID(contract) {
			contractID = addrs.Resolve(strings.ToLower(contract))
			if !strkey.IsValidContractID(contractID) {
				return "", "", fmt.Errorf("unknown contract %q", contract)
			}
		}
		if lineAlias {
			holder = addrs.CreditLineID
		}
	}

	return contractID, holder, nil
}
