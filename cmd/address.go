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

// NewAddressCmd creates the address command
func NewAddressCmd(app *application.CreditLine) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Address utilities",
		Long:  "Resolve key aliases to public identifiers and print explorer links",
		Run: func(cmd *cobra.Command, args []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}

	// Add subcommands
	cmd.AddCommand(newAddressLookupCmd(app))
	cmd.AddCommand(newAddressExplorerCmd(app))

	return cmd
}

func newAddressLookupCmd(app *application.CreditLine) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup [alias]",
		Short: "Resolve a configured key alias to its public identifier",
		Long: `Resolve a key alias to its G... public identifier via
'stellar keys address'.

Examples:
  creditline address lookup alice
  creditline address lookup deployer`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			net := configs.GetNetwork(network)
			if net == nil {
				return fmt.Errorf("unknown network %q", network)
			}

			alias := strings.TrimSpace(args[0])
			address, err := stellar.New(net.Name).KeysAddress(alias)
			if err != nil {
				return err
			}

			cmd.Printf("%s: %s\n", alias, address)
			cmd.Printf("Explorer: %s\n", net.AccountURL(address))
			return nil
		},
	}

	return cmd
}

func newAddressExplorerCmd(app *application.CreditLine) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "explorer [contract]",
		Short: "Print the block-explorer link for a contract",
		Long: `Print the stellar.expert page for a contract. Accepts the aliases
benji, usdc and credit-line (resolved from the deployment .env file)
or a raw C... contract ID.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			net := configs.GetNetwork(network)
			if net == nil {
				return fmt.Errorf("unknown network %q", network)
			}

			contract := strings.TrimSpace(args[0])
			contractID := contract
			if !strkey.IsValidContractID(contract) {
				addrs, err := deployment.Load(envFile)
				if err != nil {
					return err
				}
				contractID = addrs.Resolve(strings.ToLower(contract))
				if !strkey.IsValidContractID(contractID) {
					return fmt.Errorf("unknown contract %q", contract)
				}
			}

			cmd.Printf("%s\n", net.ContractURL(contractID))
			return nil
		},
	}

	return cmd
}
