package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/benjilabs/creditline/pkg/application"
	"github.com/benjilabs/creditline/pkg/keys"
)

var (
	// Keys command flags
	keysNumAccounts int
	keysShowPrivKey bool
	keysOutputJSON  bool
)

// NewKeysCmd creates the keys command
func NewKeysCmd(app *application.CreditLine) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Offline key utilities",
		Long:  "Generate and derive Stellar identities without the stellar CLI",
		Run: func(cmd *cobra.Command, args []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}

	// Add subcommands
	cmd.AddCommand(newKeysGenerateCmd(app))
	cmd.AddCommand(newKeysDeriveCmd(app))

	return cmd
}

func newKeysGenerateCmd(app *application.CreditLine) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a fresh mnemonic and its derived accounts",
		Long: `Generate a 12-word BIP-39 mnemonic and derive SEP-0005 accounts
(m/44'/148'/{account}') from it.

Examples:
  creditline keys generate
  creditline keys generate -n=5 --priv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mnemonic, err := keys.NewMnemonic()
			if err != nil {
				return err
			}
			cmd.Printf("Mnemonic: %s\n\n", mnemonic)
			return printAccounts(app, cmd, mnemonic)
		},
	}

	addKeysFlags(cmd)
	return cmd
}

func newKeysDeriveCmd(app *application.CreditLine) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "derive [mnemonic]",
		Short: "Derive accounts from an existing mnemonic",
		Long: `Derive SEP-0005 accounts (m/44'/148'/{account}') from a BIP-39
mnemonic phrase.

Examples:
  creditline keys derive "word1 word2 ... word12"
  creditline keys derive -n=3 --json "mnemonic"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mnemonic := strings.TrimSpace(args[0])
			return printAccounts(app, cmd, mnemonic)
		},
	}

	addKeysFlags(cmd)
	return cmd
}

func addKeysFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&keysNumAccounts, "num", "n", 1, "Number of accounts to derive")
	cmd.Flags().BoolVar(&keysShowPrivKey, "priv", false, "Show secret seeds")
	cmd.Flags().BoolVar(&keysOutputJSON, "json", false, "Output in JSON format")
}

func printAccounts(app *application.CreditLine, cmd *cobra.Command, mnemonic string) error {
	var all []keys.Keypair

	for i := 0; i < keysNumAccounts; i++ {
		kp, err := keys.Derive(mnemonic, i)
		if err != nil {
			return fmt.Errorf("error deriving account %d: %w", i, err)
		}
		if !keysShowPrivKey {
			kp.Seed = ""
		}
		all = append(all, *kp)

		if !keysOutputJSON {
			cmd.Printf("Account %d (m/44'/148'/%d'):\n", i, i)
			cmd.Printf("   Address: %s\n", kp.Address)
			if keysShowPrivKey {
				cmd.Printf("   Seed:    %s\n", kp.Seed)
			}
			if i < keysNumAccounts-1 {
				cmd.Println()
			}
		}
	}

	if keysOutputJSON {
		output := struct {
			Accounts []keys.Keypair `json:"accounts"`
		}{Accounts: all}

		jsonBytes, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling to JSON: %w", err)
		}
		cmd.Println(string(jsonBytes))
	}

	return nil
}
