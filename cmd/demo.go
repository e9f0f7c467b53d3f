package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/benjilabs/creditline/configs"
	"github.com/benjilabs/creditline/pkg/application"
	"github.com/benjilabs/creditline/pkg/demo"
	"github.com/benjilabs/creditline/pkg/deployment"
	"github.com/benjilabs/creditline/pkg/stellar"
)

// NewDemoCmd creates the `demo` command driving the credit-line flow.
func NewDemoCmd(app *application.CreditLine) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Drive the credit-line contracts end to end",
		Long: `Subcommands invoke the deployed credit-line contracts through the
stellar CLI: mint demo funds, fund the lending pool, then deposit
collateral, borrow, repay and withdraw as alice.

'demo run' executes the scripted sequence whose end state matches the
expected values printed by 'creditline verify'.`,
		Run: func(cmd *cobra.Command, args []string) {
			err := cmd.Help()
			if err != nil {
				fmt.Println(err)
			}
		},
	}

	cmd.AddCommand(newDemoRunCmd(app))
	cmd.AddCommand(newDemoMintCmd(app))
	cmd.AddCommand(newDemoFundCmd(app))
	cmd.AddCommand(newDemoStepCmd(app, "deposit", "Deposit BENJI collateral as alice", demo.DepositBenji,
		func(f *demo.Flow, amount string) error { return f.Deposit(amount) }))
	cmd.AddCommand(newDemoStepCmd(app, "borrow", "Borrow USDC against alice's collateral", demo.BorrowUsdc,
		func(f *demo.Flow, amount string) error { return f.Borrow(amount) }))
	cmd.AddCommand(newDemoStepCmd(app, "repay", "Repay borrowed USDC as alice", demo.BorrowUsdc,
		func(f *demo.Flow, amount string) error { return f.Repay(amount) }))
	cmd.AddCommand(newDemoStepCmd(app, "withdraw", "Withdraw BENJI collateral as alice", demo.DepositBenji,
		func(f *demo.Flow, amount string) error { return f.Withdraw(amount) }))
	cmd.AddCommand(newDemoPositionCmd(app))
	cmd.AddCommand(newDemoCreditCmd(app))

	return cmd
}

// newFlow builds a Flow against the configured network and deployment.
func newFlow(app *application.CreditLine) (*demo.Flow, error) {
	net := configs.GetNetwork(network)
	if net == nil {
		return nil, fmt.Errorf("unknown network %q", network)
	}
	addrs, err := deployment.Load(envFile)
	if err != nil {
		return nil, err
	}
	return &demo.Flow{
		CLI:   stellar.New(net.Name),
		Addrs: addrs,
		Log:   app.Log,
	}, nil
}

func newDemoRunCmd(app *application.CreditLine) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the scripted demo sequence (mint, fund, deposit, borrow)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flow, err := newFlow(app)
			if err != nil {
				return err
			}
			if err := flow.Run(); err != nil {
				return err
			}
			cmd.Println("Demo flow complete. Run 'creditline verify' to check balances.")
			return nil
		},
	}
}

func newDemoMintCmd(app *application.CreditLine) *cobra.Command {
	return &cobra.Command{
		Use:   "mint",
		Short: "Mint demo funds: BENJI to alice and bob, USDC to the deployer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flow, err := newFlow(app)
			if err != nil {
				return err
			}
			return flow.Mint()
		},
	}
}

func newDemoFundCmd(app *application.CreditLine) *cobra.Command {
	return &cobra.Command{
		Use:   "fund",
		Short: "Move lending liquidity from the deployer into the credit line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flow, err := newFlow(app)
			if err != nil {
				return err
			}
			return flow.Fund()
		},
	}
}

func newDemoStepCmd(app *application.CreditLine, use, short, defaultAmount string, step func(*demo.Flow, string) error) *cobra.Command {
	var amount string

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flow, err := newFlow(app)
			if err != nil {
				return err
			}
			return step(flow, amount)
		},
	}

	cmd.Flags().StringVar(&amount, "amount", defaultAmount, "amount in 7-decimal token units")

	return cmd
}

func newDemoPositionCmd(app *application.CreditLine) *cobra.Command {
	return &cobra.Command{
		Use:   "position",
		Short: "Print alice's collateral and borrowed amounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flow, err := newFlow(app)
			if err != nil {
				return err
			}
			position, err := flow.Position()
			if err != nil {
				return err
			}
			cmd.Printf("Position: %s\n", position)
			return nil
		},
	}
}

func newDemoCreditCmd(app *application.CreditLine) *cobra.Command {
	return &cobra.Command{
		Use:   "credit",
		Short: "Print how much USDC alice can still borrow",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flow, err := newFlow(app)
			if err != nil {
				return err
			}
			credit, err := flow.AvailableCredit()
			if err != nil {
				return err
			}
			cmd.Printf("Available credit: %s\n", credit)
			return nil
		},
	}
}
