package demo

import (
	"fmt"

	"github.com/luxfi/log"

	"github.com/benjilabs/creditline/pkg/deployment"
)

// Invoker is the slice of the stellar CLI the flow needs. Satisfied
// by *stellar.CLI; faked in tests.
type Invoker interface {
	Invoke(contractID, source, fn string, args ...string) (string, error)
	KeysAddress(alias string) (string, error)
}

// Amounts used by the scripted flow, in 7-decimal token units. The
// end state is what `creditline verify` expects: alice holds 500
// BENJI, the credit line holds 49800 USDC, the deployer keeps 50000
// USDC.
const (
	MintBenjiPerUser   = "10000000000"   // 1000 BENJI to alice and bob
	MintUsdcTotal      = "1000000000000" // 100000 USDC to the deployer
	FundCreditLineUsdc = "500000000000"  // 50000 USDC of lending liquidity
	DepositBenji       = "5000000000"    // alice's 500 BENJI collateral
	BorrowUsdc         = "2000000000"    // alice borrows 200 USDC (under the 70% LTV)
)

// Flow drives the credit-line contracts end to end through the
// stellar CLI. It never touches contract state directly; every step
// is an invocation the way the deploy scripts do it.
type Flow struct {
	CLI   Invoker
	Addrs *deployment.Addresses
	Log   log.Logger
}

// Mint seeds the demo accounts: BENJI to alice and bob, USDC to the
// deployer. Only the deployer (token admin) can sign these.
func (f *Flow) Mint() error {
	alice, bob, deployer, err := f.accounts()
	if err != nil {
		return err
	}

	steps := []struct {
		token  string
		to     string
		amount string
		desc   string
	}{
		{f.Addrs.BenjiTokenID, alice, MintBenjiPerUser, "mint 1000 BENJI to alice"},
		{f.Addrs.BenjiTokenID, bob, MintBenjiPerUser, "mint 1000 BENJI to bob"},
		{f.Addrs.UsdcTokenID, deployer, MintUsdcTotal, "mint 100000 USDC to deployer"},
	}
	for _, s := range steps {
		f.Log.Info("Minting", "step", s.desc)
		if _, err := f.CLI.Invoke(s.token, "deployer", "mint", "--to", s.to, "--amount", s.amount); err != nil {
			return fmt.Errorf("%s: %w", s.desc, err)
		}
	}
	return nil
}

// Fund moves lending liquidity from the deployer into the credit-line
// contract.
func (f *Flow) Fund() error {
	deployer, err := f.CLI.KeysAddress("deployer")
	if err != nil {
		return fmt.Errorf("failed to resolve deployer: %w", err)
	}

	f.Log.Info("Funding credit line", "amount", FundCreditLineUsdc)
	_, err = f.CLI.Invoke(f.Addrs.UsdcTokenID, "deployer", "transfer",
		"--from", deployer, "--to", f.Addrs.CreditLineID, "--amount", FundCreditLineUsdc)
	if err != nil {
		return fmt.Errorf("failed to fund credit line: %w", err)
	}
	return nil
}

// Deposit locks amount of alice's BENJI as collateral.
func (f *Flow) Deposit(amount string) error {
	return f.userStep("deposit_collateral", amount)
}

// Borrow draws amount of USDC against alice's collateral.
func (f *Flow) Borrow(amount string) error {
	return f.userStep("borrow", amount)
}

// Repay returns amount of borrowed USDC.
func (f *Flow) Repay(amount string) error {
	return f.userStep("repay", amount)
}

// Withdraw releases amount of BENJI collateral back to alice.
func (f *Flow) Withdraw(amount string) error {
	return f.userStep("withdraw_collateral", amount)
}

// Position prints alice's collateral/borrowed state as reported by
// the contract.
func (f *Flow) Position() (string, error) {
	alice, err := f.CLI.KeysAddress("alice")
	if err != nil {
		return "", fmt.Errorf("failed to resolve alice: %w", err)
	}
	out, err := f.CLI.Invoke(f.Addrs.CreditLineID, "alice", "get_position", "--user", alice)
	if err != nil {
		return "", fmt.Errorf("failed to query position: %w", err)
	}
	return out, nil
}

// AvailableCredit reports how much more USDC alice can borrow against
// her current collateral.
func (f *Flow) AvailableCredit() (string, error) {
	alice, err := f.CLI.KeysAddress("alice")
	if err != nil {
		return "", fmt.Errorf("failed to resolve alice: %w", err)
	}
	out, err := f.CLI.Invoke(f.Addrs.CreditLineID, "alice", "get_available_credit", "--user", alice)
	if err != nil {
		return "", fmt.Errorf("failed to query available credit: %w", err)
	}
	return out, nil
}

// Run executes the scripted sequence whose end state matches the
// expected values in the verify report: mint, fund, deposit 500
// BENJI, borrow 200 USDC.
func (f *Flow) Run() error {
	if err := f.Mint(); err != nil {
		return err
	}
	if err := f.Fund(); err != nil {
		return err
	}
	if err := f.Deposit(DepositBenji); err != nil {
		return err
	}
	if err := f.Borrow(BorrowUsdc); err != nil {
		return err
	}

	position, err := f.Position()
	if err != nil {
		return err
	}
	f.Log.Info("Demo flow complete", "position", position)
	return nil
}

// userStep runs a credit-line function signed by alice with her own
// address as --user, the shape shared by all four user entry points.
func (f *Flow) userStep(fn, amount string) error {
	alice, err := f.CLI.KeysAddress("alice")
	if err != nil {
		return fmt.Errorf("failed to resolve alice: %w", err)
	}

	f.Log.Info("Invoking credit line", "fn", fn, "amount", amount)
	if _, err := f.CLI.Invoke(f.Addrs.CreditLineID, "alice", fn, "--user", alice, "--amount", amount); err != nil {
		return fmt.Errorf("%s failed: %w", fn, err)
	}
	return nil
}

func (f *Flow) accounts() (alice, bob, deployer string, err error) {
	if alice, err = f.CLI.KeysAddress("alice"); err != nil {
		return "", "", "", fmt.Errorf("failed to resolve alice: %w", err)
	}
	if bob, err = f.CLI.KeysAddress("bob"); err != nil {
		return "", "", "", fmt.Errorf("failed to resolve bob: %w", err)
	}
	if deployer, err = f.CLI.KeysAddress("deployer"); err != nil {
		return "", "", "", fmt.Errorf("failed to resolve deployer: %w", err)
	}
	return alice, bob, deployer, nil
}
