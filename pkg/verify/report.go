package verify

import (
	"fmt"
	"io"

	"github.com/benjilabs/creditline/configs"
	"github.com/benjilabs/creditline/pkg/deployment"
)

// Invoker is the slice of the stellar CLI the report needs. Satisfied
// by *stellar.CLI; faked in tests.
type Invoker interface {
	Invoke(contractID, source, fn string, args ...string) (string, error)
	KeysAddress(alias string) (string, error)
}

// Expected balances after the scripted demo flow (see pkg/demo).
// Tokens carry 7 decimals. Alice minted 1000 BENJI and deposited 500
// as collateral; bob's 1000 BENJI are untouched; the credit line was
// funded with 50000 USDC and lent 200 to alice; the deployer retains
// the other 50000 USDC.
const (
	ExpectedAliceBenji     = "5000000000"
	ExpectedBobBenji       = "10000000000"
	ExpectedCreditLineUsdc = "498000000000"
	ExpectedDeployerUsdc   = "500000000000"
)

// Result is one balance lookup: the raw text the tool printed and the
// literal value it should match. The comparison is left to the reader;
// observed text is opaque and may be an error message when the query
// failed.
type Result struct {
	Label    string `json:"label"`
	Observed string `json:"observed"`
	Expected string `json:"expected"`
	Note     string `json:"note,omitempty"`
}

// Reporter produces the deployment verification report: contract
// addresses, explorer links, and the four balance lookups with their
// expected values, in that order.
type Reporter struct {
	CLI Invoker
	Net *configs.NetworkConfig
	// Source signs the read-only invocations. Reads do not move funds,
	// so any funded alias works; the deploy scripts use deployer.
	Source string
	Out    io.Writer
}

// Run writes the report for the given deployment and returns the
// balance results in query order.
//
// Alias resolution failures abort the run: without the public
// identifiers no query can be formed. Individual balance query
// failures do not: the tool's output (stderr included) stands in for
// the balance and the run continues to the next query.
func (r *Reporter) Run(addrs *deployment.Addresses) ([]Result, error) {
	fmt.Fprintf(r.Out, "=== Credit Line Demo: Deployment Check (%s) ===\n\n", r.Net.Name)

	fmt.Fprintf(r.Out, "Addresses:\n")
	fmt.Fprintf(r.Out, "   BENJI token:  %s\n", addrs.BenjiTokenID)
	fmt.Fprintf(r.Out, "   USDC token:   %s\n", addrs.UsdcTokenID)
	fmt.Fprintf(r.Out, "   Credit line:  %s\n", addrs.CreditLineID)
	fmt.Fprintln(r.Out)

	fmt.Fprintf(r.Out, "Explorer links:\n")
	fmt.Fprintf(r.Out, "   BENJI token:  %s\n", r.Net.ContractURL(addrs.BenjiTokenID))
	fmt.Fprintf(r.Out, "   USDC token:   %s\n", r.Net.ContractURL(addrs.UsdcTokenID))
	fmt.Fprintf(r.Out, "   Credit line:  %s\n", r.Net.ContractURL(addrs.CreditLineID))
	fmt.Fprintln(r.Out)

	alice, err := r.CLI.KeysAddress("alice")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve alice: %w", err)
	}
	bob, err := r.CLI.KeysAddress("bob")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve bob: %w", err)
	}
	deployer, err := r.CLI.KeysAddress("deployer")
	if err != nil {
		return nil, fmt.Errorf("failed to resolve deployer: %w", err)
	}

	queries := []struct {
		label    string
		token    string
		holder   string
		expected string
		note     string
	}{
		{"alice BENJI", addrs.BenjiTokenID, alice, ExpectedAliceBenji, "500 BENJI"},
		{"bob BENJI", addrs.BenjiTokenID, bob, ExpectedBobBenji, "1000 BENJI"},
		{"credit line USDC", addrs.UsdcTokenID, addrs.CreditLineID, ExpectedCreditLineUsdc, "49800 USDC"},
		{"deployer USDC", addrs.UsdcTokenID, deployer, ExpectedDeployerUsdc, "50000 USDC"},
	}

	fmt.Fprintf(r.Out, "Balances:\n")
	results := make([]Result, 0, len(queries))
	for _, q := range queries {
		observed := r.balance(q.token, q.holder)
		fmt.Fprintf(r.Out, "   %-18s %s   (should be %s = %s)\n", q.label+":", observed, q.expected, q.note)
		results = append(results, Result{
			Label:    q.label,
			Observed: observed,
			Expected: q.expected,
			Note:     q.note,
		})
	}

	return results, nil
}

// balance runs one read-only balance call and returns the tool's last
// output line. Failures are not distinguished from successes here;
// whatever the tool printed last is the observed value.
func (r *Reporter) balance(token, holder string) string {
	observed, err := r.CLI.Invoke(token, r.Source, "balance", "--id", holder)
	if observed == "" && err != nil {
		observed = err.Error()
	}
	return observed
}
