package verify_test

import (
	"bytes"
	"fmt"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/benjilabs/creditline/configs"
	"github.com/benjilabs/creditline/pkg/deployment"
	"github.com/benjilabs/creditline/pkg/verify"
)

// fakeCLI satisfies verify.Invoker with canned responses, recording
// every balance invocation in order.
type fakeCLI struct {
	balances    map[string]string
	balanceErrs map[string]error
	aliases     map[string]string
	aliasErrs   map[string]error
	invocations []string
}

func (f *fakeCLI) Invoke(contractID, source, fn string, args ...string) (string, error) {
	holder := args[len(args)-1]
	key := contractID + "|" + holder
	f.invocations = append(f.invocations, key)
	return f.balances[key], f.balanceErrs[key]
}

func (f *fakeCLI) KeysAddress(alias string) (string, error) {
	if err := f.aliasErrs[alias]; err != nil {
		return "", err
	}
	return f.aliases[alias], nil
}

var _ = Describe("Reporter", func() {
	var (
		cli   *fakeCLI
		addrs *deployment.Addresses
		out   *bytes.Buffer
		rep   *verify.Reporter
	)

	BeforeEach(func() {
		addrs = &deployment.Addresses{
			BenjiTokenID: "CBENJI",
			UsdcTokenID:  "CUSDC",
			CreditLineID: "CLINE",
		}
		cli = &fakeCLI{
			aliases: map[string]string{
				"alice":    "GALICE",
				"bob":      "GBOB",
				"deployer": "GDEPLOYER",
			},
			balances: map[string]string{
				"CBENJI|GALICE":   "5000000000",
				"CBENJI|GBOB":     "10000000000",
				"CUSDC|CLINE":     "498000000000",
				"CUSDC|GDEPLOYER": "500000000000",
			},
			balanceErrs: map[string]error{},
			aliasErrs:   map[string]error{},
		}
		out = &bytes.Buffer{}
		rep = &verify.Reporter{
			CLI:    cli,
			Net:    configs.GetNetwork("testnet"),
			Source: "deployer",
			Out:    out,
		}
	})

	It("prints sections in fixed order", func() {
		_, err := rep.Run(addrs)
		Expect(err).NotTo(HaveOccurred())

		report := out.String()
		addresses := strings.Index(report, "Addresses:")
		explorer := strings.Index(report, "Explorer links:")
		balances := strings.Index(report, "Balances:")

		Expect(addresses).To(BeNumerically(">=", 0))
		Expect(explorer).To(BeNumerically(">", addresses))
		Expect(balances).To(BeNumerically(">", explorer))
	})

	It("runs exactly four balance queries, one per account/token pair", func() {
		_, err := rep.Run(addrs)
		Expect(err).NotTo(HaveOccurred())

		Expect(cli.invocations).To(Equal([]string{
			"CBENJI|GALICE",
			"CBENJI|GBOB",
			"CUSDC|CLINE",
			"CUSDC|GDEPLOYER",
		}))
	})

	It("pairs each observed value with its literal expected value", func() {
		results, err := rep.Run(addrs)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(4))

		report := out.String()
		for _, r := range results {
			Expect(report).To(ContainSubstring(r.Observed))
			Expect(report).To(ContainSubstring("should be " + r.Expected))
		}

		Expect(results[0].Expected).To(Equal(verify.ExpectedAliceBenji))
		Expect(results[1].Expected).To(Equal(verify.ExpectedBobBenji))
		Expect(results[2].Expected).To(Equal(verify.ExpectedCreditLineUsdc))
		Expect(results[3].Expected).To(Equal(verify.ExpectedDeployerUsdc))
	})

	It("prints explorer links derived from the contract IDs", func() {
		_, err := rep.Run(addrs)
		Expect(err).NotTo(HaveOccurred())

		report := out.String()
		Expect(report).To(ContainSubstring("https://stellar.expert/explorer/testnet/contract/CBENJI"))
		Expect(report).To(ContainSubstring("https://stellar.expert/explorer/testnet/contract/CUSDC"))
		Expect(report).To(ContainSubstring("https://stellar.expert/explorer/testnet/contract/CLINE"))
	})

	It("masks a failed query as its output text and keeps going", func() {
		cli.balances["CBENJI|GBOB"] = "error: contract not found"
		cli.balanceErrs["CBENJI|GBOB"] = fmt.Errorf("exit status 1")

		results, err := rep.Run(addrs)
		Expect(err).NotTo(HaveOccurred())
		Expect(results).To(HaveLen(4))
		Expect(cli.invocations).To(HaveLen(4))

		Expect(results[1].Observed).To(Equal("error: contract not found"))
		Expect(out.String()).To(ContainSubstring("error: contract not found"))
	})

	It("falls back to the error text when a failed query printed nothing", func() {
		cli.balances["CUSDC|CLINE"] = ""
		cli.balanceErrs["CUSDC|CLINE"] = fmt.Errorf("exec: \"stellar\": executable file not found in $PATH")

		results, err := rep.Run(addrs)
		Expect(err).NotTo(HaveOccurred())
		Expect(results[2].Observed).To(ContainSubstring("executable file not found"))
	})

	It("aborts before any query when an alias cannot be resolved", func() {
		cli.aliasErrs["bob"] = fmt.Errorf("no such identity")

		_, err := rep.Run(addrs)
		Expect(err).To(HaveOccurred())
		Expect(cli.invocations).To(BeEmpty())
	})
})
