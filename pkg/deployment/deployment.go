package deployment

import (
	"fmt"

	"github.com/joho/godotenv"

	"github.com/benjilabs/creditline/pkg/strkey"
)

// Env variable names written by the deploy scripts.
const (
	benjiTokenVar = "BENJI_TOKEN_ID"
	usdcTokenVar  = "USDC_TOKEN_ID"
	creditLineVar = "CREDIT_LINE_ID"
)

// Addresses holds the contract identifiers of a credit-line
// deployment, as recorded in the .env file the deploy step leaves
// behind.
type Addresses struct {
	BenjiTokenID string `json:"benjiTokenId"`
	UsdcTokenID  string `json:"usdcTokenId"`
	CreditLineID string `json:"creditLineId"`
}

// Load reads the deployment .env file at path and returns the
// contract identifiers. A missing file or missing variable is an
// error: without the identifiers there is nothing to query.
func Load(path string) (*Addresses, error) {
	env, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("error reading deployment file %s: %w", path, err)
	}

	addrs := &Addresses{
		BenjiTokenID: env[benjiTokenVar],
		UsdcTokenID:  env[usdcTokenVar],
		CreditLineID: env[creditLineVar],
	}

	for _, v := range []struct {
		name string
		id   string
	}{
		{benjiTokenVar, addrs.BenjiTokenID},
		{usdcTokenVar, addrs.UsdcTokenID},
		{creditLineVar, addrs.CreditLineID},
	} {
		name, id := v.name, v.id
		if id == "" {
			return nil, fmt.Errorf("%s not set in %s", name, path)
		}
		if !strkey.IsValidContractID(id) {
			return nil, fmt.Errorf("%s is not a valid contract ID: %s", name, id)
		}
	}

	return addrs, nil
}

// Resolve maps a contract alias (benji, usdc, credit-line) to its
// deployed identifier. Anything else is returned as-is so callers can
// pass raw contract IDs.
func (a *Addresses) Resolve(nameOrID string) string {
	switch nameOrID {
	case "benji":
		return a.BenjiTokenID
	case "usdc":
		return a.UsdcTokenID
	case "credit-line", "creditline":
		return a.CreditLineID
	}
	return nameOrID
}
