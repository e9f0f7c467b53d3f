package configs

// Network configurations for all supported Stellar networks.
// The credit-line demo deploys to testnet; futurenet and local are
// kept for parity with the contract Makefiles.

// NetworkConfig represents a network's configuration
type NetworkConfig struct {
	Name         string `json:"name"`
	Passphrase   string `json:"passphrase"`
	RPCURL       string `json:"rpcUrl"`
	HorizonURL   string `json:"horizonUrl"`
	ExplorerBase string `json:"explorerBase"`
	FriendbotURL string `json:"friendbotUrl"`
}

// Networks maps network names to their configurations
var Networks = map[string]*NetworkConfig{
	"testnet": {
		Name:         "testnet",
		Passphrase:   "Test SDF Network ; September 2015",
		RPCURL:       "https://soroban-testnet.stellar.org",
		HorizonURL:   "https://horizon-testnet.stellar.org",
		ExplorerBase: "https://stellar.expert/explorer/testnet",
		FriendbotURL: "https://friendbot.stellar.org",
	},
	"futurenet": {
		Name:         "futurenet",
		Passphrase:   "Test SDF Future Network ; October 2022",
		RPCURL:       "https://rpc-futurenet.stellar.org",
		HorizonURL:   "https://horizon-futurenet.stellar.org",
		ExplorerBase: "https://stellar.expert/explorer/futurenet",
		FriendbotURL: "https://friendbot-futurenet.stellar.org",
	},
	"local": {
		Name:         "local",
		Passphrase:   "Standalone Network ; February 2017",
		RPCURL:       "http://localhost:8000/soroban/rpc",
		HorizonURL:   "http://localhost:8000",
		ExplorerBase: "http://localhost:8000/explorer",
		FriendbotURL: "http://localhost:8000/friendbot",
	},
}

// GetNetwork returns the configuration for a network name, or nil if
// the name is unknown.
func GetNetwork(name string) *NetworkConfig {
	return Networks[name]
}

// ContractURL returns the block-explorer page for a contract ID on the
// given network.
func (n *NetworkConfig) ContractURL(contractID string) string {
	return n.ExplorerBase + "/contract/" + contractID
}

// AccountURL returns the block-explorer page for an account on the
// given network.
func (n *NetworkConfig) AccountURL(accountID string) string {
	return n.ExplorerBase + "/account/" + accountID
}
