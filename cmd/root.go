package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/luxfi/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/benjilabs/creditline/pkg/application"
)

var (
	// Version information (set by ldflags)
	Version   = "1.0.0"
	BuildTime = "unknown"
	GitCommit = "unknown"

	// Global flags
	configFile string
	logLevel   string
	baseDir    string
	network    string
	envFile    string

	// Application context
	app *application.CreditLine
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	// Commands are constructed before the app is configured, so they
	// share one instance that PersistentPreRunE fills in.
	app = application.New()

	rootCmd := &cobra.Command{
		Use:     "creditline",
		Short:   "Verification and operations tool for the BENJI/USDC credit-line deployment",
		Long:    `A unified CLI for verifying and driving the BENJI/USDC credit-line contracts deployed on Stellar testnet. All contract interaction goes through the external stellar CLI.`,
		Version: fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Initialize application context
			return initializeApp()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is ./creditline.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&baseDir, "base-dir", "", "base directory for creditline data")
	rootCmd.PersistentFlags().StringVar(&network, "network", "testnet", "Stellar network (testnet, futurenet, local)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "deployment file with contract identifiers")

	// Initialize config
	cobra.OnInitialize(initConfig)

	// Add commands
	rootCmd.AddCommand(NewVerifyCmd(app))
	rootCmd.AddCommand(NewBalanceCmd(app))
	rootCmd.AddCommand(NewAddressCmd(app))
	rootCmd.AddCommand(NewDemoCmd(app))
	rootCmd.AddCommand(NewKeysCmd(app))
	rootCmd.AddCommand(NewHistoryCmd(app))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

func initConfig() {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigName("creditline")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("CREDITLINE")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		// Config file found and loaded
	}
}

func initializeApp() error {
	// Set up base directory
	if baseDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		baseDir = filepath.Join(homeDir, ".creditline")
	}

	// Create base directory if it doesn't exist
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return fmt.Errorf("failed to create base directory: %w", err)
	}

	// Initialize logger
	logger := log.NewLogger("creditline")

	app.Setup(baseDir, logger, viper.GetViper())

	return nil
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
