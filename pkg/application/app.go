package application

import (
	"path/filepath"

	"github.com/luxfi/log"
	"github.com/spf13/viper"
)

// CreditLine is the main application context that holds all dependencies
type CreditLine struct {
	Log     log.Logger
	BaseDir string
	Config  *viper.Viper
}

// New creates a new CreditLine application instance
func New() *CreditLine {
	return &CreditLine{}
}

// Setup initializes the application with dependencies
func (c *CreditLine) Setup(baseDir string, logger log.Logger, config *viper.Viper) {
	c.BaseDir = baseDir
	c.Log = logger
	c.Config = config
}

// GetSnapshotDir returns the directory of the balance snapshot store
func (c *CreditLine) GetSnapshotDir() string {
	return filepath.Join(c.BaseDir, "snapshots")
}

// GetKeysDir returns the directory for generated identities
func (c *CreditLine) GetKeysDir() string {
	return filepath.Join(c.BaseDir, "keys")
}
