// Package app wires configuration, the dataset store, the gap-analysis
// client, and the MCP server. It is the shared core behind the HTTP and
// MCP surfaces.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/compass/internal/clients/gap"
	"github.com/bobmcallan/compass/internal/common"
	"github.com/bobmcallan/compass/internal/interfaces"
	"github.com/bobmcallan/compass/internal/storage/datasetfs"
)

// App holds all initialized services and clients.
type App struct {
	Config      *common.Config
	Logger      *common.Logger
	Datasets    interfaces.DatasetStore
	GapClient   interfaces.GapClient
	MCPServer   *mcpserver.MCPServer
	StartupTime time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes config, logging, the dataset store, the gap client,
// and the MCP server. configPath may be empty, in which case the default
// resolution logic is used.
func NewApp(configPath string) (*App, error) {
	// Load version from .version file (fallback if ldflags not set)
	common.LoadVersionFromFile()

	binDir := getBinaryDir()

	// Load configuration - check provided path, COMPASS_CONFIG, then binary dir, then fallback
	if configPath == "" {
		configPath = os.Getenv("COMPASS_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "compass.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/compass.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Resolve relative dataset path to binary directory
	if config.Datasets.Path != "" && !filepath.IsAbs(config.Datasets.Path) {
		if _, err := os.Stat(config.Datasets.Path); os.IsNotExist(err) {
			config.Datasets.Path = filepath.Join(binDir, config.Datasets.Path)
		}
	}

	logger := common.NewLogger(config.Logging.Level)

	datasets, err := datasetfs.NewStore(logger, config.Datasets.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize dataset store: %w", err)
	}

	gapClient := gap.NewClient(logger, config.Gap)
	if !gapClient.Configured() {
		logger.Warn().Msg("Gap analysis service not configured - curriculum analysis will be unavailable")
	}

	a := &App{
		Config:      config,
		Logger:      logger,
		Datasets:    datasets,
		GapClient:   gapClient,
		StartupTime: time.Now(),
	}
	a.MCPServer = a.buildMCPServer()

	return a, nil
}
