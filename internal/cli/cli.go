// Package cli implements the mypaintboard command-line interface.
//
// The commands are:
//   - serve: host the board for browsers on the local network
//   - desktop: open the board in a native window
//   - replay: run a recorded action script headless and export the result
//   - discover: list boards advertised over mDNS
//
// Every command reads the same TOML configuration (--config) and supports
// --verbose for debug-level logging.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"MyPaintBoard/internal/config"
	"MyPaintBoard/internal/state"
)

const appName = "mypaintboard"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	verbose    bool
	cfg        *config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "MyPaintBoard is a pixel drawing board with pen, bucket fill and undo",
		Long:          `MyPaintBoard serves a raster drawing board to browsers on the local network, opens it as a desktop window, or replays recorded drawing sessions headless.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.loadConfig()
		},
	}

	root.PersistentFlags().StringVarP(&c.configPath, "config", "c", "", "TOML config file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.serveCommand())
	root.AddCommand(c.desktopCommand())
	root.AddCommand(c.replayCommand())
	root.AddCommand(c.discoverCommand())

	return root
}

// loadConfig reads --config and applies its log level unless --verbose wins.
func (c *CLI) loadConfig() error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	if c.verbose {
		c.SetLogLevel(LogDebug)
	} else {
		c.SetLogLevel(cfg.LogLevel())
	}
	if c.configPath != "" {
		c.Logger.Debug("config loaded", "path", c.configPath)
	}
	return nil
}

// newSession creates a session from the loaded config.
func (c *CLI) newSession() (*state.Session, error) {
	return state.NewSession(c.cfg.SessionOptions(c.Logger))
}
