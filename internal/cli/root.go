// Package cli implements the postview commands.
package cli

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/postview/internal/config"
	"github.com/rshade/postview/internal/logging"
	"github.com/rshade/postview/internal/posts"
	"github.com/rshade/postview/internal/tui"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	endpoint   string
	delay      time.Duration
	debug      bool
	plain      bool
	noColor    bool
}

// NewRootCmd creates the root Cobra command for the postview CLI.
// Without a subcommand it opens the interactive browser on a terminal and
// prints the first page otherwise.
func NewRootCmd(ver string) *cobra.Command {
	var flags globalFlags
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "postview",
		Short:   "Browse a remote collection of posts",
		Long:    "postview fetches a collection of posts once, then sorts and pages through it client-side.",
		Version: ver,
		Example: rootCmdExample,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, &flags)
			if err != nil {
				return err
			}
			config.SetGlobalConfig(cfg)

			result := setupLogging(cmd, cfg, flags.debug)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			mode := tui.DetectOutputMode(flags.plain, flags.noColor)
			logger.Debug().Ctx(cmd.Context()).Str("mode", mode.String()).Msg("routing on output mode")

			if mode == tui.OutputModeInteractive {
				return runBrowse(cmd)
			}
			opts := listOptions{
				page:   1,
				output: outputTable,
			}
			return runList(cmd, &flags, opts)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default $POSTVIEW_HOME/config.yaml)")
	pf.StringVar(&flags.endpoint, "endpoint", "", "posts endpoint URL (overrides config and POSTVIEW_ENDPOINT)")
	pf.DurationVar(&flags.delay, "delay", 0, "loading screen delay after a successful fetch, e.g. 0s or 2.25s")
	pf.BoolVar(&flags.debug, "debug", false, "enable debug logging to stderr")
	pf.BoolVar(&flags.plain, "plain", false, "disable styling and the interactive browser")
	pf.BoolVar(&flags.noColor, "no-color", false, "disable colored output")

	cmd.AddCommand(NewBrowseCmd(), NewListCmd(&flags), NewVersionCmd(ver))

	return cmd
}

const rootCmdExample = `  # Browse posts interactively
  postview

  # Print page 2 sorted by id
  postview list --page 2 --sort id

  # Emit the first page as JSON
  postview list --output json

  # Use a local API without the loading delay
  postview browse --endpoint http://localhost:3000/posts --delay 0s`

// loadConfig layers the config file, environment and flags, then validates.
func loadConfig(cmd *cobra.Command, flags *globalFlags) (*config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("endpoint") {
		cfg.API.Endpoint = flags.endpoint
	}
	if cmd.Flags().Changed("delay") {
		cfg.API.LoadingDelay = flags.delay
	}

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration: %w", err)
	}
	return cfg, nil
}

// newFetcher builds the posts client for cfg.
func newFetcher(cfg *config.Config) posts.Fetcher {
	return posts.NewClient(cfg.API.Endpoint, cfg.API.Timeout)
}
