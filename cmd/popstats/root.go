package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dmagro/hemi-popstats/internal/config"
	"github.com/dmagro/hemi-popstats/internal/locale"
	"github.com/dmagro/hemi-popstats/internal/logging"
	"github.com/dmagro/hemi-popstats/internal/popstats"
	"github.com/dmagro/hemi-popstats/internal/session"
)

// options holds the persistent flags shared by every command.
type options struct {
	cfgPath  string
	lang     string
	mode     string
	logLevel string
	baseURL  string
	envFile  string
}

// app is what a command needs once flags and config are resolved.
type app struct {
	cfg    *config.Config
	client *popstats.Client
	msgs   locale.Messages
	mode   popstats.Mode
	logger zerolog.Logger
}

// setup loads .env and the config file, applies flag overrides, and builds
// the client. Diagnostics are logged to stderr.
func (o *options) setup(stderr io.Writer) (*app, error) {
	if o.envFile != "" {
		config.LoadEnv(o.envFile)
	} else {
		config.LoadEnv()
	}

	cfg, err := config.Load(o.cfgPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if o.lang != "" {
		cfg.Locale = o.lang
	}
	if o.mode != "" {
		cfg.Mode = o.mode
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}
	if o.baseURL != "" {
		cfg.Endpoint.BaseURL = o.baseURL
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(stderr, cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	msgs, err := locale.Get(cfg.Locale)
	if err != nil {
		return nil, err
	}
	mode, err := popstats.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}
	client, err := popstats.NewClient(cfg, logger)
	if err != nil {
		return nil, err
	}

	logger.Debug().
		Str("base_url", cfg.Endpoint.BaseURL).
		Str("locale", cfg.Locale).
		Str("mode", cfg.Mode).
		Str("network", cfg.Network).
		Msg("configuration loaded")

	return &app{cfg: cfg, client: client, msgs: msgs, mode: mode, logger: logger}, nil
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "popstats",
		Short: "Look up Hemi PoP statistics for a pubkey or BTC address",
		Long: `Look up the PoP mining statistics of a Hemi pubkey.

Without a subcommand popstats runs interactively: it asks for a pubkey or
Bitcoin address, prints the all-time, 24-hour and last transaction
statistics, and offers another lookup until you answer no.

Addresses are resolved to their pubkey through the statistics site first.

Examples:
  popstats
  popstats --lang fr
  popstats --mode pubkey --config popstats.yaml`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := opts.setup(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			s := session.New(cmd.InOrStdin(), cmd.OutOrStdout(), a.client, a.msgs, a.mode, a.logger)
			return s.Run(cmd.Context())
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.cfgPath, "config", "", "Config file path (YAML); built-in defaults when empty")
	flags.StringVar(&opts.envFile, "env-file", "", "Environment file to load (defaults to .env when present)")
	flags.StringVar(&opts.lang, "lang", "", "Message language: en|fr")
	flags.StringVar(&opts.mode, "mode", "", "Lookup mode: auto|pubkey|address")
	flags.StringVar(&opts.logLevel, "log-level", "", "Log level: debug|info|warn|error")
	flags.StringVar(&opts.baseURL, "base-url", "", "Statistics site root URL")

	cmd.AddCommand(lookupCmd(opts))
	cmd.AddCommand(resolveCmd(opts))

	return cmd
}
