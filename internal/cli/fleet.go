package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/example/fleet/internal/config"
	"github.com/example/fleet/internal/version"
	"github.com/example/fleet/internal/wire"
)

// RootCmd returns the fleet command. It runs the interactive ledger on the
// command's input and output streams.
func RootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "fleet",
		Short:   "Starship and mission cost ledger",
		Version: version.String(),
		Long: `Fleet is an interactive ledger for starships and their missions.

Register ships, start and end missions, record refuelings and review
each ship's mission log with per-mission and total costs. The registry
lives only for the duration of the session.

Examples:
  fleet                          # in-memory registry
  fleet --store sqlite           # in-memory SQLite registry
  FLEET_LOG_LEVEL=debug fleet    # log service events to stderr`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runFleet,
	}

	cmd.Flags().String(config.KeyStore, config.StoreMemory, "Registry backend (memory, sqlite)")
	cmd.Flags().Bool(config.KeyColor, true, "Colorize console messages")
	cmd.Flags().String(config.KeyLogLevel, "warn", "Log level for stderr (debug, info, warn, error)")
	cmd.Flags().String(config.KeyConfigFile, "", "Optional config file")

	return cmd
}

func runFleet(cmd *cobra.Command, args []string) error {
	v := viper.New()
	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}

	color.NoColor = color.NoColor || !cfg.Color

	logger, err := wire.NewLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	session, err := wire.NewSession(ctx, cfg, cmd.InOrStdin(), cmd.OutOrStdout(), logger)
	if err != nil {
		return err
	}
	defer session.Close()

	return session.Shell.Run(ctx)
}
