package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/tusharlock10/hwid/internal/app"
	"github.com/tusharlock10/hwid/internal/config"
	"github.com/tusharlock10/hwid/internal/logging"
)

// version is set at build time via -ldflags "-X main.version=<version>"
var version string

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		a          *app.App
		logger     *zap.Logger
	)

	rootCmd := &cobra.Command{
		Use:   "hwid",
		Short: "Show the hardware fingerprint of this machine",
		Long: "hwid derives a stable identifier for this machine from its installation id,\n" +
			"network adapter, processor and mainboard, and shows it for copying into a\n" +
			"license request.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			v := viper.New()
			if err := config.BindFlags(v, cmd.Flags()); err != nil {
				return err
			}
			cfg, err := config.Load(v, configPath)
			if err != nil {
				return err
			}
			cfg.Version = version

			logger, err = logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			a = app.New(cfg, logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.SetupSignalHandler(logger)
			defer cancel()

			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return a.Print(ctx, cmd.OutOrStdout(), false)
			}
			return a.RunWindow(ctx)
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to an optional config file (yaml, toml or json)")
	config.RegisterFlags(rootCmd.PersistentFlags())

	var plain bool
	printCmd := &cobra.Command{
		Use:   "print",
		Short: "Print the fingerprint and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.SetupSignalHandler(logger)
			defer cancel()
			return a.Print(ctx, cmd.OutOrStdout(), plain)
		},
	}
	printCmd.Flags().BoolVar(&plain, "plain", false, "Print only the fingerprint value")

	copyCmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy the fingerprint to the clipboard and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := app.SetupSignalHandler(logger)
			defer cancel()
			return a.Copy(ctx, cmd.OutOrStdout())
		},
	}

	rootCmd.AddCommand(printCmd, copyCmd)
	rootCmd.SetErr(os.Stderr)
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w\nRun '%s --help' for usage", err, cmd.CommandPath())
	})
	return rootCmd
}
