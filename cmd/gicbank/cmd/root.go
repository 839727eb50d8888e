// Package cmd provides the CLI commands for gicbank.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/awesomegic/gicbank/internal/bank"
	"github.com/awesomegic/gicbank/internal/config"
	"github.com/awesomegic/gicbank/internal/console"
)

var (
	cfgFile string
	debug   bool
)

// rootCmd runs the interactive banking session when called without a
// subcommand.
var rootCmd = &cobra.Command{
	Use:   "gicbank",
	Short: "Interactive banking ledger simulator",
	Long: `gicbank is an in-memory banking demo: it records deposits and
withdrawals per account, stores time-versioned interest rules and
generates monthly statements with day-granular interest accrual.

Running gicbank without a subcommand starts the interactive session:
  [T] Input transactions
  [I] Define interest rules
  [P] Print statement
  [Q] Quit

Use "gicbank serve" to expose the same operations as a JSON API.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logLevel := slog.LevelInfo
		if debug {
			logLevel = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: logLevel,
		}))
		slog.SetDefault(logger)
	},
	RunE: runSession,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().StringVar(&seedFile, "seed", "", "YAML demo-data file applied at startup")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(serveCmd)
}

var seedFile string

func runSession(cmd *cobra.Command, args []string) error {
	svc, err := newService()
	if err != nil {
		return err
	}
	session := console.NewSession(svc, cmd.InOrStdin(), cmd.OutOrStdout())
	return session.Run()
}

// newService builds the bank service shared by the session and serve
// commands, applying the seed file when one is configured.
func newService() (*bank.Service, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	svc := bank.New()

	path := seedFile
	if path == "" {
		path = cfg.SeedFile
	}
	if path != "" {
		seed, err := bank.ReadSeedFile(path)
		if err != nil {
			return nil, err
		}
		if err := svc.ApplySeed(seed); err != nil {
			return nil, fmt.Errorf("failed to apply seed data: %w", err)
		}
		slog.Info("seed data applied", "path", path,
			"transactions", len(seed.Transactions), "rules", len(seed.Rules))
	}
	return svc, nil
}
