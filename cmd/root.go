package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/college-select/college-cli/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "college-cli",
	Short: "Rank middle schools near home from DNB exam results",
	Long: `Joins the DNB exam results published per establishment with the national
school geolocation registry, keeps the collèges of a region and a set of
departments that pass success-rate and honors-rate thresholds, and ranks them
by results and distance from home.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
