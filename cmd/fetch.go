package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/college-select/college-cli/internal/dataset"
	"github.com/college-select/college-cli/internal/fetcher"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the exam-results and geolocation tables into the cache",
	Long: `Downloads both open-data exports from data.education.gouv.fr into
datasets.cache_dir. Cached files are kept; --refresh revalidates them with the
portal and replaces them only when they changed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := cfg.Validate("fetch"); err != nil {
			return err
		}

		refresh, _ := cmd.Flags().GetBool("refresh")
		examSrc, geoSrc := dataset.Sources(cfg.Datasets.ExamResultsURL, cfg.Datasets.GeolocationURL)

		paths, err := newCache(cfg).EnsureAll(ctx, []fetcher.Source{examSrc, geoSrc}, refresh)
		if err != nil {
			return eris.Wrap(err, "fetch")
		}

		zap.L().Info("datasets ready", zap.Int("count", len(paths)))
		for _, src := range []fetcher.Source{examSrc, geoSrc} {
			fmt.Fprintf(cmd.OutOrStdout(), "%-14s %s\n", src.Name, paths[src.Name])
		}
		return nil
	},
}

func init() {
	fetchCmd.Flags().Bool("refresh", false, "revalidate cached datasets against the portal")
	rootCmd.AddCommand(fetchCmd)
}
