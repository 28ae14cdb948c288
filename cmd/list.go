package main

import (
	"fmt"
	"os/signal"
	"slices"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/college-select/college-cli/internal/dataset"
)

var listCmd = &cobra.Command{
	Use:       "list regions|departments|towns",
	Short:     "List the regions, departments or towns of the exam-results table",
	Long:      "Prints the accepted values for the REGION, DEPARTMENTS and TOWN arguments of select, sorted.",
	ValidArgs: []string{"regions", "departments", "towns"},
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if err := cfg.Validate("list"); err != nil {
			return err
		}

		refresh, _ := cmd.Flags().GetBool("refresh")
		exam, err := loadExamResults(ctx, cfg, refresh)
		if err != nil {
			return err
		}

		for _, v := range catalogValues(dataset.NewCatalog(exam), args[0]) {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().Bool("refresh", false, "revalidate cached datasets against the portal")
	rootCmd.AddCommand(listCmd)
}

// catalogValues returns a sorted copy of one catalog dimension.
func catalogValues(c *dataset.Catalog, kind string) []string {
	var vals []string
	switch kind {
	case "regions":
		vals = c.Regions()
	case "departments":
		vals = c.Departments()
	case "towns":
		vals = c.Towns()
	}
	vals = slices.Clone(vals)
	slices.Sort(vals)
	return vals
}
