package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/college-select/college-cli/internal/config"
	"github.com/college-select/college-cli/internal/dataset"
	"github.com/college-select/college-cli/internal/export"
	"github.com/college-select/college-cli/internal/model"
	"github.com/college-select/college-cli/internal/monitoring"
	"github.com/college-select/college-cli/internal/selection"
)

var selectCmd = &cobra.Command{
	Use:   "select REGION DEPARTMENTS TOWN LONGLAT",
	Short: "Rank the collèges of a region around a home location",
	Long: `Rank the collèges of REGION located in DEPARTMENTS around the home location.

REGION, DEPARTMENTS and TOWN are matched case-insensitively against the labels
of the exam-results table (see "list"). DEPARTMENTS is comma-separated and
ordered by preference. LONGLAT is the home location as "longitude,latitude".

Examples:
  # Paris and its eastern suburbs, default thresholds
  select "ÎLE-DE-FRANCE" "PARIS,VAL-DE-MARNE" VINCENNES 2.437,48.847

  # 2019 session, stricter success rate, XLSX output and a map
  select "ÎLE-DE-FRANCE" PARIS PARIS 2.35,48.85 --session 2019 \
    --success-rate 99 --format xlsx --geojson map.geojson`,
	Args: cobra.ExactArgs(4),
	RunE: runSelect,
}

func init() {
	f := selectCmd.Flags()
	f.Int("session", model.DefaultSession, "exam session year (overrides config)")
	f.Float64("success-rate", model.DefaultMinSuccessRate, "minimum success rate in percent (overrides config)")
	f.Float64("honors-rate", model.DefaultMinHonorsRate, "minimum highest-honors rate, fraction in [0,1] (overrides config)")
	f.String("output", "", "output path (default: college_selection.<ext>)")
	f.String("format", "csv", "output format: csv, xlsx or sqlite (overrides config)")
	f.String("geojson", "", "also write a GeoJSON map of the ranking to this path")
	f.Bool("refresh", false, "revalidate cached datasets against the portal")
	f.String("metrics-file", "", "write run metrics in Prometheus textfile format")
	f.Int("top", 20, "number of ranked schools to print (0 = none)")

	rootCmd.AddCommand(selectCmd)
}

// selectRequest is the parsed command line of a select run.
type selectRequest struct {
	Criteria model.SearchCriteria
	Refresh  bool
	Top      int
}

func runSelect(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := applySelectOverrides(cmd, *cfg)
	if err := c.Validate("select"); err != nil {
		return err
	}

	home, err := model.ParseLongLat(args[3])
	if err != nil {
		return err
	}

	refresh, _ := cmd.Flags().GetBool("refresh")
	top, _ := cmd.Flags().GetInt("top")
	req := selectRequest{
		Criteria: model.SearchCriteria{
			Region:         args[0],
			Departments:    model.ParseDepartments(args[1]),
			Town:           args[2],
			Home:           home,
			Session:        c.Selection.Session,
			Level:          c.Selection.Level,
			MinSuccessRate: c.Selection.MinSuccessRate,
			MinHonorsRate:  c.Selection.MinHonorsRate,
		},
		Refresh: refresh,
		Top:     top,
	}

	_, err = executeSelect(ctx, &c, req, cmd.OutOrStdout(), cmd.ErrOrStderr())
	return err
}

// applySelectOverrides returns a copy of the config with CLI flag overrides
// applied. Only flags set on the command line override the config.
func applySelectOverrides(cmd *cobra.Command, c config.Config) config.Config {
	f := cmd.Flags()
	if f.Changed("session") {
		c.Selection.Session, _ = f.GetInt("session")
	}
	if f.Changed("success-rate") {
		c.Selection.MinSuccessRate, _ = f.GetFloat64("success-rate")
	}
	if f.Changed("honors-rate") {
		c.Selection.MinHonorsRate, _ = f.GetFloat64("honors-rate")
	}
	if f.Changed("output") {
		c.Output.Path, _ = f.GetString("output")
	}
	if f.Changed("format") {
		c.Output.Format, _ = f.GetString("format")
	}
	if f.Changed("geojson") {
		c.Output.GeoJSON, _ = f.GetString("geojson")
	}
	if f.Changed("metrics-file") {
		c.Metrics.File, _ = f.GetString("metrics-file")
	}
	return c
}

// executeSelect runs one selection end to end: load, validate, join, filter,
// rank, write, report.
func executeSelect(ctx context.Context, c *config.Config, req selectRequest, stdout, stderr io.Writer) (*monitoring.RunSnapshot, error) {
	start := time.Now()
	runID := uuid.NewString()
	log := zap.L().With(zap.String("command", "select"), zap.String("run_id", runID))

	format, err := export.ParseFormat(c.Output.Format)
	if err != nil {
		return nil, err
	}

	exam, geo, err := loadTables(ctx, c, req.Refresh)
	if err != nil {
		return nil, err
	}

	sess, err := selection.New(dataset.NewCatalog(exam), req.Criteria, selection.Options{
		DepartmentPriorityAscending: c.Ranking.DepartmentPriorityAscending,
	})
	if err != nil {
		var ce *selection.ConfigError
		if errors.As(err, &ce) {
			fmt.Fprintf(stderr, "%s. Valid values:\n%s\n", ce.Error(), ce.ValidList())
		}
		return nil, err
	}

	crit := sess.Criteria()
	log.Info("selecting schools",
		zap.String("region", crit.Region),
		zap.Strings("departments", crit.Departments),
		zap.String("town", crit.Town),
		zap.Int("session", crit.Session),
		zap.Float64("min_success_rate", crit.MinSuccessRate),
		zap.Float64("min_honors_rate", crit.MinHonorsRate),
	)

	if err := sess.Prepare(exam, geo); err != nil {
		return nil, err
	}
	ranked, err := sess.Rank()
	if err != nil {
		return nil, err
	}

	outPath := c.Output.Path
	if outPath == "" {
		outPath = format.DefaultPath()
	}
	if err := export.Write(ctx, format, outPath, ranked, runID); err != nil {
		return nil, err
	}
	log.Info("selection written", zap.String("path", outPath), zap.String("format", string(format)), zap.Int("rows", len(ranked)))

	if c.Output.GeoJSON != "" {
		if err := export.WriteGeoJSON(c.Output.GeoJSON, ranked, export.MapOptions{
			Home:     crit.Home,
			HomeTown: crit.Town,
		}); err != nil {
			return nil, err
		}
		log.Info("map written", zap.String("path", c.Output.GeoJSON))
	}

	snap := monitoring.Collect(runID, sess.Summary(), time.Since(start))
	if c.Metrics.File != "" {
		m := monitoring.NewMetrics()
		m.Observe(snap)
		if err := m.WriteTextfile(c.Metrics.File); err != nil {
			return nil, eris.Wrap(err, "select: metrics")
		}
	}
	alerter := monitoring.NewAlerter(c.Metrics)
	alerter.SendAlerts(ctx, alerter.Evaluate(snap))

	if err := printSelection(stdout, ranked, snap, req.Top); err != nil {
		return nil, err
	}
	return snap, nil
}
