package main

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/college-select/college-cli/internal/config"
	"github.com/college-select/college-cli/internal/dataset"
	"github.com/college-select/college-cli/internal/fetcher"
)

// tablePaths locates the two input tables on disk.
type tablePaths struct {
	exam string
	geo  string
}

func newCache(c *config.Config) *fetcher.Cache {
	return fetcher.NewCache(c.Datasets.CacheDir, fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
		UserAgent:  c.Fetch.UserAgent,
		Timeout:    time.Duration(c.Fetch.TimeoutSecs) * time.Second,
		MaxRetries: c.Fetch.MaxRetries,
		RatePerSec: c.Fetch.RatePerSec,
	}))
}

// resolveTables returns local paths for the exam-results table and, when
// withGeo is set, the geolocation registry. Configured local files are used
// as-is; the others are served from the download cache.
func resolveTables(ctx context.Context, c *config.Config, refresh, withGeo bool) (tablePaths, error) {
	examSrc, geoSrc := dataset.Sources(c.Datasets.ExamResultsURL, c.Datasets.GeolocationURL)
	paths := tablePaths{exam: c.Datasets.ExamResultsFile, geo: c.Datasets.GeolocationFile}

	var missing []fetcher.Source
	if paths.exam == "" {
		missing = append(missing, examSrc)
	}
	if withGeo && paths.geo == "" {
		missing = append(missing, geoSrc)
	}
	if len(missing) == 0 {
		return paths, nil
	}

	fetched, err := newCache(c).EnsureAll(ctx, missing, refresh)
	if err != nil {
		return paths, eris.Wrap(err, "fetch datasets")
	}
	if p, ok := fetched[examSrc.Name]; ok {
		paths.exam = p
	}
	if p, ok := fetched[geoSrc.Name]; ok {
		paths.geo = p
	}
	return paths, nil
}

func readOptions(c *config.Config) (dataset.ReadOptions, error) {
	schema, err := dataset.LoadSchema(c.Datasets.SchemaFile)
	if err != nil {
		return dataset.ReadOptions{}, err
	}
	opts := dataset.ReadOptions{Schema: schema, Charset: c.Datasets.Charset}
	if d := []rune(c.Datasets.Delimiter); len(d) == 1 {
		opts.Delimiter = d[0]
	}
	return opts, nil
}

// loadExamResults resolves and parses the exam-results table only.
func loadExamResults(ctx context.Context, c *config.Config, refresh bool) ([]dataset.ExamResult, error) {
	paths, err := resolveTables(ctx, c, refresh, false)
	if err != nil {
		return nil, err
	}
	opts, err := readOptions(c)
	if err != nil {
		return nil, err
	}
	return dataset.LoadExamResults(ctx, paths.exam, opts)
}

// loadTables resolves and parses both tables.
func loadTables(ctx context.Context, c *config.Config, refresh bool) ([]dataset.ExamResult, []dataset.Geolocation, error) {
	paths, err := resolveTables(ctx, c, refresh, true)
	if err != nil {
		return nil, nil, err
	}
	opts, err := readOptions(c)
	if err != nil {
		return nil, nil, err
	}

	log := zap.L().With(zap.String("component", "tables"))
	log.Info("reading exam results", zap.String("path", paths.exam))
	exam, err := dataset.LoadExamResults(ctx, paths.exam, opts)
	if err != nil {
		return nil, nil, err
	}
	log.Info("reading geolocations", zap.String("path", paths.geo))
	geo, err := dataset.LoadGeolocations(ctx, paths.geo, opts)
	if err != nil {
		return nil, nil, err
	}
	return exam, geo, nil
}
