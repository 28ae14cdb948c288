package fetcher

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Source is a remote dataset persisted in the cache as File.
type Source struct {
	Name string
	URL  string
	File string
}

// Cache is a fetch-once file cache: a source is downloaded the first time it is
// requested and served from disk afterwards.
type Cache struct {
	dir     string
	fetcher Fetcher
}

// NewCache creates a cache rooted at dir.
func NewCache(dir string, f Fetcher) *Cache {
	return &Cache{dir: dir, fetcher: f}
}

// Path returns where src is (or will be) stored.
func (c *Cache) Path(src Source) string {
	return filepath.Join(c.dir, src.File)
}

// Cached reports whether src is already on disk.
func (c *Cache) Cached(src Source) bool {
	info, err := os.Stat(c.Path(src))
	return err == nil && !info.IsDir() && info.Size() > 0
}

// Ensure returns the local path of src, downloading it when absent. With refresh
// set, a cached copy is revalidated against the ETag recorded at download time.
func (c *Cache) Ensure(ctx context.Context, src Source, refresh bool) (string, error) {
	log := zap.L().With(zap.String("component", "fetcher.cache"), zap.String("source", src.Name))
	path := c.Path(src)

	cached := c.Cached(src)
	if cached && !refresh {
		log.Debug("cache hit", zap.String("path", path))
		return path, nil
	}

	if err := os.MkdirAll(c.dir, 0o755); err != nil {
		return "", eris.Wrapf(err, "cache: create dir %s", c.dir)
	}

	var etag string
	if cached {
		etag = c.readETag(path)
	}

	log.Info("downloading dataset", zap.String("url", src.URL), zap.Bool("refresh", refresh))
	body, newETag, changed, err := c.fetcher.DownloadIfChanged(ctx, src.URL, etag)
	if err != nil {
		return "", eris.Wrapf(err, "cache: download %s", src.Name)
	}
	if !changed {
		log.Info("dataset unchanged upstream", zap.String("etag", etag))
		return path, nil
	}
	defer body.Close() //nolint:errcheck

	n, err := c.commit(path, body)
	if err != nil {
		return "", eris.Wrapf(err, "cache: store %s", src.Name)
	}
	if newETag != "" {
		if err := os.WriteFile(path+".etag", []byte(newETag), 0o644); err != nil {
			log.Warn("cache: write etag", zap.Error(err))
		}
	}

	log.Info("dataset cached", zap.String("path", path), zap.Int64("bytes", n))
	return path, nil
}

// EnsureAll ensures every source concurrently and returns their paths keyed by
// source name.
func (c *Cache) EnsureAll(ctx context.Context, srcs []Source, refresh bool) (map[string]string, error) {
	paths := make([]string, len(srcs))

	g, gCtx := errgroup.WithContext(ctx)
	for i, src := range srcs {
		g.Go(func() error {
			p, err := c.Ensure(gCtx, src, refresh)
			if err != nil {
				return err
			}
			paths[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[string]string, len(srcs))
	for i, src := range srcs {
		out[src.Name] = paths[i]
	}
	return out, nil
}

// commit writes r to a temp file next to path and renames it into place, so an
// interrupted download never leaves a truncated cache entry.
func (c *Cache) commit(path string, r io.Reader) (int64, error) {
	tmp, err := os.CreateTemp(c.dir, filepath.Base(path)+".*.part")
	if err != nil {
		return 0, eris.Wrap(err, "create temp file")
	}
	tmpPath := tmp.Name()
	_ = tmp.Close()

	n, err := writeFile(tmpPath, r)
	if err != nil {
		_ = os.Remove(tmpPath)
		return n, err
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return n, eris.Wrap(err, "rename temp file")
	}
	return n, nil
}

func (c *Cache) readETag(path string) string {
	data, err := os.ReadFile(path + ".etag")
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}
