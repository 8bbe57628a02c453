// Package catalog scans directories for cartridge images and keeps the loaded
// images in a bounded cache.
package catalog

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"sort"

	"github.com/golang/glog"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/jyane/jnds/archive"
	"github.com/jyane/jnds/nds"
)

// Config holds the catalog configuration.
type Config struct {
	// Workers bounds the number of images loaded at once.
	Workers int

	// CacheSize is the number of loaded images kept in memory.
	CacheSize int

	// LoadOptions are passed to nds.Load.
	LoadOptions []nds.Option
}

func defaultConfig() Config {
	return Config{
		Workers:   runtime.GOMAXPROCS(0),
		CacheSize: 64,
	}
}

// Option is a functional option for configuring the Catalog.
type Option func(*Config)

// WithWorkers sets the number of concurrent loads during a scan.
func WithWorkers(n int) Option {
	return func(c *Config) {
		c.Workers = n
	}
}

// WithCacheSize sets the number of images kept in memory.
func WithCacheSize(n int) Option {
	return func(c *Config) {
		c.CacheSize = n
	}
}

// WithLoadOptions sets the options used to load each image.
func WithLoadOptions(opts ...nds.Option) Option {
	return func(c *Config) {
		c.LoadOptions = opts
	}
}

// cacheKey identifies a file version. A rewritten file gets a new key.
type cacheKey struct {
	path    string
	size    int64
	modTime int64
}

// Catalog loads images from a filesystem. It is safe for concurrent use.
type Catalog struct {
	fs    afero.Fs
	cfg   Config
	cache *lru.Cache[cacheKey, *nds.Rom]
}

// Entry is the result of loading one file during a scan.
type Entry struct {
	Path string
	Rom  *nds.Rom
	Err  error
}

// New returns a Catalog reading from fs.
func New(fs afero.Fs, opts ...Option) (*Catalog, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	cache, err := lru.New[cacheKey, *nds.Rom](cfg.CacheSize)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return &Catalog{fs: fs, cfg: cfg, cache: cache}, nil
}

// Load returns the image at path, from the cache when the file is unchanged.
func (c *Catalog) Load(path string) (*nds.Rom, error) {
	info, err := c.fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	key := cacheKey{path: path, size: info.Size(), modTime: info.ModTime().UnixNano()}
	if rom, ok := c.cache.Get(key); ok {
		glog.V(2).Infof("catalog: cache hit %s", path)
		return rom, nil
	}

	data, err := archive.ReadFile(c.fs, path)
	if err != nil {
		return nil, err
	}
	rom, err := nds.Load(data, c.cfg.LoadOptions...)
	if err != nil {
		return nil, fmt.Errorf("catalog: %s: %w", path, err)
	}
	c.cache.Add(key, rom)
	return rom, nil
}

// Len returns the number of cached images.
func (c *Catalog) Len() int {
	return c.cache.Len()
}

// Files returns the supported files under dir, sorted by path.
func (c *Catalog) Files(dir string) ([]string, error) {
	var paths []string
	err := afero.Walk(c.fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && archive.Supported(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	sort.Strings(paths)
	return paths, nil
}

// Scan loads every supported file under dir. A file that fails to load is
// reported in its Entry and does not stop the scan. The entries are sorted by
// path.
func (c *Catalog) Scan(ctx context.Context, dir string) ([]Entry, error) {
	paths, err := c.Files(dir)
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.Workers)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			rom, err := c.Load(path)
			if err != nil {
				glog.Warningf("catalog: %v", err)
			}
			entries[i] = Entry{Path: path, Rom: rom, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return entries, nil
}
