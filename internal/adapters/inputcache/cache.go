// Package inputcache keeps downloaded puzzle inputs on disk
// Layout is <root>/inputs/<year>/<day:02>.txt; an entry is written once and never rewritten
package inputcache

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"xaoc/internal/platform/atomicfile"
	perr "xaoc/internal/platform/errors"
	"xaoc/internal/platform/logger"
)

// DirName is the cache directory under the config root
const DirName = "inputs"

// Entry describes one cached input
type Entry struct {
	Year    int
	Day     int
	Size    int64
	ModTime time.Time
	Path    string
}

// Cache is a directory of puzzle inputs
type Cache struct {
	dir string
	log logger.Logger
}

// New returns a Cache under root; nothing is created until the first Put
func New(root string) *Cache {
	return &Cache{dir: filepath.Join(root, DirName), log: *logger.Named("inputcache")}
}

// Dir returns the cache directory
func (c *Cache) Dir() string { return c.dir }

// Path returns the file an input for (year, day) is stored in
func (c *Cache) Path(year, day int) string {
	return filepath.Join(c.dir, strconv.Itoa(year), fmt.Sprintf("%02d.txt", day))
}

// Get returns the cached input and whether there was one
func (c *Cache) Get(year, day int) (string, bool, error) {
	b, err := os.ReadFile(c.Path(year, day))
	switch {
	case err == nil:
		c.log.Debug().Int("year", year).Int("day", day).Int("bytes", len(b)).Msg("input cache hit")
		return string(b), true, nil
	case errors.Is(err, fs.ErrNotExist):
		c.log.Debug().Int("year", year).Int("day", day).Msg("input cache miss")
		return "", false, nil
	default:
		return "", false, perr.ConfigIOf(err, "read cached input %s", c.Path(year, day))
	}
}

// Put stores text for (year, day) unless an entry already exists
func (c *Cache) Put(year, day int, text string) error {
	p := c.Path(year, day)
	created, err := atomicfile.Create(p, []byte(text))
	if err != nil {
		return perr.ConfigIOf(err, "write cached input %s", p)
	}
	if !created {
		c.log.Debug().Str("path", p).Msg("input already cached, kept existing bytes")
		return nil
	}
	c.log.Info().Int("year", year).Int("day", day).Int("bytes", len(text)).Msg("input cached")
	return nil
}

// List returns every cached entry ordered by year then day
// Stray files that do not follow the layout are skipped
func (c *Cache) List() ([]Entry, error) {
	years, err := os.ReadDir(c.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, perr.ConfigIOf(err, "list input cache %s", c.dir)
	}

	var out []Entry
	for _, yd := range years {
		if !yd.IsDir() {
			continue
		}
		year, err := strconv.Atoi(yd.Name())
		if err != nil {
			continue
		}
		days, err := os.ReadDir(filepath.Join(c.dir, yd.Name()))
		if err != nil {
			return nil, perr.ConfigIOf(err, "list input cache %s", yd.Name())
		}
		for _, dd := range days {
			day, ok := dayOf(dd.Name())
			if !ok || !dd.Type().IsRegular() {
				continue
			}
			fi, err := dd.Info()
			if err != nil {
				continue
			}
			out = append(out, Entry{
				Year:    year,
				Day:     day,
				Size:    fi.Size(),
				ModTime: fi.ModTime(),
				Path:    filepath.Join(c.dir, yd.Name(), dd.Name()),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Day < out[j].Day
	})
	return out, nil
}

// dayOf parses "07.txt" style names; partial files never match
func dayOf(name string) (int, bool) {
	stem, ok := strings.CutSuffix(name, ".txt")
	if !ok || len(stem) != 2 {
		return 0, false
	}
	d, err := strconv.Atoi(stem)
	if err != nil || d < 1 || d > 25 {
		return 0, false
	}
	return d, true
}
