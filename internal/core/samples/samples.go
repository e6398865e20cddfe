// Package samples serves example inputs from the embedded samples.yaml table
package samples

import (
	_ "embed"
	"fmt"
	"sync"

	perr "xaoc/internal/platform/errors"

	"gopkg.in/yaml.v3"
)

//go:embed samples.yaml
var embedded []byte

type table struct {
	Years map[int]map[int][]string `yaml:"years"`
}

var load = sync.OnceValues(func() (*table, error) { return parse(embedded) })

func parse(b []byte) (*table, error) {
	var t table
	if err := yaml.Unmarshal(b, &t); err != nil {
		return nil, fmt.Errorf("samples: decode table: %w", err)
	}
	return &t, nil
}

// Lookup returns sample index for (year, day)
func Lookup(year, day, index int) (string, error) {
	t, err := load()
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnknown, "samples table is corrupt")
	}
	return t.lookup(year, day, index)
}

func (t *table) lookup(year, day, index int) (string, error) {
	list := t.Years[year][day]
	if len(list) == 0 {
		return "", perr.NoSamplef("no canned sample for %d day %d", year, day)
	}
	if index < 0 || index >= len(list) {
		return "", perr.NoSamplef("no canned sample %d for %d day %d (have %d)", index, year, day, len(list))
	}
	return list[index], nil
}
