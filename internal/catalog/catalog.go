// Package catalog loads the static site content: the search dataset, the
// event catalog and the impact stats. Content ships embedded in the binary
// and can be replaced by a YAML file of the same shape.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"careergranny/internal/calendar"
	"careergranny/internal/domain"
)

//go:embed data/catalog.yaml
var embedded []byte

// EmbeddedSource names the built-in catalog in logs and events
const EmbeddedSource = "embedded"

var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is the full static dataset
type Catalog struct {
	Search []domain.SearchRecord `yaml:"search"`
	Events []domain.EventRecord  `yaml:"events"`
	Stats  []domain.Stat         `yaml:"stats"`
}

// Default returns the embedded catalog
func Default() (*Catalog, error) {
	return Parse(embedded)
}

// Load reads the catalog at path, or the embedded one when path is empty.
// An .ics path replaces only the embedded events. It returns the source
// name alongside the catalog.
func Load(path string) (*Catalog, string, error) {
	if path == "" {
		c, err := Default()
		return c, EmbeddedSource, err
	}

	if strings.EqualFold(filepath.Ext(path), ".ics") {
		c, err := loadCalendar(path)
		return c, path, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, path, fmt.Errorf("failed to read catalog: %w", err)
	}
	c, err := Parse(data)
	return c, path, err
}

func loadCalendar(path string) (*Catalog, error) {
	c, err := Default()
	if err != nil {
		return nil, err
	}
	events, err := calendar.ImportFile(path)
	if err != nil {
		return nil, err
	}
	c.Events = events
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Parse decodes and validates catalog YAML
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks the invariants the rest of the app relies on
func (c *Catalog) Validate() error {
	var problems []string

	for i, r := range c.Search {
		if strings.TrimSpace(r.Title) == "" {
			problems = append(problems, fmt.Sprintf("search[%d]: title is required", i))
		}
		if !r.Category.Known() {
			problems = append(problems, fmt.Sprintf("search[%d]: unknown type %q", i, r.Category))
		}
	}

	seen := make(map[int]bool, len(c.Events))
	for i, e := range c.Events {
		if seen[e.ID] {
			problems = append(problems, fmt.Sprintf("events[%d]: duplicate id %d", i, e.ID))
		}
		seen[e.ID] = true
		if strings.TrimSpace(e.Title) == "" {
			problems = append(problems, fmt.Sprintf("events[%d]: title is required", i))
		}
		if e.Category == "" {
			problems = append(problems, fmt.Sprintf("events[%d]: type is required", i))
		}
		if _, err := e.Day(); err != nil {
			problems = append(problems, fmt.Sprintf("events[%d]: date %q is not YYYY-MM-DD", i, e.Date))
		}
	}

	for i, s := range c.Stats {
		if s.Target < 0 {
			problems = append(problems, fmt.Sprintf("stats[%d]: target must not be negative", i))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidCatalog, strings.Join(problems, ", "))
	}
	return nil
}
