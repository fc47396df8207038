package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/robfig/cron/v3"

	"careergranny/internal/eventbus"
)

// FileName is the config file looked up in the working directory
const FileName = ".careergranny.toml"

// Config represents the application configuration
type Config struct {
	Version  int            `toml:"version"`
	DataFile string         `toml:"data_file,omitempty"` // catalog override; embedded data when empty
	Export   string         `toml:"export_file"`         // where "e" writes the .ics
	LogFile  string         `toml:"log_file"`
	LogLevel string         `toml:"log_level"`
	Search   SearchConfig   `toml:"search"`
	Carousel CarouselConfig `toml:"carousel"`
	Contact  ContactConfig  `toml:"contact"`
	UI       UISettings     `toml:"ui"`
}

// SearchConfig tunes the search box
type SearchConfig struct {
	MinQueryLength int `toml:"min_query_length"`
}

// CarouselConfig tunes the home page event carousel
type CarouselConfig struct {
	VisibleCount   int    `toml:"visible_count"`
	PreviewSize    int    `toml:"preview_size"`
	CooldownMS     int    `toml:"cooldown_ms"`
	AutoAdvance    string `toml:"auto_advance"` // cron expression, "" disables
	SwipeThreshold int    `toml:"swipe_threshold"`
	ResizeDebounce int    `toml:"resize_debounce_ms"`
}

// ContactConfig tunes the contact form
type ContactConfig struct {
	SubmitDelayMS int `toml:"submit_delay_ms"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Typewriter      bool     `toml:"typewriter"`
	Phrases         []string `toml:"phrases"`
	NotificationSec int      `toml:"notification_seconds"`
}

// Cooldown is how long the carousel stays locked after an accepted move
func (c CarouselConfig) Cooldown() time.Duration {
	return time.Duration(c.CooldownMS) * time.Millisecond
}

// ResizeDelay is the debounce applied to terminal resizes before the carousel resets
func (c CarouselConfig) ResizeDelay() time.Duration {
	return time.Duration(c.ResizeDebounce) * time.Millisecond
}

// AutoAdvanceSchedule parses the auto-advance expression. A nil schedule means auto-advance is off.
func (c CarouselConfig) AutoAdvanceSchedule() (cron.Schedule, error) {
	if c.AutoAdvance == "" {
		return nil, nil
	}
	sched, err := cron.ParseStandard(c.AutoAdvance)
	if err != nil {
		return nil, fmt.Errorf("invalid carousel auto_advance %q: %w", c.AutoAdvance, err)
	}
	return sched, nil
}

// SubmitDelay is the simulated hand-off time of a contact submission
func (c ContactConfig) SubmitDelay() time.Duration {
	return time.Duration(c.SubmitDelayMS) * time.Millisecond
}

// NotificationTTL is how long a status notification stays visible
func (u UISettings) NotificationTTL() time.Duration {
	return time.Duration(u.NotificationSec) * time.Second
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service bound to path
func NewConfigService(path string) ConfigService {
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	return &configService{filePath: path, bus: bus}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the bound path, creating it with defaults on first run.
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = DefaultConfig()
		if err := cs.Save(cfg); err != nil {
			// still usable in memory
			return cfg, err
		}
	} else if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}
	return cfg, nil
}

// Save saves the configuration to the bound path
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.Normalize()

	if _, err := cfg.Carousel.AutoAdvanceSchedule(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultPhrases are the rotating hero headlines
func DefaultPhrases() []string {
	return []string{
		"One Student at a Time",
		"Through AI-Powered Guidance",
		"Building Tech Leaders",
		"Creating Opportunities",
		"Inspiring Innovation",
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version:  1,
		Export:   "careergranny-events.ics",
		LogFile:  "careergranny.log",
		LogLevel: "info",
		Search: SearchConfig{
			MinQueryLength: 2,
		},
		Carousel: CarouselConfig{
			VisibleCount:   3,
			PreviewSize:    6,
			CooldownMS:     500,
			AutoAdvance:    "@every 5s",
			SwipeThreshold: 8, // terminal cells
			ResizeDebounce: 250,
		},
		Contact: ContactConfig{
			SubmitDelayMS: 2000,
		},
		UI: UISettings{
			Typewriter:      true,
			Phrases:         DefaultPhrases(),
			NotificationSec: 5,
		},
	}
}

// Normalize fills zero values with defaults so partial files still behave.
// AutoAdvance is left alone: an empty string turns auto-advance off.
func (c *Config) Normalize() {
	def := DefaultConfig()
	if c.Version == 0 {
		c.Version = def.Version
	}
	if c.Export == "" {
		c.Export = def.Export
	}
	if c.LogFile == "" {
		c.LogFile = def.LogFile
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if c.Search.MinQueryLength <= 0 {
		c.Search.MinQueryLength = def.Search.MinQueryLength
	}
	if c.Carousel.VisibleCount <= 0 {
		c.Carousel.VisibleCount = def.Carousel.VisibleCount
	}
	if c.Carousel.PreviewSize <= 0 {
		c.Carousel.PreviewSize = def.Carousel.PreviewSize
	}
	if c.Carousel.CooldownMS <= 0 {
		c.Carousel.CooldownMS = def.Carousel.CooldownMS
	}
	if c.Carousel.SwipeThreshold <= 0 {
		c.Carousel.SwipeThreshold = def.Carousel.SwipeThreshold
	}
	if c.Carousel.ResizeDebounce <= 0 {
		c.Carousel.ResizeDebounce = def.Carousel.ResizeDebounce
	}
	if c.Contact.SubmitDelayMS <= 0 {
		c.Contact.SubmitDelayMS = def.Contact.SubmitDelayMS
	}
	if len(c.UI.Phrases) == 0 {
		c.UI.Phrases = def.UI.Phrases
	}
	if c.UI.NotificationSec <= 0 {
		c.UI.NotificationSec = def.UI.NotificationSec
	}
}
