// ABOUTME: Configuration management for calendar settings
// ABOUTME: Loads the JSON config file, applies environment overrides and builds the period factory

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"

	"github.com/harper/calendr/internal/period"
)

// ErrInvalidConfig is returned when a loaded config fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Config stores calendr configuration.
type Config struct {
	// FirstWeekday is a weekday name ("monday", "sun") or number (0 is Sunday).
	// Defaults to Monday.
	FirstWeekday string `json:"first_weekday,omitempty" envconfig:"CALENDR_FIRST_WEEKDAY" validate:"omitempty,weekday"`

	// DateLayout is the Go time layout used to print period bounds.
	DateLayout string `json:"date_layout,omitempty" envconfig:"CALENDR_DATE_LAYOUT"`

	// Style selects the glamour style for markdown output.
	Style string `json:"style,omitempty" envconfig:"CALENDR_STYLE" validate:"omitempty,oneof=dark light notty ascii pink dracula"`

	// Timezone is the IANA location used for dates given without an offset.
	Timezone string `json:"timezone,omitempty" envconfig:"CALENDR_TIMEZONE" validate:"omitempty,timezone"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		_, err := ParseWeekday(fl.Field().String())
		return err == nil
	})
	if err != nil {
		panic(err)
	}
	return v
}

// GetDateLayout returns the configured layout, defaulting to DefaultDateLayout.
func (c *Config) GetDateLayout() string {
	if c.DateLayout == "" {
		return DefaultDateLayout
	}
	return c.DateLayout
}

// GetStyle returns the configured markdown style, defaulting to DefaultStyle.
func (c *Config) GetStyle() string {
	if c.Style == "" {
		return DefaultStyle
	}
	return c.Style
}

// GetFirstWeekday returns the configured first day of the week.
func (c *Config) GetFirstWeekday() time.Weekday {
	if c.FirstWeekday == "" {
		return period.DefaultFirstWeekday
	}
	wd, err := ParseWeekday(c.FirstWeekday)
	if err != nil {
		return period.DefaultFirstWeekday
	}
	return wd
}

// GetLocation returns the configured location, defaulting to time.Local.
func (c *Config) GetLocation() *time.Location {
	if c.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Factory builds a period factory honouring the configured first weekday.
func (c *Config) Factory() (*period.Factory, error) {
	f := period.NewFactory()
	if err := f.SetFirstWeekday(int(c.GetFirstWeekday())); err != nil {
		return nil, err
	}
	return f, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// ParseWeekday accepts a weekday number (0 is Sunday) or an English name,
// full or abbreviated to at least three letters.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if n < 0 || n > 6 {
			return 0, fmt.Errorf("%w: %d", period.ErrInvalidWeekday, n)
		}
		return time.Weekday(n), nil
	}
	if len(s) >= 3 {
		for wd := time.Sunday; wd <= time.Saturday; wd++ {
			if strings.HasPrefix(strings.ToLower(wd.String()), s) {
				return wd, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: %q", period.ErrInvalidWeekday, s)
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "calendr", "config.json")
}

// Load reads config from disk, then applies environment overrides. A missing
// file yields the defaults.
func Load() (*Config, error) {
	cfg, err := LoadFile()
	if err != nil {
		return nil, err
	}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads the config file alone. Environment overrides are not
// applied, so the result can be changed and saved without persisting them.
func LoadFile() (*Config, error) {
	return loadFile(GetConfigPath())
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	if err := c.Validate(); err != nil {
		return err
	}
	path := GetConfigPath()
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), DefaultDirPerms); err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, DefaultFilePerms); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
