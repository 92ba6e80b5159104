package config

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	calendar "github.com/SebastiaanKlippert/go-calendar"
)

// Output formats understood by the command line tool.
var Outputs = []string{"text", "json", "toml"}

// ErrInvalid is wrapped by every validation error of Load and ParseCalendar.
var ErrInvalid = fmt.Errorf("invalid configuration")

// Config holds the runtime configuration of jdconv.
// Values are populated from .jdconv.yaml, JDCONV_* env vars, and CLI flags.
type Config struct {
	Calendar    string `mapstructure:"calendar"`
	Reformation string `mapstructure:"reformation"`
	Output      string `mapstructure:"output"`
	Listen      string `mapstructure:"listen"`
	Verbose     bool   `mapstructure:"verbose"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("calendar", "reforming")
	v.SetDefault("reformation", "gregory")
	v.SetDefault("output", "text")
	v.SetDefault("listen", "localhost:8080")
	v.SetDefault("verbose", false)
}

// Load reads configuration from v, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	if !slices.Contains(Outputs, cfg.Output) {
		return Config{}, fmt.Errorf("%w: output %q, want one of %s", ErrInvalid, cfg.Output, strings.Join(Outputs, ", "))
	}
	if _, err := cfg.BuildCalendar(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// BuildCalendar returns the calendar named by the calendar and reformation keys.
func (c Config) BuildCalendar() (calendar.Calendar, error) {
	return ParseCalendar(c.Calendar, c.Reformation)
}

// ParseCalendar builds a calendar from a kind (julian, gregorian or reforming)
// and, for reforming calendars, a reformation given either as a Julian day
// number or as a name known to calendar.LookupReformation. An empty kind is
// reforming.
func ParseCalendar(kind, reformation string) (calendar.Calendar, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "julian":
		return calendar.Julian, nil
	case "gregorian":
		return calendar.Gregorian, nil
	case "reforming", "":
	default:
		return calendar.Calendar{}, fmt.Errorf("%w: calendar %q, want julian, gregorian or reforming", ErrInvalid, kind)
	}

	r, err := ParseReformation(reformation)
	if err != nil {
		return calendar.Calendar{}, err
	}
	c, err := calendar.Reforming(r)
	if err != nil {
		return calendar.Calendar{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return c, nil
}

// ParseReformation accepts a Julian day number or a reformation name.
func ParseReformation(s string) (int32, error) {
	if r, ok := calendar.LookupReformation(s); ok {
		return r, nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(s), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: reformation %q, want a Julian day number or one of %s",
			ErrInvalid, s, strings.Join(calendar.ReformationNames(), ", "))
	}
	return int32(n), nil
}
