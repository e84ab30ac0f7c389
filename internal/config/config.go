// Package config resolves command-line options, the optional YAML defaults
// file and the locale environment into a calendar.Request.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"monthcal/internal/calendar"
)

const (
	appDir   = "monthcal"
	fileName = "config.yaml"

	// EnvConfig names the config file when --config is not given.
	EnvConfig = "MONTHCAL_CONFIG"
)

// localeEnv is checked in order; the first non-empty value wins.
var localeEnv = []string{"LC_ALL", "LANG"}

// File is the on-disk defaults document.
type File struct {
	Locale string `yaml:"locale,omitempty"`
	Color  string `yaml:"color,omitempty"`
}

// Options are the command-line values. Nil or empty fields fall back to the
// config file, the environment and today's date, in that order.
type Options struct {
	Month      *int
	Year       *int
	Locale     string
	Color      string
	ConfigPath string
}

// Settings is the fully resolved invocation.
type Settings struct {
	Request calendar.Request
	Color   ColorMode
}

// DefaultPath returns $XDG_CONFIG_HOME/monthcal/config.yaml or the platform equivalent.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}
	return filepath.Join(dir, appDir, fileName), nil
}

// Path picks the config file: path if set, then MONTHCAL_CONFIG, then
// DefaultPath. explicit is false only for the default location.
func Path(path string) (p string, explicit bool, err error) {
	if path != "" {
		return path, true, nil
	}
	if p := os.Getenv(EnvConfig); p != "" {
		return p, true, nil
	}
	p, err = DefaultPath()
	return p, false, err
}

// Load reads the YAML file chosen by Path. Only an explicitly named file has
// to exist. The returned string is the path that was read, or "" if none was.
func Load(path string) (File, string, error) {
	var f File
	path, explicit, err := Path(path)
	if err != nil {
		return f, "", nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return f, "", nil
		}
		return f, "", fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return f, "", fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return f, path, nil
}

// Save writes f as YAML, creating the parent directory.
func (f File) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(f)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// LocaleSignal returns the first non-empty of LC_ALL and LANG.
func LocaleSignal() string {
	for _, k := range localeEnv {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

// Resolve merges opts over f over the environment, defaulting month and year
// to now. Month and year are not range checked here.
func Resolve(opts Options, f File, now time.Time) (Settings, error) {
	var s Settings

	loc, err := resolveLocale(opts.Locale, f.Locale)
	if err != nil {
		return s, err
	}
	color, err := resolveColor(opts.Color, f.Color)
	if err != nil {
		return s, err
	}

	req := calendar.Request{
		Month:  int(now.Month()),
		Year:   now.Year(),
		Today:  now,
		Locale: loc,
	}
	if opts.Month != nil {
		req.Month = *opts.Month
	}
	if opts.Year != nil {
		req.Year = *opts.Year
	}

	s.Request = req
	s.Color = color
	return s, nil
}

func resolveLocale(flag, file string) (calendar.Locale, error) {
	if flag != "" {
		return calendar.ParseLocale(flag)
	}
	if file = strings.TrimSpace(file); file != "" {
		l, err := calendar.ParseLocale(file)
		if err != nil {
			return l, fmt.Errorf("config locale: %w", err)
		}
		return l, nil
	}
	return calendar.LocaleFromSignal(LocaleSignal()), nil
}

func resolveColor(flag, file string) (ColorMode, error) {
	if flag != "" {
		return ParseColor(flag)
	}
	if file = strings.TrimSpace(file); file != "" {
		c, err := ParseColor(file)
		if err != nil {
			return c, fmt.Errorf("config color: %w", err)
		}
		return c, nil
	}
	return ColorAlways, nil
}
