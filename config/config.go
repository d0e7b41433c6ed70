// Package config holds the settings of the scene editor: window, view,
// debug switches and the optional inspect and export outputs.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
)

// Config is loaded from defaults, then an optional JSON file, then
// command-line flags, each layer overriding the previous one.
type Config struct {
	Title       string  `json:"title"`
	Width       int     `json:"width"`
	Height      int     `json:"height"`
	UnitsAcross float64 `json:"unitsAcross"` // world units spanning the shorter window side
	ShowGrid    bool    `json:"showGrid"`

	Debug   bool   `json:"debug"`   // scene graph debug checks
	DevMode bool   `json:"devMode"` // console logging at debug level
	Level   string `json:"level"`   // log level: debug, info, warn, error

	InspectAddr string `json:"inspectAddr"` // empty disables the inspect server
	ExportDir   string `json:"exportDir"`
	Script      string `json:"script"` // optional edit script run at startup
}

// Default returns the settings used when nothing else is given: a square
// window showing ten world units, enough for the whole figure.
func Default() Config {
	return Config{
		Title:       "Scene Graph",
		Width:       800,
		Height:      800,
		UnitsAcross: 10,
		ShowGrid:    true,
		Level:       "info",
		ExportDir:   "exports",
	}
}

// Load reads a JSON file over the defaults. Fields missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("config: %w", err)
	}
	if err := json.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return c, nil
}

// RegisterFlags binds every field to a flag on fs, using the current values
// as defaults.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.Title, "title", c.Title, "window title")
	fs.IntVar(&c.Width, "width", c.Width, "window width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.Float64Var(&c.UnitsAcross, "units", c.UnitsAcross, "world units across the shorter window side")
	fs.BoolVar(&c.ShowGrid, "grid", c.ShowGrid, "draw the background grid")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable scene graph debug checks")
	fs.BoolVar(&c.DevMode, "dev", c.DevMode, "development logging")
	fs.StringVar(&c.Level, "level", c.Level, "log level (debug, info, warn, error)")
	fs.StringVar(&c.InspectAddr, "inspect", c.InspectAddr, "address of the inspect server, empty to disable")
	fs.StringVar(&c.ExportDir, "export-dir", c.ExportDir, "directory for exported frames")
	fs.StringVar(&c.Script, "script", c.Script, "edit script to run at startup")
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height))
	}
	if c.UnitsAcross <= 0 {
		errs = append(errs, fmt.Errorf("units across %g must be positive", c.UnitsAcross))
	}
	switch c.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("unknown log level %q", c.Level))
	}
	if c.ExportDir == "" {
		errs = append(errs, errors.New("export dir must not be empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
