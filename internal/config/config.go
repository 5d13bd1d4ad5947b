// Package config loads the board's TOML configuration.
//
// Defaults come first; a config file, when given, is decoded on top of them,
// so a file only has to name what it changes.
//
//	[canvas]
//	width = 800
//	height = 400
//	background = "#FFFFFF"
//
//	[pen]
//	tool = "pen"
//	color = "#000000"
//	width = 5
//
//	[history]
//	limit = 0
//
//	[server]
//	addr = ":8888"
//	mdns = true
//	name = "MyPaintBoard"
//
//	[log]
//	level = "info"
package config

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"MyPaintBoard/internal/errors"
	"MyPaintBoard/internal/raster"
	"MyPaintBoard/internal/state"
)

type Config struct {
	Canvas  Canvas  `toml:"canvas"`
	Pen     Pen     `toml:"pen"`
	History History `toml:"history"`
	Server  Server  `toml:"server"`
	Log     Log     `toml:"log"`
}

type Canvas struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
}

type Pen struct {
	Tool  string `toml:"tool"`
	Color string `toml:"color"`
	Width int    `toml:"width"`
}

type History struct {
	// Limit caps the undo stack; 0 keeps everything.
	Limit int `toml:"limit"`
}

type Server struct {
	Addr string `toml:"addr"`
	MDNS bool   `toml:"mdns"`
	Name string `toml:"name"`
}

type Log struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Canvas:  Canvas{Width: 800, Height: 400, Background: "#FFFFFF"},
		Pen:     Pen{Tool: "pen", Color: "#000000", Width: 5},
		History: History{Limit: 0},
		Server:  Server{Addr: ":8888", MDNS: true, Name: "MyPaintBoard"},
		Log:     Log{Level: "info"},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if err := Decode(string(data), cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode parses TOML text into cfg and validates the result.
func Decode(text string, cfg *Config) error {
	md, err := toml.Decode(text, cfg)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "unknown config key %q", undecoded[0].String())
	}
	return cfg.Validate()
}

// Validate checks every field that a session or server would reject later.
func (c *Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "canvas size %dx%d must be positive", c.Canvas.Width, c.Canvas.Height)
	}
	if _, err := raster.ParseColor(c.Canvas.Background); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "canvas.background")
	}
	if _, err := raster.ParseColor(c.Pen.Color); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "pen.color")
	}
	if _, err := state.ParseTool(c.Pen.Tool); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "pen.tool")
	}
	if c.Pen.Width < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "pen.width %d must be at least 1", c.Pen.Width)
	}
	if c.History.Limit < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "history.limit %d must not be negative", c.History.Limit)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "log.level")
	}
	return nil
}

// LogLevel returns the configured level, falling back to info.
func (c *Config) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}

// SessionOptions converts the canvas and pen sections into session options.
// The config must have passed Validate.
func (c *Config) SessionOptions(logger *log.Logger) state.Options {
	bg, _ := raster.ParseColor(c.Canvas.Background)
	fg, _ := raster.ParseColor(c.Pen.Color)
	tool, _ := state.ParseTool(c.Pen.Tool)
	return state.Options{
		Width:        c.Canvas.Width,
		Height:       c.Canvas.Height,
		Background:   bg,
		Color:        fg,
		StrokeWidth:  c.Pen.Width,
		Tool:         tool,
		HistoryLimit: c.History.Limit,
		Logger:       logger,
	}
}
