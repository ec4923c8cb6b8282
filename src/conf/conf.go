package conf

import (
	"duelchess/src/logx"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

const DefaultFile = "duelchess.json"

type Config struct {
	Theme   string `json:"theme"`     // light/dark
	Lang    string `json:"language"`  // en/ru
	WindowH int    `json:"window_h"`  //
	WindowW int    `json:"window_w"`  //
	Debug   bool   `json:"debug"`     // true/false
	Level   string `json:"log_level"` // debug/info/warn/error
	LogFile string `json:"log_file"`  // ignored when logging to console

	path string
}

func defaultConfig() Config {
	return Config{
		Theme:   "light",
		Lang:    "en",
		WindowH: 720,
		WindowW: 640,
		Debug:   false,
		Level:   "info",
		LogFile: "duelchess.log",
	}
}

// NewConfig reads file, a missing file gives the defaults. An empty name
// means DefaultFile.
func NewConfig(file string) (*Config, error) {
	if file == "" {
		file = DefaultFile
	}

	_, err := os.Stat(file)
	if errors.Is(err, os.ErrNotExist) {
		def := defaultConfig()
		def.path = file
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	conf, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer conf.Close()

	dec := json.NewDecoder(conf)
	var c Config
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("error decode config: %w", err)
	}
	correctableConfig(&c)
	c.path = file

	return &c, nil
}

func (c *Config) Path() string {
	return c.path
}

func (c *Config) Save() error {
	jsonData, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(c.path, jsonData, 0644); err != nil {
		return fmt.Errorf("error save config: %w", err)
	}
	return nil
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Theme != "light" && c.Theme != "dark" {
		c.Theme = def.Theme
	}
	if c.Lang != "en" && c.Lang != "ru" {
		c.Lang = def.Lang
	}
	if c.WindowH < def.WindowH || c.WindowW < def.WindowW {
		c.WindowH = def.WindowH
		c.WindowW = def.WindowW
	}
	if !logx.IsKnownLevel(c.Level) {
		c.Level = def.Level
	}
	if c.LogFile == "" {
		c.LogFile = def.LogFile
	}
}
