package gconf

import (
	"checkerboard/src/base"
	"encoding/json"
	"fmt"
	"os"
)

const DefaultFile string = "checkerboard.json"

type Config struct {
	Size       int    `json:"size"`        // cells per side
	SquareSize int    `json:"square_size"` // pixels per cell
	TPS        int    `json:"tps"`         // frame cap
	Theme      string `json:"theme"`       // classic/wood
	Debug      bool   `json:"debug"`       // overlay
	path       string
}

func defaultConfig() Config {
	return Config{
		Size:       base.DefaultSize,
		SquareSize: base.DefaultSquareSize,
		TPS:        60,
		Theme:      "classic",
		Debug:      false,
	}
}

// NewGUIConfig reads path, or returns defaults when the file does not exist.
func NewGUIConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultFile
	}

	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		def := defaultConfig()
		def.path = path
		return &def, nil
	} else if err != nil {
		return nil, err
	}

	conf, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer conf.Close()

	// absent fields keep their defaults
	c := defaultConfig()
	dec := json.NewDecoder(conf)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("error decode config: %w", err)
	}
	c.path = path
	correctableConfig(&c)

	return &c, nil
}

func (c *Config) Path() string { return c.path }

func (c *Config) Save() error {
	jsonData, err := json.MarshalIndent(c, "", "    ")
	if err != nil {
		return err
	}
	path := c.path
	if path == "" {
		path = DefaultFile
	}
	return os.WriteFile(path, jsonData, 0644)
}

// Override applies command line values, zero means not set.
func (c *Config) Override(size, squareSize int) {
	if size != 0 {
		c.Size = size
	}
	if squareSize != 0 {
		c.SquareSize = squareSize
	}
	correctableConfig(c)
}

func correctableConfig(c *Config) {
	def := defaultConfig()
	if c.Size < base.MinSize || c.Size > 20 {
		c.Size = def.Size
	}
	if c.SquareSize < 20 || c.SquareSize > 200 {
		c.SquareSize = def.SquareSize
	}
	if c.TPS <= 0 || c.TPS > 240 {
		c.TPS = def.TPS
	}
	if c.Theme != "classic" && c.Theme != "wood" {
		c.Theme = def.Theme
	}
}
