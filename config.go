package fotoprint

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override, e.g. FOTOPRINT_CAPACITY.
const EnvPrefix = "FOTOPRINT"

// Config holds editor settings. Values come from DefaultConfig, then an
// optional YAML file, then the environment.
type Config struct {
	Capacity    int     `yaml:"capacity" envconfig:"CAPACITY"`
	CloneOffset float64 `yaml:"clone_offset" envconfig:"CLONE_OFFSET"`

	ShapeColor Color `yaml:"shape_color" envconfig:"SHAPE_COLOR"`
	Background Color `yaml:"background" envconfig:"BACKGROUND"`
	Highlight  Color `yaml:"highlight" envconfig:"HIGHLIGHT"`

	CanvasWidth   int `yaml:"canvas_width" envconfig:"CANVAS_WIDTH"`
	CanvasHeight  int `yaml:"canvas_height" envconfig:"CANVAS_HEIGHT"`
	PaletteWidth  int `yaml:"palette_width" envconfig:"PALETTE_WIDTH"`
	PaletteHeight int `yaml:"palette_height" envconfig:"PALETTE_HEIGHT"`

	ExportPath string `yaml:"export_path" envconfig:"EXPORT_PATH"`
	ExportDir  string `yaml:"export_dir" envconfig:"EXPORT_DIR"` // labeled exports from scripts
	// ExportTimeout bounds how long an export waits for pending picture
	// loads.
	ExportTimeout time.Duration `yaml:"export_timeout" envconfig:"EXPORT_TIMEOUT"`
	Debug         bool          `yaml:"debug" envconfig:"DEBUG"`

	// Palette lists the prototypes, top row first. Positions are relative
	// to each cell.
	Palette []ShapeSpec `yaml:"palette" ignored:"true"`
}

// DefaultConfig returns the stock settings.
func DefaultConfig() Config {
	return Config{
		Capacity:      DefaultCapacity,
		CloneOffset:   DefaultCloneOffset,
		ShapeColor:    MustParseColor("#faab41"),
		Background:    MustParseColor("#fff"),
		Highlight:     ColorHighlight,
		CanvasWidth:   800,
		CanvasHeight:  600,
		PaletteWidth:  240,
		PaletteHeight: 240,
		ExportPath:    "photo.png",
		ExportDir:     "screenshots",
		ExportTimeout: 5 * time.Second,
		Palette:       DefaultPaletteSpecs(),
	}
}

// LoadConfig reads path over the defaults, applies environment overrides,
// and validates the result. A missing file is not an error; pass "" to skip
// the file entirely.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			Logger().Debug("config file not found, using defaults", "path", path)
		case err != nil:
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("config env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the settings can build an editor.
func (c Config) Validate() error {
	var errs []error
	if c.Capacity <= 0 {
		errs = append(errs, fmt.Errorf("capacity must be positive, got %d", c.Capacity))
	}
	if c.CanvasWidth <= 0 || c.CanvasHeight <= 0 {
		errs = append(errs, fmt.Errorf("canvas size must be positive, got %dx%d", c.CanvasWidth, c.CanvasHeight))
	}
	if c.PaletteWidth <= 0 || c.PaletteHeight <= 0 {
		errs = append(errs, fmt.Errorf("palette size must be positive, got %dx%d", c.PaletteWidth, c.PaletteHeight))
	}
	if c.ExportTimeout <= 0 {
		errs = append(errs, fmt.Errorf("export timeout must be positive, got %v", c.ExportTimeout))
	}
	if len(c.Palette) > PaletteSlots {
		errs = append(errs, fmt.Errorf("palette holds at most %d prototypes, got %d", PaletteSlots, len(c.Palette)))
	}
	for i, sp := range c.Palette {
		if _, err := sp.Build(); err != nil {
			errs = append(errs, fmt.Errorf("palette slot %d: %w", i, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
