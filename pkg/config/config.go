// Package config loads the optional sway.yaml configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/sway/pkg/graphics"
	"github.com/go-drift/sway/pkg/memory"
)

// FileName is the name of the configuration file looked up in a project root.
const FileName = "sway.yaml"

// Config represents sway.yaml.
type Config struct {
	App    AppConfig    `yaml:"app"`
	Screen ScreenConfig `yaml:"screen"`
	Input  InputConfig  `yaml:"input"`
	Memory MemoryConfig `yaml:"memory"`
	Layout LayoutConfig `yaml:"layout"`
	Text   TextConfig   `yaml:"text"`
	Theme  ThemeConfig  `yaml:"theme"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// ScreenConfig is the initial screen size.
type ScreenConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// InputConfig tunes pointer handling.
type InputConfig struct {
	DragThreshold      float64 `yaml:"drag_threshold"`
	WheelPixelsPerLine float64 `yaml:"wheel_pixels_per_line"`
}

// MemoryConfig selects the eviction policy: "unvisited" or "retain".
type MemoryConfig struct {
	Eviction string `yaml:"eviction"`
}

// LayoutConfig holds layout defaults.
type LayoutConfig struct {
	DefaultSeparation float64 `yaml:"default_separation"`
}

// TextConfig configures text shaping.
type TextConfig struct {
	FontSize  float64 `yaml:"font_size"`
	CacheSize int     `yaml:"cache_size"`
}

// ThemeConfig lists theme colors as hex strings.
type ThemeConfig struct {
	TextColor  string            `yaml:"text_color"`
	Background string            `yaml:"background"`
	Accent     string            `yaml:"accent"`
	Button     ButtonThemeConfig `yaml:"button"`
}

// ButtonThemeConfig lists button colors.
type ButtonThemeConfig struct {
	Fill   string `yaml:"fill"`
	Stroke string `yaml:"stroke"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Screen: ScreenConfig{Width: 800, Height: 600},
		Input:  InputConfig{DragThreshold: 4, WheelPixelsPerLine: 50},
		Memory: MemoryConfig{Eviction: memory.EvictUnvisited.String()},
		Layout: LayoutConfig{DefaultSeparation: 3},
		Text:   TextConfig{FontSize: 14, CacheSize: 256},
		Theme: ThemeConfig{
			TextColor:  "#dddddd",
			Background: "#1e1e1e",
			Accent:     "#3d7fd9",
			Button:     ButtonThemeConfig{Fill: "#303030", Stroke: "#464646"},
		},
	}
}

// Parse decodes data on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// LoadOptional reads sway.yaml from dir if present, otherwise returns the defaults.
func LoadOptional(dir string) (Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("failed to read %s: %w", FileName, err)
	}
	return Parse(data)
}

// Marshal encodes cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate checks value ranges and color syntax.
func (c Config) Validate() error {
	var errs []error
	if c.Screen.Width < 0 || c.Screen.Height < 0 {
		errs = append(errs, fmt.Errorf("screen size must not be negative (got %vx%v)", c.Screen.Width, c.Screen.Height))
	}
	if c.Input.DragThreshold < 0 {
		errs = append(errs, fmt.Errorf("input.drag_threshold must not be negative (got %v)", c.Input.DragThreshold))
	}
	if c.Input.WheelPixelsPerLine < 0 {
		errs = append(errs, fmt.Errorf("input.wheel_pixels_per_line must not be negative (got %v)", c.Input.WheelPixelsPerLine))
	}
	if _, err := memory.ParsePolicy(c.Memory.Eviction); err != nil {
		errs = append(errs, fmt.Errorf("memory.eviction: %w", err))
	}
	if c.Layout.DefaultSeparation < 0 {
		errs = append(errs, fmt.Errorf("layout.default_separation must not be negative (got %v)", c.Layout.DefaultSeparation))
	}
	if c.Text.FontSize < 0 {
		errs = append(errs, fmt.Errorf("text.font_size must not be negative (got %v)", c.Text.FontSize))
	}
	for name, value := range map[string]string{
		"theme.text_color":    c.Theme.TextColor,
		"theme.background":    c.Theme.Background,
		"theme.accent":        c.Theme.Accent,
		"theme.button.fill":   c.Theme.Button.Fill,
		"theme.button.stroke": c.Theme.Button.Stroke,
	} {
		if value == "" {
			continue
		}
		if _, err := graphics.Hex(value); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}
	return errors.Join(errs...)
}

// EvictionPolicy returns the parsed memory eviction policy.
func (c Config) EvictionPolicy() memory.Policy {
	p, err := memory.ParsePolicy(c.Memory.Eviction)
	if err != nil {
		return memory.EvictUnvisited
	}
	return p
}

// ScreenSize returns the configured screen size.
func (c Config) ScreenSize() graphics.Size {
	return graphics.Size{Width: c.Screen.Width, Height: c.Screen.Height}
}

// Resolved is a configuration bound to a project directory.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	Config     Config
}

// Resolve loads sway.yaml from dir (if present) and fills the app name from
// the enclosing module when the file does not set one.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}
	cfg.App.Name = appName

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		AppName:    appName,
		Config:     cfg,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Go module (no go.mod found)")
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	prefix, _, ok := module.SplitPathVersion(modulePath)
	if ok {
		parts := strings.Split(prefix, "/")
		if len(parts) > 0 && parts[len(parts)-1] != "" {
			base = parts[len(parts)-1]
		}
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "sway_app"
	}
	return base
}
