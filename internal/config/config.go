package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"camping-showcase/internal/colors"

	"gopkg.in/yaml.v3"
)

// DefaultPath is the showcase config file, relative to the process working directory.
const DefaultPath = "config/showcase.yaml"

// Config holds the showcase's runtime settings. Scene content itself is fixed in code;
// this only covers the window, assets, camera defaults and debug overlays.
type Config struct {
	Window      WindowConfig      `yaml:"window"`
	Camera      CameraConfig      `yaml:"camera"`
	Assets      AssetsConfig      `yaml:"assets"`
	Environment EnvironmentConfig `yaml:"environment"`
	Portal      PortalConfig      `yaml:"portal"`
	Debug       DebugConfig       `yaml:"debug"`
	Log         LogConfig         `yaml:"log"`
}

type WindowConfig struct {
	Width      int32  `yaml:"width"`
	Height     int32  `yaml:"height"`
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
	Resizable  bool   `yaml:"resizable"`
	MSAA       bool   `yaml:"msaa"`
	TargetFPS  int32  `yaml:"target_fps"`
}

// CameraConfig is the camera state before the intro runs.
type CameraConfig struct {
	Position   [3]float32 `yaml:"position"`
	Fov        float32    `yaml:"fov"`
	SmoothTime float32    `yaml:"smooth_time"`
}

type AssetsConfig struct {
	Dir   string `yaml:"dir"`
	Font  string `yaml:"font"`
	Model string `yaml:"model"`
}

type EnvironmentConfig struct {
	Preset     string `yaml:"preset"`
	Background bool   `yaml:"background"`
	ClearColor string `yaml:"clear_color"`
}

// PortalConfig sizes the render texture behind the text's color map.
type PortalConfig struct {
	Size int32 `yaml:"size"`
}

type DebugConfig struct {
	ShowFPS    bool `yaml:"show_fps"`
	ShowCamera bool `yaml:"show_camera"`
	Grid       bool `yaml:"grid"`
}

type LogConfig struct {
	Path string `yaml:"path"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "My Little Camping",
			Resizable: true,
			MSAA:      true,
			TargetFPS: 60,
		},
		Camera: CameraConfig{
			Position:   [3]float32{0, 0, 5},
			Fov:        75,
			SmoothTime: 0.25,
		},
		Assets: AssetsConfig{
			Dir:   "assets",
			Font:  "fonts/Poppins-Black.ttf",
			Model: "models/camping.glb",
		},
		Environment: EnvironmentConfig{
			Preset:     "sunset",
			ClearColor: "#ececec",
		},
		Portal: PortalConfig{Size: 1024},
		Log:    LogConfig{Path: "logs/showcase.txt"},
	}
}

// Load reads the YAML file at path on top of Default(), so a file only needs the keys it changes.
// A missing file is not an error. A file that fails to parse or validate returns Default()
// together with the error so the caller can log it and keep going.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML to path, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings the renderer cannot start with.
func (c Config) Validate() error {
	if !c.Window.Fullscreen && (c.Window.Width <= 0 || c.Window.Height <= 0) {
		return fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Camera.Fov <= 0 || c.Camera.Fov >= 180 {
		return fmt.Errorf("camera fov %v out of range (0, 180)", c.Camera.Fov)
	}
	if c.Camera.SmoothTime < 0 {
		return fmt.Errorf("camera smooth_time %v must not be negative", c.Camera.SmoothTime)
	}
	if c.Portal.Size <= 0 {
		return fmt.Errorf("portal size %d must be positive", c.Portal.Size)
	}
	if _, err := colors.Parse(c.Environment.ClearColor); err != nil {
		return fmt.Errorf("environment clear_color: %w", err)
	}
	return nil
}

// AssetsDir returns the assets directory with a leading ~ expanded.
func (c Config) AssetsDir() string {
	return expandHome(c.Assets.Dir)
}

// AssetPath joins a path from the assets section with the assets directory.
func (c Config) AssetPath(rel string) string {
	if rel == "" || filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(c.AssetsDir(), rel)
}

// LogPath returns the log file path with a leading ~ expanded.
func (c Config) LogPath() string {
	return expandHome(c.Log.Path)
}
