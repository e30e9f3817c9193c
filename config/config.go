package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Modes select which demo window the app opens.
const (
	ModePreview     = "preview"      // live preview, FPS in a label over the frame
	ModePreviewBurn = "preview-burn" // live preview, FPS drawn into the frame
	ModeSnapshot    = "snapshot"     // grab a single still and show it
	ModeHello       = "hello"        // smoke-test window
)

// Frame sources.
const (
	SourceScreen    = "screen"
	SourceSynthetic = "synthetic"
)

// ErrInvalid is wrapped by Validate failures that cannot be clamped.
var ErrInvalid = errors.New("config: invalid value")

// Config holds runtime configuration for frame delivery, rate measurement and the UI.
// Fields may be loaded from a JSON file, CAMFPS_* environment variables and
// command-line flags, in increasing priority.
type Config struct {
	Debug    bool   `json:"debug" mapstructure:"debug"`
	LogLevel string `json:"log_level" mapstructure:"log_level"`

	Mode   string `json:"mode" mapstructure:"mode"`
	Source string `json:"source" mapstructure:"source"`

	// Frame delivery
	TargetFPS       int `json:"target_fps" mapstructure:"target_fps"` // synthetic source pacing
	WindowMillis    int `json:"window_ms" mapstructure:"window_ms"`   // measurement window
	MaxGrabFailures int `json:"max_grab_failures" mapstructure:"max_grab_failures"`

	// Optional capture region for the screen source (zero size means full screen)
	RegionX int `json:"region_x" mapstructure:"region_x"`
	RegionY int `json:"region_y" mapstructure:"region_y"`
	RegionW int `json:"region_w" mapstructure:"region_w"`
	RegionH int `json:"region_h" mapstructure:"region_h"`

	// Display
	PreviewW     int `json:"preview_w" mapstructure:"preview_w"`
	PreviewH     int `json:"preview_h" mapstructure:"preview_h"`
	SnapshotSize int `json:"snapshot_size" mapstructure:"snapshot_size"`
	TickMillis   int `json:"tick_ms" mapstructure:"tick_ms"`

	// Headless smoke run
	Headless        bool `json:"headless" mapstructure:"headless"`
	HeadlessSeconds int  `json:"headless_seconds" mapstructure:"headless_seconds"`
}

// DefaultConfig returns a Config populated with standard defaults.
func DefaultConfig() *Config {
	return &Config{
		Debug:           false,
		LogLevel:        "info",
		Mode:            ModePreview,
		Source:          SourceScreen,
		TargetFPS:       30,
		WindowMillis:    1000,
		MaxGrabFailures: 30,
		PreviewW:        640,
		PreviewH:        360,
		SnapshotSize:    500,
		TickMillis:      33,
		Headless:        false,
		HeadlessSeconds: 3,
	}
}

// Validate clamps numeric values to safe ranges and rejects unknown names.
func (c *Config) Validate() error {
	d := DefaultConfig()
	if c.TargetFPS <= 0 || c.TargetFPS > 1000 {
		c.TargetFPS = d.TargetFPS
	}
	if c.WindowMillis <= 0 {
		c.WindowMillis = d.WindowMillis
	}
	if c.MaxGrabFailures <= 0 {
		c.MaxGrabFailures = d.MaxGrabFailures
	}
	if c.RegionW < 0 || c.RegionH < 0 {
		c.RegionW, c.RegionH = 0, 0
	}
	if c.PreviewW < 50 {
		c.PreviewW = 50
	}
	if c.PreviewH < 50 {
		c.PreviewH = 50
	}
	if c.SnapshotSize < 50 {
		c.SnapshotSize = d.SnapshotSize
	}
	if c.TickMillis <= 0 {
		c.TickMillis = d.TickMillis
	}
	if c.HeadlessSeconds <= 0 {
		c.HeadlessSeconds = d.HeadlessSeconds
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	case "":
		c.LogLevel = d.LogLevel
	default:
		return fmt.Errorf("%w: log_level %q", ErrInvalid, c.LogLevel)
	}
	switch c.Mode {
	case ModePreview, ModePreviewBurn, ModeSnapshot, ModeHello:
	default:
		return fmt.Errorf("%w: mode %q", ErrInvalid, c.Mode)
	}
	switch c.Source {
	case SourceScreen, SourceSynthetic:
	default:
		return fmt.Errorf("%w: source %q", ErrInvalid, c.Source)
	}
	return nil
}

// DefaultPath returns the XDG config file location, e.g. ~/.config/camfps/config.json.
// The parent directory is created when missing.
func DefaultPath() (string, error) {
	p, err := xdg.ConfigFile(filepath.Join("camfps", "config.json"))
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return p, nil
}

// BindFlags registers command-line flags for every config key on fs.
func BindFlags(fs *pflag.FlagSet) {
	d := DefaultConfig()
	fs.String("config", "", "path to a JSON config file")
	fs.Bool("debug", d.Debug, "enable runtime instrumentation logs")
	fs.String("log_level", d.LogLevel, "debug|info|warn|error")
	fs.String("mode", d.Mode, "preview|preview-burn|snapshot|hello")
	fs.String("source", d.Source, "screen|synthetic")
	fs.Int("target_fps", d.TargetFPS, "synthetic source frame rate")
	fs.Int("window_ms", d.WindowMillis, "rate measurement window in milliseconds")
	fs.Int("max_grab_failures", d.MaxGrabFailures, "consecutive grab errors before the preview fails")
	fs.Int("region_x", d.RegionX, "screen capture region x")
	fs.Int("region_y", d.RegionY, "screen capture region y")
	fs.Int("region_w", d.RegionW, "screen capture region width (0 = full screen)")
	fs.Int("region_h", d.RegionH, "screen capture region height (0 = full screen)")
	fs.Int("preview_w", d.PreviewW, "preview box width")
	fs.Int("preview_h", d.PreviewH, "preview box height")
	fs.Int("snapshot_size", d.SnapshotSize, "side of the square still image")
	fs.Int("tick_ms", d.TickMillis, "UI refresh interval in milliseconds")
	fs.Bool("headless", d.Headless, "run the capture pipeline without a window and exit")
	fs.Int("headless_seconds", d.HeadlessSeconds, "duration of the headless run")
}

// Load reads configuration from path (optional), CAMFPS_* environment
// variables and the flags in fs (may be nil). A missing file yields the
// defaults. The result is validated.
func Load(path string, fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	d := DefaultConfig()
	setDefaults(v, d)

	v.SetEnvPrefix("camfps")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return d, fmt.Errorf("bind flags: %w", err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
			return d, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	cfg := DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return d, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Resolve loads the file named by the "config" flag, or DefaultPath when the
// flag is empty. A file that cannot be read or parsed is reported to warn and
// skipped so env and flags still apply. Invalid values are returned as errors.
// The returned path is empty when no file was used.
func Resolve(fs *pflag.FlagSet, warn io.Writer) (*Config, string, error) {
	var path string
	if fs != nil {
		path, _ = fs.GetString("config")
	}
	if path == "" {
		p, err := DefaultPath()
		if err != nil && warn != nil {
			fmt.Fprintln(warn, "config:", err)
		}
		path = p
	}
	cfg, err := Load(path, fs)
	if err == nil {
		return cfg, path, nil
	}
	if errors.Is(err, ErrInvalid) {
		return nil, path, err
	}
	if warn != nil {
		fmt.Fprintln(warn, "config: ignoring file:", err)
	}
	cfg, err = Load("", fs)
	if err != nil {
		return nil, "", err
	}
	return cfg, "", nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("debug", d.Debug)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("mode", d.Mode)
	v.SetDefault("source", d.Source)
	v.SetDefault("target_fps", d.TargetFPS)
	v.SetDefault("window_ms", d.WindowMillis)
	v.SetDefault("max_grab_failures", d.MaxGrabFailures)
	v.SetDefault("region_x", d.RegionX)
	v.SetDefault("region_y", d.RegionY)
	v.SetDefault("region_w", d.RegionW)
	v.SetDefault("region_h", d.RegionH)
	v.SetDefault("preview_w", d.PreviewW)
	v.SetDefault("preview_h", d.PreviewH)
	v.SetDefault("snapshot_size", d.SnapshotSize)
	v.SetDefault("tick_ms", d.TickMillis)
	v.SetDefault("headless", d.Headless)
	v.SetDefault("headless_seconds", d.HeadlessSeconds)
}

func isNotExist(err error) bool {
	if errors.Is(err, os.ErrNotExist) {
		return true
	}
	var nf viper.ConfigFileNotFoundError
	return errors.As(err, &nf)
}

// Save writes the configuration to the given path in JSON format.
func (c *Config) Save(path string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create config %s: %w", path, err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(c)
}
