// Package config loads carousel.yaml, CAROUSEL_* environment overrides and
// command-line flags into one Config.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"carousel/internal/carousel"
	"carousel/internal/manifest"
)

const (
	fileName  = "carousel"
	fileType  = "yaml"
	envPrefix = "CAROUSEL"
	appDir    = "carousel"
)

// Keys.
const (
	KeyImages        = "images"
	KeyImageDir      = "image_dir"
	KeyManifest      = "manifest"
	KeyAutoInterval  = "auto_interval"
	KeyStayDuration  = "stay_duration"
	KeySlideDuration = "slide_duration"
	KeyMaxCards      = "max_cards"
	KeyCardWidth     = "card_width"
	KeyCardHeight    = "card_height"
	KeyWindowWidth   = "window.width"
	KeyWindowHeight  = "window.height"
	KeyWindowTitle   = "window.title"
	KeySound         = "sound"
	KeyThemeDefault  = "theme.default"
	KeyThemeFile     = "theme.file"
)

var ErrNoImageSource = errors.New("no images configured: set images, image_dir or manifest")

type Window struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

type Theme struct {
	Default string `mapstructure:"default"`
	File    string `mapstructure:"file"`
}

type Config struct {
	Images        []string      `mapstructure:"images"`
	ImageDir      string        `mapstructure:"image_dir"`
	Manifest      string        `mapstructure:"manifest"`
	AutoInterval  time.Duration `mapstructure:"auto_interval"`
	StayDuration  time.Duration `mapstructure:"stay_duration"`
	SlideDuration time.Duration `mapstructure:"slide_duration"`
	MaxCards      int           `mapstructure:"max_cards"`
	CardWidth     float64       `mapstructure:"card_width"`
	CardHeight    float64       `mapstructure:"card_height"`
	Window        Window        `mapstructure:"window"`
	Sound         bool          `mapstructure:"sound"`
	Theme         Theme         `mapstructure:"theme"`
}

// New returns a viper instance with every default set and environment
// overrides enabled (CAROUSEL_MAX_CARDS, CAROUSEL_WINDOW_WIDTH, ...).
func New() *viper.Viper {
	def := carousel.DefaultConfig()
	v := viper.New()
	v.SetDefault(KeyImages, []string{})
	v.SetDefault(KeyImageDir, "")
	v.SetDefault(KeyManifest, "")
	v.SetDefault(KeyAutoInterval, def.AutoInterval)
	v.SetDefault(KeyStayDuration, def.StayDuration)
	v.SetDefault(KeySlideDuration, def.SlideDuration)
	v.SetDefault(KeyMaxCards, def.MaxCards)
	v.SetDefault(KeyCardWidth, def.CardWidth)
	v.SetDefault(KeyCardHeight, def.CardHeight)
	v.SetDefault(KeyWindowWidth, 1280)
	v.SetDefault(KeyWindowHeight, 800)
	v.SetDefault(KeyWindowTitle, "Carousel")
	v.SetDefault(KeySound, true)
	v.SetDefault(KeyThemeDefault, "light")
	v.SetDefault(KeyThemeFile, defaultThemeFile())

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Read loads the config file. With an empty path carousel.yaml is looked up
// in the working directory and then the user config directory; a missing
// file there is not an error.
func Read(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(fileName)
		v.SetConfigType(fileType)
		v.AddConfigPath(".")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, appDir))
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

func Decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return Config{}, fmt.Errorf("%w: window size must be positive, got %dx%d",
			carousel.ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	return c, nil
}

// Load is New, Read and Decode in one step.
func Load(path string) (Config, error) {
	v := New()
	if err := Read(v, path); err != nil {
		return Config{}, err
	}
	return Decode(v)
}

// Carousel converts the file settings into the core's config. Images must be
// resolved first.
func (c Config) Carousel(images []string) carousel.Config {
	return carousel.Config{
		Images:        images,
		AutoInterval:  c.AutoInterval,
		StayDuration:  c.StayDuration,
		SlideDuration: c.SlideDuration,
		MaxCards:      c.MaxCards,
		CardWidth:     c.CardWidth,
		CardHeight:    c.CardHeight,
	}
}

// ResolveImages picks the image list: an explicit list wins, then a manifest
// file, then a directory scan ordered like a manifest.
func (c Config) ResolveImages(fsys afero.Fs) ([]string, error) {
	switch {
	case len(c.Images) > 0:
		return c.Images, nil
	case c.Manifest != "":
		m, err := manifest.Load(fsys, c.Manifest)
		if err != nil {
			return nil, err
		}
		return m.Images(filepath.Dir(c.Manifest)), nil
	case c.ImageDir != "":
		entries, err := manifest.Scan(fsys, c.ImageDir)
		if err != nil {
			return nil, err
		}
		return manifest.Build(entries, time.Now()).Images(c.ImageDir), nil
	}
	return nil, ErrNoImageSource
}

func defaultThemeFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".carousel-theme.toml"
	}
	return filepath.Join(dir, appDir, "theme.toml")
}

// Env holds process-level knobs that do not belong in the config file.
type Env struct {
	Seed      *uint64 `env:"CAROUSEL_SEED"`
	LogLevel  string  `env:"CAROUSEL_LOG_LEVEL" envDefault:"info"`
	LogFormat string  `env:"CAROUSEL_LOG_FORMAT" envDefault:"text"`
}

func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

func ParseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q", s)
	}
}
