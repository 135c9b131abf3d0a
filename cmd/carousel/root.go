package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"carousel/internal/config"
)

var (
	// configFile is set by the --config flag.
	configFile string
	logLevel   string
	logFormat  string

	// Populated by PersistentPreRunE.
	settings *viper.Viper
	procEnv  config.Env
	logger   *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "carousel",
	Short: "Photo card carousel",
	Long: `Carousel drifts photo cards onto the screen from random directions,
lets them rest, and drifts them off again. Drag from a window edge to pull a
new card in; drag a card to a window edge to throw it out.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default: ./carousel.yaml or <user config dir>/carousel/carousel.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "debug, info, warn or error (default $CAROUSEL_LOG_LEVEL or info)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "text or json (default $CAROUSEL_LOG_FORMAT or text)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(manifestCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup parses the environment, builds the logger and loads the config file.
func setup(cmd *cobra.Command, args []string) error {
	env, err := config.ParseEnv()
	if err != nil {
		return err
	}
	procEnv = env
	if logLevel == "" {
		logLevel = env.LogLevel
	}
	if logFormat == "" {
		logFormat = env.LogFormat
	}
	logger, err = newLogger(cmd.ErrOrStderr(), logLevel, logFormat)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	if cmd.Name() == "version" {
		return nil
	}
	settings = config.New()
	if err := bindFlags(cmd, settings); err != nil {
		return err
	}
	if err := config.Read(settings, configFile); err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if used := settings.ConfigFileUsed(); used != "" {
		logger.Debug("config loaded", "file", used)
	}
	return nil
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := config.ParseLogLevel(level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: lvl}
	switch format {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("invalid log format %q", format)
}

// flagKeys maps command flags onto config keys.
var flagKeys = map[string]string{
	"images":         config.KeyImages,
	"image-dir":      config.KeyImageDir,
	"manifest":       config.KeyManifest,
	"auto-interval":  config.KeyAutoInterval,
	"slide-duration": config.KeySlideDuration,
	"max-cards":      config.KeyMaxCards,
	"width":          config.KeyWindowWidth,
	"height":         config.KeyWindowHeight,
	"sound":          config.KeySound,
	"theme-file":     config.KeyThemeFile,
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	return nil
}
