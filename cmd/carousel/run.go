package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"carousel/internal/carousel"
	"carousel/internal/config"
	"carousel/internal/desktop"
	"carousel/internal/events"
	"carousel/internal/imagecache"
	"carousel/internal/theme"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the carousel window",
	Long: `Open the carousel window. Images come from --images, a manifest
written by "carousel manifest", or a directory scan, in that order.`,
	Args: cobra.NoArgs,
	RunE: runCarousel,
}

func init() {
	f := runCmd.Flags()
	f.StringSlice("images", nil, "image files to show")
	f.String("image-dir", "", "directory to scan for images")
	f.String("manifest", "", "manifest.json to read the image list from")
	f.Duration("auto-interval", 0, "time between autonomous slides")
	f.Duration("slide-duration", 0, "duration of one slide animation")
	f.Int("max-cards", 0, "cards kept on stage at most")
	f.Int("width", 0, "window width")
	f.Int("height", 0, "window height")
	f.Bool("sound", true, "play sound cues")
	f.String("theme-file", "", "where the light/dark preference is stored")
}

func runCarousel(cmd *cobra.Command, args []string) error {
	cfg, err := config.Decode(settings)
	if err != nil {
		return err
	}
	fsys := afero.NewOsFs()

	images, err := cfg.ResolveImages(fsys)
	if err != nil {
		return fmt.Errorf("resolve images: %w", err)
	}

	bus := events.NewBus()
	fallback, err := theme.Parse(cfg.Theme.Default)
	if err != nil {
		return fmt.Errorf("theme.default: %w", err)
	}
	toggle, err := theme.NewToggle(theme.NewStore(fsys, cfg.Theme.File), fallback, bus, logger)
	if err != nil {
		return err
	}

	cache := imagecache.New(fsys, imagecache.WithLogger(logger))
	defer cache.Close()

	opts := []carousel.Option{
		carousel.WithLogger(logger),
		carousel.WithBus(bus),
		carousel.WithPreloader(cache),
	}
	if procEnv.Seed != nil {
		logger.Info("using fixed seed", "seed", *procEnv.Seed)
		opts = append(opts, carousel.WithSource(carousel.NewRand(*procEnv.Seed)))
	}
	stage := carousel.NewStage(float64(cfg.Window.Width), float64(cfg.Window.Height))
	c, err := carousel.New(cfg.Carousel(images), stage, opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return desktop.Run(ctx, desktop.Options{
		Window:   cfg.Window,
		Carousel: c,
		Bus:      bus,
		Cache:    cache,
		Theme:    toggle,
		Sound:    cfg.Sound,
		Log:      logger,
	})
}
