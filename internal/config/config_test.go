package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carousel/internal/carousel"
	"carousel/internal/manifest"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "carousel.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	c, err := Decode(New())
	require.NoError(t, err)

	assert.Equal(t, 3500*time.Millisecond, c.AutoInterval)
	assert.Equal(t, 2500*time.Millisecond, c.StayDuration)
	assert.Equal(t, 800*time.Millisecond, c.SlideDuration)
	assert.Equal(t, 20, c.MaxCards)
	assert.Equal(t, 260.0, c.CardWidth)
	assert.Equal(t, 1280, c.Window.Width)
	assert.True(t, c.Sound)
	assert.Equal(t, "light", c.Theme.Default)
	assert.NotEmpty(t, c.Theme.File)
}

func TestLoadFileAndEnvOverride(t *testing.T) {
	path := writeConfig(t, `
images:
  - one.jpg
  - two.jpg
auto_interval: 2s
max_cards: 6
window:
  width: 640
  title: Photos
theme:
  default: dark
`)
	t.Setenv("CAROUSEL_MAX_CARDS", "9")
	t.Setenv("CAROUSEL_SLIDE_DURATION", "1.5s")
	t.Setenv("CAROUSEL_WINDOW_HEIGHT", "480")

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"one.jpg", "two.jpg"}, c.Images)
	assert.Equal(t, 2*time.Second, c.AutoInterval)
	assert.Equal(t, 1500*time.Millisecond, c.SlideDuration)
	assert.Equal(t, 9, c.MaxCards, "env beats file")
	assert.Equal(t, Window{Width: 640, Height: 480, Title: "Photos"}, c.Window)
	assert.Equal(t, "dark", c.Theme.Default)
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestDecodeRejectsBadWindow(t *testing.T) {
	v := New()
	v.Set(KeyWindowWidth, 0)
	_, err := Decode(v)
	assert.ErrorIs(t, err, carousel.ErrInvalidConfig)
}

func TestCarouselConfig(t *testing.T) {
	c, err := Decode(New())
	require.NoError(t, err)

	cc := c.Carousel([]string{"a.jpg"})
	require.NoError(t, cc.Validate())
	assert.Equal(t, carousel.DefaultConfig().MaxCards, cc.MaxCards)
	assert.Equal(t, []string{"a.jpg"}, cc.Images)
}

func TestResolveImages(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/pics", 0o755))
	require.NoError(t, afero.WriteFile(fsys, "/pics/big.jpg", make([]byte, manifest.MediumLimit), 0o644))
	require.NoError(t, afero.WriteFile(fsys, "/pics/small.png", []byte{1}, 0o644))

	t.Run("explicit list", func(t *testing.T) {
		got, err := Config{Images: []string{"x.jpg"}, ImageDir: "/pics"}.ResolveImages(fsys)
		require.NoError(t, err)
		assert.Equal(t, []string{"x.jpg"}, got)
	})

	t.Run("directory", func(t *testing.T) {
		got, err := Config{ImageDir: "/pics"}.ResolveImages(fsys)
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join("/pics", "small.png"), filepath.Join("/pics", "big.jpg")}, got)
	})

	t.Run("manifest", func(t *testing.T) {
		_, out, err := manifest.Generate(fsys, "/pics", "", time.Now())
		require.NoError(t, err)
		got, err := Config{Manifest: out}.ResolveImages(fsys)
		require.NoError(t, err)
		assert.Equal(t, []string{filepath.Join("/pics", "small.png"), filepath.Join("/pics", "big.jpg")}, got)
	})

	t.Run("nothing", func(t *testing.T) {
		_, err := Config{}.ResolveImages(fsys)
		assert.ErrorIs(t, err, ErrNoImageSource)
	})
}

func TestParseEnv(t *testing.T) {
	e, err := ParseEnv()
	require.NoError(t, err)
	assert.Nil(t, e.Seed)
	assert.Equal(t, "info", e.LogLevel)
	assert.Equal(t, "text", e.LogFormat)

	t.Setenv("CAROUSEL_SEED", "1234")
	t.Setenv("CAROUSEL_LOG_LEVEL", "debug")
	e, err = ParseEnv()
	require.NoError(t, err)
	require.NotNil(t, e.Seed)
	assert.Equal(t, uint64(1234), *e.Seed)
	assert.Equal(t, "debug", e.LogLevel)

	t.Setenv("CAROUSEL_SEED", "not-a-number")
	_, err = ParseEnv()
	assert.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	lvl, err := ParseLogLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)

	_, err = ParseLogLevel("loud")
	assert.Error(t, err)
}
