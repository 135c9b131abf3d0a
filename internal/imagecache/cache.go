// Package imagecache decodes the carousel's photos in the background and
// keeps them as RGBA bitmaps ready for texture upload.
package imagecache

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"sync"

	"github.com/spf13/afero"
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/webp"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultWorkers = 4
	// DefaultMaxSide bounds the longest edge of a cached bitmap.
	DefaultMaxSide = 1024
)

var ErrNotLoaded = errors.New("image not loaded")

type Option func(*Cache)

func WithWorkers(n int) Option {
	return func(c *Cache) {
		if n > 0 {
			c.workers = n
		}
	}
}

func WithMaxSide(px int) Option {
	return func(c *Cache) { c.maxSide = px }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Cache) { c.log = l }
}

// Cache is safe for concurrent use. Loaders write from worker goroutines,
// the frame loop reads.
type Cache struct {
	fs      afero.Fs
	log     *slog.Logger
	workers int
	maxSide int

	mu     sync.RWMutex
	images map[string]*image.RGBA
	errs   map[string]error

	cancel context.CancelFunc
	done   chan struct{}
}

func New(fsys afero.Fs, opts ...Option) *Cache {
	c := &Cache{
		fs:      fsys,
		log:     slog.Default(),
		workers: DefaultWorkers,
		maxSide: DefaultMaxSide,
		images:  make(map[string]*image.RGBA),
		errs:    make(map[string]error),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Preload starts decoding names in the background and returns at once. A
// second call waits for the first batch to be cancelled.
func (c *Cache) Preload(names []string) {
	c.Close()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	c.cancel, c.done = cancel, done

	list := make([]string, len(names))
	copy(list, names)
	go func() {
		defer close(done)
		if err := c.Load(ctx, list); err != nil && !errors.Is(err, context.Canceled) {
			c.log.Warn("preload stopped", "error", err)
		}
	}()
}

// Wait blocks until the current Preload batch is finished.
func (c *Cache) Wait() {
	if c.done != nil {
		<-c.done
	}
}

// Close cancels a running Preload and waits for its workers.
func (c *Cache) Close() {
	if c.cancel != nil {
		c.cancel()
		c.Wait()
		c.cancel, c.done = nil, nil
	}
}

// Load decodes every name not cached yet. A file that fails to decode is
// logged and remembered; only cancellation aborts the batch.
func (c *Cache) Load(ctx context.Context, names []string) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)
	for _, name := range names {
		if c.has(name) {
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			img, err := c.decodeFile(name)
			c.mu.Lock()
			defer c.mu.Unlock()
			if err != nil {
				c.errs[name] = err
				c.log.Warn("image decode failed", "image", name, "error", err)
				return nil
			}
			c.images[name] = img
			c.log.Debug("image cached", "image", name, "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
			return nil
		})
	}
	return g.Wait()
}

func (c *Cache) has(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.images[name]
	return ok
}

// Get returns the decoded bitmap. The error is ErrNotLoaded while the image
// is still pending, or the decode failure.
func (c *Cache) Get(name string) (*image.RGBA, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if img, ok := c.images[name]; ok {
		return img, nil
	}
	if err, ok := c.errs[name]; ok {
		return nil, err
	}
	return nil, ErrNotLoaded
}

func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

func (c *Cache) decodeFile(name string) (*image.RGBA, error) {
	f, err := c.fs.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	c.log.Debug("image decoded", "image", name, "format", format)
	return fit(src, c.maxSide), nil
}

// fit converts src to RGBA, scaling it down so that neither side exceeds
// maxSide. maxSide <= 0 keeps the original size.
func fit(src image.Image, maxSide int) *image.RGBA {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if maxSide > 0 && (w > maxSide || h > maxSide) {
		if w >= h {
			h = max(1, h*maxSide/w)
			w = maxSide
		} else {
			w = max(1, w*maxSide/h)
			h = maxSide
		}
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, b, xdraw.Src, nil)
		return dst
	}
	if rgba, ok := src.(*image.RGBA); ok && b.Min == (image.Point{}) {
		return rgba
	}
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
