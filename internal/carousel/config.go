package carousel

import (
	"errors"
	"fmt"
	"time"
)

// Placement.
const (
	OffscreenMargin = 350.0 // pixels beyond the border; larger than any card half-diagonal
	StopRange       = 0.25  // resting points stay within ±25% of the stage size
)

// Z order.
const (
	BaseZ = 10
	TopZ  = 100
)

// Gestures.
const (
	EdgeThreshold      = 0.05 // pointer-down band that starts a pull-in
	ThrowEdgeThreshold = 0.10 // release band that throws a pushed card out
	ThrowMinDistance   = 30.0 // pixels of drag before a release counts as a throw
	PullInReach        = 0.4  // fraction of the entry path covered by a full drag
	PullInCommit       = 0.35 // release progress above which a pull-in completes
	PushTiltDegrees    = 8.0  // extra tilt for a drag across the whole stage width
	AbandonScale       = 0.6  // abandoned pull-in duration as a fraction of SlideDuration
)

// Rotations in degrees.
const (
	SlideInRotation  = 4.0
	SlideOutRotation = 8.0
	ThrowRotation    = 10.0
)

// Autopilot.
const (
	MinActiveCards = 2
	SlideInChance  = 0.6
)

var (
	ErrNoImages      = errors.New("carousel needs at least one image")
	ErrInvalidConfig = errors.New("invalid carousel config")
)

type Config struct {
	Images        []string
	AutoInterval  time.Duration
	StayDuration  time.Duration
	SlideDuration time.Duration
	MaxCards      int

	// Card footprint used for hit testing; the renderer draws at the same size.
	CardWidth  float64
	CardHeight float64
}

func DefaultConfig() Config {
	return Config{
		AutoInterval:  3500 * time.Millisecond,
		StayDuration:  2500 * time.Millisecond,
		SlideDuration: 800 * time.Millisecond,
		MaxCards:      20,
		CardWidth:     260,
		CardHeight:    320,
	}
}

func (c Config) Validate() error {
	if len(c.Images) == 0 {
		return ErrNoImages
	}
	if c.AutoInterval <= 0 {
		return fmt.Errorf("%w: auto interval must be positive, got %s", ErrInvalidConfig, c.AutoInterval)
	}
	if c.SlideDuration <= 0 {
		return fmt.Errorf("%w: slide duration must be positive, got %s", ErrInvalidConfig, c.SlideDuration)
	}
	if c.StayDuration < 0 {
		return fmt.Errorf("%w: stay duration must not be negative, got %s", ErrInvalidConfig, c.StayDuration)
	}
	if c.MaxCards < 1 {
		return fmt.Errorf("%w: max cards must be at least 1, got %d", ErrInvalidConfig, c.MaxCards)
	}
	if c.CardWidth <= 0 || c.CardHeight <= 0 {
		return fmt.Errorf("%w: card size must be positive, got %gx%g", ErrInvalidConfig, c.CardWidth, c.CardHeight)
	}
	return nil
}
