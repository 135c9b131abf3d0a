package carousel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigNeedsImages(t *testing.T) {
	cfg := DefaultConfig()
	assert.ErrorIs(t, cfg.Validate(), ErrNoImages)

	cfg.Images = []string{"a.jpg"}
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 3500*time.Millisecond, cfg.AutoInterval)
	assert.Equal(t, 800*time.Millisecond, cfg.SlideDuration)
	assert.Equal(t, 20, cfg.MaxCards)
}

func TestConfigValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero auto interval", func(c *Config) { c.AutoInterval = 0 }},
		{"negative slide", func(c *Config) { c.SlideDuration = -time.Second }},
		{"negative stay", func(c *Config) { c.StayDuration = -1 }},
		{"no capacity", func(c *Config) { c.MaxCards = 0 }},
		{"flat card", func(c *Config) { c.CardHeight = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Images = nil
	c, err := New(cfg, NewStage(testStageW, testStageH))
	assert.Nil(t, c)
	assert.ErrorIs(t, err, ErrNoImages)

	_, err = New(testConfig(), nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
