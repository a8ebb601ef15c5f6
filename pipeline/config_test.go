package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "haarcascade_frontalface_default.xml", cfg.CascadePath)
	assert.Equal(t, 0, cfg.CameraIndex)
	assert.Equal(t, 2, cfg.SpeedUpFactor)
	assert.Equal(t, 800.0, cfg.FocalLength)
	assert.Equal(t, 14.0, cfg.RealFaceWidth)
	assert.Equal(t, 'q', cfg.QuitKey)
	assert.Equal(t, 20, cfg.PollDelayMS)
	assert.Equal(t, "faces/output_video.avi", cfg.Record.VideoPath)
	assert.Equal(t, "MJPG", cfg.Record.Codec)
	assert.Equal(t, 30.0, cfg.Record.FPS)

	require.NoError(t, cfg.Validate())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{
			name:   "zero speed-up factor",
			mutate: func(c *Config) { c.SpeedUpFactor = 0 },
			errMsg: "speed-up factor",
		},
		{
			name:   "negative speed-up factor",
			mutate: func(c *Config) { c.SpeedUpFactor = -2 },
			errMsg: "speed-up factor",
		},
		{
			name:   "zero focal length",
			mutate: func(c *Config) { c.FocalLength = 0 },
			errMsg: "focal length",
		},
		{
			name:   "negative face width",
			mutate: func(c *Config) { c.RealFaceWidth = -1 },
			errMsg: "face width",
		},
		{
			name: "no model at all",
			mutate: func(c *Config) {
				c.CascadePath = ""
				c.NetModelPath = ""
			},
			errMsg: "model",
		},
		{
			name:   "zero output FPS",
			mutate: func(c *Config) { c.Record.FPS = 0 },
			errMsg: "FPS",
		},
		{
			name:   "degenerate resolution",
			mutate: func(c *Config) { c.Record.FrameSize.X = 0 },
			errMsg: "resolution",
		},
		{
			name:   "blocking key poll",
			mutate: func(c *Config) { c.PollDelayMS = 0 },
			errMsg: "poll delay",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestConfig_DNNModelAloneIsValid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CascadePath = ""
	cfg.NetModelPath = "res10_300x300_ssd_iter_140000.caffemodel"

	assert.NoError(t, cfg.Validate())
}
