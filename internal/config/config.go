// Package config loads the process configuration: camera selection,
// pipeline rates, per-domain tracker tuning and the declarative mapping
// rules. Values layer defaults, an optional YAML file and KIRO_ environment
// variables.
package config

import (
	"github.com/Harpita-P/Kiro-InteractionKit/pkg/actions"
	"github.com/Harpita-P/Kiro-InteractionKit/pkg/gesture"
)

// Config is the full process configuration.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	Camera   CameraConfig   `koanf:"camera"`
	Pipeline PipelineConfig `koanf:"pipeline"`

	Hand HandConfig `koanf:"hand"`
	Face FaceConfig `koanf:"face"`
	Head HeadConfig `koanf:"head"`

	// Rules are applied to the action mapper at startup.
	Rules []actions.Rule `koanf:"rules"`
}

// CameraConfig selects and sizes the capture device.
type CameraConfig struct {
	DeviceID int `koanf:"device_id"`
	Width    int `koanf:"width"`
	Height   int `koanf:"height"`
}

// PipelineConfig tunes the motion-gated frame loop.
type PipelineConfig struct {
	// ActiveFPS is the frame rate while motion is being detected.
	ActiveFPS int `koanf:"active_fps"`

	// IdleFPS is the frame rate while the scene is still.
	IdleFPS int `koanf:"idle_fps"`

	// IdleTimeoutMs is how long after the last motion the pipeline drops
	// back to the idle rate.
	IdleTimeoutMs int `koanf:"idle_timeout_ms"`

	// MotionThreshold is the percentage of changed pixels that counts as
	// motion.
	MotionThreshold float64 `koanf:"motion_threshold"`
}

// HandConfig tunes the hand tracker.
type HandConfig struct {
	Enabled    bool                   `koanf:"enabled"`
	Mirror     bool                   `koanf:"mirror"`
	Annotate   bool                   `koanf:"annotate"`
	Thresholds gesture.HandThresholds `koanf:"thresholds"`
}

// FaceConfig tunes the face tracker.
type FaceConfig struct {
	Enabled    bool                   `koanf:"enabled"`
	Mirror     bool                   `koanf:"mirror"`
	Annotate   bool                   `koanf:"annotate"`
	Thresholds gesture.FaceThresholds `koanf:"thresholds"`
}

// HeadConfig tunes the head pose tracker. Head frames are never mirrored;
// the pose solve needs the true geometry.
type HeadConfig struct {
	Enabled    bool                   `koanf:"enabled"`
	Annotate   bool                   `koanf:"annotate"`
	Thresholds gesture.HeadThresholds `koanf:"thresholds"`
}

// DefaultConfig returns the zero-tuning configuration: camera 0 at 640x480,
// idle 5 / active 15 FPS with a 2s idle timeout, hand and face tracking on,
// head tracking off, and the default classifier thresholds.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
		Camera: CameraConfig{
			DeviceID: 0,
			Width:    640,
			Height:   480,
		},
		Pipeline: PipelineConfig{
			ActiveFPS:       15,
			IdleFPS:         5,
			IdleTimeoutMs:   2000,
			MotionThreshold: 1.0,
		},
		Hand: HandConfig{
			Enabled:    true,
			Mirror:     true,
			Annotate:   true,
			Thresholds: gesture.DefaultHandThresholds(),
		},
		Face: FaceConfig{
			Enabled:    true,
			Mirror:     true,
			Annotate:   true,
			Thresholds: gesture.DefaultFaceThresholds(),
		},
		Head: HeadConfig{
			Enabled:    false,
			Annotate:   true,
			Thresholds: gesture.DefaultHeadThresholds(),
		},
	}
}
