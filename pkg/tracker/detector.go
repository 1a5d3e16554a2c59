// Package tracker turns camera frames into per-domain presence states by
// running landmark detection and the gesture classifiers over each frame.
package tracker

import (
	"gocv.io/x/gocv"

	"github.com/Harpita-P/Kiro-InteractionKit/pkg/landmark"
)

// HandDetection is one detected hand: 21 normalized landmarks plus the
// handedness label and detection confidence reported by the detector.
type HandDetection struct {
	Points     []landmark.Point
	Handedness string
	Score      float64
}

// FaceDetection is one detected face mesh.
type FaceDetection struct {
	Points []landmark.Point
	Score  float64
}

// HandDetector finds hands in a video frame.
type HandDetector interface {
	// Detect analyzes a frame and returns the detected hands. An empty
	// slice means no hands were found.
	Detect(frame *gocv.Mat) ([]HandDetection, error)

	// Close releases any resources held by the detector.
	Close() error
}

// FaceDetector finds face meshes in a video frame.
type FaceDetector interface {
	Detect(frame *gocv.Mat) ([]FaceDetection, error)
	Close() error
}

// DetectorConfig holds detection options shared by the hand and face
// detectors.
type DetectorConfig struct {
	// MaxResults is the maximum number of hands or faces to detect.
	MaxResults int

	// MinDetectionConfidence is the detection confidence threshold (0.0-1.0).
	MinDetectionConfidence float64

	// MinTrackingConfidence is the tracking confidence threshold (0.0-1.0).
	MinTrackingConfidence float64

	// RefineLandmarks enables iris refinement on the face mesh. Ignored by
	// hand detectors.
	RefineLandmarks bool
}

// DefaultHandDetectorConfig returns the detection defaults for hands.
func DefaultHandDetectorConfig() DetectorConfig {
	return DetectorConfig{
		MaxResults:             1,
		MinDetectionConfidence: 0.5,
		MinTrackingConfidence:  0.5,
	}
}

// DefaultFaceDetectorConfig returns the detection defaults for face meshes.
func DefaultFaceDetectorConfig() DetectorConfig {
	return DetectorConfig{
		MaxResults:             1,
		MinDetectionConfidence: 0.5,
		MinTrackingConfidence:  0.5,
		RefineLandmarks:        true,
	}
}
