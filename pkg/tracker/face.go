package tracker

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"gocv.io/x/gocv"

	"github.com/Harpita-P/Kiro-InteractionKit/pkg/gesture"
	"github.com/Harpita-P/Kiro-InteractionKit/pkg/landmark"
	"github.com/Harpita-P/Kiro-InteractionKit/pkg/metrics"
)

// FaceTrackerConfig controls mirroring, annotation and the expression
// thresholds applied to each frame.
type FaceTrackerConfig struct {
	Thresholds gesture.FaceThresholds
	Mirror     bool
	Annotate   bool
}

// DefaultFaceTrackerConfig returns a config with mirroring, annotation and
// the default thresholds.
func DefaultFaceTrackerConfig() FaceTrackerConfig {
	return FaceTrackerConfig{
		Thresholds: gesture.DefaultFaceThresholds(),
		Mirror:     true,
		Annotate:   true,
	}
}

// FaceTracker classifies the primary face in each frame.
type FaceTracker struct {
	detector FaceDetector
	config   FaceTrackerConfig
}

// NewFaceTracker creates a tracker reading detections from detector.
func NewFaceTracker(detector FaceDetector, config FaceTrackerConfig) *FaceTracker {
	return &FaceTracker{detector: detector, config: config}
}

// Process mirrors the frame in place when configured, runs detection and
// classifies the first detected face. A nil or empty frame, or a frame with
// no faces, yields the absent state.
func (t *FaceTracker) Process(frame *gocv.Mat) (FaceState, error) {
	if frame == nil || frame.Empty() {
		return FaceState{}, nil
	}
	if t.config.Mirror {
		gocv.Flip(*frame, frame, 1)
	}

	metrics.RecordFrameProcessed("face")
	start := time.Now()
	faces, err := t.detector.Detect(frame)
	if err != nil {
		return FaceState{}, fmt.Errorf("detect faces: %w", err)
	}
	metrics.RecordDetectDuration("face", float64(time.Since(start).Microseconds())/1e3)

	if len(faces) == 0 || len(faces[0].Points) < landmark.NumFaceLandmarks {
		return FaceState{}, nil
	}

	points := faces[0].Points
	th := t.config.Thresholds
	state := FaceState{
		Present:     true,
		IsBlink:     gesture.IsBlink(points, th.Blink),
		IsMouthOpen: gesture.IsMouthOpen(points, th.MouthOpen),
		IsSmiling:   gesture.IsSmiling(points, th.Smile),
		Landmarks:   points,
	}

	if t.config.Annotate {
		drawFaceStatus(frame, state)
	}
	return state, nil
}

// Close releases the underlying detector.
func (t *FaceTracker) Close() error {
	return t.detector.Close()
}

// drawFaceStatus overlays the expression readout. Active expressions are
// highlighted, with the smile line in blue while neutral.
func drawFaceStatus(frame *gocv.Mat, state FaceState) {
	green := color.RGBA{G: 255}
	red := color.RGBA{R: 255}
	blue := color.RGBA{B: 255}

	blinkText, blinkColor := "EYES OPEN", green
	if state.IsBlink {
		blinkText, blinkColor = "BLINK", red
	}
	mouthText, mouthColor := "MOUTH CLOSED", green
	if state.IsMouthOpen {
		mouthText, mouthColor = "MOUTH OPEN", red
	}
	smileText, smileColor := "NOT SMILING", blue
	if state.IsSmiling {
		smileText, smileColor = "SMILING", green
	}

	gocv.PutText(frame, blinkText, image.Pt(10, 110), gocv.FontHersheySimplex, 1.0, blinkColor, 2)
	gocv.PutText(frame, mouthText, image.Pt(10, 150), gocv.FontHersheySimplex, 1.0, mouthColor, 2)
	gocv.PutText(frame, smileText, image.Pt(10, 190), gocv.FontHersheySimplex, 1.0, smileColor, 2)
}
