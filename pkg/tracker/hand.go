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

// HandTrackerConfig controls mirroring, annotation and the classifier
// thresholds applied to each frame.
type HandTrackerConfig struct {
	Thresholds gesture.HandThresholds

	// Mirror flips the frame horizontally before detection, so that the
	// on-screen image behaves like a mirror.
	Mirror bool

	// Annotate draws the cursor dot onto the frame.
	Annotate bool
}

// DefaultHandTrackerConfig returns a config with mirroring, annotation and
// the default thresholds.
func DefaultHandTrackerConfig() HandTrackerConfig {
	return HandTrackerConfig{
		Thresholds: gesture.DefaultHandThresholds(),
		Mirror:     true,
		Annotate:   true,
	}
}

// HandTracker classifies the primary hand in each frame.
type HandTracker struct {
	detector HandDetector
	config   HandTrackerConfig
}

// NewHandTracker creates a tracker reading detections from detector.
func NewHandTracker(detector HandDetector, config HandTrackerConfig) *HandTracker {
	return &HandTracker{detector: detector, config: config}
}

// Process mirrors the frame in place when configured, runs detection and
// classifies the first detected hand. A nil or empty frame, or a frame with
// no hands, yields the absent state. Detector failures are returned to the
// caller alongside an absent state.
func (t *HandTracker) Process(frame *gocv.Mat) (HandState, error) {
	if frame == nil || frame.Empty() {
		return HandState{}, nil
	}
	if t.config.Mirror {
		gocv.Flip(*frame, frame, 1)
	}

	metrics.RecordFrameProcessed("hand")
	start := time.Now()
	hands, err := t.detector.Detect(frame)
	if err != nil {
		return HandState{}, fmt.Errorf("detect hands: %w", err)
	}
	metrics.RecordDetectDuration("hand", float64(time.Since(start).Microseconds())/1e3)

	if len(hands) == 0 || len(hands[0].Points) < landmark.NumHandLandmarks {
		return HandState{}, nil
	}

	hand := hands[0]
	th := t.config.Thresholds
	state := HandState{
		Present:      true,
		Handedness:   hand.Handedness,
		CursorX:      hand.Points[landmark.IndexTip].X,
		CursorY:      hand.Points[landmark.IndexTip].Y,
		IsClosed:     gesture.IsClosed(hand.Points, th.Close),
		IsPinch:      gesture.IsPinch(hand.Points, th.Pinch),
		IsPeace:      gesture.IsPeace(hand.Points, th.TipGap, th.Curl),
		IsThumbsUp:   gesture.IsThumbsUp(hand.Points, th.Curl),
		IsThumbsDown: gesture.IsThumbsDown(hand.Points, th.Curl),
		IsRockSign:   gesture.IsRockSign(hand.Points, th.TipGap, th.Curl),
		IsOpenHand:   gesture.IsOpenHand(hand.Points, th.Extension, th.Spread),
		IsPointing:   gesture.IsPointing(hand.Points, th.Curl),
		IsOKSign:     gesture.IsOKSign(hand.Points, th.Curl, th.Pinch),
		Landmarks:    hand.Points,
	}

	if t.config.Annotate {
		drawCursor(frame, state.CursorX, state.CursorY)
	}
	return state, nil
}

// Close releases the underlying detector.
func (t *HandTracker) Close() error {
	return t.detector.Close()
}

// drawCursor marks the fingertip position with a filled red dot scaled to
// the frame size.
func drawCursor(frame *gocv.Mat, x, y float64) {
	center := image.Pt(int(x*float64(frame.Cols())), int(y*float64(frame.Rows())))
	gocv.Circle(frame, center, 10, color.RGBA{R: 255}, -1)
}
