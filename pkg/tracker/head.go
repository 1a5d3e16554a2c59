package tracker

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"gocv.io/x/gocv"

	"github.com/Harpita-P/Kiro-InteractionKit/pkg/headpose"
	"github.com/Harpita-P/Kiro-InteractionKit/pkg/landmark"
	"github.com/Harpita-P/Kiro-InteractionKit/pkg/metrics"
)

// HeadTrackerConfig controls annotation of the pose readout.
type HeadTrackerConfig struct {
	Annotate bool
}

// DefaultHeadTrackerConfig returns a config with annotation enabled.
func DefaultHeadTrackerConfig() HeadTrackerConfig {
	return HeadTrackerConfig{Annotate: true}
}

// HeadTracker estimates head orientation from face mesh detections.
type HeadTracker struct {
	detector FaceDetector
	solver   *headpose.Solver
	config   HeadTrackerConfig
}

// NewHeadTracker creates a tracker reading detections from detector.
func NewHeadTracker(detector FaceDetector, config HeadTrackerConfig) *HeadTracker {
	return &HeadTracker{
		detector: detector,
		solver:   headpose.NewSolver(),
		config:   config,
	}
}

// Process estimates head orientation from the first detected face. The
// frame is not mirrored, so angles stay in camera coordinates. A pose fit
// that fails to converge is reported as absence, not as an error.
func (t *HeadTracker) Process(frame *gocv.Mat) (HeadState, error) {
	if frame == nil || frame.Empty() {
		return HeadState{}, nil
	}

	metrics.RecordFrameProcessed("head")
	start := time.Now()
	faces, err := t.detector.Detect(frame)
	if err != nil {
		return HeadState{}, fmt.Errorf("detect face: %w", err)
	}
	metrics.RecordDetectDuration("head", float64(time.Since(start).Microseconds())/1e3)

	if len(faces) == 0 || len(faces[0].Points) < landmark.NumFaceLandmarks {
		return HeadState{}, nil
	}

	w := float64(frame.Cols())
	h := float64(frame.Rows())
	points := faces[0].Points
	observed := make([][2]float64, len(headpose.PoseLandmarkIndices))
	for i, idx := range headpose.PoseLandmarkIndices {
		observed[i] = [2]float64{points[idx].X * w, points[idx].Y * h}
	}

	cam := headpose.IntrinsicsForFrame(frame.Cols(), frame.Rows())
	pose, err := t.solver.Solve(headpose.FaceModel(), observed, cam)
	if err != nil {
		metrics.RecordPoseSolveFailure()
		return HeadState{}, nil
	}

	state := HeadState{
		Present: true,
		Pitch:   pose.Pitch,
		Yaw:     pose.Yaw,
		Roll:    pose.Roll,
	}
	if t.config.Annotate {
		drawHeadPose(frame, state)
	}
	return state, nil
}

// Close releases the underlying detector.
func (t *HeadTracker) Close() error {
	return t.detector.Close()
}

// drawHeadPose overlays the three rotation angles, truncated to whole
// degrees.
func drawHeadPose(frame *gocv.Mat, state HeadState) {
	lines := []struct {
		label string
		value float64
	}{
		{"x-axis", state.Pitch},
		{"y-axis", state.Yaw},
		{"z-axis", state.Roll},
	}
	for i, line := range lines {
		text := fmt.Sprintf("%s: %d", line.label, int(line.value))
		org := image.Pt(20, i*30+20)
		gocv.PutText(frame, text, org, gocv.FontHersheySimplex, 0.7, color.RGBA{R: 200, B: 200}, 2)
	}
}
