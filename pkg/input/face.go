package input

import (
	"gocv.io/x/gocv"

	"github.com/Harpita-P/Kiro-InteractionKit/pkg/tracker"
)

// FaceManager turns a stream of frames into FaceSnapshots, diffing each
// classified state against the previous one for edge pulses.
type FaceManager struct {
	tracker  *tracker.FaceTracker
	prev     tracker.FaceState
	havePrev bool
}

// NewFaceManager creates a manager reading states from t.
func NewFaceManager(t *tracker.FaceTracker) *FaceManager {
	return &FaceManager{tracker: t}
}

// UpdateFromFrame classifies one frame and returns the snapshot for it.
// Edge semantics match HandManager: no pulses on the first call, previous
// state replaced unconditionally, detector failures returned alongside an
// absent-state snapshot.
func (m *FaceManager) UpdateFromFrame(frame *gocv.Mat) (FaceSnapshot, error) {
	state, err := m.tracker.Process(frame)

	var snap FaceSnapshot
	if m.havePrev {
		snap = DiffFace(m.prev, state)
	} else {
		snap = faceContinuous(state)
	}

	m.prev = state
	m.havePrev = true
	return snap, err
}

// Tracker returns the underlying tracker for callers that need raw states.
func (m *FaceManager) Tracker() *tracker.FaceTracker {
	return m.tracker
}

// Close releases the tracker and its detector.
func (m *FaceManager) Close() error {
	return m.tracker.Close()
}

// DiffFace builds the snapshot for curr with edge pulses derived against
// prev.
func DiffFace(prev, curr tracker.FaceState) FaceSnapshot {
	snap := faceContinuous(curr)

	snap.BlinkPressed = !prev.IsBlink && curr.IsBlink
	snap.BlinkReleased = prev.IsBlink && !curr.IsBlink
	snap.MouthOpenPressed = !prev.IsMouthOpen && curr.IsMouthOpen
	snap.MouthOpenReleased = prev.IsMouthOpen && !curr.IsMouthOpen
	snap.SmilingPressed = !prev.IsSmiling && curr.IsSmiling
	snap.SmilingReleased = prev.IsSmiling && !curr.IsSmiling

	return snap
}

func faceContinuous(state tracker.FaceState) FaceSnapshot {
	return FaceSnapshot{
		Present:     state.Present,
		IsBlink:     state.IsBlink,
		IsMouthOpen: state.IsMouthOpen,
		IsSmiling:   state.IsSmiling,
	}
}
