package input

import (
	"gocv.io/x/gocv"

	"github.com/Harpita-P/Kiro-InteractionKit/pkg/tracker"
)

// HandManager turns a stream of frames into HandSnapshots. It delegates
// classification to a HandTracker and diffs each state against the one
// before it, so the snapshots carry pressed and released pulses.
type HandManager struct {
	tracker *tracker.HandTracker

	// prev is the only piece of history the manager keeps. It is replaced
	// on every update, present or not, so that losing the hand is itself a
	// diffable transition.
	prev     tracker.HandState
	havePrev bool
}

// NewHandManager creates a manager reading states from t.
func NewHandManager(t *tracker.HandTracker) *HandManager {
	return &HandManager{tracker: t}
}

// UpdateFromFrame classifies one frame and returns the snapshot for it.
// The frame is annotated in place when the tracker is configured to do so.
// On the very first call there is no previous state to diff against, so
// every edge pulse is false no matter what the frame shows. A detector
// failure is returned alongside an absent-state snapshot; the caller can
// log it and keep feeding frames.
func (m *HandManager) UpdateFromFrame(frame *gocv.Mat) (HandSnapshot, error) {
	state, err := m.tracker.Process(frame)

	var snap HandSnapshot
	if m.havePrev {
		snap = DiffHand(m.prev, state)
	} else {
		snap = handContinuous(state)
	}

	m.prev = state
	m.havePrev = true
	return snap, err
}

// Tracker returns the underlying tracker for callers that need raw states.
func (m *HandManager) Tracker() *tracker.HandTracker {
	return m.tracker
}

// Close releases the tracker and its detector.
func (m *HandManager) Close() error {
	return m.tracker.Close()
}

// DiffHand builds the snapshot for curr with edge pulses derived against
// prev: pressed on a false-to-true transition, released on true-to-false.
func DiffHand(prev, curr tracker.HandState) HandSnapshot {
	snap := handContinuous(curr)

	snap.ClosedPressed = !prev.IsClosed && curr.IsClosed
	snap.ClosedReleased = prev.IsClosed && !curr.IsClosed
	snap.PinchPressed = !prev.IsPinch && curr.IsPinch
	snap.PinchReleased = prev.IsPinch && !curr.IsPinch
	snap.PeacePressed = !prev.IsPeace && curr.IsPeace
	snap.PeaceReleased = prev.IsPeace && !curr.IsPeace
	snap.ThumbsUpPressed = !prev.IsThumbsUp && curr.IsThumbsUp
	snap.ThumbsUpReleased = prev.IsThumbsUp && !curr.IsThumbsUp
	snap.ThumbsDownPressed = !prev.IsThumbsDown && curr.IsThumbsDown
	snap.ThumbsDownReleased = prev.IsThumbsDown && !curr.IsThumbsDown
	snap.RockSignPressed = !prev.IsRockSign && curr.IsRockSign
	snap.RockSignReleased = prev.IsRockSign && !curr.IsRockSign
	snap.OpenHandPressed = !prev.IsOpenHand && curr.IsOpenHand
	snap.OpenHandReleased = prev.IsOpenHand && !curr.IsOpenHand
	snap.PointingPressed = !prev.IsPointing && curr.IsPointing
	snap.PointingReleased = prev.IsPointing && !curr.IsPointing
	snap.OKSignPressed = !prev.IsOKSign && curr.IsOKSign
	snap.OKSignReleased = prev.IsOKSign && !curr.IsOKSign

	return snap
}

// handContinuous copies the continuous fields of a state into a snapshot
// with every edge pulse false.
func handContinuous(state tracker.HandState) HandSnapshot {
	return HandSnapshot{
		Present:      state.Present,
		IsClosed:     state.IsClosed,
		IsPinch:      state.IsPinch,
		IsPeace:      state.IsPeace,
		IsThumbsUp:   state.IsThumbsUp,
		IsThumbsDown: state.IsThumbsDown,
		IsRockSign:   state.IsRockSign,
		IsOpenHand:   state.IsOpenHand,
		IsPointing:   state.IsPointing,
		IsOKSign:     state.IsOKSign,
		CursorX:      state.CursorX,
		CursorY:      state.CursorY,
		Handedness:   state.Handedness,
	}
}
