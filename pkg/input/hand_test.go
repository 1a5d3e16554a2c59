package input

import (
	"errors"
	"testing"

	"gocv.io/x/gocv"

	"github.com/Harpita-P/Kiro-InteractionKit/pkg/tracker"
)

func TestDiffHand(t *testing.T) {
	tests := []struct {
		name         string
		prev         tracker.HandState
		curr         tracker.HandState
		wantPressed  bool
		wantReleased bool
	}{
		{
			name:        "pinch starting fires pressed",
			prev:        tracker.HandState{Present: true},
			curr:        tracker.HandState{Present: true, IsPinch: true},
			wantPressed: true,
		},
		{
			name:         "pinch ending fires released",
			prev:         tracker.HandState{Present: true, IsPinch: true},
			curr:         tracker.HandState{Present: true},
			wantReleased: true,
		},
		{
			name: "held pinch fires nothing",
			prev: tracker.HandState{Present: true, IsPinch: true},
			curr: tracker.HandState{Present: true, IsPinch: true},
		},
		{
			name: "absent to absent fires nothing",
			prev: tracker.HandState{},
			curr: tracker.HandState{},
		},
		{
			name:         "hand vanishing mid-pinch fires released",
			prev:         tracker.HandState{Present: true, IsPinch: true},
			curr:         tracker.HandState{},
			wantReleased: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snap := DiffHand(tt.prev, tt.curr)
			if snap.PinchPressed != tt.wantPressed {
				t.Errorf("PinchPressed = %v, want %v", snap.PinchPressed, tt.wantPressed)
			}
			if snap.PinchReleased != tt.wantReleased {
				t.Errorf("PinchReleased = %v, want %v", snap.PinchReleased, tt.wantReleased)
			}
		})
	}
}

func TestDiffHand_IndependentGestures(t *testing.T) {
	// One gesture starts while another ends in the same frame.
	prev := tracker.HandState{Present: true, IsPeace: true}
	curr := tracker.HandState{Present: true, IsPinch: true}

	snap := DiffHand(prev, curr)

	if !snap.PinchPressed {
		t.Error("PinchPressed = false, want true")
	}
	if !snap.PeaceReleased {
		t.Error("PeaceReleased = false, want true")
	}
	if snap.PinchReleased || snap.PeacePressed {
		t.Error("opposite edges fired for transitioning gestures")
	}
	if snap.ClosedPressed || snap.ClosedReleased {
		t.Error("edges fired for an uninvolved gesture")
	}
}

func TestDiffHand_EdgeExclusivity(t *testing.T) {
	// For every prev/curr combination of one flag, pressed and released
	// must never both be true.
	for _, prevFlag := range []bool{false, true} {
		for _, currFlag := range []bool{false, true} {
			prev := tracker.HandState{Present: true, IsClosed: prevFlag}
			curr := tracker.HandState{Present: true, IsClosed: currFlag}
			snap := DiffHand(prev, curr)
			if snap.ClosedPressed && snap.ClosedReleased {
				t.Errorf("prev=%v curr=%v: pressed and released both true", prevFlag, currFlag)
			}
		}
	}
}

func TestDiffHand_CopiesContinuousFields(t *testing.T) {
	curr := tracker.HandState{
		Present:    true,
		Handedness: "Left",
		CursorX:    0.25,
		CursorY:    0.75,
		IsPointing: true,
	}

	snap := DiffHand(tracker.HandState{}, curr)

	if !snap.Present || !snap.IsPointing {
		t.Error("continuous flags not mirrored from the state")
	}
	if snap.Handedness != "Left" {
		t.Errorf("Handedness = %q, want %q", snap.Handedness, "Left")
	}
	if snap.CursorX != 0.25 || snap.CursorY != 0.75 {
		t.Errorf("cursor = (%v, %v), want (0.25, 0.75)", snap.CursorX, snap.CursorY)
	}
}

func TestHandManagerFirstFrameHasNoEdges(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	mock := tracker.NewMockHandDetector()
	mock.SetHands([]tracker.HandDetection{tracker.PinchHandLandmarks()})
	manager := NewHandManager(tracker.NewHandTracker(mock, tracker.DefaultHandTrackerConfig()))
	defer manager.Close()

	snap, err := manager.UpdateFromFrame(&frame)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !snap.IsPinch {
		t.Error("IsPinch = false, want true on the first frame")
	}
	if snap.PinchPressed {
		t.Error("PinchPressed = true on the first frame, want false")
	}
}

func TestHandManagerEdgeSequence(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	mock := tracker.NewMockHandDetector()
	manager := NewHandManager(tracker.NewHandTracker(mock, tracker.DefaultHandTrackerConfig()))
	defer manager.Close()

	// Frame 1: no hand.
	snap, err := manager.UpdateFromFrame(&frame)
	if err != nil {
		t.Fatalf("frame 1: unexpected error: %v", err)
	}
	if snap.Present || snap.PinchPressed {
		t.Errorf("frame 1: snapshot = %+v, want absent with no edges", snap)
	}

	// Frame 2: pinch appears.
	mock.SetHands([]tracker.HandDetection{tracker.PinchHandLandmarks()})
	snap, err = manager.UpdateFromFrame(&frame)
	if err != nil {
		t.Fatalf("frame 2: unexpected error: %v", err)
	}
	if !snap.PinchPressed {
		t.Error("frame 2: PinchPressed = false, want true")
	}
	if snap.PinchReleased {
		t.Error("frame 2: PinchReleased = true, want false")
	}

	// Frame 3: pinch held, no re-fire.
	snap, err = manager.UpdateFromFrame(&frame)
	if err != nil {
		t.Fatalf("frame 3: unexpected error: %v", err)
	}
	if snap.PinchPressed || snap.PinchReleased {
		t.Error("frame 3: edges fired for a held pinch")
	}
	if !snap.IsPinch {
		t.Error("frame 3: IsPinch = false, want true")
	}

	// Frame 4: hand gone.
	mock.SetHands(nil)
	snap, err = manager.UpdateFromFrame(&frame)
	if err != nil {
		t.Fatalf("frame 4: unexpected error: %v", err)
	}
	if !snap.PinchReleased {
		t.Error("frame 4: PinchReleased = false, want true")
	}
	if snap.Present {
		t.Error("frame 4: Present = true, want false")
	}
}

func TestHandManagerAbsentFrames(t *testing.T) {
	manager := NewHandManager(tracker.NewHandTracker(tracker.NewMockHandDetector(), tracker.DefaultHandTrackerConfig()))
	defer manager.Close()

	// Nil frames never reach the detector and classify as absent.
	first, err := manager.UpdateFromFrame(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := manager.UpdateFromFrame(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Present || second.Present {
		t.Error("expected absent snapshots for nil frames")
	}
	if second != (HandSnapshot{}) {
		t.Errorf("second snapshot = %+v, want zero value", second)
	}
}

func TestHandManagerDetectorFailure(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping test that requires GoCV Mat creation")
	}

	frame := gocv.NewMatWithSize(480, 640, gocv.MatTypeCV8UC3)
	defer frame.Close()

	mock := tracker.NewMockHandDetector()
	detectErr := errors.New("service unavailable")
	mock.SetError(detectErr)
	manager := NewHandManager(tracker.NewHandTracker(mock, tracker.DefaultHandTrackerConfig()))
	defer manager.Close()

	snap, err := manager.UpdateFromFrame(&frame)
	if !errors.Is(err, detectErr) {
		t.Errorf("expected wrapped detector error, got %v", err)
	}
	if snap.Present {
		t.Error("expected absent snapshot on detector failure")
	}
}
