package tracker

import "github.com/Harpita-P/Kiro-InteractionKit/pkg/landmark"

// HandState is the classified condition of the primary hand in one frame.
// The zero value is the absent state.
type HandState struct {
	Present bool

	// Handedness is "Left" or "Right" when reported by the detector.
	Handedness string

	// CursorX and CursorY are the normalized index fingertip position.
	// They are only meaningful when Present is true.
	CursorX float64
	CursorY float64

	IsClosed     bool
	IsPinch      bool
	IsPeace      bool
	IsThumbsUp   bool
	IsThumbsDown bool
	IsRockSign   bool
	IsOpenHand   bool
	IsPointing   bool
	IsOKSign     bool

	// Landmarks holds the raw normalized landmarks for callers that need
	// geometry beyond the classified flags.
	Landmarks []landmark.Point
}

// FaceState is the classified condition of the primary face in one frame.
// The zero value is the absent state.
type FaceState struct {
	Present bool

	IsBlink     bool
	IsMouthOpen bool
	IsSmiling   bool

	Landmarks []landmark.Point
}

// HeadState is the estimated head orientation in one frame, in degrees.
// The zero value is the absent state.
type HeadState struct {
	Present bool

	// Pitch is rotation about the x axis (nodding up and down).
	Pitch float64
	// Yaw is rotation about the y axis (turning left and right).
	Yaw float64
	// Roll is rotation about the z axis (tilting toward a shoulder).
	Roll float64
}
