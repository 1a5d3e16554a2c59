// Package input derives one-frame edge pulses from successive tracker
// states, giving applications keyboard-like pressed and released signals
// for every gesture.
package input

// HandSnapshot is the per-frame hand input: the continuous state mirrored
// from the tracker plus one-frame pulses for each gesture transition.
type HandSnapshot struct {
	// Continuous state.
	Present      bool
	IsClosed     bool
	IsPinch      bool
	IsPeace      bool
	IsThumbsUp   bool
	IsThumbsDown bool
	IsRockSign   bool
	IsOpenHand   bool
	IsPointing   bool
	IsOKSign     bool
	CursorX      float64
	CursorY      float64
	Handedness   string

	// Edge pulses, true for exactly the frame on which the gesture
	// changed.
	ClosedPressed      bool
	ClosedReleased     bool
	PinchPressed       bool
	PinchReleased      bool
	PeacePressed       bool
	PeaceReleased      bool
	ThumbsUpPressed    bool
	ThumbsUpReleased   bool
	ThumbsDownPressed  bool
	ThumbsDownReleased bool
	RockSignPressed    bool
	RockSignReleased   bool
	OpenHandPressed    bool
	OpenHandReleased   bool
	PointingPressed    bool
	PointingReleased   bool
	OKSignPressed      bool
	OKSignReleased     bool
}

// FaceSnapshot is the per-frame face input: continuous expression flags
// plus one-frame pulses for each transition.
type FaceSnapshot struct {
	Present     bool
	IsBlink     bool
	IsMouthOpen bool
	IsSmiling   bool

	BlinkPressed      bool
	BlinkReleased     bool
	MouthOpenPressed  bool
	MouthOpenReleased bool
	SmilingPressed    bool
	SmilingReleased   bool
}
