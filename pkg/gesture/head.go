package gesture

// Default head pose thresholds in degrees. NodDown is a signed threshold: the
// pitch must fall below it, so the default is negative.
const (
	DefaultNodUpThreshold   = 15.0
	DefaultNodDownThreshold = -15.0
	DefaultTurnThreshold    = 20.0
	DefaultTiltThreshold    = 15.0
)

// HeadThresholds bundles the head pose thresholds.
type HeadThresholds struct {
	NodUp   float64 `koanf:"nod_up" json:"nod_up"`
	NodDown float64 `koanf:"nod_down" json:"nod_down"`
	Turn    float64 `koanf:"turn" json:"turn"`
	Tilt    float64 `koanf:"tilt" json:"tilt"`
}

// DefaultHeadThresholds returns the stock head thresholds.
func DefaultHeadThresholds() HeadThresholds {
	return HeadThresholds{
		NodUp:   DefaultNodUpThreshold,
		NodDown: DefaultNodDownThreshold,
		Turn:    DefaultTurnThreshold,
		Tilt:    DefaultTiltThreshold,
	}
}

// IsNodUp reports whether the head is tilted up: pitch above the threshold.
// Pitch is positive looking up, negative looking down.
func IsNodUp(pitch, threshold float64) bool {
	return pitch > threshold
}

// IsNodDown reports whether the head is tilted down: pitch below the
// (signed, typically negative) threshold.
func IsNodDown(pitch, threshold float64) bool {
	return pitch < threshold
}

// IsTurnLeft reports whether the head is turned left: yaw below the negated
// threshold. Yaw is positive turning right, negative turning left.
func IsTurnLeft(yaw, threshold float64) bool {
	return yaw < -threshold
}

// IsTurnRight reports whether the head is turned right: yaw above the
// threshold.
func IsTurnRight(yaw, threshold float64) bool {
	return yaw > threshold
}

// IsTiltLeft reports whether the head is tilted toward the left shoulder:
// roll below the negated threshold. Roll is positive tilting right.
func IsTiltLeft(roll, threshold float64) bool {
	return roll < -threshold
}

// IsTiltRight reports whether the head is tilted toward the right shoulder:
// roll above the threshold.
func IsTiltRight(roll, threshold float64) bool {
	return roll > threshold
}
