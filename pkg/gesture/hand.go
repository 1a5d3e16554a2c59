// Package gesture implements the geometric gesture classifiers: pure boolean
// predicates over a landmark set, each parameterized by numeric thresholds.
// Classifiers are independent and several may be true for the same frame;
// ranking co-firing gestures is left to the caller.
package gesture

import (
	"math"

	"github.com/Harpita-P/Kiro-InteractionKit/pkg/landmark"
)

// Default hand classifier thresholds. Applications may tune these, but the
// stock mappings are calibrated against the defaults.
const (
	DefaultCloseThreshold     = 0.01
	DefaultPinchThreshold     = 0.05
	DefaultCurlThreshold      = 0.05
	DefaultTipGapThreshold    = 0.05
	DefaultExtensionThreshold = 0.1
	DefaultSpreadThreshold    = 0.15
)

// HandThresholds bundles the hand classifier thresholds so trackers and
// configuration can carry them as one value.
type HandThresholds struct {
	Close     float64 `koanf:"close" json:"close"`
	Pinch     float64 `koanf:"pinch" json:"pinch"`
	Curl      float64 `koanf:"curl" json:"curl"`
	TipGap    float64 `koanf:"tip_gap" json:"tip_gap"`
	Extension float64 `koanf:"extension" json:"extension"`
	Spread    float64 `koanf:"spread" json:"spread"`
}

// DefaultHandThresholds returns the stock hand thresholds.
func DefaultHandThresholds() HandThresholds {
	return HandThresholds{
		Close:     DefaultCloseThreshold,
		Pinch:     DefaultPinchThreshold,
		Curl:      DefaultCurlThreshold,
		TipGap:    DefaultTipGapThreshold,
		Extension: DefaultExtensionThreshold,
		Spread:    DefaultSpreadThreshold,
	}
}

// IsClosed reports whether the hand is considered closed (a fist).
// The hand counts as closed when the middle fingertip sits below the middle
// MCP joint by more than closeThreshold (y grows downward, so a curled
// fingertip has the larger y).
func IsClosed(points []landmark.Point, closeThreshold float64) bool {
	if len(points) < landmark.NumHandLandmarks {
		return false
	}
	return points[landmark.MiddleTip].Y-points[landmark.MiddleMCP].Y > closeThreshold
}

// IsPinch reports whether the thumb tip and index tip are close enough to
// count as a pinch. Distance is Euclidean in the normalized image plane.
func IsPinch(points []landmark.Point, pinchThreshold float64) bool {
	if len(points) < landmark.NumHandLandmarks {
		return false
	}
	return landmark.Distance(points[landmark.ThumbTip], points[landmark.IndexTip]) < pinchThreshold
}

// IsPeace reports whether the hand roughly forms a peace / victory sign:
// index and middle extended, ring and pinky curled, and the two raised tips
// separated horizontally by at least tipGapThreshold to resemble a V.
func IsPeace(points []landmark.Point, tipGapThreshold, curlThreshold float64) bool {
	if len(points) < landmark.NumHandLandmarks {
		return false
	}

	indexExtended := points[landmark.IndexTip].Y+curlThreshold < points[landmark.IndexPIP].Y
	middleExtended := points[landmark.MiddleTip].Y+curlThreshold < points[landmark.MiddlePIP].Y
	ringCurled := points[landmark.RingTip].Y >= points[landmark.RingPIP].Y-curlThreshold
	pinkyCurled := points[landmark.PinkyTip].Y >= points[landmark.PinkyPIP].Y-curlThreshold

	if !(indexExtended && middleExtended && ringCurled && pinkyCurled) {
		return false
	}

	return math.Abs(points[landmark.IndexTip].X-points[landmark.MiddleTip].X) >= tipGapThreshold
}

// IsThumbsUp reports whether the hand forms a thumbs up: thumb extended
// upward past its IP joint while the four fingers are curled.
func IsThumbsUp(points []landmark.Point, curlThreshold float64) bool {
	if len(points) < landmark.NumHandLandmarks {
		return false
	}

	thumbExtended := points[landmark.ThumbTip].Y+curlThreshold < points[landmark.ThumbIP].Y
	return thumbExtended && fourFingersCurled(points, curlThreshold)
}

// IsThumbsDown reports whether the hand forms a thumbs down: thumb extended
// downward past its IP joint while the four fingers are curled.
func IsThumbsDown(points []landmark.Point, curlThreshold float64) bool {
	if len(points) < landmark.NumHandLandmarks {
		return false
	}

	thumbExtended := points[landmark.ThumbTip].Y-curlThreshold > points[landmark.ThumbIP].Y
	return thumbExtended && fourFingersCurled(points, curlThreshold)
}

// IsRockSign reports whether the hand forms a rock / devil-horns sign: index
// and pinky extended, middle and ring curled, index and pinky tips separated
// horizontally by more than tipGapThreshold.
func IsRockSign(points []landmark.Point, tipGapThreshold, curlThreshold float64) bool {
	if len(points) < landmark.NumHandLandmarks {
		return false
	}

	indexExtended := points[landmark.IndexTip].Y+curlThreshold < points[landmark.IndexPIP].Y
	pinkyExtended := points[landmark.PinkyTip].Y+curlThreshold < points[landmark.PinkyPIP].Y
	middleCurled := points[landmark.MiddleTip].Y >= points[landmark.MiddlePIP].Y-curlThreshold
	ringCurled := points[landmark.RingTip].Y >= points[landmark.RingPIP].Y-curlThreshold
	separated := math.Abs(points[landmark.IndexTip].X-points[landmark.PinkyTip].X) > tipGapThreshold

	return indexExtended && pinkyExtended && middleCurled && ringCurled && separated
}

// IsOpenHand reports whether the hand is fully open with fingers spread: all
// five tips extended past their lower joints by extensionThreshold, and the
// four fingertips spanning more than spreadThreshold horizontally.
func IsOpenHand(points []landmark.Point, extensionThreshold, spreadThreshold float64) bool {
	if len(points) < landmark.NumHandLandmarks {
		return false
	}

	pairs := [5][2]int{
		{landmark.ThumbTip, landmark.ThumbIP},
		{landmark.IndexTip, landmark.IndexPIP},
		{landmark.MiddleTip, landmark.MiddlePIP},
		{landmark.RingTip, landmark.RingPIP},
		{landmark.PinkyTip, landmark.PinkyPIP},
	}
	for _, p := range pairs {
		if !(points[p[0]].Y+extensionThreshold < points[p[1]].Y) {
			return false
		}
	}

	minX := points[landmark.IndexTip].X
	maxX := minX
	for _, idx := range []int{landmark.MiddleTip, landmark.RingTip, landmark.PinkyTip} {
		x := points[idx].X
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
	}

	return maxX-minX > spreadThreshold
}

// IsPointing reports whether the hand is pointing with the index finger:
// index extended, middle, ring and pinky curled.
func IsPointing(points []landmark.Point, curlThreshold float64) bool {
	if len(points) < landmark.NumHandLandmarks {
		return false
	}

	indexExtended := points[landmark.IndexTip].Y+curlThreshold < points[landmark.IndexPIP].Y
	if !indexExtended {
		return false
	}

	for _, p := range [3][2]int{
		{landmark.MiddleTip, landmark.MiddlePIP},
		{landmark.RingTip, landmark.RingPIP},
		{landmark.PinkyTip, landmark.PinkyPIP},
	} {
		if !(points[p[0]].Y >= points[p[1]].Y-curlThreshold) {
			return false
		}
	}

	return true
}

// IsOKSign reports whether the hand forms an OK sign: thumb and index tips
// touching (closer than distanceThreshold) while middle, ring and pinky are
// extended.
func IsOKSign(points []landmark.Point, curlThreshold, distanceThreshold float64) bool {
	if len(points) < landmark.NumHandLandmarks {
		return false
	}

	touching := landmark.Distance(points[landmark.ThumbTip], points[landmark.IndexTip]) < distanceThreshold
	if !touching {
		return false
	}

	middleExtended := points[landmark.MiddleTip].Y+curlThreshold < points[landmark.MiddlePIP].Y
	ringExtended := points[landmark.RingTip].Y+curlThreshold < points[landmark.RingPIP].Y
	pinkyExtended := points[landmark.PinkyTip].Y+curlThreshold < points[landmark.PinkyPIP].Y

	return middleExtended && ringExtended && pinkyExtended
}

// IsPointingSimple is a looser pointing check for callers working from the raw
// landmark slice: the index tip must be above every other fingertip. Useful
// as a secondary signal when IsPointing is too strict for a use case.
func IsPointingSimple(points []landmark.Point) bool {
	if len(points) < landmark.NumHandLandmarks {
		return false
	}

	indexY := points[landmark.IndexTip].Y
	return indexY < points[landmark.MiddleTip].Y &&
		indexY < points[landmark.RingTip].Y &&
		indexY < points[landmark.PinkyTip].Y &&
		indexY < points[landmark.ThumbTip].Y
}

func fourFingersCurled(points []landmark.Point, curlThreshold float64) bool {
	for _, p := range [4][2]int{
		{landmark.IndexTip, landmark.IndexPIP},
		{landmark.MiddleTip, landmark.MiddlePIP},
		{landmark.RingTip, landmark.RingPIP},
		{landmark.PinkyTip, landmark.PinkyPIP},
	} {
		if !(points[p[0]].Y >= points[p[1]].Y-curlThreshold) {
			return false
		}
	}
	return true
}
