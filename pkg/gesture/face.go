package gesture

import "github.com/Harpita-P/Kiro-InteractionKit/pkg/landmark"

// Default face classifier thresholds.
const (
	DefaultBlinkThreshold     = 0.21
	DefaultMouthOpenThreshold = 0.03
	DefaultSmileThreshold     = 0.015
)

// FaceThresholds bundles the face classifier thresholds.
type FaceThresholds struct {
	Blink     float64 `koanf:"blink" json:"blink"`
	MouthOpen float64 `koanf:"mouth_open" json:"mouth_open"`
	Smile     float64 `koanf:"smile" json:"smile"`
}

// DefaultFaceThresholds returns the stock face thresholds.
func DefaultFaceThresholds() FaceThresholds {
	return FaceThresholds{
		Blink:     DefaultBlinkThreshold,
		MouthOpen: DefaultMouthOpenThreshold,
		Smile:     DefaultSmileThreshold,
	}
}

// EyeAspectRatio computes the six-point eye aspect ratio
//
//	EAR = (||p2-p6|| + ||p3-p5||) / (2 * ||p1-p4||)
//
// over the given eye contour indices, using planar distances. A closed eye
// collapses the two vertical lid pairs, driving the ratio toward zero.
// Returns 0 when the horizontal corner distance is zero.
func EyeAspectRatio(points []landmark.Point, eye [6]int) float64 {
	if len(points) < landmark.NumFaceLandmarks {
		return 0
	}

	p1, p2, p3 := points[eye[0]], points[eye[1]], points[eye[2]]
	p4, p5, p6 := points[eye[3]], points[eye[4]], points[eye[5]]

	v1 := landmark.Distance(p2, p6)
	v2 := landmark.Distance(p3, p5)
	h := landmark.Distance(p1, p4)
	if h <= 0 {
		return 0
	}

	return (v1 + v2) / (2.0 * h)
}

// IsBlink reports whether both eyes are closed. The eye aspect ratios of the
// two eyes are averaged and compared against the threshold; the eyes count as
// closed when the average falls below it.
func IsBlink(points []landmark.Point, threshold float64) bool {
	if len(points) < landmark.NumFaceLandmarks {
		return false
	}

	leftEAR := EyeAspectRatio(points, landmark.LeftEye)
	rightEAR := EyeAspectRatio(points, landmark.RightEye)

	return (leftEAR+rightEAR)/2.0 < threshold
}

// MouthAspectRatio computes the ratio of the inner-lip vertical gap to the
// inner mouth width, both as 3D distances. Returns 0 when the mouth width is
// zero.
func MouthAspectRatio(points []landmark.Point) float64 {
	if len(points) < landmark.NumFaceLandmarks {
		return 0
	}

	vertical := landmark.Distance3D(points[landmark.UpperLipBottom], points[landmark.LowerLipTop])
	horizontal := landmark.Distance3D(points[landmark.InnerMouthRight], points[landmark.InnerMouthLeft])
	if horizontal <= 0 {
		return 0
	}

	return vertical / horizontal
}

// IsMouthOpen reports whether the mouth is open: the mouth aspect ratio
// exceeds the threshold.
func IsMouthOpen(points []landmark.Point, threshold float64) bool {
	return MouthAspectRatio(points) > threshold
}

// IsSmiling reports whether the subject is smiling: both outer mouth corners
// sit above the vertical lip midpoint (mean of the upper-lip top and the
// lower-lip bottom) by more than the threshold.
func IsSmiling(points []landmark.Point, threshold float64) bool {
	if len(points) < landmark.NumFaceLandmarks {
		return false
	}

	centerY := (points[landmark.UpperLipTop].Y + points[landmark.LowerLipBottom].Y) / 2
	rightElevation := centerY - points[landmark.OuterLipRight].Y
	leftElevation := centerY - points[landmark.OuterLipLeft].Y

	return rightElevation > threshold && leftElevation > threshold
}
