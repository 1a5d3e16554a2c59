package landmark

// Face mesh landmark indices following the MediaPipe 468-point topology.
// Only the points read by the face classifiers are named here.
// See: https://developers.google.com/mediapipe/solutions/vision/face_landmarker
const (
	UpperLipTop      = 0   // top of the upper lip
	NoseTip          = 1   // used by the head pose fit
	Glabella         = 9   // between the eyebrows, used by the head pose fit
	UpperLipBottom   = 13  // inner edge of the upper lip
	LowerLipTop      = 14  // inner edge of the lower lip
	LowerLipBottom   = 17  // bottom of the lower lip
	MouthCornerRight = 57  // subject's right, image left in un-mirrored frames
	MouthCornerLeft  = 287 // subject's left
	OuterLipRight    = 61
	OuterLipLeft     = 291
	InnerMouthRight  = 78
	InnerMouthLeft   = 308
	EyeOuterRight    = 130
	EyeOuterLeft     = 359

	NumFaceLandmarks = 468
)

// LeftEye and RightEye list the six eye-contour indices consumed by the eye
// aspect ratio, ordered p1..p6: the horizontal corner pair is (p1, p4), the
// upper lid pair is (p2, p3) and the lower lid pair is (p6, p5).
var (
	LeftEye  = [6]int{362, 385, 387, 263, 373, 380}
	RightEye = [6]int{33, 160, 158, 133, 153, 144}
)
