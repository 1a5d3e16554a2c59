package tracker

import (
	"sync"

	"gocv.io/x/gocv"

	"github.com/Harpita-P/Kiro-InteractionKit/pkg/landmark"
)

// MockHandDetector is a test implementation of HandDetector that returns
// pre-configured results. Safe to reconfigure while a pipeline is running.
type MockHandDetector struct {
	mu    sync.Mutex
	hands []HandDetection
	err   error
}

// NewMockHandDetector creates an empty mock hand detector.
func NewMockHandDetector() *MockHandDetector {
	return &MockHandDetector{}
}

// SetHands sets the hands returned by Detect.
func (m *MockHandDetector) SetHands(hands []HandDetection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hands = hands
}

// SetError sets the error returned by Detect.
func (m *MockHandDetector) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockHandDetector) Detect(frame *gocv.Mat) ([]HandDetection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockHandDetector) Close() error {
	return nil
}

// MockFaceDetector is a test implementation of FaceDetector that returns
// pre-configured results. Safe to reconfigure while a pipeline is running.
type MockFaceDetector struct {
	mu    sync.Mutex
	faces []FaceDetection
	err   error
}

// NewMockFaceDetector creates an empty mock face detector.
func NewMockFaceDetector() *MockFaceDetector {
	return &MockFaceDetector{}
}

// SetFaces sets the faces returned by Detect.
func (m *MockFaceDetector) SetFaces(faces []FaceDetection) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.faces = faces
}

// SetError sets the error returned by Detect.
func (m *MockFaceDetector) SetError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Detect returns the pre-configured faces or error.
func (m *MockFaceDetector) Detect(frame *gocv.Mat) ([]FaceDetection, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.faces, nil
}

// Close is a no-op for the mock detector.
func (m *MockFaceDetector) Close() error {
	return nil
}

// PinchHandLandmarks returns a hand with the thumb and index fingertips
// touching and the remaining fingers relaxed, so that only the pinch
// classifier fires under default thresholds.
func PinchHandLandmarks() HandDetection {
	points := make([]landmark.Point, landmark.NumHandLandmarks)

	points[landmark.Wrist] = landmark.Point{X: 0.50, Y: 0.85}

	// Thumb reaching up to meet the index fingertip
	points[landmark.ThumbCMC] = landmark.Point{X: 0.42, Y: 0.78}
	points[landmark.ThumbMCP] = landmark.Point{X: 0.45, Y: 0.70}
	points[landmark.ThumbIP] = landmark.Point{X: 0.48, Y: 0.52}
	points[landmark.ThumbTip] = landmark.Point{X: 0.50, Y: 0.50}

	// Index curled down onto the thumb
	points[landmark.IndexMCP] = landmark.Point{X: 0.52, Y: 0.62}
	points[landmark.IndexPIP] = landmark.Point{X: 0.53, Y: 0.52}
	points[landmark.IndexDIP] = landmark.Point{X: 0.52, Y: 0.51}
	points[landmark.IndexTip] = landmark.Point{X: 0.50, Y: 0.50}

	// Remaining fingers relaxed, tips below their middle joints
	points[landmark.MiddleMCP] = landmark.Point{X: 0.50, Y: 0.63}
	points[landmark.MiddlePIP] = landmark.Point{X: 0.50, Y: 0.55}
	points[landmark.MiddleDIP] = landmark.Point{X: 0.50, Y: 0.57}
	points[landmark.MiddleTip] = landmark.Point{X: 0.50, Y: 0.58}

	points[landmark.RingMCP] = landmark.Point{X: 0.47, Y: 0.64}
	points[landmark.RingPIP] = landmark.Point{X: 0.47, Y: 0.57}
	points[landmark.RingDIP] = landmark.Point{X: 0.47, Y: 0.59}
	points[landmark.RingTip] = landmark.Point{X: 0.47, Y: 0.60}

	points[landmark.PinkyMCP] = landmark.Point{X: 0.44, Y: 0.66}
	points[landmark.PinkyPIP] = landmark.Point{X: 0.44, Y: 0.60}
	points[landmark.PinkyDIP] = landmark.Point{X: 0.44, Y: 0.62}
	points[landmark.PinkyTip] = landmark.Point{X: 0.44, Y: 0.63}

	return HandDetection{Points: points, Handedness: "Right", Score: 0.95}
}

// FistHandLandmarks returns a closed hand: every fingertip folded below its
// knuckle, with the thumb kept clear of the index finger so the pinch
// classifier stays quiet.
func FistHandLandmarks() HandDetection {
	points := make([]landmark.Point, landmark.NumHandLandmarks)

	points[landmark.Wrist] = landmark.Point{X: 0.50, Y: 0.80}

	points[landmark.ThumbCMC] = landmark.Point{X: 0.44, Y: 0.72}
	points[landmark.ThumbMCP] = landmark.Point{X: 0.43, Y: 0.66}
	points[landmark.ThumbIP] = landmark.Point{X: 0.42, Y: 0.64}
	points[landmark.ThumbTip] = landmark.Point{X: 0.40, Y: 0.63}

	points[landmark.IndexMCP] = landmark.Point{X: 0.52, Y: 0.60}
	points[landmark.IndexPIP] = landmark.Point{X: 0.53, Y: 0.56}
	points[landmark.IndexDIP] = landmark.Point{X: 0.53, Y: 0.60}
	points[landmark.IndexTip] = landmark.Point{X: 0.52, Y: 0.63}

	points[landmark.MiddleMCP] = landmark.Point{X: 0.50, Y: 0.60}
	points[landmark.MiddlePIP] = landmark.Point{X: 0.50, Y: 0.55}
	points[landmark.MiddleDIP] = landmark.Point{X: 0.50, Y: 0.60}
	points[landmark.MiddleTip] = landmark.Point{X: 0.50, Y: 0.64}

	points[landmark.RingMCP] = landmark.Point{X: 0.47, Y: 0.61}
	points[landmark.RingPIP] = landmark.Point{X: 0.47, Y: 0.56}
	points[landmark.RingDIP] = landmark.Point{X: 0.47, Y: 0.60}
	points[landmark.RingTip] = landmark.Point{X: 0.47, Y: 0.64}

	points[landmark.PinkyMCP] = landmark.Point{X: 0.44, Y: 0.63}
	points[landmark.PinkyPIP] = landmark.Point{X: 0.44, Y: 0.58}
	points[landmark.PinkyDIP] = landmark.Point{X: 0.44, Y: 0.62}
	points[landmark.PinkyTip] = landmark.Point{X: 0.44, Y: 0.65}

	return HandDetection{Points: points, Handedness: "Right", Score: 0.95}
}

// OpenHandLandmarks returns a spread hand with all five fingers extended.
func OpenHandLandmarks() HandDetection {
	points := make([]landmark.Point, landmark.NumHandLandmarks)

	points[landmark.Wrist] = landmark.Point{X: 0.50, Y: 0.85}

	points[landmark.ThumbCMC] = landmark.Point{X: 0.38, Y: 0.78}
	points[landmark.ThumbMCP] = landmark.Point{X: 0.36, Y: 0.70}
	points[landmark.ThumbIP] = landmark.Point{X: 0.34, Y: 0.60}
	points[landmark.ThumbTip] = landmark.Point{X: 0.32, Y: 0.45}

	points[landmark.IndexMCP] = landmark.Point{X: 0.42, Y: 0.62}
	points[landmark.IndexPIP] = landmark.Point{X: 0.41, Y: 0.52}
	points[landmark.IndexDIP] = landmark.Point{X: 0.40, Y: 0.45}
	points[landmark.IndexTip] = landmark.Point{X: 0.40, Y: 0.35}

	points[landmark.MiddleMCP] = landmark.Point{X: 0.50, Y: 0.60}
	points[landmark.MiddlePIP] = landmark.Point{X: 0.50, Y: 0.50}
	points[landmark.MiddleDIP] = landmark.Point{X: 0.50, Y: 0.42}
	points[landmark.MiddleTip] = landmark.Point{X: 0.50, Y: 0.30}

	points[landmark.RingMCP] = landmark.Point{X: 0.58, Y: 0.62}
	points[landmark.RingPIP] = landmark.Point{X: 0.59, Y: 0.52}
	points[landmark.RingDIP] = landmark.Point{X: 0.60, Y: 0.45}
	points[landmark.RingTip] = landmark.Point{X: 0.60, Y: 0.35}

	points[landmark.PinkyMCP] = landmark.Point{X: 0.65, Y: 0.66}
	points[landmark.PinkyPIP] = landmark.Point{X: 0.67, Y: 0.58}
	points[landmark.PinkyDIP] = landmark.Point{X: 0.69, Y: 0.50}
	points[landmark.PinkyTip] = landmark.Point{X: 0.70, Y: 0.42}

	return HandDetection{Points: points, Handedness: "Right", Score: 0.95}
}

// NeutralFaceLandmarks returns a face mesh with open eyes, a closed mouth
// and level lip corners, so no expression classifier fires.
func NeutralFaceLandmarks() FaceDetection {
	return FaceDetection{Points: neutralFacePoints(), Score: 0.9}
}

// BlinkingFaceLandmarks returns a face mesh with both eyes closed.
func BlinkingFaceLandmarks() FaceDetection {
	points := neutralFacePoints()
	setEyeOpening(points, landmark.RightEye, 0.40, 0.002)
	setEyeOpening(points, landmark.LeftEye, 0.60, 0.002)
	return FaceDetection{Points: points, Score: 0.9}
}

// SmilingFaceLandmarks returns a face mesh with both lip corners raised
// above the mouth center.
func SmilingFaceLandmarks() FaceDetection {
	points := neutralFacePoints()
	points[landmark.OuterLipRight] = landmark.Point{X: 0.45, Y: 0.56}
	points[landmark.OuterLipLeft] = landmark.Point{X: 0.55, Y: 0.56}
	return FaceDetection{Points: points, Score: 0.9}
}

// OpenMouthFaceLandmarks returns a face mesh with parted lips.
func OpenMouthFaceLandmarks() FaceDetection {
	points := neutralFacePoints()
	points[landmark.UpperLipTop] = landmark.Point{X: 0.50, Y: 0.555}
	points[landmark.UpperLipBottom] = landmark.Point{X: 0.50, Y: 0.565}
	points[landmark.LowerLipTop] = landmark.Point{X: 0.50, Y: 0.595}
	points[landmark.LowerLipBottom] = landmark.Point{X: 0.50, Y: 0.605}
	return FaceDetection{Points: points, Score: 0.9}
}

// neutralFacePoints builds the shared face geometry: eyes centered at
// y=0.45 around x=0.40 and x=0.60, mouth centered at y=0.58.
func neutralFacePoints() []landmark.Point {
	points := make([]landmark.Point, landmark.NumFaceLandmarks)
	for i := range points {
		points[i] = landmark.Point{X: 0.5, Y: 0.5}
	}

	setEyeOpening(points, landmark.RightEye, 0.40, 0.015)
	setEyeOpening(points, landmark.LeftEye, 0.60, 0.015)

	points[landmark.UpperLipTop] = landmark.Point{X: 0.50, Y: 0.57}
	points[landmark.UpperLipBottom] = landmark.Point{X: 0.50, Y: 0.5795}
	points[landmark.LowerLipTop] = landmark.Point{X: 0.50, Y: 0.5805}
	points[landmark.LowerLipBottom] = landmark.Point{X: 0.50, Y: 0.59}
	points[landmark.InnerMouthRight] = landmark.Point{X: 0.46, Y: 0.58}
	points[landmark.InnerMouthLeft] = landmark.Point{X: 0.54, Y: 0.58}
	points[landmark.OuterLipRight] = landmark.Point{X: 0.45, Y: 0.58}
	points[landmark.OuterLipLeft] = landmark.Point{X: 0.55, Y: 0.58}
	points[landmark.MouthCornerRight] = landmark.Point{X: 0.44, Y: 0.585}
	points[landmark.MouthCornerLeft] = landmark.Point{X: 0.56, Y: 0.585}

	points[landmark.NoseTip] = landmark.Point{X: 0.50, Y: 0.52}
	points[landmark.Glabella] = landmark.Point{X: 0.50, Y: 0.40}
	points[landmark.EyeOuterRight] = landmark.Point{X: 0.36, Y: 0.45}
	points[landmark.EyeOuterLeft] = landmark.Point{X: 0.64, Y: 0.45}

	return points
}

// setEyeOpening places one eye contour: corners 0.03 either side of
// centerX, upper and lower lids lidHalfGap above and below the center line.
func setEyeOpening(points []landmark.Point, eye [6]int, centerX, lidHalfGap float64) {
	const centerY = 0.45
	points[eye[0]] = landmark.Point{X: centerX - 0.03, Y: centerY}
	points[eye[3]] = landmark.Point{X: centerX + 0.03, Y: centerY}
	points[eye[1]] = landmark.Point{X: centerX - 0.01, Y: centerY - lidHalfGap}
	points[eye[2]] = landmark.Point{X: centerX + 0.01, Y: centerY - lidHalfGap}
	points[eye[4]] = landmark.Point{X: centerX + 0.01, Y: centerY + lidHalfGap}
	points[eye[5]] = landmark.Point{X: centerX - 0.01, Y: centerY + lidHalfGap}
}
