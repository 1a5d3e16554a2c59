// Package headpose fits a fixed six-point 3D face model to observed face
// landmarks and reports head orientation as pitch, yaw and roll in degrees.
package headpose

import "github.com/Harpita-P/Kiro-InteractionKit/pkg/landmark"

// PoseLandmarkIndices lists the face mesh indices fitted against the 3D
// reference model, in ascending order: nose tip, glabella, the two mouth
// corners and the two outer eye corners.
var PoseLandmarkIndices = [6]int{
	landmark.NoseTip,
	landmark.Glabella,
	landmark.MouthCornerRight,
	landmark.EyeOuterRight,
	landmark.MouthCornerLeft,
	landmark.EyeOuterLeft,
}

// faceModel holds the reference model coordinates, row i pairing with
// PoseLandmarkIndices[i]. The values are in an arbitrary right-handed unit
// with y growing downward, matching image orientation.
var faceModel = [6][3]float64{
	{285, 528, 200},
	{285, 371, 152},
	{197, 574, 128},
	{173, 425, 108},
	{360, 574, 128},
	{391, 425, 108},
}

// FaceModel returns a copy of the 3D reference model. Row i corresponds to
// PoseLandmarkIndices[i].
func FaceModel() [][3]float64 {
	model := make([][3]float64, len(faceModel))
	for i, p := range faceModel {
		model[i] = p
	}
	return model
}

// Intrinsics is a pinhole camera model with zero distortion.
type Intrinsics struct {
	Fx float64
	Fy float64
	Cx float64
	Cy float64
}

// IntrinsicsForFrame approximates camera intrinsics from the frame size: the
// focal length is the frame width and the principal point the frame center.
func IntrinsicsForFrame(width, height int) Intrinsics {
	w := float64(width)
	return Intrinsics{
		Fx: w,
		Fy: w,
		Cx: w / 2,
		Cy: float64(height) / 2,
	}
}
