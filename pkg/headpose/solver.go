package headpose

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrBadInput reports object and image point sets that cannot be fitted.
	ErrBadInput = errors.New("headpose: need at least four matched point pairs")
	// ErrSolveFailed reports a pose fit that did not converge.
	ErrSolveFailed = errors.New("headpose: pose estimation did not converge")
)

// Pose is a head orientation in degrees. Pitch is rotation about the camera
// x axis (nodding), yaw about the y axis (turning) and roll about the z axis
// (tilting).
type Pose struct {
	Pitch float64
	Yaw   float64
	Roll  float64
}

// Solver estimates head pose by minimizing the pixel reprojection error of a
// 3D point model with a damped Gauss-Newton iteration.
type Solver struct {
	// MaxIterations bounds the number of accepted or rejected steps.
	MaxIterations int
	// Tolerance is the step norm below which the fit counts as converged.
	Tolerance float64
}

// NewSolver returns a Solver with defaults suited to per-frame tracking.
func NewSolver() *Solver {
	return &Solver{
		MaxIterations: 50,
		Tolerance:     1e-8,
	}
}

// Solve fits the rigid transform that projects object onto image under cam
// and returns the resulting orientation. Object and image must be matched
// pairs of equal length. A degenerate configuration or a fit that does not
// converge yields ErrSolveFailed; callers treat that as the head being
// absent from the frame.
func (s *Solver) Solve(object [][3]float64, image [][2]float64, cam Intrinsics) (Pose, error) {
	if len(object) != len(image) || len(object) < 4 {
		return Pose{}, ErrBadInput
	}

	theta, err := initialGuess(object, image, cam)
	if err != nil {
		return Pose{}, err
	}

	res, ok := residuals(theta, object, image, cam)
	if !ok {
		return Pose{}, ErrSolveFailed
	}
	cost := sumSquares(res)

	lambda := 1e-3
	converged := false
	for iter := 0; iter < s.MaxIterations; iter++ {
		jac, ok := jacobian(theta, object, image, cam)
		if !ok {
			return Pose{}, ErrSolveFailed
		}

		var jtj mat.Dense
		jtj.Mul(jac.T(), jac)
		grad := mat.NewVecDense(6, nil)
		grad.MulVec(jac.T(), mat.NewVecDense(len(res), res))

		// Marquardt damping scales the diagonal so that rotation and
		// translation parameters step on their own scales.
		var damped mat.Dense
		damped.CloneFrom(&jtj)
		for k := 0; k < 6; k++ {
			d := jtj.At(k, k)
			if d == 0 {
				d = 1e-12
			}
			damped.Set(k, k, d*(1+lambda))
		}

		step := mat.NewVecDense(6, nil)
		if err := step.SolveVec(&damped, grad); err != nil {
			lambda *= 10
			if lambda > 1e12 {
				return Pose{}, ErrSolveFailed
			}
			continue
		}

		var trial [6]float64
		for k := 0; k < 6; k++ {
			trial[k] = theta[k] - step.AtVec(k)
		}
		trialRes, ok := residuals(trial, object, image, cam)
		if !ok {
			lambda *= 10
			if lambda > 1e12 {
				return Pose{}, ErrSolveFailed
			}
			continue
		}
		trialCost := sumSquares(trialRes)

		if trialCost < cost {
			theta = trial
			res = trialRes
			cost = trialCost
			if lambda > 1e-12 {
				lambda /= 10
			}
			if mat.Norm(step, 2) < s.Tolerance || cost < 1e-12 {
				converged = true
				break
			}
		} else {
			lambda *= 10
			if lambda > 1e12 {
				return Pose{}, ErrSolveFailed
			}
		}
	}
	if !converged {
		return Pose{}, ErrSolveFailed
	}

	rot := rodrigues([3]float64{theta[0], theta[1], theta[2]})
	pitch, yaw, roll := EulerAngles(rot)
	if !isFinite(pitch) || !isFinite(yaw) || !isFinite(roll) {
		return Pose{}, ErrSolveFailed
	}
	return Pose{Pitch: pitch, Yaw: yaw, Roll: roll}, nil
}

// EulerAngles decomposes a rotation matrix into pitch, yaw and roll in
// degrees using the x-y-z Tait-Bryan convention.
func EulerAngles(rot mat.Matrix) (pitch, yaw, roll float64) {
	const toDeg = 180 / math.Pi
	r00 := rot.At(0, 0)
	r10 := rot.At(1, 0)
	r20 := rot.At(2, 0)
	r21 := rot.At(2, 1)
	r22 := rot.At(2, 2)
	pitch = math.Atan2(r21, r22) * toDeg
	yaw = math.Atan2(-r20, math.Sqrt(r00*r00+r10*r10)) * toDeg
	roll = math.Atan2(r10, r00) * toDeg
	return pitch, yaw, roll
}

// initialGuess seats the model in front of the camera with no rotation,
// choosing a depth from the ratio of model spread to observed pixel spread
// and a translation that aligns the projected centroid with the observed
// one.
func initialGuess(object [][3]float64, image [][2]float64, cam Intrinsics) ([6]float64, error) {
	n := float64(len(object))
	var c3 [3]float64
	var c2 [2]float64
	for i := range object {
		c3[0] += object[i][0]
		c3[1] += object[i][1]
		c3[2] += object[i][2]
		c2[0] += image[i][0]
		c2[1] += image[i][1]
	}
	c3[0], c3[1], c3[2] = c3[0]/n, c3[1]/n, c3[2]/n
	c2[0], c2[1] = c2[0]/n, c2[1]/n

	var spread3, spread2 float64
	for i := range object {
		dx, dy := object[i][0]-c3[0], object[i][1]-c3[1]
		spread3 += math.Hypot(dx, dy)
		spread2 += math.Hypot(image[i][0]-c2[0], image[i][1]-c2[1])
	}
	spread3 /= n
	spread2 /= n
	if spread2 < 1e-9 || spread3 < 1e-9 {
		return [6]float64{}, ErrSolveFailed
	}

	z0 := cam.Fx * spread3 / spread2
	return [6]float64{
		0, 0, 0,
		(c2[0]-cam.Cx)*z0/cam.Fx - c3[0],
		(c2[1]-cam.Cy)*z0/cam.Fy - c3[1],
		z0 - c3[2],
	}, nil
}

// residuals returns the stacked pixel reprojection errors (u, v per point)
// for the pose theta. ok is false when a point lands behind the camera or a
// value is not finite.
func residuals(theta [6]float64, object [][3]float64, image [][2]float64, cam Intrinsics) ([]float64, bool) {
	rot := rodrigues([3]float64{theta[0], theta[1], theta[2]})
	out := make([]float64, 2*len(object))
	for i, p := range object {
		x := rot.At(0, 0)*p[0] + rot.At(0, 1)*p[1] + rot.At(0, 2)*p[2] + theta[3]
		y := rot.At(1, 0)*p[0] + rot.At(1, 1)*p[1] + rot.At(1, 2)*p[2] + theta[4]
		z := rot.At(2, 0)*p[0] + rot.At(2, 1)*p[1] + rot.At(2, 2)*p[2] + theta[5]
		if z < 1e-9 {
			return nil, false
		}
		u := cam.Fx*x/z + cam.Cx
		v := cam.Fy*y/z + cam.Cy
		if !isFinite(u) || !isFinite(v) {
			return nil, false
		}
		out[2*i] = u - image[i][0]
		out[2*i+1] = v - image[i][1]
	}
	return out, true
}

// jacobian estimates the residual derivatives with central differences.
func jacobian(theta [6]float64, object [][3]float64, image [][2]float64, cam Intrinsics) (*mat.Dense, bool) {
	jac := mat.NewDense(2*len(object), 6, nil)
	for j := 0; j < 6; j++ {
		eps := 1e-6 * math.Max(1, math.Abs(theta[j]))
		plus, minus := theta, theta
		plus[j] += eps
		minus[j] -= eps
		rp, ok := residuals(plus, object, image, cam)
		if !ok {
			return nil, false
		}
		rm, ok := residuals(minus, object, image, cam)
		if !ok {
			return nil, false
		}
		for i := range rp {
			jac.Set(i, j, (rp[i]-rm[i])/(2*eps))
		}
	}
	return jac, true
}

// rodrigues converts a rotation vector to a rotation matrix. The vector
// direction is the rotation axis and its norm the angle in radians.
func rodrigues(r [3]float64) *mat.Dense {
	angle := math.Sqrt(r[0]*r[0] + r[1]*r[1] + r[2]*r[2])
	rot := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	})
	if angle < 1e-12 {
		return rot
	}
	kx, ky, kz := r[0]/angle, r[1]/angle, r[2]/angle
	skew := mat.NewDense(3, 3, []float64{
		0, -kz, ky,
		kz, 0, -kx,
		-ky, kx, 0,
	})
	var skew2, sinTerm, cosTerm mat.Dense
	skew2.Mul(skew, skew)
	sin, cos := math.Sincos(angle)
	sinTerm.Scale(sin, skew)
	cosTerm.Scale(1-cos, &skew2)
	rot.Add(rot, &sinTerm)
	rot.Add(rot, &cosTerm)
	return rot
}

func sumSquares(v []float64) float64 {
	var s float64
	for _, x := range v {
		s += x * x
	}
	return s
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
