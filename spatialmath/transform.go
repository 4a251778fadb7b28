// Package spatialmath implements rigid transformations between named
// reference frames using dual quaternions.
package spatialmath

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/dualquat"
	"gonum.org/v1/gonum/num/quat"
)

// RigidTransform is a rigid transformation taking points expressed in the
// frame FromFrame to points expressed in the frame ToFrame. The rotation and
// translation are stored together as a unit dual quaternion.
type RigidTransform struct {
	q         dualquat.Number
	fromFrame string
	toFrame   string
}

// NewRigidTransform returns a transform with the given rotation and
// translation between the two named frames. The rotation quaternion is
// normalized if it is not already a unit quaternion.
func NewRigidTransform(rotation quat.Number, translation r3.Vector, fromFrame, toFrame string) *RigidTransform {
	if vecLen := quat.Abs(rotation); vecLen != 1 {
		rotation = quat.Scale(1/vecLen, rotation)
	}
	t := &RigidTransform{
		q:         dualquat.Number{Real: rotation},
		fromFrame: fromFrame,
		toFrame:   toFrame,
	}
	t.setTranslation(translation)
	return t
}

// NewIdentityTransform returns a transform with no rotation and no
// translation between the two named frames.
func NewIdentityTransform(fromFrame, toFrame string) *RigidTransform {
	return &RigidTransform{
		q: dualquat.Number{
			Real: quat.Number{Real: 1},
			Dual: quat.Number{},
		},
		fromFrame: fromFrame,
		toFrame:   toFrame,
	}
}

// NewRigidTransformFromRotationMatrix returns a transform whose rotation is
// set from a row-major 3x3 rotation matrix.
func NewRigidTransformFromRotationMatrix(m [9]float64, translation r3.Vector, fromFrame, toFrame string) *RigidTransform {
	mat := mgl64.Ident4()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			mat.Set(r, c, m[r*3+c])
		}
	}
	qRot := mgl64.Mat4ToQuat(mat)
	return NewRigidTransform(quat.Number{qRot.W, qRot.X(), qRot.Y(), qRot.Z()}, translation, fromFrame, toFrame)
}

// FromFrame returns the frame the transform takes points from.
func (t *RigidTransform) FromFrame() string {
	return t.fromFrame
}

// ToFrame returns the frame the transform takes points to.
func (t *RigidTransform) ToFrame() string {
	return t.toFrame
}

// Rotation returns the rotation quaternion.
func (t *RigidTransform) Rotation() quat.Number {
	return t.q.Real
}

// Translation returns the translation vector.
func (t *RigidTransform) Translation() r3.Vector {
	cart := dualquat.Mul(t.q, dualquat.Conj(t.q))
	return r3.Vector{X: cart.Dual.Imag, Y: cart.Dual.Jmag, Z: cart.Dual.Kmag}
}

// setTranslation correctly sets the translation quaternion against the rotation.
func (t *RigidTransform) setTranslation(v r3.Vector) {
	t.q.Dual = quat.Number{Imag: v.X / 2, Jmag: v.Y / 2, Kmag: v.Z / 2}
	t.q.Dual = quat.Mul(t.q.Dual, t.q.Real)
}

// AlmostEqual returns whether two transforms relate the same pair of frames
// and differ by less than epsilon in translation and rotation.
func (t *RigidTransform) AlmostEqual(other *RigidTransform, epsilon float64) bool {
	if t.fromFrame != other.fromFrame || t.toFrame != other.toFrame {
		return false
	}
	if t.Translation().Sub(other.Translation()).Norm() > epsilon {
		return false
	}
	q1, q2 := t.q.Real, other.q.Real
	// q and -q represent the same rotation.
	if quatDot(q1, q2) < 0 {
		q2 = quat.Scale(-1, q2)
	}
	diff := quat.Sub(q1, q2)
	return quat.Abs(diff) <= epsilon
}

func (t *RigidTransform) String() string {
	tr := t.Translation()
	return fmt.Sprintf("transform %q -> %q (translation %.4f, %.4f, %.4f)", t.fromFrame, t.toFrame, tr.X, tr.Y, tr.Z)
}

// Compose returns the transform a*b, taking points from b's FromFrame to a's
// ToFrame. The inner frames must match.
func Compose(a, b *RigidTransform) (*RigidTransform, error) {
	if a.fromFrame != b.toFrame {
		return nil, NewFrameMismatchError(a.fromFrame, b.toFrame)
	}
	q := dualquat.Mul(a.q, b.q)
	// Guard against accumulated drift away from a unit dual quaternion.
	if vecLen := quat.Abs(q.Real); vecLen != 1 {
		q = dualquat.Scale(1/vecLen, q)
	}
	return &RigidTransform{
		q:         q,
		fromFrame: b.fromFrame,
		toFrame:   a.toFrame,
	}, nil
}

// Interpolate returns the transform between start and goal at fraction by,
// where 0 is start and 1 is goal. Translation is interpolated linearly and
// rotation along the shortest great-circle arc. Both transforms must relate
// the same pair of frames.
func Interpolate(start, goal *RigidTransform, by float64) (*RigidTransform, error) {
	if start.fromFrame != goal.fromFrame || start.toFrame != goal.toFrame {
		return nil, errors.Errorf(
			"cannot interpolate between transform %q -> %q and transform %q -> %q",
			start.fromFrame, start.toFrame, goal.fromFrame, goal.toFrame,
		)
	}
	st, gt := start.Translation(), goal.Translation()
	tr := st.Add(gt.Sub(st).Mul(by))
	return NewRigidTransform(slerp(start.q.Real, goal.q.Real, by), tr, start.fromFrame, start.toFrame), nil
}

// LinearTrajectory returns count transforms evenly spaced from start to goal,
// inclusive of both endpoints. When start equals goal the result is count
// copies of start.
func LinearTrajectory(start, goal *RigidTransform, count int) ([]*RigidTransform, error) {
	if count <= 0 {
		return nil, errors.Errorf("waypoint count must be positive, got %d", count)
	}
	path := make([]*RigidTransform, 0, count)
	for i := 0; i < count; i++ {
		by := 0.0
		if count > 1 {
			by = float64(i) / float64(count-1)
		}
		step, err := Interpolate(start, goal, by)
		if err != nil {
			return nil, err
		}
		path = append(path, step)
	}
	return path, nil
}

// slerp performs spherical linear interpolation between two unit quaternions.
func slerp(q1, q2 quat.Number, by float64) quat.Number {
	dot := quatDot(q1, q2)
	if dot < 0 {
		q2 = quat.Scale(-1, q2)
		dot = -dot
	}
	if dot > 0.9995 {
		// Nearly parallel; fall back to normalized linear interpolation.
		q := quat.Add(q1, quat.Scale(by, quat.Sub(q2, q1)))
		return quat.Scale(1/quat.Abs(q), q)
	}
	theta0 := math.Acos(dot)
	theta := theta0 * by
	sinTheta0 := math.Sin(theta0)
	s1 := math.Cos(theta) - dot*math.Sin(theta)/sinTheta0
	s2 := math.Sin(theta) / sinTheta0
	return quat.Add(quat.Scale(s1, q1), quat.Scale(s2, q2))
}

func quatDot(q1, q2 quat.Number) float64 {
	return q1.Real*q2.Real + q1.Imag*q2.Imag + q1.Jmag*q2.Jmag + q1.Kmag*q2.Kmag
}
