package spatialmath_test

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"

	"github.com/allenyh/yumipy/spatialmath"
)

func TestNewRigidTransform(t *testing.T) {
	tf := spatialmath.NewRigidTransform(
		quat.Number{Real: 1}, r3.Vector{X: 1, Y: 2, Z: 3}, "tool", "base",
	)
	test.That(t, tf.FromFrame(), test.ShouldEqual, "tool")
	test.That(t, tf.ToFrame(), test.ShouldEqual, "base")
	tr := tf.Translation()
	test.That(t, tr.X, test.ShouldAlmostEqual, 1, 1e-12)
	test.That(t, tr.Y, test.ShouldAlmostEqual, 2, 1e-12)
	test.That(t, tr.Z, test.ShouldAlmostEqual, 3, 1e-12)

	// A non-unit rotation is normalized on construction.
	tf = spatialmath.NewRigidTransform(
		quat.Number{Real: 2}, r3.Vector{}, "tool", "base",
	)
	test.That(t, quat.Abs(tf.Rotation()), test.ShouldAlmostEqual, 1, 1e-12)
}

func TestNewRigidTransformFromRotationMatrix(t *testing.T) {
	identity := spatialmath.NewRigidTransformFromRotationMatrix(
		[9]float64{
			1, 0, 0,
			0, 1, 0,
			0, 0, 1,
		},
		r3.Vector{Z: -0.157}, "hand", "tool",
	)
	test.That(t, identity.Rotation().Real, test.ShouldAlmostEqual, 1, 1e-12)
	test.That(t, identity.Translation().Z, test.ShouldAlmostEqual, -0.157, 1e-12)

	// 90 degrees about z.
	rotZ := spatialmath.NewRigidTransformFromRotationMatrix(
		[9]float64{
			0, -1, 0,
			1, 0, 0,
			0, 0, 1,
		},
		r3.Vector{}, "a", "b",
	)
	q := rotZ.Rotation()
	test.That(t, math.Abs(q.Real), test.ShouldAlmostEqual, math.Cos(math.Pi/4), 1e-9)
	test.That(t, math.Abs(q.Kmag), test.ShouldAlmostEqual, math.Sin(math.Pi/4), 1e-9)
}

func TestCompose(t *testing.T) {
	pose := spatialmath.NewIdentityTransform("tool", "base")
	offset := spatialmath.NewRigidTransform(
		quat.Number{Real: 1}, r3.Vector{Z: -0.157}, "hand", "tool",
	)

	composed, err := spatialmath.Compose(pose, offset)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, composed.FromFrame(), test.ShouldEqual, "hand")
	test.That(t, composed.ToFrame(), test.ShouldEqual, "base")
	test.That(t, composed.Translation().Z, test.ShouldAlmostEqual, -0.157, 1e-12)

	// Rotations compose: the outer transform rotates the inner translation.
	rot90 := spatialmath.NewRigidTransform(
		quat.Number{Real: math.Cos(math.Pi / 4), Kmag: math.Sin(math.Pi / 4)},
		r3.Vector{}, "tool", "base",
	)
	shift := spatialmath.NewRigidTransform(
		quat.Number{Real: 1}, r3.Vector{X: 1}, "hand", "tool",
	)
	composed, err = spatialmath.Compose(rot90, shift)
	test.That(t, err, test.ShouldBeNil)
	tr := composed.Translation()
	test.That(t, tr.X, test.ShouldAlmostEqual, 0, 1e-9)
	test.That(t, tr.Y, test.ShouldAlmostEqual, 1, 1e-9)
	test.That(t, tr.Z, test.ShouldAlmostEqual, 0, 1e-9)

	// Inner frames must chain.
	_, err = spatialmath.Compose(offset, pose)
	test.That(t, err, test.ShouldNotBeNil)
	test.That(t, err.Error(), test.ShouldContainSubstring, "cannot compose")
}

func TestInterpolate(t *testing.T) {
	start := spatialmath.NewIdentityTransform("hand", "base")
	goal := spatialmath.NewRigidTransform(
		quat.Number{Real: math.Cos(math.Pi / 4), Kmag: math.Sin(math.Pi / 4)},
		r3.Vector{X: 1}, "hand", "base",
	)

	mid, err := spatialmath.Interpolate(start, goal, 0.5)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, mid.Translation().X, test.ShouldAlmostEqual, 0.5, 1e-9)
	// Half of a 90 degree rotation about z.
	q := mid.Rotation()
	test.That(t, math.Abs(q.Real), test.ShouldAlmostEqual, math.Cos(math.Pi/8), 1e-9)
	test.That(t, math.Abs(q.Kmag), test.ShouldAlmostEqual, math.Sin(math.Pi/8), 1e-9)

	_, err = spatialmath.Interpolate(start, spatialmath.NewIdentityTransform("hand", "world"), 0.5)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestLinearTrajectory(t *testing.T) {
	start := spatialmath.NewIdentityTransform("hand", "base")
	goal := spatialmath.NewRigidTransform(
		quat.Number{Real: 1}, r3.Vector{X: 0.1}, "hand", "base",
	)

	path, err := spatialmath.LinearTrajectory(start, goal, 10)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(path), test.ShouldEqual, 10)
	test.That(t, path[0].AlmostEqual(start, 1e-9), test.ShouldBeTrue)
	test.That(t, path[9].AlmostEqual(goal, 1e-9), test.ShouldBeTrue)
	for i := 1; i < len(path); i++ {
		step := path[i].Translation().X - path[i-1].Translation().X
		test.That(t, step, test.ShouldAlmostEqual, 0.1/9, 1e-9)
	}

	// Degenerate start == goal yields count copies.
	path, err = spatialmath.LinearTrajectory(start, start, 5)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, len(path), test.ShouldEqual, 5)
	for _, p := range path {
		test.That(t, p.AlmostEqual(start, 1e-9), test.ShouldBeTrue)
	}

	_, err = spatialmath.LinearTrajectory(start, goal, 0)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = spatialmath.LinearTrajectory(start, goal, -3)
	test.That(t, err, test.ShouldNotBeNil)
}
