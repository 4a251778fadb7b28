package motionplan

import (
	"context"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/num/quat"

	"github.com/allenyh/yumipy/spatialmath"
	"github.com/allenyh/yumipy/yumi"
)

// CollisionBox is a named static box obstacle, posed in the planning
// reference frame.
type CollisionBox struct {
	Name string
	Pose *spatialmath.RigidTransform
	// Size is the box extent along x, y, z in meters.
	Size r3.Vector
}

// WorkcellScene returns the static collision geometry of the YuMi workcell:
// the table, the camera shelf with its two supports, the camera, the barcode
// detector, and the screen/teach-pendant box. Poses and sizes are measured
// on the physical cell.
func WorkcellScene() []CollisionBox {
	box := func(name string, rotation quat.Number, translation, size r3.Vector) CollisionBox {
		return CollisionBox{
			Name: name,
			Pose: spatialmath.NewRigidTransform(rotation, translation, name, yumi.FrameWorld),
			Size: size,
		}
	}
	identity := quat.Number{Real: 1}
	// The shelf supports are rotated 45 degrees about z.
	supportLeft := quat.Number{Real: 0.9238795, Kmag: 0.3826834}
	supportRight := quat.Number{Real: 0.9238795, Kmag: -0.3826834}
	return []CollisionBox{
		box("table", identity,
			r3.Vector{X: 0.3, Z: -0.02}, r3.Vector{X: 0.6, Y: 1.5, Z: 0.02}),
		box("camera_shelf", identity,
			r3.Vector{Z: 0.62}, r3.Vector{X: 0.75, Y: 0.1, Z: 0.05}),
		box("left_support", supportLeft,
			r3.Vector{X: -0.21, Y: -0.12, Z: 0.62}, r3.Vector{X: 0.28, Y: 0.04, Z: 0.04}),
		box("right_support", supportRight,
			r3.Vector{X: -0.21, Y: 0.12, Z: 0.62}, r3.Vector{X: 0.28, Y: 0.04, Z: 0.04}),
		box("camera", identity,
			r3.Vector{X: 0.343, Z: 0.575}, r3.Vector{X: 0.06, Y: 0.2, Z: 0.03}),
		box("barcode_detector", identity,
			r3.Vector{X: 0.47, Z: 0.62}, r3.Vector{X: 0.18, Y: 0.08, Z: 0.12}),
		box("screen_and_box", identity,
			r3.Vector{X: 0.3, Y: -0.48, Z: 0.35}, r3.Vector{X: 0.6, Y: 0.01, Z: 0.7}),
	}
}

// registerScene registers every box remove-then-add so that re-registration
// after a reconnect does not duplicate objects.
func (mp *MotionPlanner) registerScene(ctx context.Context, boxes []CollisionBox) error {
	for _, b := range boxes {
		if err := mp.scene.RemoveObject(ctx, b.Name); err != nil {
			return errors.Wrapf(err, "failed to remove collision object %q", b.Name)
		}
		if err := mp.scene.AddBox(ctx, b); err != nil {
			return errors.Wrapf(err, "failed to add collision object %q", b.Name)
		}
		mp.logger.Debugw("registered collision object", "name", b.Name)
	}
	return nil
}
