package motionplan

import (
	"context"
	"time"

	"github.com/allenyh/yumipy/spatialmath"
)

// StartState is the joint configuration a request plans from.
type StartState struct {
	// JointNames are the service-side joint names, index-aligned with Positions.
	JointNames []string
	// Positions are joint angles in radians.
	Positions []float64
}

// ServiceConfig is the planner session configuration pushed to the service
// before requests are issued against it.
type ServiceConfig struct {
	// Group names the planning group (one arm) the session plans for.
	Group string
	// PlannerID is the service-side planner configuration name.
	PlannerID string
	// GoalPositionTolerance is the acceptable goal position error in meters.
	GoalPositionTolerance float64
	// PlanningTime is the time budget the service may spend per request.
	PlanningTime time.Duration
}

// CartesianPathRequest asks the service to follow a sequence of hand-frame
// waypoint poses as closely as possible.
type CartesianPathRequest struct {
	Group string
	Start StartState
	// Waypoints are hand-frame poses the end effector must pass through, in order.
	Waypoints []*spatialmath.RigidTransform
	// EEFStep is the maximum linear distance in meters between interpolated
	// points of the final path.
	EEFStep float64
	// JumpThreshold is the maximum allowed joint-space jump between
	// consecutive IK solutions; 0 disables the check.
	JumpThreshold float64
}

// CartesianPathResponse carries the planned trajectory and the fraction of
// the requested path that was achieved. A fraction of exactly 1 means the
// full path was planned; anything in [0, 1) is a partial plan and a negative
// fraction signals an internal planning error.
type CartesianPathResponse struct {
	Trajectory *JointTrajectory
	Fraction   float64
}

// MotionPlanRequest asks the service for a free (shortest) plan from the
// start configuration to a single hand-frame goal pose.
type MotionPlanRequest struct {
	Group string
	Start StartState
	Goal  *spatialmath.RigidTransform
}

// JointTrajectory is the raw planning result: service-side joint names plus
// per-waypoint joint positions in radians, in the service's own joint order.
// An empty Points slice means the service found no plan.
type JointTrajectory struct {
	JointNames []string
	Points     [][]float64
}

// PlannerService is the external motion planning backend. Implementations
// hold per-session state (the configured group, planner, and tolerances), so
// a service must not be shared by concurrent requests.
type PlannerService interface {
	// SyncConfig pushes the session configuration to the service.
	SyncConfig(ctx context.Context, cfg ServiceConfig) error
	// ComputeCartesianPath plans along a fixed sequence of waypoint poses.
	ComputeCartesianPath(ctx context.Context, req *CartesianPathRequest) (*CartesianPathResponse, error)
	// PlanToPose plans freely to a single goal pose. The returned trajectory
	// may be empty when no plan was found.
	PlanToPose(ctx context.Context, req *MotionPlanRequest) (*JointTrajectory, error)
}

// SceneRegistry registers static collision geometry with the planning
// backend. Registration is remove-then-add so repeating it is idempotent.
type SceneRegistry interface {
	RemoveObject(ctx context.Context, name string) error
	AddBox(ctx context.Context, box CollisionBox) error
}
