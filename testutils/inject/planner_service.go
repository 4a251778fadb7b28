// Package inject provides planner service and scene registry implementations
// with injectable function fields for testing.
package inject

import (
	"context"

	"github.com/allenyh/yumipy/motionplan"
)

// PlannerService is an injected planner service.
type PlannerService struct {
	motionplan.PlannerService
	SyncConfigFunc           func(ctx context.Context, cfg motionplan.ServiceConfig) error
	ComputeCartesianPathFunc func(ctx context.Context, req *motionplan.CartesianPathRequest) (*motionplan.CartesianPathResponse, error)
	PlanToPoseFunc           func(ctx context.Context, req *motionplan.MotionPlanRequest) (*motionplan.JointTrajectory, error)
}

// SyncConfig calls the injected SyncConfig or the real version.
func (s *PlannerService) SyncConfig(ctx context.Context, cfg motionplan.ServiceConfig) error {
	if s.SyncConfigFunc == nil {
		return s.PlannerService.SyncConfig(ctx, cfg)
	}
	return s.SyncConfigFunc(ctx, cfg)
}

// ComputeCartesianPath calls the injected ComputeCartesianPath or the real version.
func (s *PlannerService) ComputeCartesianPath(
	ctx context.Context,
	req *motionplan.CartesianPathRequest,
) (*motionplan.CartesianPathResponse, error) {
	if s.ComputeCartesianPathFunc == nil {
		return s.PlannerService.ComputeCartesianPath(ctx, req)
	}
	return s.ComputeCartesianPathFunc(ctx, req)
}

// PlanToPose calls the injected PlanToPose or the real version.
func (s *PlannerService) PlanToPose(
	ctx context.Context,
	req *motionplan.MotionPlanRequest,
) (*motionplan.JointTrajectory, error) {
	if s.PlanToPoseFunc == nil {
		return s.PlannerService.PlanToPose(ctx, req)
	}
	return s.PlanToPoseFunc(ctx, req)
}

// SceneRegistry is an injected scene registry.
type SceneRegistry struct {
	motionplan.SceneRegistry
	RemoveObjectFunc func(ctx context.Context, name string) error
	AddBoxFunc       func(ctx context.Context, box motionplan.CollisionBox) error
}

// RemoveObject calls the injected RemoveObject or the real version.
func (s *SceneRegistry) RemoveObject(ctx context.Context, name string) error {
	if s.RemoveObjectFunc == nil {
		return s.SceneRegistry.RemoveObject(ctx, name)
	}
	return s.RemoveObjectFunc(ctx, name)
}

// AddBox calls the injected AddBox or the real version.
func (s *SceneRegistry) AddBox(ctx context.Context, box motionplan.CollisionBox) error {
	if s.AddBoxFunc == nil {
		return s.SceneRegistry.AddBox(ctx, box)
	}
	return s.AddBoxFunc(ctx, box)
}
