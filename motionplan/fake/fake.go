// Package fake implements an in-process planner service that performs no
// planning: cartesian path requests succeed with the start configuration
// held at every waypoint, and free planning requests return a single-point
// trajectory. It lets the motion planner be exercised without a real
// planning service deployment.
package fake

import (
	"context"
	"sync"

	"github.com/edaniels/golog"

	"github.com/allenyh/yumipy/motionplan"
)

// PlannerService is a fake planner service. It records its session
// configuration and registered collision objects so tests can assert on them.
type PlannerService struct {
	logger golog.Logger

	mu    sync.Mutex
	cfg   motionplan.ServiceConfig
	boxes map[string]motionplan.CollisionBox
}

// NewPlannerService returns a fake service with an empty scene.
func NewPlannerService(logger golog.Logger) *PlannerService {
	return &PlannerService{
		logger: logger,
		boxes:  map[string]motionplan.CollisionBox{},
	}
}

// SyncConfig records the session configuration.
func (s *PlannerService) SyncConfig(ctx context.Context, cfg motionplan.ServiceConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg = cfg
	return nil
}

// Config returns the last synced session configuration.
func (s *PlannerService) Config() motionplan.ServiceConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

// ComputeCartesianPath reports full success with the start configuration
// repeated once per waypoint. No inverse kinematics is performed.
func (s *PlannerService) ComputeCartesianPath(
	ctx context.Context,
	req *motionplan.CartesianPathRequest,
) (*motionplan.CartesianPathResponse, error) {
	s.logger.Debugw("fake cartesian path", "group", req.Group, "waypoints", len(req.Waypoints))
	points := make([][]float64, 0, len(req.Waypoints))
	for range req.Waypoints {
		point := make([]float64, len(req.Start.Positions))
		copy(point, req.Start.Positions)
		points = append(points, point)
	}
	return &motionplan.CartesianPathResponse{
		Trajectory: &motionplan.JointTrajectory{
			JointNames: req.Start.JointNames,
			Points:     points,
		},
		Fraction: 1.0,
	}, nil
}

// PlanToPose returns a single-point trajectory holding the start configuration.
func (s *PlannerService) PlanToPose(
	ctx context.Context,
	req *motionplan.MotionPlanRequest,
) (*motionplan.JointTrajectory, error) {
	s.logger.Debugw("fake motion plan", "group", req.Group, "goal", req.Goal.String())
	point := make([]float64, len(req.Start.Positions))
	copy(point, req.Start.Positions)
	return &motionplan.JointTrajectory{
		JointNames: req.Start.JointNames,
		Points:     [][]float64{point},
	}, nil
}

// RemoveObject removes a collision object; removing an absent object is not
// an error.
func (s *PlannerService) RemoveObject(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.boxes, name)
	return nil
}

// AddBox registers a collision box.
func (s *PlannerService) AddBox(ctx context.Context, box motionplan.CollisionBox) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boxes[box.Name] = box
	return nil
}

// Boxes returns the names of the registered collision objects.
func (s *PlannerService) Boxes() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, 0, len(s.boxes))
	for name := range s.boxes {
		names = append(names, name)
	}
	return names
}
