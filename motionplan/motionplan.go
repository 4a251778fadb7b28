// Package motionplan submits planning requests for a single YuMi arm to an
// external motion planning service and converts the results into joint-space
// trajectories. It contributes no planning itself: collision checking,
// sampling-based search, and inverse kinematics all live behind the
// PlannerService interface.
package motionplan

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	goutils "go.viam.com/utils"

	"github.com/allenyh/yumipy/spatialmath"
	"github.com/allenyh/yumipy/yumi"
)

// Default request parameters, matching the service-side defaults the YuMi
// cell is tuned for.
const (
	DefaultWaypointCount         = 10
	DefaultEEFStep               = 0.01  // meters
	DefaultJumpThreshold         = 0.0   // disabled
	DefaultGoalPositionTolerance = 0.001 // meters
	DefaultPlanningTime          = 100 * time.Millisecond
	DefaultPlanner               = "RRTConnect"
)

const (
	// sceneReadyDelay gives the service's planning scene time to come up
	// before collision objects are registered against it.
	sceneReadyDelay = 2 * time.Second
	// maxFreePlanAttempts bounds the retry loop around free planning
	// requests that come back with an empty trajectory.
	maxFreePlanAttempts = 5
	// freePlanRetryPause spaces out retries of free planning requests.
	freePlanRetryPause = 10 * time.Millisecond
)

// Config selects the arm, planner, and tolerances a MotionPlanner runs with.
// Zero values fall back to the defaults above (and to the right arm).
type Config struct {
	Side                  yumi.ArmSide
	Planner               string
	GoalPositionTolerance float64 // meters
	PlanningTime          time.Duration
}

func (cfg Config) withDefaults() Config {
	if cfg.Side == "" {
		cfg.Side = yumi.ArmRight
	}
	if cfg.Planner == "" {
		cfg.Planner = DefaultPlanner
	}
	if cfg.GoalPositionTolerance == 0 {
		cfg.GoalPositionTolerance = DefaultGoalPositionTolerance
	}
	if cfg.PlanningTime == 0 {
		cfg.PlanningTime = DefaultPlanningTime
	}
	return cfg
}

// MotionPlanner marshals planning requests for one YuMi arm into an external
// planning service. It is not safe for concurrent use: the service session's
// start and goal state are shared between requests.
type MotionPlanner struct {
	svc    PlannerService
	scene  SceneRegistry
	logger golog.Logger
	clock  clock.Clock

	cfg Config
}

// Option configures a MotionPlanner beyond its Config.
type Option func(*MotionPlanner)

// WithClock substitutes the clock driving the scene-ready delay.
func WithClock(c clock.Clock) Option {
	return func(mp *MotionPlanner) {
		mp.clock = c
	}
}

// NewMotionPlanner connects the orchestrator to a planning service, registers
// the workcell collision scene, and pushes the initial configuration.
func NewMotionPlanner(
	ctx context.Context,
	cfg Config,
	svc PlannerService,
	scene SceneRegistry,
	logger golog.Logger,
	opts ...Option,
) (*MotionPlanner, error) {
	if svc == nil {
		return nil, errors.New("a planner service must be provided")
	}
	if scene == nil {
		return nil, errors.New("a scene registry must be provided")
	}
	cfg = cfg.withDefaults()
	if _, err := plannerConfigID(cfg.Planner); err != nil {
		return nil, err
	}
	mp := &MotionPlanner{
		svc:    svc,
		scene:  scene,
		logger: logger,
		clock:  clock.New(),
		cfg:    cfg,
	}
	for _, opt := range opts {
		opt(mp)
	}

	// The planning scene is not ready to accept objects immediately after
	// the service comes up.
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-mp.clock.After(sceneReadyDelay):
	}
	mp.logger.Debugw("updating collision objects", "group", cfg.Side.PlanningGroup())
	if err := mp.registerScene(ctx, WorkcellScene()); err != nil {
		return nil, err
	}
	if err := mp.syncConfig(ctx); err != nil {
		return nil, err
	}
	return mp, nil
}

// Configure replaces the planner configuration and pushes it to the service.
// An unknown planner name fails with an unsupported-planner error before the
// service is contacted.
func (mp *MotionPlanner) Configure(ctx context.Context, cfg Config) error {
	cfg = cfg.withDefaults()
	if _, err := plannerConfigID(cfg.Planner); err != nil {
		return err
	}
	mp.cfg = cfg
	return mp.syncConfig(ctx)
}

// Side returns the arm the planner is configured for.
func (mp *MotionPlanner) Side() yumi.ArmSide {
	return mp.cfg.Side
}

// Planner returns the configured planner name.
func (mp *MotionPlanner) Planner() string {
	return mp.cfg.Planner
}

// GoalPositionTolerance returns the configured goal position tolerance in meters.
func (mp *MotionPlanner) GoalPositionTolerance() float64 {
	return mp.cfg.GoalPositionTolerance
}

// PlanningTime returns the configured planning time budget.
func (mp *MotionPlanner) PlanningTime() time.Duration {
	return mp.cfg.PlanningTime
}

// SetPlanner selects a different planner and re-synchronizes the service.
func (mp *MotionPlanner) SetPlanner(ctx context.Context, planner string) error {
	if _, err := plannerConfigID(planner); err != nil {
		return err
	}
	mp.cfg.Planner = planner
	return mp.syncConfig(ctx)
}

// SetGoalPositionTolerance sets the goal position tolerance in meters and
// re-synchronizes the service.
func (mp *MotionPlanner) SetGoalPositionTolerance(ctx context.Context, tolerance float64) error {
	mp.cfg.GoalPositionTolerance = tolerance
	return mp.syncConfig(ctx)
}

// SetPlanningTime sets the per-request planning time budget and
// re-synchronizes the service.
func (mp *MotionPlanner) SetPlanningTime(ctx context.Context, planningTime time.Duration) error {
	mp.cfg.PlanningTime = planningTime
	return mp.syncConfig(ctx)
}

func (mp *MotionPlanner) syncConfig(ctx context.Context) error {
	id, err := plannerConfigID(mp.cfg.Planner)
	if err != nil {
		return err
	}
	return mp.svc.SyncConfig(ctx, ServiceConfig{
		Group:                 mp.cfg.Side.PlanningGroup(),
		PlannerID:             id,
		GoalPositionTolerance: mp.cfg.GoalPositionTolerance,
		PlanningTime:          mp.cfg.PlanningTime,
	})
}

// PlanLinearPath plans a linear trajectory between the start and goal pose
// from the given joint configuration. Both poses must be expressed in the
// tool frame relative to a world reference frame; the start state must
// correspond to the start pose, which is up to the caller. waypointCount
// hand-frame poses are interpolated between the two and submitted as a
// cartesian path request.
//
// A nil trajectory with a nil error means the request was valid but the
// service could not achieve the full path.
func (mp *MotionPlanner) PlanLinearPath(
	ctx context.Context,
	start *yumi.State,
	startPose, goalPose *spatialmath.RigidTransform,
	waypointCount int,
	eefStep, jumpThreshold float64,
) (yumi.Trajectory, error) {
	if err := mp.validatePlanArgs(start, startPose, goalPose); err != nil {
		return nil, err
	}
	startHand, err := yumi.NormalizeToHand(startPose, yumi.ToolGripper)
	if err != nil {
		return nil, err
	}
	goalHand, err := yumi.NormalizeToHand(goalPose, yumi.ToolGripper)
	if err != nil {
		return nil, err
	}
	waypoints, err := spatialmath.LinearTrajectory(startHand, goalHand, waypointCount)
	if err != nil {
		return nil, err
	}

	resp, err := mp.svc.ComputeCartesianPath(ctx, &CartesianPathRequest{
		Group:         mp.cfg.Side.PlanningGroup(),
		Start:         mp.startStateFor(start),
		Waypoints:     waypoints,
		EEFStep:       eefStep,
		JumpThreshold: jumpThreshold,
	})
	if err != nil {
		return nil, errors.Wrap(err, "cartesian path request failed")
	}
	if resp.Fraction < 0 {
		mp.logger.Warnw("error while planning path", "fraction", resp.Fraction)
		return nil, nil
	}
	// The full path must be achieved; any fraction short of exactly 1.0,
	// including one within rounding of it, is a partial plan.
	if resp.Fraction < 1.0 {
		mp.logger.Warnw("failed to plan full path", "fraction", resp.Fraction)
		return nil, nil
	}
	return mp.trajectoryFrom(resp.Trajectory)
}

// PlanShortestPath plans the shortest joint-space path from the given joint
// configuration to the goal pose. Both poses must be expressed in the tool
// frame relative to a world reference frame; the goal is re-expressed in the
// hand frame using the offset of the given tool. timeout replaces the
// configured planning time for this and subsequent requests.
//
// Requests that come back with an empty trajectory are retried, up to
// maxFreePlanAttempts requests in total. A nil trajectory with a nil error
// means the request was valid but no feasible plan was found.
func (mp *MotionPlanner) PlanShortestPath(
	ctx context.Context,
	start *yumi.State,
	startPose, goalPose *spatialmath.RigidTransform,
	timeout time.Duration,
	tool yumi.Tool,
) (yumi.Trajectory, error) {
	if err := mp.validatePlanArgs(start, startPose, goalPose); err != nil {
		return nil, err
	}
	goalHand, err := yumi.NormalizeToHand(goalPose, tool)
	if err != nil {
		return nil, err
	}
	if err := mp.SetPlanningTime(ctx, timeout); err != nil {
		return nil, err
	}

	req := &MotionPlanRequest{
		Group: mp.cfg.Side.PlanningGroup(),
		Start: mp.startStateFor(start),
		Goal:  goalHand,
	}
	var traj *JointTrajectory
	for attempt := 1; attempt <= maxFreePlanAttempts; attempt++ {
		traj, err = mp.svc.PlanToPose(ctx, req)
		if err != nil {
			return nil, errors.Wrapf(err, "motion plan request failed on attempt %d", attempt)
		}
		if traj != nil && len(traj.Points) > 0 {
			break
		}
		if attempt < maxFreePlanAttempts {
			mp.logger.Debugw("empty trajectory from planner, retrying", "attempt", attempt)
			if !goutils.SelectContextOrWait(ctx, freePlanRetryPause) {
				return nil, ctx.Err()
			}
		}
	}
	if traj == nil || len(traj.Points) == 0 {
		mp.logger.Warnw("failed to plan path", "attempts", maxFreePlanAttempts)
		return nil, nil
	}
	return mp.trajectoryFrom(traj)
}

func (mp *MotionPlanner) validatePlanArgs(start *yumi.State, startPose, goalPose *spatialmath.RigidTransform) error {
	if start == nil {
		return errors.New("start state must be specified")
	}
	if start.Side() != mp.cfg.Side {
		return errors.Errorf(
			"start state is for the %s arm but the planner is configured for the %s arm",
			start.Side(), mp.cfg.Side,
		)
	}
	if startPose == nil || goalPose == nil {
		return errors.New("start and goal poses must be specified")
	}
	if err := yumi.ValidateToolPose(startPose); err != nil {
		return err
	}
	return yumi.ValidateToolPose(goalPose)
}

func (mp *MotionPlanner) startStateFor(start *yumi.State) StartState {
	return StartState{
		JointNames: mp.cfg.Side.JointNames(),
		Positions:  start.InRadians(),
	}
}
