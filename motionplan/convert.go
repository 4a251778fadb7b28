package motionplan

import (
	"sort"

	"github.com/pkg/errors"

	"github.com/allenyh/yumipy/yumi"
)

// trajectoryFrom converts a raw service trajectory (radians, the service's
// own joint order) into arm states in canonical joint order and degrees. The
// response must cover exactly the arm's joints.
func (mp *MotionPlanner) trajectoryFrom(traj *JointTrajectory) (yumi.Trajectory, error) {
	if traj == nil || len(traj.Points) == 0 {
		return nil, errors.New("planner returned an empty trajectory")
	}
	order, err := canonicalOrder(mp.cfg.Side, traj.JointNames)
	if err != nil {
		return nil, err
	}

	states := make([]*yumi.State, 0, len(traj.Points))
	for i, point := range traj.Points {
		if len(point) != len(traj.JointNames) {
			return nil, errors.Errorf(
				"trajectory point %d has %d positions for %d joints", i, len(point), len(traj.JointNames),
			)
		}
		radians := make([]float64, len(order))
		for j, idx := range order {
			radians[j] = point[idx]
		}
		state, err := yumi.NewStateFromRadians(mp.cfg.Side, radians)
		if err != nil {
			return nil, err
		}
		states = append(states, state)
	}
	return yumi.NewTrajectory(states)
}

// canonicalOrder returns, for each joint in the arm's canonical order, the
// index of that joint in the service's joint name list. The name sets must
// match exactly.
func canonicalOrder(side yumi.ArmSide, names []string) ([]int, error) {
	want := side.JointNames()
	if len(names) != len(want) {
		return nil, NewJointMismatchError(want, names)
	}
	order := make([]int, len(names))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return names[order[a]] < names[order[b]]
	})
	for i, idx := range order {
		if names[idx] != want[i] {
			return nil, NewJointMismatchError(want, names)
		}
	}
	return order, nil
}
