package inject

import (
	"github.com/robonav/localplanner/nav2d"
	"github.com/robonav/localplanner/planner"
)

// TrajectoryCritic is an injected critic.
type TrajectoryCritic struct {
	planner.TrajectoryCritic
	PrepareFunc         func(startPose nav2d.Pose2D, velocity nav2d.Twist2D, goalPose nav2d.Pose2D, transformedPlan nav2d.Path2D) bool
	ScoreTrajectoryFunc func(traj nav2d.Trajectory2D) (float64, error)
	ScaleFunc           func() float64
	NameFunc            func() string
	DebriefFunc         func(chosen nav2d.Twist2D)
	ResetFunc           func()
}

// Prepare calls the injected Prepare or the real version.
func (c *TrajectoryCritic) Prepare(
	startPose nav2d.Pose2D,
	velocity nav2d.Twist2D,
	goalPose nav2d.Pose2D,
	transformedPlan nav2d.Path2D,
) bool {
	if c.PrepareFunc == nil {
		return c.TrajectoryCritic.Prepare(startPose, velocity, goalPose, transformedPlan)
	}
	return c.PrepareFunc(startPose, velocity, goalPose, transformedPlan)
}

// ScoreTrajectory calls the injected ScoreTrajectory or the real version.
func (c *TrajectoryCritic) ScoreTrajectory(traj nav2d.Trajectory2D) (float64, error) {
	if c.ScoreTrajectoryFunc == nil {
		return c.TrajectoryCritic.ScoreTrajectory(traj)
	}
	return c.ScoreTrajectoryFunc(traj)
}

// Scale calls the injected Scale or the real version.
func (c *TrajectoryCritic) Scale() float64 {
	if c.ScaleFunc == nil {
		return c.TrajectoryCritic.Scale()
	}
	return c.ScaleFunc()
}

// Name calls the injected Name or the real version.
func (c *TrajectoryCritic) Name() string {
	if c.NameFunc == nil {
		return c.TrajectoryCritic.Name()
	}
	return c.NameFunc()
}

// Debrief calls the injected Debrief or the real version.
func (c *TrajectoryCritic) Debrief(chosen nav2d.Twist2D) {
	if c.DebriefFunc == nil {
		c.TrajectoryCritic.Debrief(chosen)
		return
	}
	c.DebriefFunc(chosen)
}

// Reset calls the injected Reset or the real version.
func (c *TrajectoryCritic) Reset() {
	if c.ResetFunc == nil {
		c.TrajectoryCritic.Reset()
		return
	}
	c.ResetFunc()
}
