package inject

import (
	"github.com/robonav/localplanner/nav2d"
	"github.com/robonav/localplanner/planner"
)

// GoalChecker is an injected goal checker.
type GoalChecker struct {
	planner.GoalChecker
	IsGoalReachedFunc func(current, goal nav2d.Pose2D, velocity nav2d.Twist2D) bool
	ResetFunc         func()
}

// IsGoalReached calls the injected IsGoalReached or the real version.
func (g *GoalChecker) IsGoalReached(current, goal nav2d.Pose2D, velocity nav2d.Twist2D) bool {
	if g.IsGoalReachedFunc == nil {
		return g.GoalChecker.IsGoalReached(current, goal, velocity)
	}
	return g.IsGoalReachedFunc(current, goal, velocity)
}

// Reset calls the injected Reset or the real version.
func (g *GoalChecker) Reset() {
	if g.ResetFunc == nil {
		g.GoalChecker.Reset()
		return
	}
	g.ResetFunc()
}
