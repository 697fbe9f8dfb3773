// Package inject provides injectable mocks of the planner's collaborator
// interfaces for testing.
package inject

import (
	"github.com/robonav/localplanner/nav2d"
	"github.com/robonav/localplanner/planner"
)

// TrajectoryGenerator is an injected trajectory generator.
type TrajectoryGenerator struct {
	planner.TrajectoryGenerator
	StartNewIterationFunc  func(current nav2d.Twist2D)
	HasMoreTwistsFunc      func() bool
	NextTwistFunc          func() nav2d.Twist2D
	GenerateTrajectoryFunc func(pose nav2d.Pose2D, velocity, twist nav2d.Twist2D) (nav2d.Trajectory2D, error)
	ResetFunc              func()
}

// StartNewIteration calls the injected StartNewIteration or the real version.
func (g *TrajectoryGenerator) StartNewIteration(current nav2d.Twist2D) {
	if g.StartNewIterationFunc == nil {
		g.TrajectoryGenerator.StartNewIteration(current)
		return
	}
	g.StartNewIterationFunc(current)
}

// HasMoreTwists calls the injected HasMoreTwists or the real version.
func (g *TrajectoryGenerator) HasMoreTwists() bool {
	if g.HasMoreTwistsFunc == nil {
		return g.TrajectoryGenerator.HasMoreTwists()
	}
	return g.HasMoreTwistsFunc()
}

// NextTwist calls the injected NextTwist or the real version.
func (g *TrajectoryGenerator) NextTwist() nav2d.Twist2D {
	if g.NextTwistFunc == nil {
		return g.TrajectoryGenerator.NextTwist()
	}
	return g.NextTwistFunc()
}

// GenerateTrajectory calls the injected GenerateTrajectory or the real version.
func (g *TrajectoryGenerator) GenerateTrajectory(
	pose nav2d.Pose2D,
	velocity, twist nav2d.Twist2D,
) (nav2d.Trajectory2D, error) {
	if g.GenerateTrajectoryFunc == nil {
		return g.TrajectoryGenerator.GenerateTrajectory(pose, velocity, twist)
	}
	return g.GenerateTrajectoryFunc(pose, velocity, twist)
}

// Reset calls the injected Reset or the real version.
func (g *TrajectoryGenerator) Reset() {
	if g.ResetFunc == nil {
		g.TrajectoryGenerator.Reset()
		return
	}
	g.ResetFunc()
}
