// Package planner contains a per-cycle local planner core: it consumes a
// multi-segment global plan, generates candidate trajectories through an
// external generator, scores them with an ordered chain of critics, and
// returns the best velocity command for the current control tick.
package planner

import (
	"context"

	"github.com/robonav/localplanner/nav2d"
)

// A TrajectoryGenerator produces the candidate twists for one planning cycle
// and simulates each one forward into a trajectory.
type TrajectoryGenerator interface {
	// StartNewIteration begins a fresh candidate iteration from the current velocity.
	StartNewIteration(current nav2d.Twist2D)
	// HasMoreTwists reports whether NextTwist may be called again this iteration.
	HasMoreTwists() bool
	// NextTwist returns the next candidate twist.
	NextTwist() nav2d.Twist2D
	// GenerateTrajectory simulates holding twist from the given pose and velocity.
	GenerateTrajectory(pose nav2d.Pose2D, velocity, twist nav2d.Twist2D) (nav2d.Trajectory2D, error)
	// Reset drops any internal state carried between plans.
	Reset()
}

// A TrajectoryCritic scores one cost dimension of a candidate trajectory.
// ScoreTrajectory returns an IllegalTrajectoryError to reject a candidate
// outright; contributions from legal trajectories must be non-negative for
// short-circuit evaluation to be sound.
type TrajectoryCritic interface {
	// Prepare readies the critic for a cycle. Returning false is non-fatal;
	// the planner logs it and continues with the critic's prior state.
	Prepare(startPose nav2d.Pose2D, velocity nav2d.Twist2D, goalPose nav2d.Pose2D, transformedPlan nav2d.Path2D) bool
	ScoreTrajectory(traj nav2d.Trajectory2D) (float64, error)
	// Scale weights the critic's raw score. A scale of zero disables the critic.
	Scale() float64
	Name() string
	// Debrief informs a stateful critic which velocity was ultimately chosen.
	Debrief(chosen nav2d.Twist2D)
	Reset()
}

// A GoalChecker decides whether a goal pose has been reached.
type GoalChecker interface {
	IsGoalReached(current, goal nav2d.Pose2D, velocity nav2d.Twist2D) bool
	Reset()
}

// CostmapInfo is the read-only metadata snapshot of a costmap.
type CostmapInfo struct {
	FrameID    string
	Width      int
	Height     int
	Resolution float64
	OriginX    float64
	OriginY    float64
}

// A Costmap is an externally-owned occupancy grid. The planner only reads
// its metadata and optionally asks it to refresh before planning.
type Costmap interface {
	Update(ctx context.Context) error
	FrameID() string
	// Width and Height are in cells; Resolution is meters per cell.
	Width() int
	Height() int
	Resolution() float64
	Info() CostmapInfo
}

// A TransformProvider resolves stamped poses between named frames.
type TransformProvider interface {
	TransformPose(ctx context.Context, targetFrame string, pose nav2d.Pose2DStamped) (nav2d.Pose2DStamped, error)
}

// A Publisher receives the planner's diagnostic outputs. Implementations are
// fire-and-forget sinks; the planner never blocks on them for correctness.
type Publisher interface {
	// ShouldRecordEvaluation reports whether the planner should assemble a
	// full Evaluation record this cycle.
	ShouldRecordEvaluation() bool
	PublishEvaluation(eval *Evaluation)
	PublishGlobalPlan(plan nav2d.Path2D)
	PublishTransformedPlan(plan nav2d.Path2D)
	PublishLocalPlan(header nav2d.Header, traj nav2d.Trajectory2D)
	PublishInputParams(info CostmapInfo, start nav2d.Pose2D, velocity nav2d.Twist2D, goal nav2d.Pose2D)
	PublishCostGrid(costmap Costmap, critics []TrajectoryCritic)
}

// noopPublisher is used when no publisher is supplied.
type noopPublisher struct{}

func (noopPublisher) ShouldRecordEvaluation() bool                                              { return false }
func (noopPublisher) PublishEvaluation(*Evaluation)                                             {}
func (noopPublisher) PublishGlobalPlan(nav2d.Path2D)                                            {}
func (noopPublisher) PublishTransformedPlan(nav2d.Path2D)                                       {}
func (noopPublisher) PublishLocalPlan(nav2d.Header, nav2d.Trajectory2D)                         {}
func (noopPublisher) PublishInputParams(CostmapInfo, nav2d.Pose2D, nav2d.Twist2D, nav2d.Pose2D) {}
func (noopPublisher) PublishCostGrid(Costmap, []TrajectoryCritic)                               {}
