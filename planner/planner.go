package planner

import (
	"context"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	goutils "go.viam.com/utils"

	"github.com/robonav/localplanner/nav2d"
)

// Deps are the external collaborators a Planner orchestrates. TF, Costmap,
// Generator, and GoalChecker are required; Publisher and Clock default to a
// no-op sink and the wall clock.
type Deps struct {
	TF          TransformProvider
	Costmap     Costmap
	Generator   TrajectoryGenerator
	GoalChecker GoalChecker
	Critics     []TrajectoryCritic
	Publisher   Publisher
	Clock       clock.Clock
}

// A Planner is one local-planner session: it owns the active plan segment,
// the queue of pending segments, and the goal poses, and evaluates candidate
// trajectories once per control tick. It is single-threaded; callers must
// not invoke it concurrently.
type Planner struct {
	logger golog.Logger
	clk    clock.Clock
	opts   *Options

	tf          TransformProvider
	costmap     Costmap
	generator   TrajectoryGenerator
	goalChecker GoalChecker
	critics     []TrajectoryCritic
	pub         Publisher

	globalPlan           nav2d.Path2D
	planSegments         []nav2d.Path2D
	goalPose             nav2d.Pose2DStamped
	intermediateGoalPose nav2d.Pose2DStamped
}

// New wires a Planner from its collaborators. A nil opts uses DefaultOptions.
func New(deps Deps, opts *Options, logger golog.Logger) (*Planner, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := opts.Validate(""); err != nil {
		return nil, err
	}
	if deps.TF == nil {
		return nil, errors.New("planner requires a transform provider")
	}
	if deps.Costmap == nil {
		return nil, errors.New("planner requires a costmap")
	}
	if deps.Generator == nil {
		return nil, errors.New("planner requires a trajectory generator")
	}
	if deps.GoalChecker == nil {
		return nil, errors.New("planner requires a goal checker")
	}
	pub := deps.Publisher
	if pub == nil {
		pub = noopPublisher{}
	}
	clk := deps.Clock
	if clk == nil {
		clk = clock.New()
	}
	return &Planner{
		logger:      logger,
		clk:         clk,
		opts:        opts,
		tf:          deps.TF,
		costmap:     deps.Costmap,
		generator:   deps.Generator,
		goalChecker: deps.GoalChecker,
		critics:     deps.Critics,
		pub:         pub,
	}, nil
}

// SetGoalPose records the final destination of the plan about to be
// followed. The intermediate goal provisionally matches it until SetPlan
// recomputes the segments.
func (p *Planner) SetGoalPose(goalPose nav2d.Pose2DStamped) {
	p.logger.Info("new goal received")
	p.goalPose = goalPose
	p.intermediateGoalPose = goalPose
}

// SetPlan replaces the plan being tracked. With path splitting enabled the
// plan is cut into forward/backward/rotate-in-place segments; the first
// segment becomes active and the rest queue up behind it. The intermediate
// goal becomes the active segment's last pose.
func (p *Planner) SetPlan(path nav2d.Path2D) error {
	if len(path.Poses) == 0 {
		return NewPlanningError("received plan with zero length")
	}

	p.planSegments = nil
	if p.opts.SplitPath {
		p.logger.Debug("splitting path")
		p.planSegments = splitPath(path)
		if len(p.planSegments) == 0 {
			return NewPlanningError("plan has too few poses to split")
		}
		p.logger.Infof("split path into %d segments", len(p.planSegments))
	} else {
		// no splitting; the whole path is the one and only segment
		p.planSegments = []nav2d.Path2D{path}
	}

	p.globalPlan = p.planSegments[0]
	p.planSegments = p.planSegments[1:]

	// publish only the active segment, not the whole path
	p.pub.PublishGlobalPlan(p.globalPlan)

	p.intermediateGoalPose.Header = p.globalPlan.Header
	p.intermediateGoalPose.Pose = p.globalPlan.Poses[len(p.globalPlan.Poses)-1]

	p.resetPlugins()
	// critics are prepared against the new segment on the next
	// ComputeVelocityCommands call; nothing to do here
	return nil
}

// IsGoalReached reports whether the final goal of the whole plan has been
// reached. Reaching the end of a non-final segment advances to the next
// segment and still reports false: only the sub-goal was completed.
func (p *Planner) IsGoalReached(ctx context.Context, pose nav2d.Pose2DStamped, velocity nav2d.Twist2D) (bool, error) {
	if p.goalPose.Header.FrameID == "" {
		p.logger.Warn("cannot check if the goal is reached without the goal being set")
		return false, nil
	}

	p.goalPose.Header.Stamp = pose.Header.Stamp
	p.intermediateGoalPose.Header.Stamp = pose.Header.Stamp

	localPose, err := p.transformPoseToLocal(ctx, pose)
	if err != nil {
		return false, err
	}
	localGoal, err := p.transformPoseToLocal(ctx, p.intermediateGoalPose)
	if err != nil {
		return false, err
	}

	if !p.goalChecker.IsGoalReached(localPose, localGoal, velocity) {
		return false, nil
	}
	if len(p.planSegments) == 0 {
		p.logger.Info("goal reached")
		return true, nil
	}

	// only a sub-segment was completed; activate the next one
	p.logger.Info("intermediate goal reached")
	p.globalPlan = p.planSegments[0]
	p.planSegments = p.planSegments[1:]
	p.intermediateGoalPose.Header = p.globalPlan.Header
	p.intermediateGoalPose.Pose = p.globalPlan.Poses[len(p.globalPlan.Poses)-1]

	p.pub.PublishGlobalPlan(p.globalPlan)

	// reset only after the new plan is committed; resets may read
	// plan-derived state on the next prepare
	p.resetPlugins()
	return false, nil
}

func (p *Planner) resetPlugins() {
	p.generator.Reset()
	p.goalChecker.Reset()
	for _, critic := range p.critics {
		critic.Reset()
	}
}

// ComputeVelocityCommands evaluates all candidate trajectories for this tick
// and returns the best velocity command. It fails with a PlanningError,
// TransformError, GenerationError, or NoLegalTrajectoriesError; the caller
// decides the fallback. If the publisher requested an evaluation record, it
// is published before any error surfaces.
func (p *Planner) ComputeVelocityCommands(
	ctx context.Context,
	pose nav2d.Pose2DStamped,
	velocity nav2d.Twist2D,
) (nav2d.Twist2DStamped, error) {
	var results *Evaluation
	if p.pub.ShouldRecordEvaluation() {
		results = newEvaluation()
	}

	cmd, err := p.computeVelocityCommands(ctx, pose, velocity, results)
	if results != nil {
		p.pub.PublishEvaluation(results)
	}
	return cmd, err
}

func (p *Planner) computeVelocityCommands(
	ctx context.Context,
	pose nav2d.Pose2DStamped,
	velocity nav2d.Twist2D,
	results *Evaluation,
) (nav2d.Twist2DStamped, error) {
	if results != nil {
		results.Header.FrameID = pose.Header.FrameID
		results.Header.Stamp = p.clk.Now()
	}

	if err := p.prepare(ctx, pose, velocity); err != nil {
		return nav2d.Twist2DStamped{}, err
	}

	best, err := p.coreScoringAlgorithm(pose.Pose, velocity, results)
	if err != nil {
		if _, isNoLegal := AsNoLegalTrajectoriesError(err); isNoLegal {
			// debrief stateful critics with the zero twist
			for _, critic := range p.critics {
				critic.Debrief(nav2d.Twist2D{})
			}
			p.pub.PublishLocalPlan(pose.Header, nav2d.Trajectory2D{})
			p.pub.PublishCostGrid(p.costmap, p.critics)
		}
		return nav2d.Twist2DStamped{}, err
	}

	cmd := nav2d.Twist2DStamped{
		Header:   nav2d.Header{Stamp: p.clk.Now()},
		Velocity: best.Traj.Velocity,
	}
	for _, critic := range p.critics {
		critic.Debrief(cmd.Velocity)
	}
	p.pub.PublishLocalPlan(pose.Header, best.Traj)
	p.pub.PublishCostGrid(p.costmap, p.critics)
	return cmd, nil
}

// prepare runs once per cycle before scoring: optional costmap refresh, plan
// transform and prune, goal timestamp refresh, and critic preparation.
func (p *Planner) prepare(ctx context.Context, pose nav2d.Pose2DStamped, velocity nav2d.Twist2D) error {
	if p.opts.UpdateCostmapBeforePlanning {
		if err := p.costmap.Update(ctx); err != nil {
			return errors.Wrap(err, "unable to update costmap before planning")
		}
	}

	transformedPlan, err := p.transformGlobalPlan(ctx, pose)
	if err != nil {
		return err
	}
	p.pub.PublishTransformedPlan(transformedPlan)

	p.goalPose.Header.Stamp = pose.Header.Stamp
	p.intermediateGoalPose.Header.Stamp = pose.Header.Stamp

	localStart, err := p.transformPoseToLocal(ctx, pose)
	if err != nil {
		return err
	}
	localGoal, err := p.transformPoseToLocal(ctx, p.intermediateGoalPose)
	if err != nil {
		return err
	}

	p.pub.PublishInputParams(p.costmap.Info(), localStart, velocity, localGoal)

	for _, critic := range p.critics {
		if !critic.Prepare(localStart, velocity, localGoal, transformedPlan) {
			p.logger.Warnw("critic failed to prepare", "critic", critic.Name())
		}
	}
	return nil
}

// Close releases any collaborators that support closing.
func (p *Planner) Close(ctx context.Context) error {
	err := multierr.Combine(
		goutils.TryClose(ctx, p.generator),
		goutils.TryClose(ctx, p.goalChecker),
		goutils.TryClose(ctx, p.pub),
	)
	for _, critic := range p.critics {
		err = multierr.Combine(err, goutils.TryClose(ctx, critic))
	}
	return err
}
