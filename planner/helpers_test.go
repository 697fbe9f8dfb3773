package planner

import (
	"context"
	"testing"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"github.com/robonav/localplanner/nav2d"
)

// identityTF resolves every pose by relabeling its frame, leaving the
// coordinates alone. failFrames lists target frames that should error.
type identityTF struct {
	failFrames map[string]bool
}

func (tf *identityTF) TransformPose(
	ctx context.Context,
	targetFrame string,
	pose nav2d.Pose2DStamped,
) (nav2d.Pose2DStamped, error) {
	if tf.failFrames[targetFrame] {
		return nav2d.Pose2DStamped{}, errors.Errorf("no transform into frame %q", targetFrame)
	}
	out := pose
	out.Header.FrameID = targetFrame
	return out, nil
}

type fakeCostmap struct {
	frame         string
	width, height int
	resolution    float64
	updateErr     error
	updates       int
}

func (c *fakeCostmap) Update(ctx context.Context) error {
	c.updates++
	return c.updateErr
}
func (c *fakeCostmap) FrameID() string     { return c.frame }
func (c *fakeCostmap) Width() int          { return c.width }
func (c *fakeCostmap) Height() int         { return c.height }
func (c *fakeCostmap) Resolution() float64 { return c.resolution }
func (c *fakeCostmap) Info() CostmapInfo {
	return CostmapInfo{FrameID: c.frame, Width: c.width, Height: c.height, Resolution: c.resolution}
}

// fakeGenerator yields a fixed list of twists and simulates each as a
// single-pose trajectory carrying the commanded twist.
type fakeGenerator struct {
	twists  []nav2d.Twist2D
	idx     int
	started []nav2d.Twist2D
	genErr  error
	resets  int
}

func (g *fakeGenerator) StartNewIteration(current nav2d.Twist2D) {
	g.idx = 0
	g.started = append(g.started, current)
}
func (g *fakeGenerator) HasMoreTwists() bool { return g.idx < len(g.twists) }
func (g *fakeGenerator) NextTwist() nav2d.Twist2D {
	twist := g.twists[g.idx]
	g.idx++
	return twist
}

func (g *fakeGenerator) GenerateTrajectory(
	pose nav2d.Pose2D,
	velocity, twist nav2d.Twist2D,
) (nav2d.Trajectory2D, error) {
	if g.genErr != nil {
		return nav2d.Trajectory2D{}, g.genErr
	}
	return nav2d.Trajectory2D{Velocity: twist, Poses: []nav2d.Pose2D{pose}}, nil
}
func (g *fakeGenerator) Reset() { g.resets++ }

// fakeCritic scores via an injected function and records its interactions.
type fakeCritic struct {
	name        string
	scale       float64
	score       func(traj nav2d.Trajectory2D) (float64, error)
	prepareFail bool
	prepares    int
	scored      int
	debriefs    []nav2d.Twist2D
	resets      int
}

func (c *fakeCritic) Prepare(
	startPose nav2d.Pose2D,
	velocity nav2d.Twist2D,
	goalPose nav2d.Pose2D,
	transformedPlan nav2d.Path2D,
) bool {
	c.prepares++
	return !c.prepareFail
}

func (c *fakeCritic) ScoreTrajectory(traj nav2d.Trajectory2D) (float64, error) {
	c.scored++
	if c.score == nil {
		return 0, nil
	}
	return c.score(traj)
}
func (c *fakeCritic) Scale() float64               { return c.scale }
func (c *fakeCritic) Name() string                 { return c.name }
func (c *fakeCritic) Debrief(chosen nav2d.Twist2D) { c.debriefs = append(c.debriefs, chosen) }
func (c *fakeCritic) Reset()                       { c.resets++ }

type fakeGoalChecker struct {
	reached bool
	resets  int
}

func (g *fakeGoalChecker) IsGoalReached(current, goal nav2d.Pose2D, velocity nav2d.Twist2D) bool {
	return g.reached
}
func (g *fakeGoalChecker) Reset() { g.resets++ }

// recordingPublisher captures everything published during a cycle.
type recordingPublisher struct {
	record           bool
	evaluations      []*Evaluation
	globalPlans      []nav2d.Path2D
	transformedPlans []nav2d.Path2D
	localPlans       []nav2d.Trajectory2D
}

func (p *recordingPublisher) ShouldRecordEvaluation() bool { return p.record }
func (p *recordingPublisher) PublishEvaluation(eval *Evaluation) {
	p.evaluations = append(p.evaluations, eval)
}
func (p *recordingPublisher) PublishGlobalPlan(plan nav2d.Path2D) {
	p.globalPlans = append(p.globalPlans, plan)
}
func (p *recordingPublisher) PublishTransformedPlan(plan nav2d.Path2D) {
	p.transformedPlans = append(p.transformedPlans, plan)
}
func (p *recordingPublisher) PublishLocalPlan(header nav2d.Header, traj nav2d.Trajectory2D) {
	p.localPlans = append(p.localPlans, traj)
}
func (p *recordingPublisher) PublishInputParams(CostmapInfo, nav2d.Pose2D, nav2d.Twist2D, nav2d.Pose2D) {
}
func (p *recordingPublisher) PublishCostGrid(Costmap, []TrajectoryCritic) {}

type testFixture struct {
	planner     *Planner
	tf          *identityTF
	costmap     *fakeCostmap
	generator   *fakeGenerator
	goalChecker *fakeGoalChecker
	publisher   *recordingPublisher
	clock       *clock.Mock
}

// newTestFixture wires a planner against fakes: a 10x10 cell, 0.4 m/cell
// costmap in the "odom" frame (2 m window threshold) and an identity
// transform provider.
func newTestFixture(t *testing.T, opts *Options, critics ...TrajectoryCritic) *testFixture {
	t.Helper()
	fixture := &testFixture{
		tf:          &identityTF{failFrames: map[string]bool{}},
		costmap:     &fakeCostmap{frame: "odom", width: 10, height: 10, resolution: 0.4},
		generator:   &fakeGenerator{},
		goalChecker: &fakeGoalChecker{},
		publisher:   &recordingPublisher{},
		clock:       clock.NewMock(),
	}
	p, err := New(Deps{
		TF:          fixture.tf,
		Costmap:     fixture.costmap,
		Generator:   fixture.generator,
		GoalChecker: fixture.goalChecker,
		Critics:     critics,
		Publisher:   fixture.publisher,
		Clock:       fixture.clock,
	}, opts, golog.NewTestLogger(t))
	if err != nil {
		t.Fatal(err)
	}
	fixture.planner = p
	return fixture
}

func poseStamped(frame string, x, y, theta float64) nav2d.Pose2DStamped {
	return nav2d.Pose2DStamped{
		Header: nav2d.Header{FrameID: frame},
		Pose:   nav2d.Pose2D{X: x, Y: y, Theta: theta},
	}
}

func pathInFrame(frame string, poses ...nav2d.Pose2D) nav2d.Path2D {
	return nav2d.Path2D{Header: nav2d.Header{FrameID: frame}, Poses: poses}
}
