package planner

import (
	"context"
	"errors"
	"testing"

	"go.viam.com/test"

	"github.com/robonav/localplanner/nav2d"
)

func xPath(frame string, xs ...float64) nav2d.Path2D {
	poses := make([]nav2d.Pose2D, 0, len(xs))
	for _, x := range xs {
		poses = append(poses, nav2d.Pose2D{X: x})
	}
	return nav2d.Path2D{Header: nav2d.Header{FrameID: frame}, Poses: poses}
}

func TestTransformGlobalPlanWindow(t *testing.T) {
	opts := DefaultOptions()
	opts.PrunePlan = false
	fixture := newTestFixture(t, opts)

	// 10 cells * 0.4 m / 2 -> poses farther than 2 m from the robot are
	// outside the window
	err := fixture.planner.SetPlan(xPath("map", -3, -1, 0, 1, 1.9, 2.5, 3.5))
	test.That(t, err, test.ShouldBeNil)

	transformed, err := fixture.planner.transformGlobalPlan(context.Background(), poseStamped("map", 0, 0, 0))
	test.That(t, err, test.ShouldBeNil)
	test.That(t, transformed.Header.FrameID, test.ShouldEqual, "odom")
	// the leading far pose is skipped; the first pose past the window after
	// inclusion began is still included so the preview does not look truncated
	test.That(t, transformed.Poses, test.ShouldResemble, []nav2d.Pose2D{
		{X: -1}, {X: 0}, {X: 1}, {X: 1.9}, {X: 2.5},
	})
	// windowing alone never shortens the stored plan
	test.That(t, fixture.planner.globalPlan.Poses, test.ShouldHaveLength, 7)
}

func TestTransformGlobalPlanPrune(t *testing.T) {
	opts := DefaultOptions()
	test.That(t, opts.PrunePlan, test.ShouldBeTrue)
	fixture := newTestFixture(t, opts)

	err := fixture.planner.SetPlan(xPath("map", -3, -1, 0, 1, 1.9, 2.5, 3.5))
	test.That(t, err, test.ShouldBeNil)

	transformed, err := fixture.planner.transformGlobalPlan(context.Background(), poseStamped("map", 0, 0, 0))
	test.That(t, err, test.ShouldBeNil)
	// -1 sits exactly prune_distance away, which is not "within", so it is
	// dropped along with the stored plan's front pose
	test.That(t, transformed.Poses, test.ShouldResemble, []nav2d.Pose2D{
		{X: 0}, {X: 1}, {X: 1.9}, {X: 2.5},
	})
	test.That(t, fixture.planner.globalPlan.Poses[0], test.ShouldResemble, nav2d.Pose2D{X: -1})
	test.That(t, fixture.planner.globalPlan.Poses, test.ShouldHaveLength, 6)
	// the pruned stored plan is republished
	test.That(t, len(fixture.publisher.globalPlans), test.ShouldBeGreaterThan, 1)
}

func TestTransformGlobalPlanEmptyPlan(t *testing.T) {
	fixture := newTestFixture(t, nil)

	_, err := fixture.planner.transformGlobalPlan(context.Background(), poseStamped("map", 0, 0, 0))
	test.That(t, err, test.ShouldNotBeNil)
	var planningErr *PlanningError
	test.That(t, errors.As(err, &planningErr), test.ShouldBeTrue)
}

func TestTransformGlobalPlanOutOfRange(t *testing.T) {
	opts := DefaultOptions()
	opts.PrunePlan = false
	fixture := newTestFixture(t, opts)

	err := fixture.planner.SetPlan(xPath("map", 50, 51))
	test.That(t, err, test.ShouldBeNil)

	// the robot is nowhere near the plan, so the window keeps nothing
	_, err = fixture.planner.transformGlobalPlan(context.Background(), poseStamped("map", 0, 0, 0))
	test.That(t, err, test.ShouldNotBeNil)
	var planningErr *PlanningError
	test.That(t, errors.As(err, &planningErr), test.ShouldBeTrue)
}

func TestTransformGlobalPlanTFFailure(t *testing.T) {
	fixture := newTestFixture(t, nil)
	err := fixture.planner.SetPlan(xPath("map", 0, 1))
	test.That(t, err, test.ShouldBeNil)

	fixture.tf.failFrames["map"] = true
	_, err = fixture.planner.transformGlobalPlan(context.Background(), poseStamped("map", 0, 0, 0))
	var transformErr *TransformError
	test.That(t, errors.As(err, &transformErr), test.ShouldBeTrue)
	test.That(t, transformErr.TargetFrame, test.ShouldEqual, "map")

	fixture.tf.failFrames = map[string]bool{"odom": true}
	_, err = fixture.planner.transformGlobalPlan(context.Background(), poseStamped("map", 0, 0, 0))
	test.That(t, errors.As(err, &transformErr), test.ShouldBeTrue)
	test.That(t, transformErr.TargetFrame, test.ShouldEqual, "odom")
}
