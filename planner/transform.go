package planner

import (
	"context"

	"github.com/robonav/localplanner/nav2d"
)

// transformGlobalPlan maps the stored global plan into the costmap's frame,
// windowed to the portion the local costmap can see, and optionally prunes
// poses the robot has already passed from both the transformed and the
// stored plan.
func (p *Planner) transformGlobalPlan(ctx context.Context, pose nav2d.Pose2DStamped) (nav2d.Path2D, error) {
	if len(p.globalPlan.Poses) == 0 {
		return nav2d.Path2D{}, NewPlanningError("received plan with zero length")
	}

	// robot pose in the frame of the plan
	robotPose, err := p.tf.TransformPose(ctx, p.globalPlan.Header.FrameID, pose)
	if err != nil {
		return nav2d.Path2D{}, &TransformError{TargetFrame: p.globalPlan.Header.FrameID, cause: err}
	}

	transformed := nav2d.Path2D{
		Header: nav2d.Header{FrameID: p.costmap.FrameID(), Stamp: pose.Header.Stamp},
	}

	// discard plan poses outside the local costmap
	width, height := p.costmap.Width(), p.costmap.Height()
	cells := width
	if height > cells {
		cells = height
	}
	distThreshold := float64(cells) * p.costmap.Resolution() / 2.0
	sqDistThreshold := distThreshold * distThreshold

	stamped := nav2d.Pose2DStamped{
		Header: nav2d.Header{FrameID: p.globalPlan.Header.FrameID, Stamp: pose.Header.Stamp},
	}
	for _, planPose := range p.globalPlan.Poses {
		shouldBreak := false
		if nav2d.SquaredDistance(robotPose.Pose, planPose) > sqDistThreshold {
			if len(transformed.Poses) == 0 {
				// skip to a point on the plan within range of the robot
				continue
			}
			// include this pose, then stop transforming
			shouldBreak = true
		}

		stamped.Pose = planPose
		local, err := p.transformPoseToLocal(ctx, stamped)
		if err != nil {
			return nav2d.Path2D{}, err
		}
		transformed.Poses = append(transformed.Poses, local)
		if shouldBreak {
			break
		}
	}

	// Prune both plans based on robot position. This assumes the global plan
	// starts near the robot; when it does not, convergence takes a few
	// cycles rather than producing a wrong result.
	if p.opts.PrunePlan {
		costmapPose, err := p.tf.TransformPose(ctx, transformed.Header.FrameID, pose)
		if err != nil {
			return nav2d.Path2D{}, &TransformError{TargetFrame: transformed.Header.FrameID, cause: err}
		}

		sqPruneDist := p.opts.PruneDistance * p.opts.PruneDistance
		drop := 0
		for drop < len(transformed.Poses) {
			w := transformed.Poses[drop]
			if nav2d.SquaredDistance(costmapPose.Pose, w) < sqPruneDist {
				p.logger.Debugw("nearest waypoint found",
					"robotX", costmapPose.Pose.X, "robotY", costmapPose.Pose.Y,
					"waypointX", w.X, "waypointY", w.Y)
				break
			}
			drop++
		}
		transformed.Poses = transformed.Poses[drop:]
		p.globalPlan.Poses = p.globalPlan.Poses[drop:]
		p.pub.PublishGlobalPlan(p.globalPlan)
	}

	if len(transformed.Poses) == 0 {
		return nav2d.Path2D{}, NewPlanningError("resulting plan has 0 poses in it")
	}
	return transformed, nil
}

// transformPoseToLocal resolves a stamped pose into the costmap's frame.
func (p *Planner) transformPoseToLocal(ctx context.Context, pose nav2d.Pose2DStamped) (nav2d.Pose2D, error) {
	local, err := p.tf.TransformPose(ctx, p.costmap.FrameID(), pose)
	if err != nil {
		return nav2d.Pose2D{}, &TransformError{TargetFrame: p.costmap.FrameID(), cause: err}
	}
	return local.Pose, nil
}
