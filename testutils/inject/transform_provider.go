package inject

import (
	"context"

	"github.com/robonav/localplanner/nav2d"
	"github.com/robonav/localplanner/planner"
)

// TransformProvider is an injected transform provider.
type TransformProvider struct {
	planner.TransformProvider
	TransformPoseFunc func(ctx context.Context, targetFrame string, pose nav2d.Pose2DStamped) (nav2d.Pose2DStamped, error)
}

// TransformPose calls the injected TransformPose or the real version.
func (t *TransformProvider) TransformPose(
	ctx context.Context,
	targetFrame string,
	pose nav2d.Pose2DStamped,
) (nav2d.Pose2DStamped, error) {
	if t.TransformPoseFunc == nil {
		return t.TransformProvider.TransformPose(ctx, targetFrame, pose)
	}
	return t.TransformPoseFunc(ctx, targetFrame, pose)
}
