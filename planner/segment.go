package planner

import (
	"github.com/robonav/localplanner/nav2d"
)

// Transitions whose squared displacement-heading dot product falls below
// this are treated as in-place rotation. Deliberately loose: a genuine
// 90 degree turn with a very short step also trips it, and downstream critic
// tuning depends on that behavior.
const onlyRotationEpsilon = 1e-10

// classifyMotion classifies the transition between two consecutive plan
// poses. The dot product of the displacement with the heading at the first
// pose is negative when the step moves against the heading (driving
// backwards) and near zero when the poses are effectively coincident
// (rotating in place). Rotation takes precedence over the sign test.
func classifyMotion(from, to nav2d.Pose2D) (backwards, onlyRotation bool) {
	d := to.Point().Sub(from.Point()).Dot(from.Heading())
	return d < 0, d*d < onlyRotationEpsilon
}

// splitPath splits a path into maximal runs that share one motion class:
// driving forwards, driving backwards, or rotating in place. Global planners
// can emit complex maneuvers that alternate between these, and each run must
// be completed before the next is started. Consecutive segments overlap by
// exactly one pose (the cut point closes one segment and opens the next) so
// that re-joining them reproduces a seamless path.
//
// A path with fewer than two poses yields no segments.
func splitPath(path nav2d.Path2D) []nav2d.Path2D {
	var segments []nav2d.Path2D

	rest := make([]nav2d.Pose2D, len(path.Poses))
	copy(rest, path.Poses)

	for len(rest) > 1 {
		segment := nav2d.Path2D{Header: path.Header}
		segment.Poses = append(segment.Poses, rest[0], rest[1])
		rest = rest[2:]

		// the first transition fixes the motion class for the whole segment
		backwards, onlyRotation := classifyMotion(segment.Poses[0], segment.Poses[1])

		for len(rest) > 0 {
			b, rot := classifyMotion(segment.Poses[len(segment.Poses)-1], rest[0])
			if b != backwards || rot != onlyRotation {
				// direction changed; re-insert the cut point so the next
				// segment starts where this one ended
				rest = append([]nav2d.Pose2D{segment.Poses[len(segment.Poses)-1]}, rest...)
				break
			}
			segment.Poses = append(segment.Poses, rest[0])
			rest = rest[1:]
		}

		segments = append(segments, segment)
	}

	return segments
}
