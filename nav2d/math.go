package nav2d

import (
	"math"

	"github.com/golang/geo/r2"
)

// Point returns the position of the pose as an r2 point.
func (p Pose2D) Point() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

// Heading returns the unit vector the pose is facing along.
func (p Pose2D) Heading() r2.Point {
	return r2.Point{X: math.Cos(p.Theta), Y: math.Sin(p.Theta)}
}

// SquaredDistance returns the squared planar distance between two poses,
// ignoring heading. Used for windowing and pruning comparisons where the
// square root would be wasted work.
func SquaredDistance(a, b Pose2D) float64 {
	xDiff := a.X - b.X
	yDiff := a.Y - b.Y
	return xDiff*xDiff + yDiff*yDiff
}
