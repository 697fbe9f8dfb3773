package nav2d

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"go.viam.com/test"
)

func TestPoint(t *testing.T) {
	p := Pose2D{X: 1.5, Y: -2, Theta: math.Pi}
	test.That(t, p.Point(), test.ShouldResemble, r2.Point{X: 1.5, Y: -2})
}

func TestHeading(t *testing.T) {
	h := Pose2D{Theta: 0}.Heading()
	test.That(t, h.X, test.ShouldAlmostEqual, 1)
	test.That(t, h.Y, test.ShouldAlmostEqual, 0)

	h = Pose2D{Theta: math.Pi / 2}.Heading()
	test.That(t, h.X, test.ShouldAlmostEqual, 0)
	test.That(t, h.Y, test.ShouldAlmostEqual, 1)

	h = Pose2D{Theta: math.Pi}.Heading()
	test.That(t, h.X, test.ShouldAlmostEqual, -1)
	test.That(t, h.Y, test.ShouldAlmostEqual, 0)
}

func TestSquaredDistance(t *testing.T) {
	a := Pose2D{X: 1, Y: 2}
	b := Pose2D{X: 4, Y: 6}
	test.That(t, SquaredDistance(a, b), test.ShouldAlmostEqual, 25)
	test.That(t, SquaredDistance(b, a), test.ShouldAlmostEqual, 25)
	// heading does not contribute
	test.That(t, SquaredDistance(a, Pose2D{X: 1, Y: 2, Theta: 3}), test.ShouldAlmostEqual, 0)
}
