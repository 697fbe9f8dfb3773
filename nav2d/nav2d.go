// Package nav2d contains the planar message types exchanged between a local
// planner and its collaborators, along with small geometry helpers on them.
package nav2d

import (
	"time"
)

// Header ties a message to a named reference frame at a point in time.
type Header struct {
	FrameID string
	Stamp   time.Time
}

// Pose2D is a position and heading in the frame of whatever carries it.
type Pose2D struct {
	X     float64
	Y     float64
	Theta float64
}

// Pose2DStamped is a Pose2D with an explicit frame and timestamp.
type Pose2DStamped struct {
	Header Header
	Pose   Pose2D
}

// Twist2D is a planar body velocity. X is forward, Y lateral, Theta angular.
type Twist2D struct {
	X     float64
	Y     float64
	Theta float64
}

// Twist2DStamped is a Twist2D with a timestamp attached.
type Twist2DStamped struct {
	Header   Header
	Velocity Twist2D
}

// Path2D is an ordered sequence of poses in a single frame.
type Path2D struct {
	Header Header
	Poses  []Pose2D
}

// Trajectory2D is the forward simulation of holding one twist for a short
// horizon: the commanded velocity plus the resulting timed pose samples.
type Trajectory2D struct {
	Velocity    Twist2D
	TimeOffsets []time.Duration
	Poses       []Pose2D
}
