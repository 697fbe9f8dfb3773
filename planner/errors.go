package planner

import (
	"errors"
	"fmt"

	"github.com/robonav/localplanner/nav2d"
)

// A PlanningError indicates the stored plan cannot be used as-is, either
// because it is empty or because no part of it falls within the local window.
type PlanningError struct {
	msg string
}

// NewPlanningError returns a PlanningError with the given description.
func NewPlanningError(msg string) *PlanningError {
	return &PlanningError{msg: msg}
}

func (e *PlanningError) Error() string {
	return e.msg
}

// A TransformError indicates the robot pose could not be resolved into a
// frame the planner needs.
type TransformError struct {
	TargetFrame string
	cause       error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("unable to transform pose into frame %q: %v", e.TargetFrame, e.cause)
}

func (e *TransformError) Unwrap() error {
	return e.cause
}

// A GenerationError indicates the trajectory generator could not simulate a
// candidate twist.
type GenerationError struct {
	Twist nav2d.Twist2D
	cause error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("unable to generate trajectory for twist %v: %v", e.Twist, e.cause)
}

func (e *GenerationError) Unwrap() error {
	return e.cause
}

// An IllegalTrajectoryError reports that one critic rejected one candidate
// trajectory. It is recovered inside the evaluation loop and never surfaces
// per-candidate; the tracker accumulates it instead.
type IllegalTrajectoryError struct {
	CriticName string
	Reason     string
}

func (e *IllegalTrajectoryError) Error() string {
	return fmt.Sprintf("critic %q rejected trajectory: %s", e.CriticName, e.Reason)
}

// A NoLegalTrajectoriesError is the terminal failure of one evaluation
// cycle: every candidate the generator produced was rejected. The attached
// tracker describes which critics rejected what.
type NoLegalTrajectoriesError struct {
	Tracker *IllegalTrajectoryTracker
}

func (e *NoLegalTrajectoriesError) Error() string {
	return e.Tracker.Message()
}

// AsNoLegalTrajectoriesError unwraps err into a NoLegalTrajectoriesError if
// it is one.
func AsNoLegalTrajectoriesError(err error) (*NoLegalTrajectoriesError, bool) {
	var noLegal *NoLegalTrajectoriesError
	if errors.As(err, &noLegal) {
		return noLegal, true
	}
	return nil, false
}
