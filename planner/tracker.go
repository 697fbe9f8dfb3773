package planner

import (
	"fmt"
)

type criticReason struct {
	critic string
	reason string
}

// An IllegalTrajectoryTracker accumulates, across one evaluation pass, how
// many candidates were legal vs. illegal and which (critic, reason) pairs
// caused the rejections. It is purely diagnostic; selection never reads it.
type IllegalTrajectoryTracker struct {
	counts       map[criticReason]int
	order        []criticReason
	legalCount   int
	illegalCount int
}

// NewIllegalTrajectoryTracker returns an empty tracker for one cycle.
func NewIllegalTrajectoryTracker() *IllegalTrajectoryTracker {
	return &IllegalTrajectoryTracker{counts: map[criticReason]int{}}
}

// AddIllegalTrajectory records one rejected candidate.
func (t *IllegalTrajectoryTracker) AddIllegalTrajectory(err *IllegalTrajectoryError) {
	key := criticReason{critic: err.CriticName, reason: err.Reason}
	if _, ok := t.counts[key]; !ok {
		t.order = append(t.order, key)
	}
	t.counts[key]++
	t.illegalCount++
}

// AddLegalTrajectory records one candidate that scored successfully.
func (t *IllegalTrajectoryTracker) AddLegalTrajectory() {
	t.legalCount++
}

// Counts returns the number of legal and illegal candidates seen so far.
func (t *IllegalTrajectoryTracker) Counts() (legal, illegal int) {
	return t.legalCount, t.illegalCount
}

// Message summarizes the failure rate of the pass.
func (t *IllegalTrajectoryTracker) Message() string {
	total := t.legalCount + t.illegalCount
	return fmt.Sprintf("%d out of %d total trajectories were illegal", t.illegalCount, total)
}

// A RejectionPercentage describes what share of all illegal candidates one
// (critic, reason) pair accounted for.
type RejectionPercentage struct {
	CriticName string
	Reason     string
	Percent    float64
}

// Percentages reports every (critic, reason) pair with its share of the
// illegal candidates, ordered by first occurrence for reproducible output.
func (t *IllegalTrajectoryTracker) Percentages() []RejectionPercentage {
	percentages := make([]RejectionPercentage, 0, len(t.order))
	for _, key := range t.order {
		percentages = append(percentages, RejectionPercentage{
			CriticName: key.critic,
			Reason:     key.reason,
			Percent:    100 * float64(t.counts[key]) / float64(t.illegalCount),
		})
	}
	return percentages
}
