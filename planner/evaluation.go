package planner

import (
	"github.com/robonav/localplanner/nav2d"
)

// A CriticScore is one critic's contribution to one trajectory's score. A
// Scale of zero means the critic was disabled and RawScore was never
// computed.
type CriticScore struct {
	Name     string
	Scale    float64
	RawScore float64
}

// A TrajectoryScore is the scored result of one candidate trajectory. Total
// accumulates RawScore*Scale across critics in chain order.
type TrajectoryScore struct {
	Traj   nav2d.Trajectory2D
	Scores []CriticScore
	Total  float64
}

// An Evaluation records every candidate considered during one planning
// cycle, legal or not, for diagnostics and visualization. Rejected
// candidates appear as a synthetic single-critic entry naming the failing
// critic with RawScore and Total of -1.
type Evaluation struct {
	Header nav2d.Header
	Twists []TrajectoryScore
	// BestIndex and WorstIndex point into Twists; -1 while unset.
	BestIndex  int
	WorstIndex int
}

func newEvaluation() *Evaluation {
	return &Evaluation{BestIndex: -1, WorstIndex: -1}
}
