package planner

import (
	"errors"

	"github.com/robonav/localplanner/nav2d"
)

// scoreTrajectory applies the critic chain, in configured order, to one
// candidate trajectory. best is the best score seen so far this cycle, or
// nil if none; when short-circuit evaluation is enabled and the running
// total already exceeds a positive best total, the remaining critics are
// skipped. A critic rejecting the trajectory aborts scoring and returns an
// IllegalTrajectoryError naming the critic.
func (p *Planner) scoreTrajectory(traj nav2d.Trajectory2D, best *TrajectoryScore) (TrajectoryScore, error) {
	score := TrajectoryScore{Traj: traj}

	for _, critic := range p.critics {
		cs := CriticScore{Name: critic.Name(), Scale: critic.Scale()}

		if cs.Scale == 0 {
			// disabled critic; record it without computing a raw score
			score.Scores = append(score.Scores, cs)
			continue
		}

		raw, err := critic.ScoreTrajectory(traj)
		if err != nil {
			var illegal *IllegalTrajectoryError
			if !errors.As(err, &illegal) {
				illegal = &IllegalTrajectoryError{CriticName: critic.Name(), Reason: err.Error()}
			}
			return TrajectoryScore{}, illegal
		}
		cs.RawScore = raw
		score.Scores = append(score.Scores, cs)
		score.Total += raw * cs.Scale

		if p.opts.ShortCircuitTrajectoryEvaluation && best != nil && best.Total > 0 && score.Total > best.Total {
			// since we keep adding positives, once we are worse than the best, we will stay worse
			break
		}
	}

	return score, nil
}

// coreScoringAlgorithm drives the candidate generator for one cycle, scores
// every candidate, and returns the legal candidate with the minimum total.
// The maximum-scoring legal candidate is tracked alongside for diagnostics.
// Ties keep the earliest-generated candidate. When the generator is
// exhausted without a single legal candidate, the cycle fails with a
// NoLegalTrajectoriesError carrying the rejection tracker.
func (p *Planner) coreScoringAlgorithm(
	pose nav2d.Pose2D,
	velocity nav2d.Twist2D,
	results *Evaluation,
) (TrajectoryScore, error) {
	var best, worst *TrajectoryScore
	tracker := NewIllegalTrajectoryTracker()

	p.generator.StartNewIteration(velocity)
	for p.generator.HasMoreTwists() {
		twist := p.generator.NextTwist()
		traj, err := p.generator.GenerateTrajectory(pose, velocity, twist)
		if err != nil {
			return TrajectoryScore{}, &GenerationError{Twist: twist, cause: err}
		}

		score, err := p.scoreTrajectory(traj, best)
		if err != nil {
			var illegal *IllegalTrajectoryError
			if !errors.As(err, &illegal) {
				return TrajectoryScore{}, err
			}
			tracker.AddIllegalTrajectory(illegal)
			if results != nil {
				results.Twists = append(results.Twists, TrajectoryScore{
					Traj:   traj,
					Scores: []CriticScore{{Name: illegal.CriticName, RawScore: -1}},
					Total:  -1,
				})
			}
			continue
		}
		tracker.AddLegalTrajectory()
		if results != nil {
			results.Twists = append(results.Twists, score)
		}

		scored := score
		if best == nil || scored.Total < best.Total {
			best = &scored
			if results != nil {
				results.BestIndex = len(results.Twists) - 1
			}
		}
		if worst == nil || scored.Total > worst.Total {
			worst = &scored
			if results != nil {
				results.WorstIndex = len(results.Twists) - 1
			}
		}
	}

	if best == nil {
		if p.opts.DebugTrajectoryDetails {
			p.logger.Error(tracker.Message())
			for _, pct := range tracker.Percentages() {
				p.logger.Errorf("%.2f: %10s/%s", pct.Percent, pct.CriticName, pct.Reason)
			}
		}
		return TrajectoryScore{}, &NoLegalTrajectoriesError{Tracker: tracker}
	}
	return *best, nil
}
