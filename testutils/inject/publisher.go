package inject

import (
	"github.com/robonav/localplanner/nav2d"
	"github.com/robonav/localplanner/planner"
)

// Publisher is an injected publisher.
type Publisher struct {
	planner.Publisher
	ShouldRecordEvaluationFunc func() bool
	PublishEvaluationFunc      func(eval *planner.Evaluation)
	PublishGlobalPlanFunc      func(plan nav2d.Path2D)
	PublishTransformedPlanFunc func(plan nav2d.Path2D)
	PublishLocalPlanFunc       func(header nav2d.Header, traj nav2d.Trajectory2D)
	PublishInputParamsFunc     func(info planner.CostmapInfo, start nav2d.Pose2D, velocity nav2d.Twist2D, goal nav2d.Pose2D)
	PublishCostGridFunc        func(costmap planner.Costmap, critics []planner.TrajectoryCritic)
}

// ShouldRecordEvaluation calls the injected ShouldRecordEvaluation or the real version.
func (p *Publisher) ShouldRecordEvaluation() bool {
	if p.ShouldRecordEvaluationFunc == nil {
		return p.Publisher.ShouldRecordEvaluation()
	}
	return p.ShouldRecordEvaluationFunc()
}

// PublishEvaluation calls the injected PublishEvaluation or the real version.
func (p *Publisher) PublishEvaluation(eval *planner.Evaluation) {
	if p.PublishEvaluationFunc == nil {
		p.Publisher.PublishEvaluation(eval)
		return
	}
	p.PublishEvaluationFunc(eval)
}

// PublishGlobalPlan calls the injected PublishGlobalPlan or the real version.
func (p *Publisher) PublishGlobalPlan(plan nav2d.Path2D) {
	if p.PublishGlobalPlanFunc == nil {
		p.Publisher.PublishGlobalPlan(plan)
		return
	}
	p.PublishGlobalPlanFunc(plan)
}

// PublishTransformedPlan calls the injected PublishTransformedPlan or the real version.
func (p *Publisher) PublishTransformedPlan(plan nav2d.Path2D) {
	if p.PublishTransformedPlanFunc == nil {
		p.Publisher.PublishTransformedPlan(plan)
		return
	}
	p.PublishTransformedPlanFunc(plan)
}

// PublishLocalPlan calls the injected PublishLocalPlan or the real version.
func (p *Publisher) PublishLocalPlan(header nav2d.Header, traj nav2d.Trajectory2D) {
	if p.PublishLocalPlanFunc == nil {
		p.Publisher.PublishLocalPlan(header, traj)
		return
	}
	p.PublishLocalPlanFunc(header, traj)
}

// PublishInputParams calls the injected PublishInputParams or the real version.
func (p *Publisher) PublishInputParams(
	info planner.CostmapInfo,
	start nav2d.Pose2D,
	velocity nav2d.Twist2D,
	goal nav2d.Pose2D,
) {
	if p.PublishInputParamsFunc == nil {
		p.Publisher.PublishInputParams(info, start, velocity, goal)
		return
	}
	p.PublishInputParamsFunc(info, start, velocity, goal)
}

// PublishCostGrid calls the injected PublishCostGrid or the real version.
func (p *Publisher) PublishCostGrid(costmap planner.Costmap, critics []planner.TrajectoryCritic) {
	if p.PublishCostGridFunc == nil {
		p.Publisher.PublishCostGrid(costmap, critics)
		return
	}
	p.PublishCostGridFunc(costmap, critics)
}
