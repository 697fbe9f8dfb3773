package planner

import (
	"github.com/mitchellh/mapstructure"
	"github.com/pkg/errors"
	goutils "go.viam.com/utils"
)

// default values for planner options.
const (
	// Permanently drop passed plan poses within this many meters of the robot.
	defaultPruneDistance = 1.0

	// Refresh the costmap at the start of every prepare step. Needed when the
	// costmap adapts a rolling window whose metadata must match the cycle.
	defaultUpdateCostmapBeforePlanning = true

	// Drop already-passed poses from the stored plan every cycle.
	defaultPrunePlan = true

	// Stop scoring a candidate once it is provably worse than the best.
	defaultShortCircuitTrajectoryEvaluation = true
)

// CriticConfig selects and weights one critic in the chain. Class identifies
// the registered implementation and defaults to Name when empty.
type CriticConfig struct {
	Name       string                 `json:"name"`
	Class      string                 `json:"class,omitempty"`
	Scale      float64                `json:"scale"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
}

// Options configure one planner instance. Zero values are not meaningful
// defaults; start from DefaultOptions.
type Options struct {
	// Refresh the costmap before each planning cycle.
	UpdateCostmapBeforePlanning bool `json:"update_costmap_before_planning"`

	// Permanently remove passed poses from the stored global plan.
	PrunePlan bool `json:"prune_plan"`

	// Distance in meters within which a plan pose counts as not yet passed.
	PruneDistance float64 `json:"prune_distance"`

	// Skip remaining critics once a candidate is already worse than the best.
	ShortCircuitTrajectoryEvaluation bool `json:"short_circuit_trajectory_evaluation"`

	// Log per-critic rejection percentages when no candidate is legal.
	DebugTrajectoryDetails bool `json:"debug_trajectory_details"`

	// Split incoming plans into forward/backward/rotate-in-place segments
	// that are tracked and completed one at a time.
	SplitPath bool `json:"split_path"`

	// Ordered critic chain.
	Critics []CriticConfig `json:"critics"`

	// Registered names of the candidate generator and goal checker to use.
	TrajectoryGeneratorName string `json:"trajectory_generator_name,omitempty"`
	GoalCheckerName         string `json:"goal_checker_name,omitempty"`
}

// DefaultOptions returns the options the planner runs with when given none.
func DefaultOptions() *Options {
	return &Options{
		UpdateCostmapBeforePlanning:      defaultUpdateCostmapBeforePlanning,
		PrunePlan:                        defaultPrunePlan,
		PruneDistance:                    defaultPruneDistance,
		ShortCircuitTrajectoryEvaluation: defaultShortCircuitTrajectoryEvaluation,
	}
}

// Validate ensures all parts of the config are valid.
func (o *Options) Validate(path string) error {
	if o.PrunePlan && o.PruneDistance <= 0 {
		return goutils.NewConfigValidationError(path,
			errors.New("prune_distance must be positive when prune_plan is set"))
	}
	for _, critic := range o.Critics {
		if critic.Name == "" {
			return goutils.NewConfigValidationFieldRequiredError(path, "critics.name")
		}
		if critic.Scale < 0 {
			return goutils.NewConfigValidationError(path,
				errors.Errorf("critic %q must have a non-negative scale", critic.Name))
		}
	}
	return nil
}

// OptionsFromAttributes converts a raw attribute map into Options, starting
// from the defaults. Attribute keys follow the json tags.
func OptionsFromAttributes(attributes map[string]interface{}) (*Options, error) {
	opts := DefaultOptions()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName: "json",
		Result:  opts,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(attributes); err != nil {
		return nil, errors.Wrap(err, "failed to convert attributes to planner options")
	}
	return opts, nil
}
