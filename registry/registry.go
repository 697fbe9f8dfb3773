// Package registry holds the global registries of planner plugins: critics,
// trajectory generators, and goal checkers. Implementations register a
// constructor under a class name at init time, and configuration selects
// among them by name at startup.
package registry

import (
	"strings"

	"github.com/edaniels/golog"
	"github.com/pkg/errors"

	"github.com/robonav/localplanner/planner"
)

type (
	// A CreateCritic creates a critic from its configuration.
	CreateCritic func(cfg planner.CriticConfig, logger golog.Logger) (planner.TrajectoryCritic, error)

	// A CreateTrajectoryGenerator creates a trajectory generator from a given config.
	CreateTrajectoryGenerator func(attributes map[string]interface{}, logger golog.Logger) (planner.TrajectoryGenerator, error)

	// A CreateGoalChecker creates a goal checker from a given config.
	CreateGoalChecker func(attributes map[string]interface{}, logger golog.Logger) (planner.GoalChecker, error)
)

// all registries
var (
	criticRegistry      = map[string]CreateCritic{}
	generatorRegistry   = map[string]CreateTrajectoryGenerator{}
	goalCheckerRegistry = map[string]CreateGoalChecker{}
)

// RegisterCritic registers a critic class to a constructor.
func RegisterCritic(class string, creator CreateCritic) {
	if _, old := criticRegistry[class]; old {
		panic(errors.Errorf("trying to register two critics with same class %s", class))
	}
	criticRegistry[class] = creator
}

// RegisterTrajectoryGenerator registers a trajectory generator name to a constructor.
func RegisterTrajectoryGenerator(name string, creator CreateTrajectoryGenerator) {
	if _, old := generatorRegistry[name]; old {
		panic(errors.Errorf("trying to register two trajectory generators with same name %s", name))
	}
	generatorRegistry[name] = creator
}

// RegisterGoalChecker registers a goal checker name to a constructor.
func RegisterGoalChecker(name string, creator CreateGoalChecker) {
	if _, old := goalCheckerRegistry[name]; old {
		panic(errors.Errorf("trying to register two goal checkers with same name %s", name))
	}
	goalCheckerRegistry[name] = creator
}

// CriticLookup looks up a critic constructor by class. nil if not found.
func CriticLookup(class string) CreateCritic {
	return criticRegistry[class]
}

// TrajectoryGeneratorLookup looks up a generator constructor by name. nil if not found.
func TrajectoryGeneratorLookup(name string) CreateTrajectoryGenerator {
	return generatorRegistry[name]
}

// GoalCheckerLookup looks up a goal checker constructor by name. nil if not found.
func GoalCheckerLookup(name string) CreateGoalChecker {
	return goalCheckerRegistry[name]
}

// ResolveCriticClass normalizes a configured critic class name: classes are
// conventionally registered with a "Critic" suffix, which configuration may
// leave off.
func ResolveCriticClass(class string) string {
	if !strings.Contains(class, "Critic") {
		return class + "Critic"
	}
	return class
}

// BuildCritics resolves and constructs the configured critic chain, in
// order. The class defaults to the critic's name when unset.
func BuildCritics(cfgs []planner.CriticConfig, logger golog.Logger) ([]planner.TrajectoryCritic, error) {
	critics := make([]planner.TrajectoryCritic, 0, len(cfgs))
	for _, cfg := range cfgs {
		class := cfg.Class
		if class == "" {
			class = cfg.Name
		}
		class = ResolveCriticClass(class)
		creator := CriticLookup(class)
		if creator == nil {
			return nil, errors.Errorf("unknown critic class %q", class)
		}
		critic, err := creator(cfg, logger)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to build critic %q", cfg.Name)
		}
		logger.Infow("using critic", "name", cfg.Name, "class", class)
		critics = append(critics, critic)
	}
	return critics, nil
}
