package feature

import (
	"context"
	"errors"
	"slices"

	"github.com/dmitrymomot/landing/pkg/environment"
)

var (
	ErrFlagNotFound    = errors.New("feature flag not found")
	ErrInvalidFlag     = errors.New("invalid feature flag")
	ErrInvalidStrategy = errors.New("invalid feature rollout strategy")
)

// Flag is a named switch.
type Flag struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Enabled     bool     `json:"enabled"`
	Strategy    Strategy `json:"-"`
}

// Strategy decides whether an enabled flag applies to ctx.
type Strategy interface {
	Evaluate(ctx context.Context) (bool, error)
}

// StrategyFunc adapts a function to Strategy.
type StrategyFunc func(ctx context.Context) (bool, error)

func (f StrategyFunc) Evaluate(ctx context.Context) (bool, error) { return f(ctx) }

func NewAlwaysOnStrategy() Strategy {
	return StrategyFunc(func(context.Context) (bool, error) { return true, nil })
}

func NewAlwaysOffStrategy() Strategy {
	return StrategyFunc(func(context.Context) (bool, error) { return false, nil })
}

// EnvironmentExtractor reads the deployment environment from a context.
type EnvironmentExtractor func(ctx context.Context) environment.Environment

// EnvironmentStrategy enables a flag only in the listed environments.
type EnvironmentStrategy struct {
	Environments []environment.Environment
	extract      EnvironmentExtractor
}

// NewEnvironmentStrategy reads the environment with environment.FromContext.
func NewEnvironmentStrategy(envs ...environment.Environment) *EnvironmentStrategy {
	return &EnvironmentStrategy{Environments: envs, extract: environment.FromContext}
}

// WithExtractor replaces the environment lookup.
func (s *EnvironmentStrategy) WithExtractor(fn EnvironmentExtractor) *EnvironmentStrategy {
	if fn != nil {
		s.extract = fn
	}
	return s
}

func (s *EnvironmentStrategy) Evaluate(ctx context.Context) (bool, error) {
	if len(s.Environments) == 0 {
		return false, ErrInvalidStrategy
	}
	env := s.extract(ctx)
	return env != "" && slices.Contains(s.Environments, env), nil
}

// NewAndStrategy is true when every strategy is true.
func NewAndStrategy(strategies ...Strategy) Strategy {
	return StrategyFunc(func(ctx context.Context) (bool, error) {
		if len(strategies) == 0 {
			return false, ErrInvalidStrategy
		}
		for _, s := range strategies {
			ok, err := s.Evaluate(ctx)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	})
}

// NewOrStrategy is true when any strategy is true.
func NewOrStrategy(strategies ...Strategy) Strategy {
	return StrategyFunc(func(ctx context.Context) (bool, error) {
		if len(strategies) == 0 {
			return false, ErrInvalidStrategy
		}
		var errs []error
		for _, s := range strategies {
			ok, err := s.Evaluate(ctx)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			if ok {
				return true, nil
			}
		}
		return false, errors.Join(errs...)
	})
}
