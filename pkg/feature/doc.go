// Package feature evaluates feature flags against a request context.
//
// Flags live in a MemoryProvider. A flag without a Strategy is on or off
// according to Enabled; a flag with one defers to Strategy.Evaluate, which
// can look at the environment stored in the context.
//
//	flags, _ := feature.NewMemoryProvider(
//	    &feature.Flag{Name: "animations", Enabled: true},
//	    &feature.Flag{Name: "performance_log", Enabled: true,
//	        Strategy: feature.NewEnvironmentStrategy(environment.Development)},
//	)
//	on, _ := flags.IsEnabled(ctx, "performance_log")
package feature
