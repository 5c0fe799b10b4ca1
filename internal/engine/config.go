package engine

import "fmt"

// Config controls the backtracking search's resource limits. It plays the
// role meta.Config plays for coregex's strategy selection: a struct of
// tunable knobs with sane defaults, validated before use, customized by
// struct-literal assignment rather than environment variables or files.
//
// Example:
//
//	cfg := engine.DefaultConfig()
//	cfg.MaxExploredStates = 500_000
//	m := engine.New(cfg)
type Config struct {
	// MaxExploredStates bounds the number of worklist states the search
	// will dequeue before giving up with ErrSearchBudgetExceeded, in the
	// same spirit as coregex's BoundedBacktracker.maxVisitedSize guard:
	// highly ambiguous patterns get a hard stop instead of running forever.
	//
	// Default: 200000
	MaxExploredStates int
}

// DefaultConfig returns a Config tuned for patterns of a few dozen
// sub-patterns matched against inputs of a few thousand elements — well
// past what any reasonable hand-written Pattern needs, while still
// bounding pathological, highly ambiguous patterns.
func DefaultConfig() Config {
	return Config{
		MaxExploredStates: 200_000,
	}
}

// Validate checks that c's fields are within usable ranges.
func (c Config) Validate() error {
	if c.MaxExploredStates < 1 {
		return &ConfigError{Field: "MaxExploredStates", Message: "must be at least 1"}
	}
	return nil
}

// ConfigError reports an invalid Config field.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("engine: invalid config: %s: %s", e.Field, e.Message)
}
