package exercise

import "context"

// Generator produces language exercises.
type Generator interface {
	// Generate produces a single exercise for the given input context.
	// Implementations never fail outright: when generation is impossible
	// they return a canned fallback exercise with Fallback set.
	Generate(ctx context.Context, input GenerateInput) (*Exercise, error)
}
