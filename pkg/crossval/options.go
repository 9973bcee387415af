package crossval

import (
	"github.com/rs/zerolog"

	"github.com/scorely/examcheck/pkg/errors"
)

// Option configures a Validator.
type Option func(*Validator) error

// WithLogger sets the logger used for defensive invariant reporting.
// The validator never logs on the happy path.
func WithLogger(logger *zerolog.Logger) Option {
	return func(v *Validator) error {
		if logger == nil {
			return errors.NewOptionError("WithLogger", nil, "logger cannot be nil")
		}
		v.logger = logger
		return nil
	}
}

// WithSimilarityThreshold sets the edit-distance similarity above which two
// differing text fields still count as consistent. Default 0.8.
func WithSimilarityThreshold(threshold float64) Option {
	return func(v *Validator) error {
		if threshold <= 0 || threshold > 1 {
			return errors.NewOptionError("WithSimilarityThreshold", threshold, "must be in (0, 1]")
		}
		v.simThreshold = threshold
		return nil
	}
}

// WithScoreTolerance sets the absolute gap within which two numeric fields
// still count as consistent. Default 1, absorbing OCR/LLM rounding noise.
func WithScoreTolerance(tolerance float64) Option {
	return func(v *Validator) error {
		if tolerance < 0 {
			return errors.NewOptionError("WithScoreTolerance", tolerance, "must be non-negative")
		}
		v.scoreTolerance = tolerance
		return nil
	}
}

// WithFullScoreReference sets the reference set of common full-score values
// used to tie-break disputed full scores. Default {100, 150, 120, 90, 80}.
func WithFullScoreReference(values ...float64) Option {
	return func(v *Validator) error {
		if len(values) == 0 {
			return errors.NewOptionError("WithFullScoreReference", values, "reference set cannot be empty")
		}
		v.fullScoreRef = append([]float64(nil), values...)
		return nil
	}
}
