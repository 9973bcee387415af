// Package crossval reconciles two independent structured extractions of the
// same physical exam into one trustworthy record plus a machine-readable
// ledger of everywhere the two providers disagreed.
//
// The engine is pure: it performs no I/O, holds no mutable state, and a
// Validator is safe for concurrent use by any number of goroutines. It also
// never fails at runtime: malformed input degrades to empty fields and
// uncertain statuses, and every genuine disagreement is surfaced as data,
// not as an error.
package crossval

import (
	"github.com/agentstation/utc"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/scorely/examcheck/pkg/extraction"
	"github.com/scorely/examcheck/pkg/logging"
)

// Default comparison parameters. They reproduce the tuned behavior for
// Chinese school exams: similarity above 0.8 treats text as the same
// reading, a one-point gap absorbs rounding noise, and the reference set
// lists the totals real exams overwhelmingly use.
const (
	DefaultSimilarityThreshold = 0.8
	DefaultScoreTolerance      = 1.0
)

// DefaultFullScoreReference is the default set of common exam totals.
var DefaultFullScoreReference = []float64{100, 150, 120, 90, 80}

// Validator cross-validates two extractions of the same exam.
type Validator struct {
	simThreshold   float64
	scoreTolerance float64
	fullScoreRef   []float64
	logger         *zerolog.Logger
}

// New creates a Validator with options. The zero-option validator uses the
// default thresholds and the default logger.
func New(opts ...Option) (*Validator, error) {
	v := &Validator{
		simThreshold:   DefaultSimilarityThreshold,
		scoreTolerance: DefaultScoreTolerance,
		fullScoreRef:   DefaultFullScoreReference,
		logger:         logging.Default(),
	}

	for _, opt := range opts {
		if err := opt(v); err != nil {
			return nil, err
		}
	}

	return v, nil
}

// Validate reconciles the two extractions and returns the merged record,
// per-field statuses, and the inconsistency ledger. The primary extraction
// wins ties throughout; providerIDs are carried into the audit trail only.
func (v *Validator) Validate(primary, secondary extraction.ExtractedData, primaryProvider, secondaryProvider string) *Result {
	lg := &ledger{}
	result := &Result{}

	result.ExamName, result.Status.ExamName = v.reconcileText(
		"exam_name", primary.Meta.ExamName, secondary.Meta.ExamName, lg)
	result.Subject, result.Status.Subject = v.reconcileText(
		"subject", primary.Meta.Subject, secondary.Meta.Subject, lg)
	result.Score, result.Status.Score = v.reconcileNumber(
		"score", primary.Meta.Score, secondary.Meta.Score, pickConservativeScore, lg)
	result.FullScore, result.Status.FullScore = v.reconcileNumber(
		"full_score", primary.Meta.FullScore, secondary.Meta.FullScore, v.pickNearestFullScore, lg)

	primaryProblems := extraction.ParseProblems(primary.Observations.Problems)
	secondaryProblems := extraction.ParseProblems(secondary.Observations.Problems)
	result.Problems, result.Status.Problems = v.reconcileProblems(primaryProblems, secondaryProblems, lg)

	result.Details = Details{
		ReportID:              uuid.NewString(),
		PrimaryProvider:       primaryProvider,
		SecondaryProvider:     secondaryProvider,
		ValidatedAt:           utc.Now(),
		Inconsistencies:       lg.list(),
		NeedsUserConfirmation: lg.confirm,
	}

	return result
}
