package crossval

import (
	"fmt"

	"github.com/agentstation/utc"

	"github.com/scorely/examcheck/pkg/extraction"
)

// Inconsistency is one recorded disagreement between the two providers.
// Entries are appended to the result's ledger during validation and never
// edited afterward.
type Inconsistency struct {
	Field          string `json:"field" yaml:"field"`                     // e.g. "score" or "problem_3"
	PrimaryValue   any    `json:"primary_value" yaml:"primary_value"`     // What the primary provider said
	SecondaryValue any    `json:"secondary_value" yaml:"secondary_value"` // What the secondary provider said
	SelectedValue  any    `json:"selected_value" yaml:"selected_value"`   // The value the engine kept
	Reason         string `json:"reason" yaml:"reason"`                   // Human-readable rationale
}

// FieldStatus records the per-field validation outcome for the five
// tracked fields.
type FieldStatus struct {
	ExamName  Status `json:"exam_name" yaml:"exam_name"`
	Subject   Status `json:"subject" yaml:"subject"`
	Score     Status `json:"score" yaml:"score"`
	FullScore Status `json:"full_score" yaml:"full_score"`
	Problems  Status `json:"problems" yaml:"problems"`
}

// Details carries the audit trail of one validation run.
type Details struct {
	ReportID              string          `json:"report_id" yaml:"report_id"`
	PrimaryProvider       string          `json:"primary_provider" yaml:"primary_provider"`
	SecondaryProvider     string          `json:"secondary_provider" yaml:"secondary_provider"`
	ValidatedAt           utc.Time        `json:"validated_at" yaml:"validated_at"`
	Inconsistencies       []Inconsistency `json:"inconsistencies" yaml:"inconsistencies"`
	NeedsUserConfirmation bool            `json:"needs_user_confirmation" yaml:"needs_user_confirmation"`
}

// Result is the reconciled record produced from two extractions of the same
// exam. It is freshly constructed per call and owns all of its data; it
// never aliases mutable state from the inputs.
type Result struct {
	ExamName  string                   `json:"exam_name" yaml:"exam_name"`
	Subject   string                   `json:"subject" yaml:"subject"`
	Score     *float64                 `json:"score,omitempty" yaml:"score,omitempty"`
	FullScore *float64                 `json:"full_score,omitempty" yaml:"full_score,omitempty"`
	Problems  []extraction.ProblemInfo `json:"problems" yaml:"problems"`
	Status    FieldStatus              `json:"validation_status" yaml:"validation_status"`
	Details   Details                  `json:"validation_details" yaml:"validation_details"`
}

// Consistent returns true if every tracked field validated as consistent.
func (r *Result) Consistent() bool {
	return r.Status.ExamName == StatusConsistent &&
		r.Status.Subject == StatusConsistent &&
		r.Status.Score == StatusConsistent &&
		r.Status.FullScore == StatusConsistent &&
		r.Status.Problems == StatusConsistent
}

// HasInconsistencies returns true if the ledger is non-empty.
func (r *Result) HasInconsistencies() bool {
	return len(r.Details.Inconsistencies) > 0
}

// Summary returns a one-line human-readable summary of the run.
func (r *Result) Summary() string {
	verdict := "providers agree"
	if r.Details.NeedsUserConfirmation {
		verdict = "needs user confirmation"
	}
	return fmt.Sprintf("%s vs %s: %d questions, %d inconsistencies, %s",
		r.Details.PrimaryProvider,
		r.Details.SecondaryProvider,
		len(r.Problems),
		len(r.Details.Inconsistencies),
		verdict)
}

// ledger accumulates inconsistency entries during one validation run.
// Entries produced by genuine disagreement (or by the defensive
// both-present-yet-uncertain branches) also raise the confirmation flag;
// the two concerns are tracked together so the assembler cannot drift from
// the branches that append entries.
type ledger struct {
	entries []Inconsistency
	confirm bool
}

// add appends an entry. needsConfirmation marks entries whose reason
// denotes a disagreement a human should review.
func (l *ledger) add(entry Inconsistency, needsConfirmation bool) {
	l.entries = append(l.entries, entry)
	if needsConfirmation {
		l.confirm = true
	}
}

// list returns the accumulated entries, never nil.
func (l *ledger) list() []Inconsistency {
	if l.entries == nil {
		return []Inconsistency{}
	}
	return l.entries
}
