package crossval

import (
	"fmt"

	"github.com/scorely/examcheck/pkg/extraction"
)

// reconcileFinding decides the outcome for one matched question slot and
// returns the finding to keep. The kept finding is always one side taken
// whole; fields are never spliced across providers.
func (v *Validator) reconcileFinding(pair questionPair, lg *ledger) (extraction.ProblemInfo, Status) {
	if pair.secondary == nil {
		// Only the primary provider saw this question. Partial coverage is
		// not a disagreement, so no ledger entry.
		return *pair.primary, StatusUncertain
	}
	if pair.primary == nil {
		return *pair.secondary, StatusUncertain
	}

	p, s := *pair.primary, *pair.secondary

	// The matcher only pairs findings with equal identities; a mismatch
	// here means a matcher bug, not bad input. Report it and degrade to
	// uncertain rather than crash.
	if digitKey(p.QuestionNo) != digitKey(s.QuestionNo) {
		v.logger.Warn().
			Str("primary_question", p.QuestionNo).
			Str("secondary_question", s.QuestionNo).
			Msg("matched pair has differing question identities")
		return p, StatusUncertain
	}

	if p.Score == s.Score {
		return p, StatusConsistent
	}

	// Same question, different score text: keep the side that is more
	// confident in its own reading; ties favor the primary provider.
	selected := p
	if s.Confidence.Rank() > p.Confidence.Rank() {
		selected = s
	}
	lg.add(Inconsistency{
		Field:          "problem_" + p.QuestionNo,
		PrimaryValue:   p,
		SecondaryValue: s,
		SelectedValue:  selected,
		Reason:         fmt.Sprintf("question %s findings disagree, selected higher-confidence result", p.QuestionNo),
	}, true)
	return selected, StatusInconsistent
}

// reconcileProblems runs the full question pipeline: match the two parsed
// finding lists, reconcile each slot, and derive the aggregate status for
// the question list as a whole.
func (v *Validator) reconcileProblems(primary, secondary []extraction.ProblemInfo, lg *ledger) ([]extraction.ProblemInfo, Status) {
	pairs := matchProblems(primary, secondary)

	merged := make([]extraction.ProblemInfo, 0, len(pairs))
	sawInconsistent := false
	sawUncertain := false

	for _, pair := range pairs {
		finding, status := v.reconcileFinding(pair, lg)
		merged = append(merged, finding)
		switch status {
		case StatusInconsistent:
			sawInconsistent = true
		case StatusUncertain:
			sawUncertain = true
		}
	}

	switch {
	case sawInconsistent:
		return merged, StatusInconsistent
	case sawUncertain:
		return merged, StatusUncertain
	default:
		return merged, StatusConsistent
	}
}
