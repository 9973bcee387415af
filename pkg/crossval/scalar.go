package crossval

import (
	"fmt"
	"math"
	"strings"

	"github.com/scorely/examcheck/pkg/textsim"
)

// reconcileText compares and merges one exam-level text field.
//
// Consistency ladder: byte-equal after trimming, then equal after loose
// normalization (whitespace/punctuation stripped, case and width folded),
// then similarity on the original untrimmed strings above the threshold.
// An empty side short-circuits to uncertain before any comparison.
func (v *Validator) reconcileText(field, primary, secondary string, lg *ledger) (string, Status) {
	p := strings.TrimSpace(primary)
	s := strings.TrimSpace(secondary)

	if p == "" || s == "" {
		selected := p
		if selected == "" {
			selected = s
		}
		// Unreachable while uncertain requires an empty side; kept in case
		// the emptiness rule above ever loosens.
		if p != "" && s != "" {
			lg.add(Inconsistency{
				Field:          field,
				PrimaryValue:   p,
				SecondaryValue: s,
				SelectedValue:  selected,
				Reason:         "both uncertain, defaulted to primary",
			}, true)
		}
		return selected, StatusUncertain
	}

	consistent := p == s ||
		textsim.NormalizeLoose(p) == textsim.NormalizeLoose(s) ||
		textsim.Similarity(primary, secondary) > v.simThreshold

	if consistent {
		return p, StatusConsistent
	}

	// Disagreement: keep the longer answer on the theory that the more
	// detailed reading is less likely to have dropped characters.
	selected := p
	if len([]rune(s)) > len([]rune(p)) {
		selected = s
	}
	lg.add(Inconsistency{
		Field:          field,
		PrimaryValue:   p,
		SecondaryValue: s,
		SelectedValue:  selected,
		Reason:         "disagreement, selected more detailed result",
	}, true)
	return selected, StatusInconsistent
}

// numberPick chooses between two finite disputed values and explains why.
type numberPick func(primary, secondary float64) (float64, string)

// reconcileNumber compares and merges one exam-level numeric field. Values
// within the configured tolerance of each other count as consistent; a
// larger gap is resolved by the field-specific pick function.
func (v *Validator) reconcileNumber(field string, primary, secondary *float64, pick numberPick, lg *ledger) (*float64, Status) {
	pOK := isFinite(primary)
	sOK := isFinite(secondary)

	if !pOK || !sOK {
		var selected *float64
		switch {
		case pOK:
			selected = copyNumber(primary)
		case sOK:
			selected = copyNumber(secondary)
		}
		// Unreachable while uncertain requires a non-finite side; kept in
		// case the finiteness rule above ever loosens.
		if pOK && sOK {
			lg.add(Inconsistency{
				Field:          field,
				PrimaryValue:   *primary,
				SecondaryValue: *secondary,
				SelectedValue:  *primary,
				Reason:         "both uncertain, defaulted to primary",
			}, true)
			selected = copyNumber(primary)
		}
		return selected, StatusUncertain
	}

	a, b := *primary, *secondary
	if a == b || math.Abs(a-b) <= v.scoreTolerance {
		return copyNumber(primary), StatusConsistent
	}

	selected, rationale := pick(a, b)
	lg.add(Inconsistency{
		Field:          field,
		PrimaryValue:   a,
		SecondaryValue: b,
		SelectedValue:  selected,
		Reason:         fmt.Sprintf("values differ by %g, %s", math.Abs(a-b), rationale),
	}, true)
	return &selected, StatusInconsistent
}

// pickConservativeScore resolves a disputed earned score by taking the
// lower reading, so a mis-read never over-credits the student.
func pickConservativeScore(primary, secondary float64) (float64, string) {
	if secondary < primary {
		return secondary, "selected lower score"
	}
	return primary, "selected lower score"
}

// pickNearestFullScore resolves a disputed full score by keeping whichever
// value sits closer to a common exam total; ties favor the primary reading.
func (v *Validator) pickNearestFullScore(primary, secondary float64) (float64, string) {
	if refDistance(secondary, v.fullScoreRef) < refDistance(primary, v.fullScoreRef) {
		return secondary, "selected value closest to a common full score"
	}
	return primary, "selected value closest to a common full score"
}

// refDistance returns the distance from value to the nearest reference.
func refDistance(value float64, refs []float64) float64 {
	best := math.Inf(1)
	for _, ref := range refs {
		if d := math.Abs(value - ref); d < best {
			best = d
		}
	}
	return best
}

// isFinite reports whether a numeric field is present and a real number.
func isFinite(v *float64) bool {
	return v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0)
}

// copyNumber clones a numeric field so the result never aliases the input.
func copyNumber(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
