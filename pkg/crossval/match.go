package crossval

import (
	"golang.org/x/text/width"

	"github.com/scorely/examcheck/pkg/extraction"
)

// questionPair aligns one primary finding with at most one secondary
// finding for the same question. A nil side means only the other provider
// saw the question.
type questionPair struct {
	primary   *extraction.ProblemInfo
	secondary *extraction.ProblemInfo
}

// matchProblems aligns the two ordered finding lists by extracted question
// number. The matching is greedy and order-preserving: each primary finding
// takes the first not-yet-used secondary finding with the same non-empty
// digit identity, then leftover secondary findings are appended in their
// original order. Output order is a contract relied on by callers.
func matchProblems(primary, secondary []extraction.ProblemInfo) []questionPair {
	pairs := make([]questionPair, 0, len(primary)+len(secondary))
	used := make([]bool, len(secondary))

	for i := range primary {
		key := digitKey(primary[i].QuestionNo)
		pair := questionPair{primary: &primary[i]}
		if key != "" {
			for j := range secondary {
				if used[j] || digitKey(secondary[j].QuestionNo) != key {
					continue
				}
				used[j] = true
				pair.secondary = &secondary[j]
				break
			}
		}
		pairs = append(pairs, pair)
	}

	for j := range secondary {
		if !used[j] {
			pairs = append(pairs, questionPair{secondary: &secondary[j]})
		}
	}

	return pairs
}

// digitKey extracts a question's matchable identity: the first run of
// decimal digits anywhere in the question-number text, with full-width
// digits folded first. No digits means no identity; an empty key never
// matches anything, not even another empty key.
func digitKey(questionNo string) string {
	folded := width.Fold.String(questionNo)

	start := -1
	for i, r := range folded {
		if r >= '0' && r <= '9' {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			return folded[start:i]
		}
	}
	if start >= 0 {
		return folded[start:]
	}
	return ""
}
