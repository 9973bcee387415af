// Package extraction defines the data model produced by the upstream
// vision-extraction providers and the parser that turns their raw
// per-question lines into structured findings. The package performs no
// network or inference work; it only models and parses what the providers
// already returned.
package extraction

import "strings"

// ExtractedData is one provider's structured read of a graded exam.
// No invariant is enforced on input: either provider may return missing or
// malformed values and downstream validation must tolerate them.
type ExtractedData struct {
	Meta         ExamMeta     `json:"meta" yaml:"meta"`                 // Exam-level scalar fields
	Observations Observations `json:"observations" yaml:"observations"` // Per-question raw findings
}

// ExamMeta holds the exam-level scalar fields. Score and FullScore are
// pointers so that an absent number is distinguishable from zero.
type ExamMeta struct {
	ExamName  string         `json:"exam_name" yaml:"exam_name"`             // e.g. "七年级数学期中考试"
	Subject   string         `json:"subject" yaml:"subject"`                 // e.g. "数学"
	Score     *float64       `json:"score,omitempty" yaml:"score,omitempty"` // Earned points, if the provider read them
	FullScore *float64       `json:"full_score,omitempty" yaml:"full_score,omitempty"`
	Extra     map[string]any `json:"extra,omitempty" yaml:"extra,omitempty"` // Provider-specific fields, ignored by validation
}

// Observations carries the raw per-question output lines.
type Observations struct {
	Problems []string `json:"problems" yaml:"problems"` // One tagged line per question finding
}

// ProblemInfo is one structured question finding, parsed from a raw tagged
// line. Values are kept as raw text: Score in particular stays in its
// "earned/total" string form and is never reparsed into numbers here.
type ProblemInfo struct {
	QuestionNo string     `json:"question_no" yaml:"question_no"` // May contain prose, e.g. "第3题"
	Score      string     `json:"score" yaml:"score"`             // Expected shape "earned/total", not guaranteed
	Knowledge  string     `json:"knowledge" yaml:"knowledge"`     // Knowledge point(s) the question covers
	ErrorType  string     `json:"error_type" yaml:"error_type"`   // Why points were lost, if any
	Evidence   string     `json:"evidence" yaml:"evidence"`       // What on the page supports the finding
	Confidence Confidence `json:"confidence" yaml:"confidence"`   // Provider's self-reported confidence
}

// Confidence is a provider's self-assessed reliability for one finding.
type Confidence string

// Confidence levels, ordered high > medium > low.
const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
)

// Rank returns the comparison rank of a confidence level: high=3, medium=2,
// low=1. Unknown values rank as medium.
func (c Confidence) Rank() int {
	switch c {
	case ConfidenceHigh:
		return 3
	case ConfidenceLow:
		return 1
	default:
		return 2
	}
}

// ParseConfidence classifies free confidence text by substring: anything
// containing "高" or "high" is high, anything containing "低" or "low" is
// low, everything else (including empty text) defaults to medium.
func ParseConfidence(s string) Confidence {
	lower := strings.ToLower(s)
	switch {
	case strings.Contains(lower, "高") || strings.Contains(lower, "high"):
		return ConfidenceHigh
	case strings.Contains(lower, "低") || strings.Contains(lower, "low"):
		return ConfidenceLow
	default:
		return ConfidenceMedium
	}
}

// Number is a convenience for building ExamMeta literals.
func Number(v float64) *float64 {
	return &v
}
