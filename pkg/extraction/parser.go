package extraction

import "strings"

// Recognized bracketed tags in a raw finding line. Tags may appear in any
// order; each value runs until the start of the next recognized tag or the
// end of the line.
const (
	tagKnowledge  = "【知识点】"
	tagQuestionNo = "【题号】"
	tagScore      = "【得分】"
	tagErrorType  = "【错因】"
	tagEvidence   = "【证据】"
	tagConfidence = "【置信度】"
)

var knownTags = []string{
	tagKnowledge,
	tagQuestionNo,
	tagScore,
	tagErrorType,
	tagEvidence,
	tagConfidence,
}

// tagMark is one located tag occurrence within a raw line.
type tagMark struct {
	tag     string
	start   int // byte offset of the tag itself
	valueAt int // byte offset where the value begins
}

// ParseProblem turns one raw tagged line into a ProblemInfo. Missing tags
// yield empty fields, never an error: a completely malformed line parses to
// an all-empty finding with medium confidence. When a tag appears more than
// once, the first occurrence wins; its value still stops at the next
// recognized tag, so a duplicate tag cannot swallow a later field.
func ParseProblem(line string) ProblemInfo {
	marks := scanTags(line)

	values := make(map[string]string, len(knownTags))
	for i, mark := range marks {
		if _, seen := values[mark.tag]; seen {
			continue // first occurrence wins
		}
		end := len(line)
		if i+1 < len(marks) {
			end = marks[i+1].start
		}
		values[mark.tag] = strings.TrimSpace(line[mark.valueAt:end])
	}

	return ProblemInfo{
		QuestionNo: values[tagQuestionNo],
		Score:      values[tagScore],
		Knowledge:  values[tagKnowledge],
		ErrorType:  values[tagErrorType],
		Evidence:   values[tagEvidence],
		Confidence: ParseConfidence(values[tagConfidence]),
	}
}

// ParseProblems parses a whole observation list, one finding per line.
func ParseProblems(lines []string) []ProblemInfo {
	problems := make([]ProblemInfo, 0, len(lines))
	for _, line := range lines {
		problems = append(problems, ParseProblem(line))
	}
	return problems
}

// scanTags walks the line once and returns every recognized tag occurrence
// in position order. Bracket-like characters inside values are harmless:
// only exact matches of the known tags delimit fields.
func scanTags(line string) []tagMark {
	var marks []tagMark
	for pos := 0; pos < len(line); {
		next := -1
		var nextTag string
		for _, tag := range knownTags {
			idx := strings.Index(line[pos:], tag)
			if idx < 0 {
				continue
			}
			if next < 0 || pos+idx < next {
				next = pos + idx
				nextTag = tag
			}
		}
		if next < 0 {
			break
		}
		marks = append(marks, tagMark{
			tag:     nextTag,
			start:   next,
			valueAt: next + len(nextTag),
		})
		pos = next + len(nextTag)
	}
	return marks
}
