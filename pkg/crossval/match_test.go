package crossval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scorely/examcheck/pkg/extraction"
)

func finding(questionNo, score string) extraction.ProblemInfo {
	return extraction.ProblemInfo{
		QuestionNo: questionNo,
		Score:      score,
		Confidence: extraction.ConfidenceMedium,
	}
}

func TestDigitKey(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "第3题", want: "3"},
		{in: "3", want: "3"},
		{in: "12(2)", want: "12"},
		{in: "第１５题", want: "15"}, // full-width digits fold to ASCII
		{in: "选择题", want: ""},
		{in: "", want: ""},
		{in: "三", want: ""}, // CJK numerals are not decimal digits
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, digitKey(tt.in))
		})
	}
}

func TestMatchProblemsByEmbeddedDigits(t *testing.T) {
	primary := []extraction.ProblemInfo{finding("第3题", "4/6")}
	secondary := []extraction.ProblemInfo{finding("3", "4/6")}

	pairs := matchProblems(primary, secondary)

	require.Len(t, pairs, 1)
	require.NotNil(t, pairs[0].primary)
	require.NotNil(t, pairs[0].secondary)
	assert.Equal(t, "第3题", pairs[0].primary.QuestionNo)
	assert.Equal(t, "3", pairs[0].secondary.QuestionNo)
}

func TestMatchProblemsPartialCoverage(t *testing.T) {
	primary := []extraction.ProblemInfo{
		finding("1", "5/5"),
		finding("2", "3/5"),
		finding("3", "0/10"),
	}
	secondary := []extraction.ProblemInfo{
		finding("第1题", "5/5"),
		finding("第3题", "0/10"),
	}

	pairs := matchProblems(primary, secondary)

	require.Len(t, pairs, 3)
	assert.NotNil(t, pairs[0].secondary)
	assert.Nil(t, pairs[1].secondary, "question 2 only reported by primary")
	assert.NotNil(t, pairs[2].secondary)
}

func TestMatchProblemsLeftoverSecondaryAppended(t *testing.T) {
	primary := []extraction.ProblemInfo{finding("1", "5/5")}
	secondary := []extraction.ProblemInfo{
		finding("2", "4/5"),
		finding("1", "5/5"),
		finding("4", "2/5"),
	}

	pairs := matchProblems(primary, secondary)

	require.Len(t, pairs, 3)
	// Primary order first, leftover secondary findings after in their
	// original order.
	assert.Equal(t, "1", pairs[0].primary.QuestionNo)
	assert.Nil(t, pairs[1].primary)
	assert.Equal(t, "2", pairs[1].secondary.QuestionNo)
	assert.Nil(t, pairs[2].primary)
	assert.Equal(t, "4", pairs[2].secondary.QuestionNo)
}

func TestMatchProblemsDuplicateNumbersGreedyFirstUnused(t *testing.T) {
	primary := []extraction.ProblemInfo{
		finding("5", "1/5"),
		finding("5", "2/5"),
	}
	secondary := []extraction.ProblemInfo{
		finding("第5题", "a"),
		finding("第5题", "b"),
	}

	pairs := matchProblems(primary, secondary)

	require.Len(t, pairs, 2)
	// Each primary takes the first not-yet-used secondary with the same key.
	assert.Equal(t, "a", pairs[0].secondary.Score)
	assert.Equal(t, "b", pairs[1].secondary.Score)
}

func TestMatchProblemsOutOfSequenceOrderPreserved(t *testing.T) {
	primary := []extraction.ProblemInfo{
		finding("7", "1/5"),
		finding("2", "2/5"),
		finding("10", "3/5"),
	}
	secondary := []extraction.ProblemInfo{
		finding("10", "3/5"),
		finding("7", "1/5"),
	}

	pairs := matchProblems(primary, secondary)

	require.Len(t, pairs, 3)
	assert.Equal(t, "7", pairs[0].primary.QuestionNo)
	assert.Equal(t, "2", pairs[1].primary.QuestionNo)
	assert.Equal(t, "10", pairs[2].primary.QuestionNo)
	assert.Nil(t, pairs[1].secondary)
}

func TestMatchProblemsEmptyIdentityNeverMatches(t *testing.T) {
	primary := []extraction.ProblemInfo{finding("选择题", "5/5")}
	secondary := []extraction.ProblemInfo{finding("填空题", "5/5")}

	pairs := matchProblems(primary, secondary)

	require.Len(t, pairs, 2)
	assert.Nil(t, pairs[0].secondary, "empty identities never match, even each other")
	assert.Nil(t, pairs[1].primary)
}

func TestMatchProblemsBothEmptyLists(t *testing.T) {
	assert.Empty(t, matchProblems(nil, nil))
}
