package textsim_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scorely/examcheck/pkg/textsim"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{name: "identical", a: "数学期中考试", b: "数学期中考试", want: 1},
		{name: "both empty", a: "", b: "", want: 1},
		{name: "left empty", a: "", b: "abc", want: 0},
		{name: "right empty", a: "abc", b: "", want: 0},
		{name: "one substitution", a: "kitten", b: "mitten", want: 1 - 1.0/6},
		{name: "classic kitten sitting", a: "kitten", b: "sitting", want: 1 - 3.0/7},
		{name: "completely different", a: "abc", b: "xyz", want: 0},
		{name: "cjk one char off", a: "七年级数学", b: "八年级数学", want: 1 - 1.0/5},
		{name: "insertion counts one", a: "期中考试", b: "期中考试卷", want: 1 - 1.0/5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, textsim.Similarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSimilaritySymmetric(t *testing.T) {
	pairs := [][2]string{
		{"七年级数学期中考试", "七年级 数学 期中考试"},
		{"exam", "exams"},
		{"", "试卷"},
	}
	for _, p := range pairs {
		assert.Equal(t, textsim.Similarity(p[0], p[1]), textsim.Similarity(p[1], p[0]))
	}
}

func TestSimilarityCodePointLengths(t *testing.T) {
	// Lengths are code points: one CJK char is one unit even though it is
	// three bytes in UTF-8.
	got := textsim.Similarity("数", "学")
	assert.InDelta(t, 0, got, 1e-9)
}

func TestNormalizeLoose(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "strips spaces", in: "七年级 数学 期中考试", want: "七年级数学期中考试"},
		{name: "strips punctuation", in: "期中考试（数学）", want: "期中考试数学"},
		{name: "lowercases", in: "Math MidTerm", want: "mathmidterm"},
		{name: "folds full width", in: "Ｍａｔｈ１２３", want: "math123"},
		{name: "full width punctuation dropped", in: "数学：期中", want: "数学期中"},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, textsim.NormalizeLoose(tt.in))
		})
	}
}
