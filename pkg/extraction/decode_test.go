package extraction_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scorely/examcheck/pkg/errors"
	"github.com/scorely/examcheck/pkg/extraction"
)

const sampleYAML = `
meta:
  exam_name: 七年级数学期中考试
  subject: 数学
  score: 85
  full_score: 100
observations:
  problems:
    - 【题号】1【得分】5/5【置信度】高
    - 【题号】2【得分】3/5【置信度】中
`

func TestDecodeYAML(t *testing.T) {
	got, err := extraction.Decode([]byte(sampleYAML))
	require.NoError(t, err)

	assert.Equal(t, "七年级数学期中考试", got.Meta.ExamName)
	assert.Equal(t, "数学", got.Meta.Subject)
	require.NotNil(t, got.Meta.Score)
	assert.Equal(t, 85.0, *got.Meta.Score)
	assert.Len(t, got.Observations.Problems, 2)
}

func TestDecodeToleratesSparseDocument(t *testing.T) {
	got, err := extraction.Decode([]byte("meta:\n  subject: 语文\n"))
	require.NoError(t, err)

	assert.Equal(t, "语文", got.Meta.Subject)
	assert.Empty(t, got.Meta.ExamName)
	assert.Nil(t, got.Meta.Score)
	assert.Empty(t, got.Observations.Problems)
}

func TestDecodeToleratesUnknownFields(t *testing.T) {
	doc := sampleYAML + "\nsome_future_field: ignored\n"
	_, err := extraction.Decode([]byte(doc))
	assert.NoError(t, err)
}

func TestDecodeMalformed(t *testing.T) {
	_, err := extraction.Decode([]byte("meta: [unclosed"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrDecode))
}

func TestDecodeFileJSON(t *testing.T) {
	doc := `{
  "meta": {"exam_name": "期末考试", "subject": "英语", "score": 92, "full_score": 100},
  "observations": {"problems": ["【题号】1【得分】2/2"]}
}`
	path := filepath.Join(t.TempDir(), "extraction.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	got, err := extraction.DecodeFile(path)
	require.NoError(t, err)
	assert.Equal(t, "期末考试", got.Meta.ExamName)
	require.NotNil(t, got.Meta.Score)
	assert.Equal(t, 92.0, *got.Meta.Score)
}

func TestDecodeFileYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extraction.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	got, err := extraction.DecodeFile(path)
	require.NoError(t, err)
	assert.Len(t, got.Observations.Problems, 2)
}

func TestDecodeFileMissing(t *testing.T) {
	_, err := extraction.DecodeFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrDecode))
	assert.Contains(t, err.Error(), "nope.yaml")
}
