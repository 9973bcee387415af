package extraction

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/scorely/examcheck/pkg/errors"
)

// Decode parses one ExtractedData document from YAML (or JSON, which YAML
// accepts) bytes. Unknown fields are ignored; missing fields decode to zero
// values so sparse provider output is not an error.
func Decode(data []byte) (*ExtractedData, error) {
	var out ExtractedData
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, errors.NewDecodeError("", err)
	}
	return &out, nil
}

// DecodeFile reads and parses one ExtractedData document from a file.
// Files ending in .json are decoded as JSON, everything else as YAML.
func DecodeFile(path string) (*ExtractedData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.NewDecodeError(path, err)
	}

	var out ExtractedData
	if strings.EqualFold(filepath.Ext(path), ".json") {
		err = json.Unmarshal(data, &out)
	} else {
		err = yaml.Unmarshal(data, &out)
	}
	if err != nil {
		return nil, errors.NewDecodeError(path, err)
	}
	return &out, nil
}
