package crossval

// Status classifies how two extractions relate for one tracked field or for
// the question list as a whole.
type Status string

const (
	// StatusConsistent means both sources agree: exactly, after loose
	// normalization, or within tolerance.
	StatusConsistent Status = "consistent"

	// StatusInconsistent means both sides are present and parseable but
	// materially different.
	StatusInconsistent Status = "inconsistent"

	// StatusUncertain means at least one side is missing or unparseable,
	// so agreement cannot be judged.
	StatusUncertain Status = "uncertain"
)

// String returns the string representation of a status.
func (s Status) String() string {
	return string(s)
}
