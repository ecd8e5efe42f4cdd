package domain

// Outcome is the result of executing one test entry.
type Outcome int

const (
	// Pass indicates the test completed without a failed assertion.
	Pass Outcome = iota
	// Fail indicates a failed assertion or an aggregated list failure.
	Fail
	// Timeout is reserved for test bodies that measure their own
	// deadlines. The engine never produces it on its own.
	Timeout
	// TagOverflow indicates the entry's tag did not fit in the path
	// buffer. Only that single entry is abandoned.
	TagOverflow
)

// outcomeLabels are the wire labels used in test-result report lines.
// The order matches the Outcome constants and is a wire contract.
var outcomeLabels = [...]string{"PASS", "FAIL", "TIMEOUT", "TAG_ID"}

// Label returns the fixed wire label for the outcome.
func (o Outcome) Label() string {
	if o < 0 || int(o) >= len(outcomeLabels) {
		return outcomeLabels[Fail]
	}
	return outcomeLabels[o]
}

func (o Outcome) String() string { return o.Label() }
