package render

import "fmt"

// OutcomeKind enumerates the possible results of one strategy attempt.
type OutcomeKind int

const (
	// OutcomeSuccess means the strategy produced the output file.
	OutcomeSuccess OutcomeKind = iota
	// OutcomeCapabilityMissing means the engine build lacks the filter the
	// strategy needs; the next strategy should run.
	OutcomeCapabilityMissing
	// OutcomeFailure means the engine ran and failed for another reason.
	OutcomeFailure
	// OutcomeTimeout means the invocation exceeded the wall-clock limit.
	// Treated like OutcomeFailure for fallback purposes.
	OutcomeTimeout
)

// String returns the ledger/log label for the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeSuccess:
		return "success"
	case OutcomeCapabilityMissing:
		return "capability_missing"
	case OutcomeFailure:
		return "failure"
	case OutcomeTimeout:
		return "timeout"
	default:
		return fmt.Sprintf("outcome(%d)", int(k))
	}
}

// Outcome is the tagged result of a single strategy attempt. It drives the
// fallback chain and is never persisted beyond the run ledger's label.
type Outcome struct {
	Kind       OutcomeKind
	OutputPath string // set only on success
	Message    string // diagnostic detail on non-success
}

// Succeeded builds a success outcome for the given output path.
func Succeeded(outputPath string) Outcome {
	return Outcome{Kind: OutcomeSuccess, OutputPath: outputPath}
}

// MissingCapability builds a capability-missing outcome.
func MissingCapability(message string) Outcome {
	return Outcome{Kind: OutcomeCapabilityMissing, Message: message}
}

// Failed builds a generic failure outcome.
func Failed(message string) Outcome {
	return Outcome{Kind: OutcomeFailure, Message: message}
}

// TimedOut builds a timeout outcome.
func TimedOut(message string) Outcome {
	return Outcome{Kind: OutcomeTimeout, Message: message}
}

// Success reports whether the attempt produced the output file.
func (o Outcome) Success() bool {
	return o.Kind == OutcomeSuccess
}
