package unknownLocusPolicy

import (
	"leopa/api/models/constants"
	"strings"
)

const (
	// fail the whole calculation, naming the unknown ids
	Reject constants.UnknownLocusPolicy = "reject"
	// leave unknown ids out of the calculation altogether
	Skip constants.UnknownLocusPolicy = "skip"
)

// CastToPolicy defaults to Reject for anything it does not recognize.
func CastToPolicy(text string) constants.UnknownLocusPolicy {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "skip", "ignore", "lenient":
		return Skip
	default:
		return Reject
	}
}
