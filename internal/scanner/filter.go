package scanner

import "codescanner/pkg/domain"

// filterOutcome classifies what happened to a frame.
type filterOutcome string

const (
	outcomeAccepted    filterOutcome = "accepted"
	outcomeLocked      filterOutcome = "locked"
	outcomeEmpty       filterOutcome = "empty"
	outcomeUnsupported filterOutcome = "unsupported"
	// outcomeInactive is decided by the state machine, not by Filter.
	outcomeInactive filterOutcome = "inactive"
)

// Filter selects the actionable detection of a frame. Only the first
// detection is considered, and nothing is returned while locked, for an empty
// frame, or when the first detection's symbology is not supported.
// Deduplication across frames is left to the state machine's lock.
func Filter(frame []domain.Detection, locked bool, supported domain.SymbologySet) (domain.Detection, bool) {
	d, outcome := classify(frame, locked, supported)

	return d, outcome == outcomeAccepted
}

func classify(frame []domain.Detection, locked bool, supported domain.SymbologySet) (domain.Detection, filterOutcome) {
	switch {
	case locked:
		return domain.Detection{}, outcomeLocked
	case len(frame) == 0:
		return domain.Detection{}, outcomeEmpty
	case !supported.Contains(frame[0].Symbology):
		return domain.Detection{}, outcomeUnsupported
	default:
		return frame[0], outcomeAccepted
	}
}
