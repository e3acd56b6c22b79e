package booking

import "strings"

// State is a read-time filter over bookings, never persisted. CURRENT, PAST
// and FUTURE are computed against "now" on every read; nothing ever rewrites
// a booking when its dates pass.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"

	// StateUnknown is what any unrecognized filter parses to. It is routed
	// permissively (owner-side lists fall back to "all"), not rejected.
	StateUnknown State = ""
)

func ParseState(s string) State {
	switch State(strings.ToUpper(strings.TrimSpace(s))) {
	case StateAll:
		return StateAll
	case StateCurrent:
		return StateCurrent
	case StatePast:
		return StatePast
	case StateFuture:
		return StateFuture
	case StateWaiting:
		return StateWaiting
	case StateRejected:
		return StateRejected
	default:
		return StateUnknown
	}
}
