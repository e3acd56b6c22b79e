package booking

// Status is the persisted lifecycle state of a booking.
// WAITING is the only non-terminal value: a booking moves exactly once to
// APPROVED or REJECTED and never back.
type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

func StatusForDecision(approved bool) Status {
	if approved {
		return StatusApproved
	}
	return StatusRejected
}
