package booking

import (
	"time"

	"shareit/internal/pkg/errs"
)

var (
	ErrStartInPast      = errs.New("start date is in the past")
	ErrEndNotAfterStart = errs.New("end date is not after start date")
	ErrNotWaiting       = errs.New("booking is not awaiting a decision")
)

// Booking references its item and booker by id only; the read side joins the
// related names when a view is assembled.
type Booking struct {
	ID       int64
	Start    time.Time
	End      time.Time
	ItemID   int64
	BookerID int64
	Status   Status
}

// ValidatePeriod enforces the temporal invariants of a creation request:
// start must not be before now (no grace window) and end must be strictly
// after start. now is read once by the caller and reused for every comparison.
func ValidatePeriod(start, end, now time.Time) error {
	if start.Before(now) {
		return ErrStartInPast
	}
	if !end.After(start) {
		return ErrEndNotAfterStart
	}
	return nil
}

// New builds an unpersisted booking in WAITING status. The id stays zero
// until the store assigns one.
func New(itemID, bookerID int64, start, end, now time.Time) (Booking, error) {
	if err := ValidatePeriod(start, end, now); err != nil {
		return Booking{}, err
	}
	return Booking{
		Start:    start,
		End:      end,
		ItemID:   itemID,
		BookerID: bookerID,
		Status:   StatusWaiting,
	}, nil
}

// Decide applies the owner's approval decision. Only a WAITING booking can be
// decided; the resulting status is terminal.
func (b *Booking) Decide(approved bool) error {
	if b.Status != StatusWaiting {
		return ErrNotWaiting
	}
	b.Status = StatusForDecision(approved)
	return nil
}
