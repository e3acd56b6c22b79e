package queries

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
)

var (
	ErrBookingNotFound = errs.NotFound("booking not found")
	ErrUserNotFound    = errs.NotFound("user not found")
)

// BookingReadStore is the query surface over persisted bookings. Each method
// is one explicit predicate; the temporal ones take "now" as a parameter so
// the caller controls the single clock read per operation.
type BookingReadStore interface {
	FindByID(ctx context.Context, id int64) (*BookingView, error)

	FindAllByBooker(ctx context.Context, bookerID int64, p Page) ([]BookingView, error)
	FindByBookerAndStatus(ctx context.Context, bookerID int64, status booking.Status, p Page) ([]BookingView, error)
	FindByBookerPast(ctx context.Context, bookerID int64, now time.Time, p Page) ([]BookingView, error)
	FindByBookerFuture(ctx context.Context, bookerID int64, now time.Time, p Page) ([]BookingView, error)
	FindByBookerCurrent(ctx context.Context, bookerID int64, now time.Time, p Page) ([]BookingView, error)

	FindAllByOwner(ctx context.Context, ownerID int64, p Page) ([]BookingView, error)
	FindByOwnerAndStatus(ctx context.Context, ownerID int64, status booking.Status, p Page) ([]BookingView, error)
	FindByOwnerPast(ctx context.Context, ownerID int64, now time.Time, p Page) ([]BookingView, error)
	FindByOwnerFuture(ctx context.Context, ownerID int64, now time.Time, p Page) ([]BookingView, error)
	FindByOwnerCurrent(ctx context.Context, ownerID int64, now time.Time, p Page) ([]BookingView, error)

	FindLastForItems(ctx context.Context, itemIDs []int64, now time.Time) (map[int64]BookingSlot, error)
	FindNextForItems(ctx context.Context, itemIDs []int64, now time.Time) (map[int64]BookingSlot, error)
	FindFirstFinishedByItemAndBooker(ctx context.Context, itemID, bookerID int64, now time.Time) (*BookingView, error)
}

type UserExistsReader interface {
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

type BookingQueries interface {
	// GetByID returns a booking to its booker or the item's owner. Anyone else
	// receives the same not-found error as for an id that does not exist.
	GetByID(ctx context.Context, bookingID, callerID int64) (*BookingView, error)

	// ListByBooker returns the caller's own bookings filtered by state,
	// ordered by start descending.
	ListByBooker(ctx context.Context, bookerID int64, state booking.State, from, size int) ([]BookingView, error)

	// ListByItemOwner returns bookings made against the caller's items.
	ListByItemOwner(ctx context.Context, ownerID int64, state booking.State, from, size int) ([]BookingView, error)
}

type bookingQueriesImpl struct {
	store BookingReadStore
	users UserExistsReader
	clock clock.Clock
}

func NewBookingQueries(store BookingReadStore, users UserExistsReader, clk clock.Clock) BookingQueries {
	return &bookingQueriesImpl{store: store, users: users, clock: clk}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, bookingID, callerID int64) (*BookingView, error) {
	view, err := q.store.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if view.Booker.ID != callerID && view.ItemOwnerID != callerID {
		return nil, ErrBookingNotFound
	}
	return view, nil
}

func (q *bookingQueriesImpl) ListByBooker(ctx context.Context, bookerID int64, state booking.State, from, size int) ([]BookingView, error) {
	if err := q.requireUser(ctx, bookerID); err != nil {
		return nil, err
	}

	p := NewPage(from, size)
	now := q.clock.Now()
	switch state {
	case booking.StateAll:
		return q.store.FindAllByBooker(ctx, bookerID, p)
	case booking.StatePast:
		return q.store.FindByBookerPast(ctx, bookerID, now, p)
	case booking.StateFuture:
		return q.store.FindByBookerFuture(ctx, bookerID, now, p)
	case booking.StateCurrent:
		return q.store.FindByBookerCurrent(ctx, bookerID, now, p)
	case booking.StateWaiting:
		return q.store.FindByBookerAndStatus(ctx, bookerID, booking.StatusWaiting, p)
	case booking.StateRejected:
		return q.store.FindByBookerAndStatus(ctx, bookerID, booking.StatusRejected, p)
	default:
		return []BookingView{}, nil
	}
}

func (q *bookingQueriesImpl) ListByItemOwner(ctx context.Context, ownerID int64, state booking.State, from, size int) ([]BookingView, error) {
	if err := q.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}

	p := NewPage(from, size)
	now := q.clock.Now()
	switch state {
	case booking.StatePast:
		return q.store.FindByOwnerPast(ctx, ownerID, now, p)
	case booking.StateFuture:
		return q.store.FindByOwnerFuture(ctx, ownerID, now, p)
	case booking.StateCurrent:
		return q.store.FindByOwnerCurrent(ctx, ownerID, now, p)
	case booking.StateWaiting:
		return q.store.FindByOwnerAndStatus(ctx, ownerID, booking.StatusWaiting, p)
	case booking.StateRejected:
		return q.store.FindByOwnerAndStatus(ctx, ownerID, booking.StatusRejected, p)
	default:
		// ALL and anything unrecognized both mean "every booking across the
		// owner's items".
		return q.store.FindAllByOwner(ctx, ownerID, p)
	}
}

func (q *bookingQueriesImpl) requireUser(ctx context.Context, userID int64) error {
	exists, err := q.users.ExistsByID(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}
	return nil
}
