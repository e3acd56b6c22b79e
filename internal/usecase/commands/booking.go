package commands

import (
	"context"
	"time"

	"shareit/internal/domain/booking"
	"shareit/internal/domain/item"
	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
)

var (
	ErrBookingNotFound = queries.ErrBookingNotFound
	ErrUserNotFound    = queries.ErrUserNotFound
	ErrItemNotFound    = queries.ErrItemNotFound

	// ErrItemUnavailable is the availability-flag failure; ErrItemNotBookable
	// carries the same message but masks ownership: an owner trying to book
	// their own item is told "not available" with a not-found kind, so the
	// response never reveals who owns what.
	ErrItemUnavailable      = errs.Validation("item is not available for booking")
	ErrItemNotBookable      = errs.NotFound("item is not available for booking")
	ErrInvalidBookingPeriod = errs.Validation("invalid booking period")
	ErrBookingNotWaiting    = errs.Validation("booking is not awaiting approval")
)

type CreateBooking struct {
	ItemID int64
	Start  time.Time
	End    time.Time
}

type BookingRepository interface {
	// Create persists a new booking and returns the store-assigned id.
	Create(ctx context.Context, b booking.Booking) (int64, error)

	// UpdateStatusIfWaiting atomically moves a WAITING booking to status and
	// reports whether a row changed. The WHERE clause is the compare-and-set:
	// under concurrent approvals at most one caller observes true.
	UpdateStatusIfWaiting(ctx context.Context, id int64, status booking.Status) (bool, error)
}

type ItemReader interface {
	FindByID(ctx context.Context, id int64) (item.Item, error)
}

type UserReader interface {
	FindByID(ctx context.Context, id int64) (user.User, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
}

type BookingCommands interface {
	// Create validates and persists a booking request in WAITING status.
	// Validation order: period, item existence, availability, ownership,
	// booker existence; nothing is written unless all pass.
	Create(ctx context.Context, cmd CreateBooking, bookerID int64) (*queries.BookingView, error)

	// Approve applies the item owner's decision to a WAITING booking.
	// The transition is terminal; deciding twice fails.
	Approve(ctx context.Context, bookingID int64, approved bool, callerID int64) (*queries.BookingView, error)
}

type bookingCommandsImpl struct {
	bookings BookingRepository
	items    ItemReader
	users    UserReader
	store    queries.BookingReadStore
	clock    clock.Clock
}

func NewBookingCommands(
	bookings BookingRepository,
	items ItemReader,
	users UserReader,
	store queries.BookingReadStore,
	clk clock.Clock,
) BookingCommands {
	return &bookingCommandsImpl{
		bookings: bookings,
		items:    items,
		users:    users,
		store:    store,
		clock:    clk,
	}
}

func (c *bookingCommandsImpl) Create(ctx context.Context, cmd CreateBooking, bookerID int64) (*queries.BookingView, error) {
	now := c.clock.Now()

	if err := booking.ValidatePeriod(cmd.Start, cmd.End, now); err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingPeriod)
	}

	itm, err := c.items.FindByID(ctx, cmd.ItemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	if !itm.Available {
		return nil, ErrItemUnavailable
	}
	if itm.OwnedBy(bookerID) {
		return nil, ErrItemNotBookable
	}

	if _, err := c.users.FindByID(ctx, bookerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	b, err := booking.New(cmd.ItemID, bookerID, cmd.Start, cmd.End, now)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidBookingPeriod)
	}

	id, err := c.bookings.Create(ctx, b)
	if err != nil {
		return nil, err
	}

	return c.store.FindByID(ctx, id)
}

func (c *bookingCommandsImpl) Approve(ctx context.Context, bookingID int64, approved bool, callerID int64) (*queries.BookingView, error) {
	view, err := c.store.FindByID(ctx, bookingID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if view.ItemOwnerID != callerID {
		// Non-owners get the not-found signal, never "forbidden".
		return nil, ErrBookingNotFound
	}
	if booking.Status(view.Status) != booking.StatusWaiting {
		return nil, ErrBookingNotWaiting
	}

	changed, err := c.bookings.UpdateStatusIfWaiting(ctx, bookingID, booking.StatusForDecision(approved))
	if err != nil {
		return nil, err
	}
	if !changed {
		// Lost the race against a concurrent decision.
		return nil, ErrBookingNotWaiting
	}

	return c.store.FindByID(ctx, bookingID)
}
