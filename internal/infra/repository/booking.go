package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"shareit/internal/domain/booking"
	"shareit/internal/infra"
	"shareit/internal/usecase/queries"
)

type BookingRepository struct {
	db DB
}

func NewBookingRepository(db DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b booking.Booking) (int64, error) {
	const q = `
		INSERT INTO bookings (start_date, end_date, item_id, booker_id, status)
		VALUES (@start, @end, @item_id, @booker_id, @status)
		RETURNING id`

	var id int64
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"start":     b.Start,
		"end":       b.End,
		"item_id":   b.ItemID,
		"booker_id": b.BookerID,
		"status":    string(b.Status),
	}).Scan(&id)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to create booking", err)
	}
	return id, nil
}

// UpdateStatusIfWaiting transitions a booking out of WAITING. The status
// predicate in the WHERE clause makes the decision atomic: of two concurrent
// approvals only one sees an affected row.
func (r *BookingRepository) UpdateStatusIfWaiting(ctx context.Context, id int64, status booking.Status) (bool, error) {
	const q = `
		UPDATE bookings
		SET status = @status
		WHERE id = @id AND status = 'WAITING'`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "status": string(status)})
	if err != nil {
		return false, infra.WrapRepoErr("failed to update booking status", err)
	}
	return tag.RowsAffected() == 1, nil
}

// bookingViewSelect joins the booker and the item so a single row carries
// everything BookingView needs, including the item owner for access checks.
const bookingViewSelect = `
	SELECT b.id, b.start_date, b.end_date, b.status,
	       u.id, u.name,
	       i.id, i.name, i.owner_id
	FROM bookings b
	JOIN users u ON u.id = b.booker_id
	JOIN items i ON i.id = b.item_id`

func scanBookingView(row pgx.Row) (queries.BookingView, error) {
	var v queries.BookingView
	err := row.Scan(
		&v.ID, &v.Start, &v.End, &v.Status,
		&v.Booker.ID, &v.Booker.Name,
		&v.Item.ID, &v.Item.Name, &v.ItemOwnerID,
	)
	return v, err
}

func (r *BookingRepository) queryBookingViews(ctx context.Context, q string, args pgx.NamedArgs) ([]queries.BookingView, error) {
	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query bookings", err)
	}
	defer rows.Close()

	views := make([]queries.BookingView, 0)
	for rows.Next() {
		v, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking row", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking rows", err)
	}
	return views, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id int64) (*queries.BookingView, error) {
	const q = bookingViewSelect + `
	WHERE b.id = @id`

	v, err := scanBookingView(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find booking", err)
	}
	return &v, nil
}

func (r *BookingRepository) FindAllByBooker(ctx context.Context, bookerID int64, p queries.Page) ([]queries.BookingView, error) {
	const q = bookingViewSelect + `
	WHERE b.booker_id = @booker_id
	ORDER BY b.start_date DESC
	LIMIT @limit OFFSET @offset`

	return r.queryBookingViews(ctx, q, pgx.NamedArgs{
		"booker_id": bookerID, "limit": p.Limit, "offset": p.Offset,
	})
}

func (r *BookingRepository) FindByBookerAndStatus(ctx context.Context, bookerID int64, status booking.Status, p queries.Page) ([]queries.BookingView, error) {
	const q = bookingViewSelect + `
	WHERE b.booker_id = @booker_id AND b.status = @status
	ORDER BY b.start_date DESC
	LIMIT @limit OFFSET @offset`

	return r.queryBookingViews(ctx, q, pgx.NamedArgs{
		"booker_id": bookerID, "status": string(status), "limit": p.Limit, "offset": p.Offset,
	})
}

func (r *BookingRepository) FindByBookerPast(ctx context.Context, bookerID int64, now time.Time, p queries.Page) ([]queries.BookingView, error) {
	const q = bookingViewSelect + `
	WHERE b.booker_id = @booker_id AND b.end_date < @now
	ORDER BY b.start_date DESC
	LIMIT @limit OFFSET @offset`

	return r.queryBookingViews(ctx, q, pgx.NamedArgs{
		"booker_id": bookerID, "now": now, "limit": p.Limit, "offset": p.Offset,
	})
}

func (r *BookingRepository) FindByBookerFuture(ctx context.Context, bookerID int64, now time.Time, p queries.Page) ([]queries.BookingView, error) {
	const q = bookingViewSelect + `
	WHERE b.booker_id = @booker_id AND b.start_date > @now
	ORDER BY b.start_date DESC
	LIMIT @limit OFFSET @offset`

	return r.queryBookingViews(ctx, q, pgx.NamedArgs{
		"booker_id": bookerID, "now": now, "limit": p.Limit, "offset": p.Offset,
	})
}

func (r *BookingRepository) FindByBookerCurrent(ctx context.Context, bookerID int64, now time.Time, p queries.Page) ([]queries.BookingView, error) {
	const q = bookingViewSelect + `
	WHERE b.booker_id = @booker_id AND b.start_date < @now AND b.end_date > @now
	ORDER BY b.start_date DESC
	LIMIT @limit OFFSET @offset`

	return r.queryBookingViews(ctx, q, pgx.NamedArgs{
		"booker_id": bookerID, "now": now, "limit": p.Limit, "offset": p.Offset,
	})
}

func (r *BookingRepository) FindAllByOwner(ctx context.Context, ownerID int64, p queries.Page) ([]queries.BookingView, error) {
	const q = bookingViewSelect + `
	WHERE i.owner_id = @owner_id
	ORDER BY b.start_date DESC
	LIMIT @limit OFFSET @offset`

	return r.queryBookingViews(ctx, q, pgx.NamedArgs{
		"owner_id": ownerID, "limit": p.Limit, "offset": p.Offset,
	})
}

func (r *BookingRepository) FindByOwnerAndStatus(ctx context.Context, ownerID int64, status booking.Status, p queries.Page) ([]queries.BookingView, error) {
	const q = bookingViewSelect + `
	WHERE i.owner_id = @owner_id AND b.status = @status
	ORDER BY b.start_date DESC
	LIMIT @limit OFFSET @offset`

	return r.queryBookingViews(ctx, q, pgx.NamedArgs{
		"owner_id": ownerID, "status": string(status), "limit": p.Limit, "offset": p.Offset,
	})
}

func (r *BookingRepository) FindByOwnerPast(ctx context.Context, ownerID int64, now time.Time, p queries.Page) ([]queries.BookingView, error) {
	const q = bookingViewSelect + `
	WHERE i.owner_id = @owner_id AND b.end_date < @now
	ORDER BY b.start_date DESC
	LIMIT @limit OFFSET @offset`

	return r.queryBookingViews(ctx, q, pgx.NamedArgs{
		"owner_id": ownerID, "now": now, "limit": p.Limit, "offset": p.Offset,
	})
}

func (r *BookingRepository) FindByOwnerFuture(ctx context.Context, ownerID int64, now time.Time, p queries.Page) ([]queries.BookingView, error) {
	const q = bookingViewSelect + `
	WHERE i.owner_id = @owner_id AND b.start_date > @now
	ORDER BY b.start_date DESC
	LIMIT @limit OFFSET @offset`

	return r.queryBookingViews(ctx, q, pgx.NamedArgs{
		"owner_id": ownerID, "now": now, "limit": p.Limit, "offset": p.Offset,
	})
}

func (r *BookingRepository) FindByOwnerCurrent(ctx context.Context, ownerID int64, now time.Time, p queries.Page) ([]queries.BookingView, error) {
	const q = bookingViewSelect + `
	WHERE i.owner_id = @owner_id AND b.start_date < @now AND b.end_date > @now
	ORDER BY b.start_date DESC
	LIMIT @limit OFFSET @offset`

	return r.queryBookingViews(ctx, q, pgx.NamedArgs{
		"owner_id": ownerID, "now": now, "limit": p.Limit, "offset": p.Offset,
	})
}

func (r *BookingRepository) findSlotsForItems(ctx context.Context, q string, itemIDs []int64, now time.Time) (map[int64]queries.BookingSlot, error) {
	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"item_ids": itemIDs, "now": now})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query booking slots", err)
	}
	defer rows.Close()

	slots := make(map[int64]queries.BookingSlot, len(itemIDs))
	for rows.Next() {
		var itemID int64
		var s queries.BookingSlot
		if err := rows.Scan(&itemID, &s.ID, &s.BookerID, &s.Start, &s.End); err != nil {
			return nil, infra.WrapRepoErr("failed to scan booking slot", err)
		}
		slots[itemID] = s
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read booking slots", err)
	}
	return slots, nil
}

// FindLastForItems returns, per item, the most recently ending booking that
// has already started.
func (r *BookingRepository) FindLastForItems(ctx context.Context, itemIDs []int64, now time.Time) (map[int64]queries.BookingSlot, error) {
	const q = `
		SELECT DISTINCT ON (b.item_id)
		       b.item_id, b.id, b.booker_id, b.start_date, b.end_date
		FROM bookings b
		WHERE b.item_id = ANY(@item_ids) AND b.start_date < @now
		ORDER BY b.item_id, b.end_date DESC`

	return r.findSlotsForItems(ctx, q, itemIDs, now)
}

// FindNextForItems returns, per item, the soonest upcoming booking that was
// not rejected.
func (r *BookingRepository) FindNextForItems(ctx context.Context, itemIDs []int64, now time.Time) (map[int64]queries.BookingSlot, error) {
	const q = `
		SELECT DISTINCT ON (b.item_id)
		       b.item_id, b.id, b.booker_id, b.start_date, b.end_date
		FROM bookings b
		WHERE b.item_id = ANY(@item_ids) AND b.start_date > @now AND b.status <> 'REJECTED'
		ORDER BY b.item_id, b.start_date ASC`

	return r.findSlotsForItems(ctx, q, itemIDs, now)
}

func (r *BookingRepository) FindFirstFinishedByItemAndBooker(ctx context.Context, itemID, bookerID int64, now time.Time) (*queries.BookingView, error) {
	const q = bookingViewSelect + `
	WHERE b.item_id = @item_id AND b.booker_id = @booker_id AND b.end_date < @now
	ORDER BY b.end_date ASC
	LIMIT 1`

	v, err := scanBookingView(r.db.QueryRow(ctx, q, pgx.NamedArgs{
		"item_id": itemID, "booker_id": bookerID, "now": now,
	}))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to find finished booking", err)
	}
	return &v, nil
}
