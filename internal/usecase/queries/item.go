package queries

import (
	"context"
	"strings"

	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
)

var ErrItemNotFound = errs.NotFound("item not found")

type ItemReadStore interface {
	FindByID(ctx context.Context, id int64) (*ItemView, error)
	FindAllByOwner(ctx context.Context, ownerID int64, p Page) ([]ItemView, error)
	// Search matches text against name+description of available items,
	// case-insensitively.
	Search(ctx context.Context, text string, p Page) ([]ItemView, error)
	FindAllByRequests(ctx context.Context, requestIDs []int64) (map[int64][]ItemView, error)
}

type CommentReadStore interface {
	FindAllByItem(ctx context.Context, itemID int64) ([]CommentView, error)
}

type ItemQueries interface {
	// GetByID returns the item with its comments; the owner additionally sees
	// the closest past and upcoming bookings.
	GetByID(ctx context.Context, itemID, callerID int64) (*ItemDetailView, error)

	// ListByOwner returns the caller's items, each decorated with its
	// surrounding bookings.
	ListByOwner(ctx context.Context, ownerID int64, from, size int) ([]ItemDetailView, error)

	// Search returns available items matching text; blank text matches nothing.
	Search(ctx context.Context, text string, from, size int) ([]ItemView, error)
}

type itemQueriesImpl struct {
	items    ItemReadStore
	comments CommentReadStore
	bookings BookingReadStore
	clock    clock.Clock
}

func NewItemQueries(items ItemReadStore, comments CommentReadStore, bookings BookingReadStore, clk clock.Clock) ItemQueries {
	return &itemQueriesImpl{items: items, comments: comments, bookings: bookings, clock: clk}
}

func (q *itemQueriesImpl) GetByID(ctx context.Context, itemID, callerID int64) (*ItemDetailView, error) {
	view, err := q.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	comments, err := q.comments.FindAllByItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	detail := &ItemDetailView{ItemView: *view, Comments: comments}
	if view.OwnerID != callerID {
		return detail, nil
	}

	now := q.clock.Now()
	last, err := q.bookings.FindLastForItems(ctx, []int64{itemID}, now)
	if err != nil {
		return nil, err
	}
	next, err := q.bookings.FindNextForItems(ctx, []int64{itemID}, now)
	if err != nil {
		return nil, err
	}
	if slot, ok := last[itemID]; ok {
		detail.LastBooking = &slot
	}
	if slot, ok := next[itemID]; ok {
		detail.NextBooking = &slot
	}
	return detail, nil
}

func (q *itemQueriesImpl) ListByOwner(ctx context.Context, ownerID int64, from, size int) ([]ItemDetailView, error) {
	items, err := q.items.FindAllByOwner(ctx, ownerID, NewPage(from, size))
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return []ItemDetailView{}, nil
	}

	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}

	now := q.clock.Now()
	last, err := q.bookings.FindLastForItems(ctx, ids, now)
	if err != nil {
		return nil, err
	}
	next, err := q.bookings.FindNextForItems(ctx, ids, now)
	if err != nil {
		return nil, err
	}

	result := make([]ItemDetailView, len(items))
	for i, it := range items {
		detail := ItemDetailView{ItemView: it, Comments: []CommentView{}}
		if slot, ok := last[it.ID]; ok {
			detail.LastBooking = &slot
		}
		if slot, ok := next[it.ID]; ok {
			detail.NextBooking = &slot
		}
		result[i] = detail
	}
	return result, nil
}

func (q *itemQueriesImpl) Search(ctx context.Context, text string, from, size int) ([]ItemView, error) {
	if strings.TrimSpace(text) == "" {
		return []ItemView{}, nil
	}
	return q.items.Search(ctx, text, NewPage(from, size))
}
