package queries

import (
	"context"

	"shareit/internal/infra"
	"shareit/internal/pkg/errs"
)

var ErrRequestNotFound = errs.NotFound("request not found")

type RequestReadStore interface {
	FindByID(ctx context.Context, id int64) (*RequestView, error)
	// FindAllByRequester returns the user's own requests, oldest first.
	FindAllByRequester(ctx context.Context, requesterID int64) ([]RequestView, error)
	// FindAllByOthers returns everyone else's requests, oldest first, paged.
	FindAllByOthers(ctx context.Context, requesterID int64, p Page) ([]RequestView, error)
}

type RequestQueries interface {
	GetByID(ctx context.Context, requestID, callerID int64) (*RequestView, error)
	ListOwn(ctx context.Context, requesterID int64) ([]RequestView, error)
	ListOthers(ctx context.Context, requesterID int64, from, size int) ([]RequestView, error)
}

type requestQueriesImpl struct {
	store RequestReadStore
	items ItemReadStore
	users UserExistsReader
}

func NewRequestQueries(store RequestReadStore, items ItemReadStore, users UserExistsReader) RequestQueries {
	return &requestQueriesImpl{store: store, items: items, users: users}
}

func (q *requestQueriesImpl) GetByID(ctx context.Context, requestID, callerID int64) (*RequestView, error) {
	if err := q.requireUser(ctx, callerID); err != nil {
		return nil, err
	}
	view, err := q.store.FindByID(ctx, requestID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if err := q.attachItems(ctx, []*RequestView{view}); err != nil {
		return nil, err
	}
	return view, nil
}

func (q *requestQueriesImpl) ListOwn(ctx context.Context, requesterID int64) ([]RequestView, error) {
	if err := q.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}
	views, err := q.store.FindAllByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return views, q.attachItemsSlice(ctx, views)
}

func (q *requestQueriesImpl) ListOthers(ctx context.Context, requesterID int64, from, size int) ([]RequestView, error) {
	if err := q.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}
	views, err := q.store.FindAllByOthers(ctx, requesterID, NewPage(from, size))
	if err != nil {
		return nil, err
	}
	return views, q.attachItemsSlice(ctx, views)
}

func (q *requestQueriesImpl) requireUser(ctx context.Context, userID int64) error {
	exists, err := q.users.ExistsByID(ctx, userID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrUserNotFound
	}
	return nil
}

func (q *requestQueriesImpl) attachItemsSlice(ctx context.Context, views []RequestView) error {
	ptrs := make([]*RequestView, len(views))
	for i := range views {
		ptrs[i] = &views[i]
	}
	return q.attachItems(ctx, ptrs)
}

func (q *requestQueriesImpl) attachItems(ctx context.Context, views []*RequestView) error {
	if len(views) == 0 {
		return nil
	}
	ids := make([]int64, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}
	byRequest, err := q.items.FindAllByRequests(ctx, ids)
	if err != nil {
		return err
	}
	for _, v := range views {
		items, ok := byRequest[v.ID]
		if !ok {
			items = []ItemView{}
		}
		v.Items = items
	}
	return nil
}
