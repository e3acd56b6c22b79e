package queries

import (
	"context"

	"shareit/internal/infra"
)

type UserReadStore interface {
	FindByID(ctx context.Context, id int64) (*UserView, error)
	FindAll(ctx context.Context) ([]UserView, error)
}

type UserQueries interface {
	GetByID(ctx context.Context, id int64) (*UserView, error)
	ListAll(ctx context.Context) ([]UserView, error)
}

type userQueriesImpl struct {
	store UserReadStore
}

func NewUserQueries(store UserReadStore) UserQueries {
	return &userQueriesImpl{store: store}
}

func (q *userQueriesImpl) GetByID(ctx context.Context, id int64) (*UserView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *userQueriesImpl) ListAll(ctx context.Context) ([]UserView, error) {
	return q.store.FindAll(ctx)
}
