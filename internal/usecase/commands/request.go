package commands

import (
	"context"

	"shareit/internal/domain/request"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/queries"
)

type RequestRepository interface {
	Create(ctx context.Context, r request.Request) (int64, error)
}

type RequestCommands interface {
	Create(ctx context.Context, description string, requesterID int64) (*queries.RequestView, error)
}

type requestCommandsImpl struct {
	requests RequestRepository
	users    UserReader
	views    queries.RequestReadStore
	clock    clock.Clock
}

func NewRequestCommands(requests RequestRepository, users UserReader, views queries.RequestReadStore, clk clock.Clock) RequestCommands {
	return &requestCommandsImpl{requests: requests, users: users, views: views, clock: clk}
}

func (c *requestCommandsImpl) Create(ctx context.Context, description string, requesterID int64) (*queries.RequestView, error) {
	if _, err := c.users.FindByID(ctx, requesterID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	id, err := c.requests.Create(ctx, request.Request{
		Description: description,
		RequesterID: requesterID,
		Created:     c.clock.Now(),
	})
	if err != nil {
		return nil, err
	}
	view, err := c.views.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Items = []queries.ItemView{}
	return view, nil
}
