package commands

import (
	"context"
	"strings"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
)

var (
	// ErrItemAccessDenied is the one deliberate "forbidden" in the system:
	// item edits and deletes by non-owners report 403, unlike the booking
	// surface which masks with not-found.
	ErrItemAccessDenied  = errs.New("no rights to modify the item")
	ErrCommentNotAllowed = errs.Validation("cannot comment without a finished booking of the item")
)

type CreateItem struct {
	Name        string
	Description string
	Available   bool
	RequestID   *int64
}

// ItemPatch carries partial updates; nil fields are left untouched.
type ItemPatch struct {
	Name        *string
	Description *string
	Available   *bool
}

type ItemRepository interface {
	Create(ctx context.Context, itm item.Item) (int64, error)
	Update(ctx context.Context, itm item.Item) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (item.Item, error)
}

type CommentRepository interface {
	Create(ctx context.Context, c item.Comment) (int64, error)
	FindViewByID(ctx context.Context, id int64) (*queries.CommentView, error)
}

type ItemCommands interface {
	Create(ctx context.Context, cmd CreateItem, ownerID int64) (*queries.ItemView, error)
	Update(ctx context.Context, itemID int64, patch ItemPatch, callerID int64) (*queries.ItemView, error)
	Delete(ctx context.Context, itemID, callerID int64) error

	// AddComment stores feedback on an item. Only a user with a booking of
	// that item whose end is strictly before now may comment.
	AddComment(ctx context.Context, itemID, authorID int64, text string) (*queries.CommentView, error)
}

type itemCommandsImpl struct {
	items    ItemRepository
	comments CommentRepository
	users    UserReader
	bookings queries.BookingReadStore
	views    queries.ItemReadStore
	clock    clock.Clock
}

func NewItemCommands(
	items ItemRepository,
	comments CommentRepository,
	users UserReader,
	bookings queries.BookingReadStore,
	views queries.ItemReadStore,
	clk clock.Clock,
) ItemCommands {
	return &itemCommandsImpl{
		items:    items,
		comments: comments,
		users:    users,
		bookings: bookings,
		views:    views,
		clock:    clk,
	}
}

func (c *itemCommandsImpl) Create(ctx context.Context, cmd CreateItem, ownerID int64) (*queries.ItemView, error) {
	if _, err := c.users.FindByID(ctx, ownerID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	id, err := c.items.Create(ctx, item.Item{
		Name:        cmd.Name,
		Description: cmd.Description,
		Available:   cmd.Available,
		OwnerID:     ownerID,
		RequestID:   cmd.RequestID,
	})
	if err != nil {
		return nil, err
	}
	return c.views.FindByID(ctx, id)
}

func (c *itemCommandsImpl) Update(ctx context.Context, itemID int64, patch ItemPatch, callerID int64) (*queries.ItemView, error) {
	itm, err := c.findItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !itm.OwnedBy(callerID) {
		return nil, ErrItemAccessDenied
	}

	if patch.Name != nil {
		itm.Name = *patch.Name
	}
	if patch.Description != nil {
		itm.Description = *patch.Description
	}
	if patch.Available != nil {
		itm.Available = *patch.Available
	}

	if err := c.items.Update(ctx, itm); err != nil {
		return nil, err
	}
	return c.views.FindByID(ctx, itemID)
}

func (c *itemCommandsImpl) Delete(ctx context.Context, itemID, callerID int64) error {
	itm, err := c.findItem(ctx, itemID)
	if err != nil {
		return err
	}
	if !itm.OwnedBy(callerID) {
		return ErrItemAccessDenied
	}
	return c.items.Delete(ctx, itemID)
}

func (c *itemCommandsImpl) AddComment(ctx context.Context, itemID, authorID int64, text string) (*queries.CommentView, error) {
	now := c.clock.Now()

	finished, err := c.bookings.FindFirstFinishedByItemAndBooker(ctx, itemID, authorID, now)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCommentNotAllowed
		}
		return nil, err
	}

	id, err := c.comments.Create(ctx, item.Comment{
		Text:     strings.TrimSpace(text),
		ItemID:   finished.Item.ID,
		AuthorID: finished.Booker.ID,
		Created:  now,
	})
	if err != nil {
		return nil, err
	}
	return c.comments.FindViewByID(ctx, id)
}

func (c *itemCommandsImpl) findItem(ctx context.Context, itemID int64) (item.Item, error) {
	itm, err := c.items.FindByID(ctx, itemID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return item.Item{}, ErrItemNotFound
		}
		return item.Item{}, err
	}
	return itm, nil
}
