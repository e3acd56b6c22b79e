package commands

import (
	"context"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
)

var ErrEmailTaken = errs.Conflict("email is already in use")

type CreateUser struct {
	Name  string
	Email string
}

type UserPatch struct {
	Name  *string
	Email *string
}

type UserRepository interface {
	Create(ctx context.Context, u user.User) (int64, error)
	Update(ctx context.Context, u user.User) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (user.User, error)
}

type UserCommands interface {
	Create(ctx context.Context, cmd CreateUser) (*queries.UserView, error)
	Update(ctx context.Context, userID int64, patch UserPatch) (*queries.UserView, error)
	Delete(ctx context.Context, userID int64) error
}

type userCommandsImpl struct {
	users UserRepository
	views queries.UserReadStore
}

func NewUserCommands(users UserRepository, views queries.UserReadStore) UserCommands {
	return &userCommandsImpl{users: users, views: views}
}

func (c *userCommandsImpl) Create(ctx context.Context, cmd CreateUser) (*queries.UserView, error) {
	id, err := c.users.Create(ctx, user.User{Name: cmd.Name, Email: cmd.Email})
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return c.views.FindByID(ctx, id)
}

func (c *userCommandsImpl) Update(ctx context.Context, userID int64, patch UserPatch) (*queries.UserView, error) {
	u, err := c.users.FindByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}

	if err := c.users.Update(ctx, u); err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return c.views.FindByID(ctx, userID)
}

func (c *userCommandsImpl) Delete(ctx context.Context, userID int64) error {
	return c.users.Delete(ctx, userID)
}
