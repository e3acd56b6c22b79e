//go:build unit

package commands_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"
	commandsmock "shareit/tests/mock/commands"
	queriesmock "shareit/tests/mock/queries"
)

var duplicateErr = infra.WrapRepoErr("unique violation", &pgconn.PgError{Code: "23505"})

type UserCommandsTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	users    *commandsmock.MockUserRepository
	views    *queriesmock.MockUserReadStore
	commands commands.UserCommands
}

func (s *UserCommandsTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.users = commandsmock.NewMockUserRepository(s.ctrl)
	s.views = queriesmock.NewMockUserReadStore(s.ctrl)
	s.commands = commands.NewUserCommands(s.users, s.views)
}

func (s *UserCommandsTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestUserCommandsSuite(t *testing.T) {
	suite.Run(t, new(UserCommandsTestSuite))
}

func (s *UserCommandsTestSuite) TestCreate() {
	ctx := context.Background()

	s.Run("stores the user and returns its view", func() {
		s.users.EXPECT().Create(ctx, user.User{Name: "alice", Email: "alice@example.com"}).Return(int64(1), nil)
		s.views.EXPECT().FindByID(ctx, int64(1)).
			Return(&queries.UserView{ID: 1, Name: "alice", Email: "alice@example.com"}, nil)

		got, err := s.commands.Create(ctx, commands.CreateUser{Name: "alice", Email: "alice@example.com"})
		s.Require().NoError(err)
		s.Equal(int64(1), got.ID)
	})

	s.Run("a taken email is a conflict", func() {
		s.users.EXPECT().Create(ctx, gomock.Any()).Return(int64(0), duplicateErr)

		_, err := s.commands.Create(ctx, commands.CreateUser{Name: "alice", Email: "alice@example.com"})
		s.ErrorIs(err, commands.ErrEmailTaken)
	})
}

func (s *UserCommandsTestSuite) TestUpdate() {
	ctx := context.Background()
	existing := user.User{ID: 1, Name: "alice", Email: "alice@example.com"}

	s.Run("patches only the provided fields", func() {
		email := "alice@shareit.example"

		s.users.EXPECT().FindByID(ctx, int64(1)).Return(existing, nil)
		s.users.EXPECT().Update(ctx, user.User{ID: 1, Name: "alice", Email: email}).Return(nil)
		s.views.EXPECT().FindByID(ctx, int64(1)).
			Return(&queries.UserView{ID: 1, Name: "alice", Email: email}, nil)

		got, err := s.commands.Update(ctx, 1, commands.UserPatch{Email: &email})
		s.Require().NoError(err)
		s.Equal(email, got.Email)
	})

	s.Run("moving to a taken email is a conflict", func() {
		email := "bob@example.com"

		s.users.EXPECT().FindByID(ctx, int64(1)).Return(existing, nil)
		s.users.EXPECT().Update(ctx, gomock.Any()).Return(duplicateErr)

		_, err := s.commands.Update(ctx, 1, commands.UserPatch{Email: &email})
		s.ErrorIs(err, commands.ErrEmailTaken)
	})

	s.Run("reports a missing user", func() {
		s.users.EXPECT().FindByID(ctx, int64(1)).Return(user.User{}, notFoundErr)

		_, err := s.commands.Update(ctx, 1, commands.UserPatch{})
		s.ErrorIs(err, commands.ErrUserNotFound)
	})
}

func (s *UserCommandsTestSuite) TestDelete() {
	ctx := context.Background()

	s.users.EXPECT().Delete(ctx, int64(1)).Return(nil)
	s.NoError(s.commands.Delete(ctx, 1))
}
