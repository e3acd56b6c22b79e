//go:build integration

package repository_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"shareit/internal/domain/user"
	"shareit/internal/infra"
	"shareit/internal/infra/repository"
	"shareit/tests/common/dbtest"
)

type UserRepositoryTestSuite struct {
	suite.Suite
	pool *pgxpool.Pool

	db    repository.DB
	users *repository.UserRepository
	views *repository.UserReadRepository
}

func (s *UserRepositoryTestSuite) SetupSuite() {
	s.pool = dbtest.SetupPool(s.T())
}

func (s *UserRepositoryTestSuite) SetupTest() {
	s.db = dbtest.BeginTx(s.T(), s.pool)
	s.users = repository.NewUserRepository(s.db)
	s.views = repository.NewUserReadRepository(s.db)
}

func TestUserRepositorySuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}

func (s *UserRepositoryTestSuite) TestCreate() {
	ctx := context.Background()

	id, err := s.users.Create(ctx, user.User{Name: "alice", Email: "alice@example.com"})
	s.Require().NoError(err)

	view, err := s.views.FindByID(ctx, id)
	s.Require().NoError(err)
	s.Equal("alice", view.Name)
	s.Equal("alice@example.com", view.Email)
}

func (s *UserRepositoryTestSuite) TestCreateDuplicateEmail() {
	ctx := context.Background()

	_, err := s.users.Create(ctx, user.User{Name: "alice", Email: "alice@example.com"})
	s.Require().NoError(err)

	_, err = s.users.Create(ctx, user.User{Name: "impostor", Email: "alice@example.com"})
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindDuplicateKey))
}

func (s *UserRepositoryTestSuite) TestUpdate() {
	ctx := context.Background()
	id := dbtest.SeedUser(s.T(), s.db, "alice", "alice@example.com")

	err := s.users.Update(ctx, user.User{ID: id, Name: "alice b", Email: "alice.b@example.com"})
	s.Require().NoError(err)

	view, err := s.views.FindByID(ctx, id)
	s.Require().NoError(err)
	s.Equal("alice b", view.Name)
	s.Equal("alice.b@example.com", view.Email)
}

func (s *UserRepositoryTestSuite) TestUpdateMissingUser() {
	err := s.users.Update(context.Background(), user.User{ID: 9999, Name: "ghost", Email: "ghost@example.com"})
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *UserRepositoryTestSuite) TestDelete() {
	ctx := context.Background()
	id := dbtest.SeedUser(s.T(), s.db, "alice", "alice@example.com")

	s.Require().NoError(s.users.Delete(ctx, id))

	_, err := s.views.FindByID(ctx, id)
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindNotFound))

	err = s.users.Delete(ctx, id)
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *UserRepositoryTestSuite) TestFindAll() {
	ctx := context.Background()
	first := dbtest.SeedUser(s.T(), s.db, "alice", "alice@example.com")
	second := dbtest.SeedUser(s.T(), s.db, "bob", "bob@example.com")

	views, err := s.views.FindAll(ctx)
	s.Require().NoError(err)
	s.Require().Len(views, 2)
	s.Equal(first, views[0].ID)
	s.Equal(second, views[1].ID)
}

func (s *UserRepositoryTestSuite) TestExistsByID() {
	ctx := context.Background()
	id := dbtest.SeedUser(s.T(), s.db, "alice", "alice@example.com")

	ok, err := s.views.ExistsByID(ctx, id)
	s.Require().NoError(err)
	s.True(ok)

	ok, err = s.views.ExistsByID(ctx, 9999)
	s.Require().NoError(err)
	s.False(ok)
}
