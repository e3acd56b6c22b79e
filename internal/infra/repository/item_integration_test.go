//go:build integration

package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/suite"

	"shareit/internal/domain/item"
	"shareit/internal/infra"
	"shareit/internal/infra/repository"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/dbtest"
)

type ItemRepositoryTestSuite struct {
	suite.Suite
	pool *pgxpool.Pool

	db       repository.DB
	items    *repository.ItemRepository
	views    *repository.ItemReadRepository
	comments *repository.CommentRepository

	ownerID int64
	page    queries.Page
}

func (s *ItemRepositoryTestSuite) SetupSuite() {
	s.pool = dbtest.SetupPool(s.T())
}

func (s *ItemRepositoryTestSuite) SetupTest() {
	s.db = dbtest.BeginTx(s.T(), s.pool)
	s.items = repository.NewItemRepository(s.db)
	s.views = repository.NewItemReadRepository(s.db)
	s.comments = repository.NewCommentRepository(s.db)

	s.ownerID = dbtest.SeedUser(s.T(), s.db, "owner", "owner@example.com")
	s.page = queries.NewPage(0, 10)
}

func TestItemRepositorySuite(t *testing.T) {
	suite.Run(t, new(ItemRepositoryTestSuite))
}

func (s *ItemRepositoryTestSuite) TestCreateAndFind() {
	ctx := context.Background()

	id, err := s.items.Create(ctx, item.Item{
		Name:        "drill",
		Description: "power drill",
		Available:   true,
		OwnerID:     s.ownerID,
	})
	s.Require().NoError(err)

	itm, err := s.items.FindByID(ctx, id)
	s.Require().NoError(err)
	s.Equal("drill", itm.Name)
	s.Equal(s.ownerID, itm.OwnerID)
	s.Nil(itm.RequestID)

	view, err := s.views.FindByID(ctx, id)
	s.Require().NoError(err)
	s.True(view.Available)
}

func (s *ItemRepositoryTestSuite) TestUpdate() {
	ctx := context.Background()
	id := dbtest.SeedItem(s.T(), s.db, "drill", true, s.ownerID, nil)

	err := s.items.Update(ctx, item.Item{
		ID:          id,
		Name:        "hammer drill",
		Description: "sturdier",
		Available:   false,
	})
	s.Require().NoError(err)

	view, err := s.views.FindByID(ctx, id)
	s.Require().NoError(err)
	s.Equal("hammer drill", view.Name)
	s.False(view.Available)
}

func (s *ItemRepositoryTestSuite) TestDelete() {
	ctx := context.Background()
	id := dbtest.SeedItem(s.T(), s.db, "drill", true, s.ownerID, nil)

	s.Require().NoError(s.items.Delete(ctx, id))

	_, err := s.items.FindByID(ctx, id)
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindNotFound))
}

func (s *ItemRepositoryTestSuite) TestFindAllByOwner() {
	ctx := context.Background()

	first := dbtest.SeedItem(s.T(), s.db, "drill", true, s.ownerID, nil)
	second := dbtest.SeedItem(s.T(), s.db, "saw", false, s.ownerID, nil)

	other := dbtest.SeedUser(s.T(), s.db, "other", "other@example.com")
	dbtest.SeedItem(s.T(), s.db, "ladder", true, other, nil)

	views, err := s.views.FindAllByOwner(ctx, s.ownerID, s.page)
	s.Require().NoError(err)
	s.Require().Len(views, 2)
	s.Equal(first, views[0].ID)
	s.Equal(second, views[1].ID)
}

func (s *ItemRepositoryTestSuite) TestSearch() {
	ctx := context.Background()

	drill := dbtest.SeedItem(s.T(), s.db, "Power DRILL", true, s.ownerID, nil)
	dbtest.SeedItem(s.T(), s.db, "drill bits", false, s.ownerID, nil)
	dbtest.SeedItem(s.T(), s.db, "ladder", true, s.ownerID, nil)

	// Case-insensitive, matches name or description, available items only.
	views, err := s.views.Search(ctx, "drill", s.page)
	s.Require().NoError(err)
	s.Require().Len(views, 1)
	s.Equal(drill, views[0].ID)

	views, err = s.views.Search(ctx, "DESCRIPTION", s.page)
	s.Require().NoError(err)
	s.Len(views, 2)
}

func (s *ItemRepositoryTestSuite) TestFindAllByRequests() {
	ctx := context.Background()

	requester := dbtest.SeedUser(s.T(), s.db, "requester", "requester@example.com")
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	reqA := dbtest.SeedRequest(s.T(), s.db, "need a drill", requester, created)
	reqB := dbtest.SeedRequest(s.T(), s.db, "need a saw", requester, created)

	a1 := dbtest.SeedItem(s.T(), s.db, "drill", true, s.ownerID, &reqA)
	a2 := dbtest.SeedItem(s.T(), s.db, "mini drill", true, s.ownerID, &reqA)
	dbtest.SeedItem(s.T(), s.db, "unrelated", true, s.ownerID, nil)

	grouped, err := s.views.FindAllByRequests(ctx, []int64{reqA, reqB})
	s.Require().NoError(err)
	s.Require().Contains(grouped, reqA)
	s.NotContains(grouped, reqB)
	s.Len(grouped[reqA], 2)
	s.Equal(a1, grouped[reqA][0].ID)
	s.Equal(a2, grouped[reqA][1].ID)
}

func (s *ItemRepositoryTestSuite) TestComments() {
	ctx := context.Background()

	itemID := dbtest.SeedItem(s.T(), s.db, "drill", true, s.ownerID, nil)
	author := dbtest.SeedUser(s.T(), s.db, "bob", "bob@example.com")
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	id, err := s.comments.Create(ctx, item.Comment{
		Text:     "worked great",
		ItemID:   itemID,
		AuthorID: author,
		Created:  created,
	})
	s.Require().NoError(err)

	view, err := s.comments.FindViewByID(ctx, id)
	s.Require().NoError(err)
	s.Equal("worked great", view.Text)
	s.Equal("bob", view.AuthorName)

	dbtest.SeedComment(s.T(), s.db, "broke on day two", itemID, author, created.Add(time.Hour))

	all, err := s.comments.FindAllByItem(ctx, itemID)
	s.Require().NoError(err)
	s.Require().Len(all, 2)
	s.Equal("worked great", all[0].Text)
	s.Equal("broke on day two", all[1].Text)
}
