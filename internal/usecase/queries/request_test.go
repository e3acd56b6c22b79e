//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"shareit/internal/usecase/queries"
	queriesmock "shareit/tests/mock/queries"
)

type RequestQueriesTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	store   *queriesmock.MockRequestReadStore
	items   *queriesmock.MockItemReadStore
	users   *queriesmock.MockUserExistsReader
	queries queries.RequestQueries

	created time.Time
}

func (s *RequestQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockRequestReadStore(s.ctrl)
	s.items = queriesmock.NewMockItemReadStore(s.ctrl)
	s.users = queriesmock.NewMockUserExistsReader(s.ctrl)
	s.queries = queries.NewRequestQueries(s.store, s.items, s.users)
	s.created = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func (s *RequestQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRequestQueriesSuite(t *testing.T) {
	suite.Run(t, new(RequestQueriesTestSuite))
}

func (s *RequestQueriesTestSuite) request(id int64) queries.RequestView {
	return queries.RequestView{ID: id, Description: "need a drill", Created: s.created, Items: []queries.ItemView{}}
}

func (s *RequestQueriesTestSuite) TestGetByID() {
	ctx := context.Background()

	s.Run("attaches the items offered in response", func() {
		view := s.request(7)
		offered := []queries.ItemView{{ID: 10, Name: "drill", OwnerID: ownerID}}

		s.users.EXPECT().ExistsByID(ctx, bookerID).Return(true, nil)
		s.store.EXPECT().FindByID(ctx, int64(7)).Return(&view, nil)
		s.items.EXPECT().FindAllByRequests(ctx, []int64{7}).
			Return(map[int64][]queries.ItemView{7: offered}, nil)

		got, err := s.queries.GetByID(ctx, 7, bookerID)
		s.Require().NoError(err)
		s.Require().Len(got.Items, 1)
		s.Equal("drill", got.Items[0].Name)
	})

	s.Run("a request nobody answered keeps an empty item list", func() {
		view := s.request(7)

		s.users.EXPECT().ExistsByID(ctx, bookerID).Return(true, nil)
		s.store.EXPECT().FindByID(ctx, int64(7)).Return(&view, nil)
		s.items.EXPECT().FindAllByRequests(ctx, []int64{7}).
			Return(map[int64][]queries.ItemView{}, nil)

		got, err := s.queries.GetByID(ctx, 7, bookerID)
		s.Require().NoError(err)
		s.NotNil(got.Items)
		s.Empty(got.Items)
	})

	s.Run("unknown request reports not found", func() {
		s.users.EXPECT().ExistsByID(ctx, bookerID).Return(true, nil)
		s.store.EXPECT().FindByID(ctx, int64(7)).Return(nil, notFoundErr)

		_, err := s.queries.GetByID(ctx, 7, bookerID)
		s.ErrorIs(err, queries.ErrRequestNotFound)
	})

	s.Run("unknown caller fails before the store is touched", func() {
		s.users.EXPECT().ExistsByID(ctx, strangerID).Return(false, nil)

		_, err := s.queries.GetByID(ctx, 7, strangerID)
		s.ErrorIs(err, queries.ErrUserNotFound)
	})
}

func (s *RequestQueriesTestSuite) TestListOwn() {
	ctx := context.Background()

	s.Run("each request carries its own answers", func() {
		views := []queries.RequestView{s.request(7), s.request(8)}

		s.users.EXPECT().ExistsByID(ctx, bookerID).Return(true, nil)
		s.store.EXPECT().FindAllByRequester(ctx, bookerID).Return(views, nil)
		s.items.EXPECT().FindAllByRequests(ctx, []int64{7, 8}).
			Return(map[int64][]queries.ItemView{
				8: {{ID: 10, Name: "drill"}},
			}, nil)

		got, err := s.queries.ListOwn(ctx, bookerID)
		s.Require().NoError(err)
		s.Require().Len(got, 2)
		s.Empty(got[0].Items)
		s.Len(got[1].Items, 1)
	})

	s.Run("no requests means no item lookup", func() {
		s.users.EXPECT().ExistsByID(ctx, bookerID).Return(true, nil)
		s.store.EXPECT().FindAllByRequester(ctx, bookerID).Return([]queries.RequestView{}, nil)

		got, err := s.queries.ListOwn(ctx, bookerID)
		s.Require().NoError(err)
		s.Empty(got)
	})
}

func (s *RequestQueriesTestSuite) TestListOthers() {
	ctx := context.Background()

	s.users.EXPECT().ExistsByID(ctx, bookerID).Return(true, nil)
	s.store.EXPECT().FindAllByOthers(ctx, bookerID, queries.NewPage(0, 10)).
		Return([]queries.RequestView{s.request(9)}, nil)
	s.items.EXPECT().FindAllByRequests(ctx, []int64{9}).
		Return(map[int64][]queries.ItemView{}, nil)

	got, err := s.queries.ListOthers(ctx, bookerID, 0, 10)
	s.Require().NoError(err)
	s.Require().Len(got, 1)
	s.Empty(got[0].Items)
}
