//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"shareit/internal/infra"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/queries"
	queriesmock "shareit/tests/mock/queries"
)

const testItemID int64 = 10

var notFoundErr = infra.WrapRepoErr("no rows", pgx.ErrNoRows)

type ItemQueriesTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	items    *queriesmock.MockItemReadStore
	comments *queriesmock.MockCommentReadStore
	bookings *queriesmock.MockBookingReadStore
	clock    *clock.MockClock
	queries  queries.ItemQueries

	now time.Time
}

func (s *ItemQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.items = queriesmock.NewMockItemReadStore(s.ctrl)
	s.comments = queriesmock.NewMockCommentReadStore(s.ctrl)
	s.bookings = queriesmock.NewMockBookingReadStore(s.ctrl)
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.clock = clock.NewMockClock(s.now)
	s.queries = queries.NewItemQueries(s.items, s.comments, s.bookings, s.clock)
}

func (s *ItemQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestItemQueriesSuite(t *testing.T) {
	suite.Run(t, new(ItemQueriesTestSuite))
}

func (s *ItemQueriesTestSuite) itemView() *queries.ItemView {
	return &queries.ItemView{ID: testItemID, Name: "drill", Description: "power drill", Available: true, OwnerID: ownerID}
}

func (s *ItemQueriesTestSuite) TestGetByID() {
	ctx := context.Background()
	commentList := []queries.CommentView{{ID: 1, Text: "worked great", AuthorName: "bob"}}

	s.Run("the owner sees the surrounding bookings", func() {
		lastSlot := queries.BookingSlot{ID: 50, BookerID: bookerID, Start: s.now.Add(-3 * time.Hour), End: s.now.Add(-2 * time.Hour)}
		nextSlot := queries.BookingSlot{ID: 51, BookerID: bookerID, Start: s.now.Add(time.Hour), End: s.now.Add(2 * time.Hour)}

		s.items.EXPECT().FindByID(ctx, testItemID).Return(s.itemView(), nil)
		s.comments.EXPECT().FindAllByItem(ctx, testItemID).Return(commentList, nil)
		s.bookings.EXPECT().FindLastForItems(ctx, []int64{testItemID}, s.now).
			Return(map[int64]queries.BookingSlot{testItemID: lastSlot}, nil)
		s.bookings.EXPECT().FindNextForItems(ctx, []int64{testItemID}, s.now).
			Return(map[int64]queries.BookingSlot{testItemID: nextSlot}, nil)

		detail, err := s.queries.GetByID(ctx, testItemID, ownerID)
		s.Require().NoError(err)
		s.Require().NotNil(detail.LastBooking)
		s.Require().NotNil(detail.NextBooking)
		s.Equal(int64(50), detail.LastBooking.ID)
		s.Equal(int64(51), detail.NextBooking.ID)
		s.Len(detail.Comments, 1)
	})

	s.Run("anyone else sees the item without booking slots", func() {
		s.items.EXPECT().FindByID(ctx, testItemID).Return(s.itemView(), nil)
		s.comments.EXPECT().FindAllByItem(ctx, testItemID).Return(commentList, nil)

		detail, err := s.queries.GetByID(ctx, testItemID, strangerID)
		s.Require().NoError(err)
		s.Nil(detail.LastBooking)
		s.Nil(detail.NextBooking)
		s.Len(detail.Comments, 1)
	})

	s.Run("an item without bookings has no slots even for the owner", func() {
		s.items.EXPECT().FindByID(ctx, testItemID).Return(s.itemView(), nil)
		s.comments.EXPECT().FindAllByItem(ctx, testItemID).Return([]queries.CommentView{}, nil)
		s.bookings.EXPECT().FindLastForItems(ctx, []int64{testItemID}, s.now).
			Return(map[int64]queries.BookingSlot{}, nil)
		s.bookings.EXPECT().FindNextForItems(ctx, []int64{testItemID}, s.now).
			Return(map[int64]queries.BookingSlot{}, nil)

		detail, err := s.queries.GetByID(ctx, testItemID, ownerID)
		s.Require().NoError(err)
		s.Nil(detail.LastBooking)
		s.Nil(detail.NextBooking)
	})

	s.Run("unknown item reports not found", func() {
		s.items.EXPECT().FindByID(ctx, testItemID).Return(nil, notFoundErr)

		_, err := s.queries.GetByID(ctx, testItemID, ownerID)
		s.ErrorIs(err, queries.ErrItemNotFound)
	})
}

func (s *ItemQueriesTestSuite) TestListByOwner() {
	ctx := context.Background()
	page := queries.NewPage(0, 10)

	s.Run("decorates each item with its own slots", func() {
		items := []queries.ItemView{
			{ID: 10, Name: "drill", OwnerID: ownerID},
			{ID: 11, Name: "saw", OwnerID: ownerID},
		}
		lastSlot := queries.BookingSlot{ID: 50, BookerID: bookerID}

		s.items.EXPECT().FindAllByOwner(ctx, ownerID, page).Return(items, nil)
		s.bookings.EXPECT().FindLastForItems(ctx, []int64{10, 11}, s.now).
			Return(map[int64]queries.BookingSlot{10: lastSlot}, nil)
		s.bookings.EXPECT().FindNextForItems(ctx, []int64{10, 11}, s.now).
			Return(map[int64]queries.BookingSlot{}, nil)

		details, err := s.queries.ListByOwner(ctx, ownerID, 0, 10)
		s.Require().NoError(err)
		s.Require().Len(details, 2)
		s.Require().NotNil(details[0].LastBooking)
		s.Equal(int64(50), details[0].LastBooking.ID)
		s.Nil(details[1].LastBooking)
		s.NotNil(details[0].Comments)
	})

	s.Run("no items means no booking lookups", func() {
		s.items.EXPECT().FindAllByOwner(ctx, ownerID, page).Return([]queries.ItemView{}, nil)

		details, err := s.queries.ListByOwner(ctx, ownerID, 0, 10)
		s.Require().NoError(err)
		s.NotNil(details)
		s.Empty(details)
	})
}

func (s *ItemQueriesTestSuite) TestSearch() {
	ctx := context.Background()

	s.Run("passes text and paging through", func() {
		s.items.EXPECT().Search(ctx, "drill", queries.NewPage(0, 10)).
			Return([]queries.ItemView{{ID: 10, Name: "drill"}}, nil)

		views, err := s.queries.Search(ctx, "drill", 0, 10)
		s.Require().NoError(err)
		s.Len(views, 1)
	})

	s.Run("blank text matches nothing without touching the store", func() {
		views, err := s.queries.Search(ctx, "   ", 0, 10)
		s.Require().NoError(err)
		s.NotNil(views)
		s.Empty(views)
	})
}
