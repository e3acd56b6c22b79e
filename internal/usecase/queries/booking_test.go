//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"shareit/internal/domain/booking"
	"shareit/internal/pkg/clock"
	"shareit/internal/usecase/queries"
	queriesmock "shareit/tests/mock/queries"
)

const (
	ownerID    int64 = 1
	bookerID   int64 = 2
	strangerID int64 = 3
)

type BookingQueriesTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	store   *queriesmock.MockBookingReadStore
	users   *queriesmock.MockUserExistsReader
	clock   *clock.MockClock
	queries queries.BookingQueries

	now time.Time
}

func (s *BookingQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = queriesmock.NewMockBookingReadStore(s.ctrl)
	s.users = queriesmock.NewMockUserExistsReader(s.ctrl)
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.clock = clock.NewMockClock(s.now)
	s.queries = queries.NewBookingQueries(s.store, s.users, s.clock)
}

func (s *BookingQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingQueriesSuite(t *testing.T) {
	suite.Run(t, new(BookingQueriesTestSuite))
}

func (s *BookingQueriesTestSuite) view() *queries.BookingView {
	return &queries.BookingView{
		ID:          100,
		Status:      string(booking.StatusWaiting),
		Booker:      queries.UserRef{ID: bookerID, Name: "booker"},
		Item:        queries.ItemRef{ID: 10, Name: "drill"},
		ItemOwnerID: ownerID,
	}
}

func (s *BookingQueriesTestSuite) TestGetByID() {
	ctx := context.Background()

	s.Run("booker sees the booking", func() {
		s.store.EXPECT().FindByID(ctx, int64(100)).Return(s.view(), nil)

		view, err := s.queries.GetByID(ctx, 100, bookerID)
		s.Require().NoError(err)
		s.Equal(int64(100), view.ID)
	})

	s.Run("item owner sees the booking", func() {
		s.store.EXPECT().FindByID(ctx, int64(100)).Return(s.view(), nil)

		_, err := s.queries.GetByID(ctx, 100, ownerID)
		s.NoError(err)
	})

	s.Run("anyone else gets the same not-found as a missing id", func() {
		s.store.EXPECT().FindByID(ctx, int64(100)).Return(s.view(), nil)
		_, errStranger := s.queries.GetByID(ctx, 100, strangerID)
		s.ErrorIs(errStranger, queries.ErrBookingNotFound)
	})
}

func (s *BookingQueriesTestSuite) TestListByBooker() {
	ctx := context.Background()
	page := queries.NewPage(0, 10)

	s.Run("each state routes to its own predicate", func() {
		s.users.EXPECT().ExistsByID(ctx, bookerID).Return(true, nil).Times(6)

		s.store.EXPECT().FindAllByBooker(ctx, bookerID, page).Return([]queries.BookingView{}, nil)
		_, err := s.queries.ListByBooker(ctx, bookerID, booking.StateAll, 0, 10)
		s.NoError(err)

		s.store.EXPECT().FindByBookerPast(ctx, bookerID, s.now, page).Return([]queries.BookingView{}, nil)
		_, err = s.queries.ListByBooker(ctx, bookerID, booking.StatePast, 0, 10)
		s.NoError(err)

		s.store.EXPECT().FindByBookerFuture(ctx, bookerID, s.now, page).Return([]queries.BookingView{}, nil)
		_, err = s.queries.ListByBooker(ctx, bookerID, booking.StateFuture, 0, 10)
		s.NoError(err)

		s.store.EXPECT().FindByBookerCurrent(ctx, bookerID, s.now, page).Return([]queries.BookingView{}, nil)
		_, err = s.queries.ListByBooker(ctx, bookerID, booking.StateCurrent, 0, 10)
		s.NoError(err)

		s.store.EXPECT().FindByBookerAndStatus(ctx, bookerID, booking.StatusWaiting, page).Return([]queries.BookingView{}, nil)
		_, err = s.queries.ListByBooker(ctx, bookerID, booking.StateWaiting, 0, 10)
		s.NoError(err)

		s.store.EXPECT().FindByBookerAndStatus(ctx, bookerID, booking.StatusRejected, page).Return([]queries.BookingView{}, nil)
		_, err = s.queries.ListByBooker(ctx, bookerID, booking.StateRejected, 0, 10)
		s.NoError(err)
	})

	s.Run("unknown state returns an empty list without touching the store", func() {
		s.users.EXPECT().ExistsByID(ctx, bookerID).Return(true, nil)

		views, err := s.queries.ListByBooker(ctx, bookerID, booking.StateUnknown, 0, 10)
		s.Require().NoError(err)
		s.NotNil(views)
		s.Empty(views)
	})

	s.Run("window position is snapped to a whole page", func() {
		s.users.EXPECT().ExistsByID(ctx, bookerID).Return(true, nil)
		s.store.EXPECT().FindAllByBooker(ctx, bookerID, queries.Page{Limit: 10, Offset: 20}).
			Return([]queries.BookingView{}, nil)

		_, err := s.queries.ListByBooker(ctx, bookerID, booking.StateAll, 25, 10)
		s.NoError(err)
	})

	s.Run("unknown caller fails before any query", func() {
		s.users.EXPECT().ExistsByID(ctx, bookerID).Return(false, nil)

		_, err := s.queries.ListByBooker(ctx, bookerID, booking.StateAll, 0, 10)
		s.ErrorIs(err, queries.ErrUserNotFound)
	})
}

func (s *BookingQueriesTestSuite) TestListByItemOwner() {
	ctx := context.Background()
	page := queries.NewPage(0, 10)

	s.Run("ALL routes to the owner-wide predicate", func() {
		s.users.EXPECT().ExistsByID(ctx, ownerID).Return(true, nil)
		s.store.EXPECT().FindAllByOwner(ctx, ownerID, page).Return([]queries.BookingView{}, nil)

		_, err := s.queries.ListByItemOwner(ctx, ownerID, booking.StateAll, 0, 10)
		s.NoError(err)
	})

	s.Run("unknown state falls back to all bookings, unlike the booker side", func() {
		s.users.EXPECT().ExistsByID(ctx, ownerID).Return(true, nil)
		s.store.EXPECT().FindAllByOwner(ctx, ownerID, page).Return([]queries.BookingView{}, nil)

		_, err := s.queries.ListByItemOwner(ctx, ownerID, booking.StateUnknown, 0, 10)
		s.NoError(err)
	})

	s.Run("temporal states use the single clock read", func() {
		s.users.EXPECT().ExistsByID(ctx, ownerID).Return(true, nil).Times(3)

		s.store.EXPECT().FindByOwnerPast(ctx, ownerID, s.now, page).Return([]queries.BookingView{}, nil)
		_, err := s.queries.ListByItemOwner(ctx, ownerID, booking.StatePast, 0, 10)
		s.NoError(err)

		s.store.EXPECT().FindByOwnerFuture(ctx, ownerID, s.now, page).Return([]queries.BookingView{}, nil)
		_, err = s.queries.ListByItemOwner(ctx, ownerID, booking.StateFuture, 0, 10)
		s.NoError(err)

		s.store.EXPECT().FindByOwnerCurrent(ctx, ownerID, s.now, page).Return([]queries.BookingView{}, nil)
		_, err = s.queries.ListByItemOwner(ctx, ownerID, booking.StateCurrent, 0, 10)
		s.NoError(err)
	})

	s.Run("status states route to the status predicate", func() {
		s.users.EXPECT().ExistsByID(ctx, ownerID).Return(true, nil).Times(2)

		s.store.EXPECT().FindByOwnerAndStatus(ctx, ownerID, booking.StatusWaiting, page).Return([]queries.BookingView{}, nil)
		_, err := s.queries.ListByItemOwner(ctx, ownerID, booking.StateWaiting, 0, 10)
		s.NoError(err)

		s.store.EXPECT().FindByOwnerAndStatus(ctx, ownerID, booking.StatusRejected, page).Return([]queries.BookingView{}, nil)
		_, err = s.queries.ListByItemOwner(ctx, ownerID, booking.StateRejected, 0, 10)
		s.NoError(err)
	})

	s.Run("unknown owner fails before any query", func() {
		s.users.EXPECT().ExistsByID(ctx, ownerID).Return(false, nil)

		_, err := s.queries.ListByItemOwner(ctx, ownerID, booking.StateAll, 0, 10)
		s.ErrorIs(err, queries.ErrUserNotFound)
	})
}
