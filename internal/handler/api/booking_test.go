//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"shareit/internal/domain/booking"
	"shareit/internal/handler/api"
	"shareit/internal/handler/middleware"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/httptest"
	commandsmock "shareit/tests/mock/commands"
	queriesmock "shareit/tests/mock/queries"
)

const (
	callerID  int64 = 2
	bookingID int64 = 100
)

type BookingHandlerTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	commands *commandsmock.MockBookingCommands
	queries  *queriesmock.MockBookingQueries
	router   *gin.Engine

	now time.Time
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	s.ctrl = gomock.NewController(s.T())
	s.commands = commandsmock.NewMockBookingCommands(s.ctrl)
	s.queries = queriesmock.NewMockBookingQueries(s.ctrl)
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	h := api.NewBookingHandler(s.commands, s.queries)

	s.router = gin.New()
	g := s.router.Group("/bookings", middleware.RequireUser())
	g.POST("", h.Create)
	g.GET("", h.ListOwn)
	g.GET("/owner", h.ListForOwnItems)
	g.GET("/:bookingId", h.Get)
	g.PATCH("/:bookingId", h.Approve)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) view(status booking.Status) *queries.BookingView {
	return &queries.BookingView{
		ID:     bookingID,
		Start:  s.now.Add(time.Hour),
		End:    s.now.Add(2 * time.Hour),
		Status: string(status),
		Booker: queries.UserRef{ID: callerID, Name: "bob"},
		Item:   queries.ItemRef{ID: 10, Name: "drill"},
	}
}

func (s *BookingHandlerTestSuite) TestCreate() {
	body := map[string]any{
		"itemId": 10,
		"start":  s.now.Add(time.Hour).Format(time.RFC3339),
		"end":    s.now.Add(2 * time.Hour).Format(time.RFC3339),
	}

	s.Run("creates a booking", func() {
		s.commands.EXPECT().
			Create(gomock.Any(), gomock.Any(), callerID).
			DoAndReturn(func(_ any, cmd commands.CreateBooking, _ int64) (*queries.BookingView, error) {
				s.Equal(int64(10), cmd.ItemID)
				return s.view(booking.StatusWaiting), nil
			})

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, callerID)

		var resp struct {
			ID     int64  `json:"id"`
			Status string `json:"status"`
		}
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(bookingID, resp.ID)
		s.Equal("WAITING", resp.Status)
	})

	s.Run("requires the identity header", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, 0)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "X-Sharer-User-Id header is required")
	})

	s.Run("rejects a body without the required fields", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", map[string]any{"itemId": 10}, callerID)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("invalid period surfaces as a validation failure", func() {
		s.commands.EXPECT().
			Create(gomock.Any(), gomock.Any(), callerID).
			Return(nil, commands.ErrInvalidBookingPeriod)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, callerID)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "invalid booking period")
	})

	s.Run("unknown item reports not found", func() {
		s.commands.EXPECT().
			Create(gomock.Any(), gomock.Any(), callerID).
			Return(nil, commands.ErrItemNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, callerID)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "item not found")
	})

	s.Run("owner booking own item reads like a missing item", func() {
		s.commands.EXPECT().
			Create(gomock.Any(), gomock.Any(), callerID).
			Return(nil, commands.ErrItemNotBookable)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", body, callerID)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "item is not available for booking")
	})
}

func (s *BookingHandlerTestSuite) TestApprove() {
	s.Run("approves a waiting booking", func() {
		s.commands.EXPECT().
			Approve(gomock.Any(), bookingID, true, callerID).
			Return(s.view(booking.StatusApproved), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/100?approved=true", nil, callerID)

		var resp struct {
			Status string `json:"status"`
		}
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("APPROVED", resp.Status)
	})

	s.Run("rejects when approved=false", func() {
		s.commands.EXPECT().
			Approve(gomock.Any(), bookingID, false, callerID).
			Return(s.view(booking.StatusRejected), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/100?approved=false", nil, callerID)

		var resp struct {
			Status string `json:"status"`
		}
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal("REJECTED", resp.Status)
	})

	s.Run("missing approved parameter is a bad request", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/100", nil, callerID)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Parameter approved must be true or false")
	})

	s.Run("non-numeric booking id is a bad request", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/abc?approved=true", nil, callerID)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid bookingId format")
	})

	s.Run("deciding twice is a validation failure", func() {
		s.commands.EXPECT().
			Approve(gomock.Any(), bookingID, true, callerID).
			Return(nil, commands.ErrBookingNotWaiting)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/100?approved=true", nil, callerID)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "booking is not awaiting approval")
	})

	s.Run("a stranger's approval reads like a missing booking", func() {
		s.commands.EXPECT().
			Approve(gomock.Any(), bookingID, true, callerID).
			Return(nil, commands.ErrBookingNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/100?approved=true", nil, callerID)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestGet() {
	s.Run("returns the booking", func() {
		s.queries.EXPECT().
			GetByID(gomock.Any(), bookingID, callerID).
			Return(s.view(booking.StatusWaiting), nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/100", nil, callerID)

		var resp struct {
			ID     int64 `json:"id"`
			Booker struct {
				ID int64 `json:"id"`
			} `json:"booker"`
			Item struct {
				ID   int64  `json:"id"`
				Name string `json:"name"`
			} `json:"item"`
		}
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(bookingID, resp.ID)
		s.Equal(callerID, resp.Booker.ID)
		s.Equal("drill", resp.Item.Name)
	})

	s.Run("masks bookings the caller may not see", func() {
		s.queries.EXPECT().
			GetByID(gomock.Any(), bookingID, callerID).
			Return(nil, queries.ErrBookingNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/100", nil, callerID)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "booking not found")
	})
}

func (s *BookingHandlerTestSuite) TestListOwn() {
	s.Run("defaults to ALL with the first page", func() {
		s.queries.EXPECT().
			ListByBooker(gomock.Any(), callerID, booking.StateAll, 0, 10).
			Return([]queries.BookingView{*s.view(booking.StatusWaiting)}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, callerID)

		var resp []struct {
			ID int64 `json:"id"`
		}
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 1)
	})

	s.Run("passes state and paging through", func() {
		s.queries.EXPECT().
			ListByBooker(gomock.Any(), callerID, booking.StatePast, 5, 2).
			Return([]queries.BookingView{}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?state=PAST&from=5&size=2", nil, callerID)

		var resp []any
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Empty(resp)
	})

	s.Run("an unrecognized state yields an empty list, not an error", func() {
		s.queries.EXPECT().
			ListByBooker(gomock.Any(), callerID, booking.StateUnknown, 0, 10).
			Return([]queries.BookingView{}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?state=SOMEDAY", nil, callerID)

		var resp []any
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Empty(resp)
	})

	s.Run("negative from is a bad request", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?from=-1", nil, callerID)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Parameter from must be a non-negative integer")
	})

	s.Run("zero size is a bad request", func() {
		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?size=0", nil, callerID)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Parameter size must be a positive integer")
	})
}

func (s *BookingHandlerTestSuite) TestListForOwnItems() {
	s.Run("routes by owner with state and paging", func() {
		s.queries.EXPECT().
			ListByItemOwner(gomock.Any(), callerID, booking.StateWaiting, 0, 10).
			Return([]queries.BookingView{*s.view(booking.StatusWaiting)}, nil)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/owner?state=WAITING", nil, callerID)

		var resp []struct {
			Status string `json:"status"`
		}
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Require().Len(resp, 1)
		s.Equal("WAITING", resp[0].Status)
	})

	s.Run("owner without items reports not found", func() {
		s.queries.EXPECT().
			ListByItemOwner(gomock.Any(), callerID, booking.StateAll, 0, 10).
			Return(nil, queries.ErrUserNotFound)

		w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/owner", nil, callerID)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "user not found")
	})
}
