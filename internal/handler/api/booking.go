package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"

	"shareit/internal/domain/booking"
	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"
)

type BookingHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, qrys queries.BookingQueries) *BookingHandler {
	return &BookingHandler{commands: cmds, queries: qrys}
}

// @Summary Create booking
// @Description Request a booking of an item for a time period
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Calling user id"
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.Create(c.Request.Context(), commands.CreateBooking{
		ItemID: req.ItemID,
		Start:  req.Start,
		End:    req.End,
	}, userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Decide on booking
// @Description Approve or reject a waiting booking; only the item owner may decide
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Calling user id"
// @Param bookingId path int true "Booking id"
// @Param approved query bool true "true approves, false rejects"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{bookingId} [patch]
func (h *BookingHandler) Approve(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}

	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest,
			errors.New("invalid approved parameter"),
			"Parameter approved must be true or false", nil)
		return
	}

	view, err := h.commands.Approve(c.Request.Context(), bookingID, approved, userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Get booking
// @Description Get a booking; visible to its booker and the item owner only
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Calling user id"
// @Param bookingId path int true "Booking id"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{bookingId} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "bookingId")
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), bookingID, userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List own bookings
// @Description List the caller's bookings filtered by state
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Calling user id"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param from query int false "Window start" default(0)
// @Param size query int false "Window size" default(10)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings [get]
func (h *BookingHandler) ListOwn(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	from, size, ok := paging(c)
	if !ok {
		return
	}

	state := booking.ParseState(c.DefaultQuery("state", "ALL"))
	views, err := h.queries.ListByBooker(c.Request.Context(), userID, state, from, size)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary List bookings of own items
// @Description List bookings made against the caller's items, filtered by state
// @Tags bookings
// @Produce json
// @Param X-Sharer-User-Id header int true "Calling user id"
// @Param state query string false "ALL, CURRENT, PAST, FUTURE, WAITING or REJECTED" default(ALL)
// @Param from query int false "Window start" default(0)
// @Param size query int false "Window size" default(10)
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/owner [get]
func (h *BookingHandler) ListForOwnItems(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	from, size, ok := paging(c)
	if !ok {
		return
	}

	state := booking.ParseState(c.DefaultQuery("state", "ALL"))
	views, err := h.queries.ListByItemOwner(c.Request.Context(), userID, state, from, size)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}
