package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"

	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"
)

type ItemRequestHandler struct {
	commands commands.RequestCommands
	queries  queries.RequestQueries
}

func NewItemRequestHandler(cmds commands.RequestCommands, qrys queries.RequestQueries) *ItemRequestHandler {
	return &ItemRequestHandler{commands: cmds, queries: qrys}
}

// @Summary Create item request
// @Description Ask other users to share an item nobody has published yet
// @Tags requests
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Calling user id"
// @Param request body reqdto.CreateItemRequestRequest true "Request"
// @Success 201 {object} resdto.ItemRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /requests [post]
func (h *ItemRequestHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req reqdto.CreateItemRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.Create(c.Request.Context(), req.Description, userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromRequestView(view))
}

// @Summary List own item requests
// @Description List the caller's requests with the items offered in response
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Calling user id"
// @Success 200 {array} resdto.ItemRequestResponse
// @Failure 404 {object} httperr.Response
// @Router /requests [get]
func (h *ItemRequestHandler) ListOwn(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	views, err := h.queries.ListOwn(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestViews(views))
}

// @Summary List other users' item requests
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Calling user id"
// @Param from query int false "Window start" default(0)
// @Param size query int false "Window size" default(10)
// @Success 200 {array} resdto.ItemRequestResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /requests/all [get]
func (h *ItemRequestHandler) ListOthers(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	from, size, ok := paging(c)
	if !ok {
		return
	}

	views, err := h.queries.ListOthers(c.Request.Context(), userID, from, size)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestViews(views))
}

// @Summary Get item request
// @Tags requests
// @Produce json
// @Param X-Sharer-User-Id header int true "Calling user id"
// @Param requestId path int true "Request id"
// @Success 200 {object} resdto.ItemRequestResponse
// @Failure 404 {object} httperr.Response
// @Router /requests/{requestId} [get]
func (h *ItemRequestHandler) Get(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	requestID, ok := pathID(c, "requestId")
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), requestID, userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromRequestView(view))
}
