package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "shareit/internal/handler/dto/request"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/httperr"

	"shareit/internal/usecase/commands"
	"shareit/internal/usecase/queries"
)

type ItemHandler struct {
	commands commands.ItemCommands
	queries  queries.ItemQueries
}

func NewItemHandler(cmds commands.ItemCommands, qrys queries.ItemQueries) *ItemHandler {
	return &ItemHandler{commands: cmds, queries: qrys}
}

// @Summary Create item
// @Description Publish an item owned by the caller
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Calling user id"
// @Param request body reqdto.CreateItemRequest true "Item"
// @Success 201 {object} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}

	var req reqdto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.Create(c.Request.Context(), commands.CreateItem{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		RequestID:   req.RequestID,
	}, userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromItemView(view))
}

// @Summary Update item
// @Description Patch name, description or availability; owner only
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Calling user id"
// @Param itemId path int true "Item id"
// @Param request body reqdto.UpdateItemRequest true "Fields to change"
// @Success 200 {object} resdto.ItemResponse
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId} [patch]
func (h *ItemHandler) Update(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	var req reqdto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.Update(c.Request.Context(), itemID, commands.ItemPatch{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
	}, userID)
	if err != nil {
		if errors.Is(err, commands.ErrItemAccessDenied) {
			httperr.AbortWithError(c, http.StatusForbidden, err, err.Error(), nil)
			return
		}
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemView(view))
}

// @Summary Delete item
// @Description Remove an item; owner only
// @Tags items
// @Param X-Sharer-User-Id header int true "Calling user id"
// @Param itemId path int true "Item id"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	if err := h.commands.Delete(c.Request.Context(), itemID, userID); err != nil {
		if errors.Is(err, commands.ErrItemAccessDenied) {
			httperr.AbortWithError(c, http.StatusForbidden, err, err.Error(), nil)
			return
		}
		httperr.Abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get item
// @Description Get an item with its comments; the owner also sees surrounding bookings
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Calling user id"
// @Param itemId path int true "Item id"
// @Success 200 {object} resdto.ItemDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), itemID, userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemDetailView(view))
}

// @Summary List own items
// @Description List the caller's items with surrounding bookings
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Calling user id"
// @Param from query int false "Window start" default(0)
// @Param size query int false "Window size" default(10)
// @Success 200 {array} resdto.ItemDetailResponse
// @Failure 400 {object} httperr.Response
// @Router /items [get]
func (h *ItemHandler) ListOwn(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	from, size, ok := paging(c)
	if !ok {
		return
	}

	views, err := h.queries.ListByOwner(c.Request.Context(), userID, from, size)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemDetailViews(views))
}

// @Summary Search items
// @Description Full-text search over available items; blank text matches nothing
// @Tags items
// @Produce json
// @Param X-Sharer-User-Id header int true "Calling user id"
// @Param text query string true "Search text"
// @Param from query int false "Window start" default(0)
// @Param size query int false "Window size" default(10)
// @Success 200 {array} resdto.ItemResponse
// @Failure 400 {object} httperr.Response
// @Router /items/search [get]
func (h *ItemHandler) Search(c *gin.Context) {
	if _, ok := callerID(c); !ok {
		return
	}
	from, size, ok := paging(c)
	if !ok {
		return
	}

	views, err := h.queries.Search(c.Request.Context(), c.Query("text"), from, size)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromItemViews(views))
}

// @Summary Comment on item
// @Description Leave feedback; only users with a finished booking of the item may comment
// @Tags items
// @Accept json
// @Produce json
// @Param X-Sharer-User-Id header int true "Calling user id"
// @Param itemId path int true "Item id"
// @Param request body reqdto.CreateCommentRequest true "Comment"
// @Success 201 {object} resdto.CommentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /items/{itemId}/comment [post]
func (h *ItemHandler) AddComment(c *gin.Context) {
	userID, ok := callerID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "itemId")
	if !ok {
		return
	}

	var req reqdto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.AddComment(c.Request.Context(), itemID, userID, req.Text)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromCommentView(view))
}
