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

// UserHandler manages accounts. These routes carry no identity header: user
// creation is how an id comes to exist in the first place.
type UserHandler struct {
	commands commands.UserCommands
	queries  queries.UserQueries
}

func NewUserHandler(cmds commands.UserCommands, qrys queries.UserQueries) *UserHandler {
	return &UserHandler{commands: cmds, queries: qrys}
}

// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param request body reqdto.CreateUserRequest true "User"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req reqdto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.Create(c.Request.Context(), commands.CreateUser{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromUserView(view))
}

// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param userId path int true "User id"
// @Param request body reqdto.UpdateUserRequest true "Fields to change"
// @Success 200 {object} resdto.UserResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /users/{userId} [patch]
func (h *UserHandler) Update(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	var req reqdto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.commands.Update(c.Request.Context(), userID, commands.UserPatch{
		Name:  req.Name,
		Email: req.Email,
	})
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

// @Summary Delete user
// @Tags users
// @Param userId path int true "User id"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /users/{userId} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	if err := h.commands.Delete(c.Request.Context(), userID); err != nil {
		httperr.Abort(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get user
// @Tags users
// @Produce json
// @Param userId path int true "User id"
// @Success 200 {object} resdto.UserResponse
// @Failure 404 {object} httperr.Response
// @Router /users/{userId} [get]
func (h *UserHandler) Get(c *gin.Context) {
	userID, ok := pathID(c, "userId")
	if !ok {
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), userID)
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserView(view))
}

// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} resdto.UserResponse
// @Router /users [get]
func (h *UserHandler) List(c *gin.Context) {
	views, err := h.queries.ListAll(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserViews(views))
}
