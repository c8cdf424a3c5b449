package social

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"sessiondesk/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/follow", h.Toggle)
	rg.GET("/follow/following/:id", h.Following)
	rg.GET("/users/:id/followers", h.Followers)
	rg.GET("/users/:id/follow-status/:targetId", h.Status)
}

func (h *Handler) Toggle(c *gin.Context) {
	var in ToggleInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", response.CodeInvalidInput)
		return
	}

	res, err := h.service.Toggle(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res)
}

func (h *Handler) Following(c *gin.Context) {
	entries, err := h.service.Following(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"following": entries,
		"count":     len(entries),
	})
}

func (h *Handler) Followers(c *gin.Context) {
	entries, err := h.service.Followers(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{
		"followers": entries,
		"count":     len(entries),
	})
}

func (h *Handler) Status(c *gin.Context) {
	status, err := h.service.Status(c.Request.Context(), c.Param("id"), c.Param("targetId"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, status)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation), errors.Is(err, ErrSelfFollow):
		response.Error(c, http.StatusBadRequest, err.Error(), response.CodeInvalidInput)
	case errors.Is(err, ErrFollowerNotFound), errors.Is(err, ErrTargetNotFound), errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, err.Error(), response.CodeNotFound)
	default:
		response.Error(c, http.StatusInternalServerError, "Internal error", response.CodeInternalError)
	}
}
