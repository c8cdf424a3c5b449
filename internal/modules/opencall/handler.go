package opencall

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
	rg.GET("/open-calls", h.List)
	rg.POST("/open-calls", h.Create)
	rg.GET("/open-calls/:id", h.Get)
	rg.PUT("/open-calls/:id", h.Update)
	rg.DELETE("/open-calls/:id", h.Delete)
	rg.POST("/open-calls/:id/apply", h.Apply)
}

func (h *Handler) List(c *gin.Context) {
	calls := h.service.List(c.Request.Context(), ListFilter{
		Role:     c.Query("role"),
		Genre:    c.Query("genre"),
		PosterID: c.Query("posterId"),
	})
	response.JSON(c, http.StatusOK, gin.H{"openCalls": calls})
}

func (h *Handler) Create(c *gin.Context) {
	var in CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", response.CodeInvalidInput)
		return
	}

	call, err := h.service.Create(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, call)
}

func (h *Handler) Get(c *gin.Context) {
	call, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, call)
}

func (h *Handler) Update(c *gin.Context) {
	var in UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", response.CodeInvalidInput)
		return
	}

	call, err := h.service.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, call)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"message": "Open call deleted successfully"})
}

func (h *Handler) Apply(c *gin.Context) {
	var in ApplyInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", response.CodeInvalidInput)
		return
	}

	applicant, err := h.service.Apply(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, gin.H{
		"message":   "Application submitted successfully",
		"applicant": applicant,
	})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "Missing required fields", response.CodeInvalidInput)
	case errors.Is(err, ErrInvalidPoster):
		response.Error(c, http.StatusBadRequest, "Invalid poster ID or type", response.CodeInvalidInput)
	case errors.Is(err, ErrAlreadyApplied):
		response.Error(c, http.StatusBadRequest, "You have already applied to this open call", response.CodeInvalidInput)
	case errors.Is(err, ErrNotFound):
		response.Error(c, http.StatusNotFound, "Open call not found", response.CodeNotFound)
	case errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "User not found", response.CodeNotFound)
	default:
		response.Error(c, http.StatusInternalServerError, "Internal error", response.CodeInternalError)
	}
}
