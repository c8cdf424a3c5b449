package catalog

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
	rg.GET("/studios", h.ListStudios)
	rg.POST("/studios", h.CreateOrUpdateStudio)
	rg.GET("/studios/:id", h.GetStudio)
	rg.PUT("/studios/:id", h.UpdateStudio)
}

func (h *Handler) ListStudios(c *gin.Context) {
	studios := h.service.List(c.Request.Context(), c.Query("location"))
	response.JSON(c, http.StatusOK, gin.H{"studios": studios})
}

func (h *Handler) GetStudio(c *gin.Context) {
	v, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, v)
}

func (h *Handler) CreateOrUpdateStudio(c *gin.Context) {
	var patch StudioPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", response.CodeInvalidInput)
		return
	}

	v, created, err := h.service.CreateOrUpdate(c.Request.Context(), patch)
	if err != nil {
		h.writeError(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	response.JSON(c, status, v)
}

func (h *Handler) UpdateStudio(c *gin.Context) {
	var patch StudioPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", response.CodeInvalidInput)
		return
	}

	v, err := h.service.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, v)
}

func (h *Handler) writeError(c *gin.Context, err error) {
	if errors.Is(err, ErrStudioNotFound) {
		response.Error(c, http.StatusNotFound, "Studio not found", response.CodeNotFound)
		return
	}
	response.Error(c, http.StatusInternalServerError, "Internal error", response.CodeInternalError)
}
