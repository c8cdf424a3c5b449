package auth

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
	rg.POST("/auth/login", h.Login)
	rg.POST("/auth/signup", h.Signup)
	rg.GET("/users/:id", h.GetUser)
	rg.PUT("/users/:id", h.UpdateUser)
	rg.GET("/users/:id/studios", h.UserStudios)
}

func (h *Handler) Login(c *gin.Context) {
	var in LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", response.CodeInvalidInput)
		return
	}

	res, err := h.service.Login(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, res)
}

func (h *Handler) Signup(c *gin.Context) {
	var in SignupInput
	if err := c.ShouldBindJSON(&in); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", response.CodeInvalidInput)
		return
	}

	res, err := h.service.Signup(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.JSON(c, http.StatusCreated, res)
}

func (h *Handler) GetUser(c *gin.Context) {
	user, err := h.service.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	var patch UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid request body", response.CodeInvalidInput)
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.JSON(c, http.StatusOK, user)
}

func (h *Handler) UserStudios(c *gin.Context) {
	studios := h.service.UserStudios(c.Request.Context(), c.Param("id"))
	response.JSON(c, http.StatusOK, gin.H{"studios": studios})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrValidation):
		response.Error(c, http.StatusBadRequest, "Email is required", response.CodeInvalidInput)
	case errors.Is(err, ErrEmailExists):
		response.Error(c, http.StatusBadRequest, "Email already exists. Please login instead.", response.CodeInvalidInput)
	case errors.Is(err, ErrUserNotFound):
		response.Error(c, http.StatusNotFound, "User not found", response.CodeNotFound)
	default:
		response.Error(c, http.StatusInternalServerError, "Internal error", response.CodeInternalError)
	}
}
