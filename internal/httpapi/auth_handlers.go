package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sessiondesk/internal/modules/auth"
)

func (h *handlers) Login(w http.ResponseWriter, r *http.Request) {
	var in auth.LoginInput
	if err := decode(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", codeInvalidInput)
		return
	}

	res, err := h.deps.Auth.Login(r.Context(), in)
	if err != nil {
		h.writeAuthError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *handlers) Signup(w http.ResponseWriter, r *http.Request) {
	var in auth.SignupInput
	if err := decode(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", codeInvalidInput)
		return
	}

	res, err := h.deps.Auth.Signup(r.Context(), in)
	if err != nil {
		h.writeAuthError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

func (h *handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.deps.Auth.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeAuthError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var patch auth.UserPatch
	if err := decode(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", codeInvalidInput)
		return
	}

	user, err := h.deps.Auth.UpdateProfile(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		h.writeAuthError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *handlers) UserStudios(w http.ResponseWriter, r *http.Request) {
	studios := h.deps.Auth.UserStudios(r.Context(), chi.URLParam(r, "id"))
	writeJSON(w, http.StatusOK, map[string]any{"studios": studios})
}

func (h *handlers) writeAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, auth.ErrValidation):
		writeError(w, http.StatusBadRequest, "Email is required", codeInvalidInput)
	case errors.Is(err, auth.ErrEmailExists):
		writeError(w, http.StatusBadRequest, "Email already exists. Please login instead.", codeInvalidInput)
	case errors.Is(err, auth.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found", codeNotFound)
	default:
		writeError(w, http.StatusInternalServerError, "Internal error", codeInternalError)
	}
}
