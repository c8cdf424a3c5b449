package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sessiondesk/internal/modules/opencall"
)

func (h *handlers) ListOpenCalls(w http.ResponseWriter, r *http.Request) {
	calls := h.deps.OpenCalls.List(r.Context(), opencall.ListFilter{
		Role:     r.URL.Query().Get("role"),
		Genre:    r.URL.Query().Get("genre"),
		PosterID: r.URL.Query().Get("posterId"),
	})
	writeJSON(w, http.StatusOK, map[string]any{"openCalls": calls})
}

func (h *handlers) CreateOpenCall(w http.ResponseWriter, r *http.Request) {
	var in opencall.CreateInput
	if err := decode(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", codeInvalidInput)
		return
	}

	call, err := h.deps.OpenCalls.Create(r.Context(), in)
	if err != nil {
		h.writeOpenCallError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, call)
}

func (h *handlers) GetOpenCall(w http.ResponseWriter, r *http.Request) {
	call, err := h.deps.OpenCalls.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeOpenCallError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, call)
}

func (h *handlers) UpdateOpenCall(w http.ResponseWriter, r *http.Request) {
	var in opencall.UpdateInput
	if err := decode(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", codeInvalidInput)
		return
	}

	call, err := h.deps.OpenCalls.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.writeOpenCallError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, call)
}

func (h *handlers) DeleteOpenCall(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.OpenCalls.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeOpenCallError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"message": "Open call deleted successfully"})
}

func (h *handlers) ApplyToOpenCall(w http.ResponseWriter, r *http.Request) {
	var in opencall.ApplyInput
	if err := decode(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", codeInvalidInput)
		return
	}

	applicant, err := h.deps.OpenCalls.Apply(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.writeOpenCallError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"message":   "Application submitted successfully",
		"applicant": applicant,
	})
}

func (h *handlers) writeOpenCallError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, opencall.ErrValidation):
		writeError(w, http.StatusBadRequest, "Missing required fields", codeInvalidInput)
	case errors.Is(err, opencall.ErrInvalidPoster):
		writeError(w, http.StatusBadRequest, "Invalid poster ID or type", codeInvalidInput)
	case errors.Is(err, opencall.ErrAlreadyApplied):
		writeError(w, http.StatusBadRequest, "You have already applied to this open call", codeInvalidInput)
	case errors.Is(err, opencall.ErrNotFound):
		writeError(w, http.StatusNotFound, "Open call not found", codeNotFound)
	case errors.Is(err, opencall.ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found", codeNotFound)
	default:
		writeError(w, http.StatusInternalServerError, "Internal error", codeInternalError)
	}
}
