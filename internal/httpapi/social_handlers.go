package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sessiondesk/internal/modules/social"
)

func (h *handlers) ToggleFollow(w http.ResponseWriter, r *http.Request) {
	var in social.ToggleInput
	if err := decode(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", codeInvalidInput)
		return
	}

	res, err := h.deps.Social.Toggle(r.Context(), in)
	if err != nil {
		h.writeSocialError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *handlers) Following(w http.ResponseWriter, r *http.Request) {
	entries, err := h.deps.Social.Following(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeSocialError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"following": entries,
		"count":     len(entries),
	})
}

func (h *handlers) Followers(w http.ResponseWriter, r *http.Request) {
	entries, err := h.deps.Social.Followers(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeSocialError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"followers": entries,
		"count":     len(entries),
	})
}

func (h *handlers) FollowStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.deps.Social.Status(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "targetId"))
	if err != nil {
		h.writeSocialError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, status)
}

func (h *handlers) writeSocialError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, social.ErrValidation), errors.Is(err, social.ErrSelfFollow):
		writeError(w, http.StatusBadRequest, err.Error(), codeInvalidInput)
	case errors.Is(err, social.ErrFollowerNotFound), errors.Is(err, social.ErrTargetNotFound), errors.Is(err, social.ErrUserNotFound):
		writeError(w, http.StatusNotFound, err.Error(), codeNotFound)
	default:
		writeError(w, http.StatusInternalServerError, "Internal error", codeInternalError)
	}
}
