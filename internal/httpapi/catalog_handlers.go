package httpapi

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"sessiondesk/internal/modules/catalog"
)

func (h *handlers) ListStudios(w http.ResponseWriter, r *http.Request) {
	studios := h.deps.Catalog.List(r.Context(), r.URL.Query().Get("location"))
	writeJSON(w, http.StatusOK, map[string]any{"studios": studios})
}

func (h *handlers) GetStudio(w http.ResponseWriter, r *http.Request) {
	v, err := h.deps.Catalog.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *handlers) CreateOrUpdateStudio(w http.ResponseWriter, r *http.Request) {
	var patch catalog.StudioPatch
	if err := decode(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", codeInvalidInput)
		return
	}

	v, created, err := h.deps.Catalog.CreateOrUpdate(r.Context(), patch)
	if err != nil {
		h.writeCatalogError(w, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, v)
}

func (h *handlers) UpdateStudio(w http.ResponseWriter, r *http.Request) {
	var patch catalog.StudioPatch
	if err := decode(r, &patch); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", codeInvalidInput)
		return
	}

	v, err := h.deps.Catalog.Update(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		h.writeCatalogError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, v)
}

func (h *handlers) writeCatalogError(w http.ResponseWriter, err error) {
	if errors.Is(err, catalog.ErrStudioNotFound) {
		writeError(w, http.StatusNotFound, "Studio not found", codeNotFound)
		return
	}
	writeError(w, http.StatusInternalServerError, "Internal error", codeInternalError)
}
