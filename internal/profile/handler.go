package profile

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/karimosman/quranlife-api/pkg/response"
)

const maxEntrySize = 64 << 10 // generous for a habits/goals document

// Handler exposes the profile store over HTTP so the PWA can sync the
// habits and goals it used to keep only in localStorage.
type Handler struct {
	store *Store
}

func NewHandler(store *Store) Handler {
	return Handler{store: store}
}

func (h *Handler) GetEntryHandler(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		response.Error(w, http.StatusBadRequest, "Missing profile key", nil)
		return
	}

	value := h.store.Get(r.Context(), key, json.RawMessage("null"))
	response.Success(w, map[string]interface{}{
		"key":   key,
		"value": value,
	}, "successfully")
}

func (h *Handler) SetEntryHandler(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		response.Error(w, http.StatusBadRequest, "Missing profile key", nil)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxEntrySize))
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Failed to read body", err.Error())
		return
	}
	if !json.Valid(body) {
		response.Error(w, http.StatusBadRequest, "Body must be valid JSON", nil)
		return
	}

	if ok := h.store.Set(r.Context(), key, body); !ok {
		response.Error(w, http.StatusInternalServerError, "Failed to save profile entry", nil)
		return
	}
	response.Success(w, map[string]bool{"saved": true}, "successfully")
}

func (h *Handler) RemoveEntryHandler(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	if key == "" {
		response.Error(w, http.StatusBadRequest, "Missing profile key", nil)
		return
	}

	if ok := h.store.Remove(r.Context(), key); !ok {
		response.Error(w, http.StatusInternalServerError, "Failed to remove profile entry", nil)
		return
	}
	response.Success(w, map[string]bool{"removed": true}, "successfully")
}
