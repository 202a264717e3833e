package api

import (
	"net/http"
	"strconv"

	"github.com/tgasparic/paketnik/internal/model"
	"github.com/tgasparic/paketnik/internal/notify"
	"github.com/tgasparic/paketnik/internal/tracker"
)

// ItemsHandler handles item tracking endpoints.
type ItemsHandler struct {
	Tracker *tracker.Tracker
}

type createItemRequest struct {
	OwnerName   string `json:"owner_name"`
	Description string `json:"description"`
	Phone       string `json:"phone"`
}

type advanceStatusRequest struct {
	Status string `json:"status"`
}

type advanceStatusResponse struct {
	Item     *model.Item    `json:"item"`
	LogEntry string         `json:"log_entry"`
	Dispatch *notify.Result `json:"dispatch,omitempty"`
}

// Create handles POST /api/items.
func (h *ItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := h.Tracker.CreateItem(r.Context(), req.OwnerName, req.Description, req.Phone)
	if err != nil {
		writeError(w, err, "failed to create item")
		return
	}

	jsonResponse(w, http.StatusCreated, item)
}

// List handles GET /api/items?owner=<name>.
func (h *ItemsHandler) List(w http.ResponseWriter, r *http.Request) {
	owner := r.URL.Query().Get("owner")
	if owner == "" {
		jsonError(w, http.StatusBadRequest, "owner query parameter required")
		return
	}

	items, err := h.Tracker.ListItemsByOwner(r.Context(), owner)
	if err != nil {
		writeError(w, err, "failed to list items")
		return
	}
	jsonResponse(w, http.StatusOK, items)
}

// Get handles GET /api/items/{id}.
func (h *ItemsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	item, err := h.Tracker.GetItem(r.Context(), id)
	if err != nil {
		writeError(w, err, "failed to get item")
		return
	}

	log, err := h.Tracker.ItemLog(r.Context(), id)
	if err != nil {
		writeError(w, err, "failed to get item log")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"item": item,
		"log":  log,
	})
}

// GetLog handles GET /api/items/{id}/log.
func (h *ItemsHandler) GetLog(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	log, err := h.Tracker.ItemLog(r.Context(), id)
	if err != nil {
		writeError(w, err, "failed to get item log")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"log": log})
}

// Advance handles POST /api/items/{id}/advance.
func (h *ItemsHandler) Advance(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid item id")
		return
	}

	var req advanceStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, entry, dispatch, err := h.Tracker.AdvanceStatus(r.Context(), id, req.Status)
	if err != nil {
		writeError(w, err, "failed to advance status")
		return
	}

	jsonResponse(w, http.StatusOK, advanceStatusResponse{
		Item:     item,
		LogEntry: entry,
		Dispatch: dispatch,
	})
}
