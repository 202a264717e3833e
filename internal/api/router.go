package api

import (
	"net/http"

	"github.com/tgasparic/paketnik/internal/tracker"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(t *tracker.Tracker) http.Handler {
	mux := http.NewServeMux()

	itemsHandler := &ItemsHandler{Tracker: t}
	settingsHandler := &SettingsHandler{DB: t.DB}

	// Items.
	mux.HandleFunc("POST /api/items", itemsHandler.Create)
	mux.HandleFunc("GET /api/items", itemsHandler.List)
	mux.HandleFunc("GET /api/items/{id}", itemsHandler.Get)
	mux.HandleFunc("GET /api/items/{id}/log", itemsHandler.GetLog)
	mux.HandleFunc("POST /api/items/{id}/advance", itemsHandler.Advance)

	// Notification settings.
	mux.HandleFunc("GET /api/settings/sms-template", settingsHandler.GetSMSTemplate)
	mux.HandleFunc("PUT /api/settings/sms-template", settingsHandler.SetSMSTemplate)

	return mux
}
