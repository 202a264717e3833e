package api

import (
	"database/sql"
	"net/http"

	"github.com/tgasparic/paketnik/internal/store"
)

// SettingsHandler handles notification settings endpoints.
type SettingsHandler struct {
	DB *sql.DB
}

type smsTemplateRequest struct {
	Template string `json:"template"`
}

// GetSMSTemplate handles GET /api/settings/sms-template.
func (h *SettingsHandler) GetSMSTemplate(w http.ResponseWriter, r *http.Request) {
	tmpl, err := store.GetSMSTemplate(r.Context(), h.DB)
	if err != nil {
		writeError(w, err, "failed to get sms template")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"template": tmpl})
}

// SetSMSTemplate handles PUT /api/settings/sms-template.
func (h *SettingsHandler) SetSMSTemplate(w http.ResponseWriter, r *http.Request) {
	var req smsTemplateRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := store.SetSMSTemplate(r.Context(), h.DB, req.Template); err != nil {
		writeError(w, err, "failed to set sms template")
		return
	}
	jsonResponse(w, http.StatusOK, map[string]string{"template": req.Template})
}
