package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/tgasparic/paketnik/internal/store"
)

// SettingsPage handles GET /settings.
func (s *Server) SettingsPage(w http.ResponseWriter, r *http.Request) {
	tmpl, err := store.GetSMSTemplate(r.Context(), s.Tracker.DB)
	if err != nil {
		slog.Error("failed to get sms template", "error", err)
	}

	s.Templates.Render(w, "settings.html", &struct {
		PageData
		Template string
	}{
		PageData: PageData{Title: "Settings"},
		Template: tmpl,
	})
}

// SettingsSubmit handles POST /settings.
func (s *Server) SettingsSubmit(w http.ResponseWriter, r *http.Request) {
	tmpl := r.FormValue("sms_template")

	var msg, errMsg string
	if err := store.SetSMSTemplate(r.Context(), s.Tracker.DB, tmpl); err != nil {
		var verr *store.ValidationError
		if errors.As(err, &verr) {
			errMsg = verr.Error()
		} else {
			slog.Error("failed to set sms template", "error", err)
			errMsg = "failed to save settings"
		}
	} else {
		msg = "Settings saved."
	}

	s.Templates.Render(w, "settings.html", &struct {
		PageData
		Template string
	}{
		PageData: PageData{Title: "Settings", Success: msg, Error: errMsg},
		Template: tmpl,
	})
}
