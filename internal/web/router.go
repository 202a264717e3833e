package web

import (
	"net/http"

	"github.com/tgasparic/paketnik/internal/tracker"
	webembed "github.com/tgasparic/paketnik/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(t *tracker.Tracker) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		Tracker:   t,
		Templates: templates,
	}

	mux := http.NewServeMux()

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/items", http.StatusSeeOther)
	})

	mux.HandleFunc("GET /items", s.ItemsPage)
	mux.HandleFunc("POST /items", s.ItemCreateSubmit)
	mux.HandleFunc("GET /search", s.SearchPage)
	mux.HandleFunc("POST /items/{id}/advance", s.ItemAdvanceSubmit)

	mux.HandleFunc("GET /settings", s.SettingsPage)
	mux.HandleFunc("POST /settings", s.SettingsSubmit)

	return mux, nil
}
