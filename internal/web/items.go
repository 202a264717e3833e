package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/tgasparic/paketnik/internal/model"
	"github.com/tgasparic/paketnik/internal/status"
	"github.com/tgasparic/paketnik/internal/store"
)

// itemView pairs an item with its rendered audit log for display.
type itemView struct {
	Item model.Item
	Log  string
}

// ItemsPage handles GET /items: the registration form.
func (s *Server) ItemsPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "items.html", &struct {
		PageData
		OwnerName   string
		Description string
		Phone       string
	}{
		PageData: PageData{Title: "Register item", Success: r.URL.Query().Get("success")},
	})
}

// ItemCreateSubmit handles POST /items.
func (s *Server) ItemCreateSubmit(w http.ResponseWriter, r *http.Request) {
	ownerName := r.FormValue("owner_name")
	description := r.FormValue("description")
	phone := r.FormValue("phone")

	item, err := s.Tracker.CreateItem(r.Context(), ownerName, description, phone)
	if err != nil {
		var verr *store.ValidationError
		msg := "failed to register item"
		if errors.As(err, &verr) {
			msg = verr.Error()
		} else {
			slog.Error("failed to create item", "error", err)
		}
		s.Templates.Render(w, "items.html", &struct {
			PageData
			OwnerName   string
			Description string
			Phone       string
		}{
			PageData:    PageData{Title: "Register item", Error: msg},
			OwnerName:   ownerName,
			Description: description,
			Phone:       phone,
		})
		return
	}

	slog.Info("item registered", "item", item.ID, "owner", item.OwnerName)
	msg := fmt.Sprintf("Registered item #%d (%s) for %s.", item.ID, item.Description, item.OwnerName)
	http.Redirect(w, r, "/items?success="+url.QueryEscape(msg), http.StatusSeeOther)
}

// SearchPage handles GET /search: owner lookup with per-item log and the
// advance-status action.
func (s *Server) SearchPage(w http.ResponseWriter, r *http.Request) {
	s.renderSearch(w, r, r.URL.Query().Get("owner"), "", "")
}

// ItemAdvanceSubmit handles POST /items/{id}/advance.
func (s *Server) ItemAdvanceSubmit(w http.ResponseWriter, r *http.Request) {
	owner := r.FormValue("owner")

	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	requested := r.FormValue("status")

	item, _, dispatch, err := s.Tracker.AdvanceStatus(r.Context(), id, requested)
	if err != nil {
		var terr *status.InvalidTransitionError
		msg := "failed to update status"
		switch {
		case errors.Is(err, store.ErrNotFound):
			msg = "item not found"
		case errors.As(err, &terr):
			msg = terr.Error()
		default:
			slog.Error("failed to advance status", "item", id, "error", err)
		}
		s.renderSearch(w, r, owner, "", msg)
		return
	}

	notice := fmt.Sprintf("Item #%d is now %s.", item.ID, item.Status)
	if dispatch != nil {
		if dispatch.Sent {
			notice += fmt.Sprintf(" Owner texted (message %s).", dispatch.MessageID)
		} else {
			notice += fmt.Sprintf(" SMS failed: %s.", dispatch.Reason)
		}
	}
	s.renderSearch(w, r, owner, notice, "")
}

// renderSearch runs the owner lookup (when owner is non-empty) and renders the
// search page with optional flash messages.
func (s *Server) renderSearch(w http.ResponseWriter, r *http.Request, owner, success, errMsg string) {
	var results []itemView
	if owner != "" {
		items, err := s.Tracker.ListItemsByOwner(r.Context(), owner)
		if err != nil {
			slog.Error("failed to list items", "owner", owner, "error", err)
			if errMsg == "" {
				errMsg = "failed to look up items"
			}
		}
		for _, item := range items {
			log, err := s.Tracker.ItemLog(r.Context(), item.ID)
			if err != nil {
				slog.Error("failed to get item log", "item", item.ID, "error", err)
			}
			results = append(results, itemView{Item: item, Log: log})
		}
	}

	s.Templates.Render(w, "search.html", &struct {
		PageData
		Owner    string
		Searched bool
		Results  []itemView
	}{
		PageData: PageData{Title: "Find items", Success: success, Error: errMsg},
		Owner:    owner,
		Searched: owner != "",
		Results:  results,
	})
}
