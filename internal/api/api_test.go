package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/tgasparic/paketnik/internal/db"
	"github.com/tgasparic/paketnik/internal/model"
	"github.com/tgasparic/paketnik/internal/notify"
	"github.com/tgasparic/paketnik/internal/tracker"
)

// countingSender tallies dispatch attempts for assertions.
type countingSender struct {
	calls  int
	result notify.Result
}

func (c *countingSender) SendText(_ context.Context, phone, body string) notify.Result {
	c.calls++
	return c.result
}

func setupTestServer(t *testing.T) (*httptest.Server, *countingSender) {
	t.Helper()
	database := db.NewTestDB(t)
	sender := &countingSender{result: notify.Sent("SM123")}
	router := NewRouter(tracker.New(database, sender))
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server, sender
}

func postJSON(t *testing.T, url string, body any) *http.Response {
	t.Helper()
	data, _ := json.Marshal(body)
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("POST %s: %v", url, err)
	}
	return resp
}

func TestCreateItemEndpoint(t *testing.T) {
	server, _ := setupTestServer(t)

	resp := postJSON(t, server.URL+"/api/items", map[string]string{
		"owner_name":  "Li",
		"description": "Package A",
		"phone":       "12345678901",
	})
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var item model.Item
	json.NewDecoder(resp.Body).Decode(&item)
	if item.Status != model.StatusPending {
		t.Errorf("expected status 'pending', got %q", item.Status)
	}
}

func TestCreateItemValidationErrors(t *testing.T) {
	server, _ := setupTestServer(t)

	cases := []map[string]string{
		{"owner_name": "", "description": "Package", "phone": "12345678901"},
		{"owner_name": "Li", "description": "", "phone": "12345678901"},
		{"owner_name": "Li", "description": "Package", "phone": "123"},
	}

	for _, c := range cases {
		resp := postJSON(t, server.URL+"/api/items", c)
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("expected 400 for %v, got %d", c, resp.StatusCode)
		}
		resp.Body.Close()
	}
}

func TestListItemsRequiresOwner(t *testing.T) {
	server, _ := setupTestServer(t)

	resp, _ := http.Get(server.URL + "/api/items")
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("expected 400 without owner param, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	resp, _ = http.Get(server.URL + "/api/items?owner=Nobody")
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200 for unknown owner, got %d", resp.StatusCode)
	}
	var items []model.Item
	json.NewDecoder(resp.Body).Decode(&items)
	resp.Body.Close()
	if items == nil || len(items) != 0 {
		t.Errorf("expected empty list, got %v", items)
	}
}

func TestAdvanceUnknownItem(t *testing.T) {
	server, _ := setupTestServer(t)

	resp := postJSON(t, server.URL+"/api/items/42/advance", map[string]string{"status": "notified"})
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("expected 404, got %d", resp.StatusCode)
	}
}

func TestTrackingFlow(t *testing.T) {
	server, sender := setupTestServer(t)

	// Create item for owner "Li".
	resp := postJSON(t, server.URL+"/api/items", map[string]string{
		"owner_name":  "Li",
		"description": "Package A",
		"phone":       "12345678901",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d", resp.StatusCode)
	}
	var item model.Item
	json.NewDecoder(resp.Body).Decode(&item)
	resp.Body.Close()

	advanceURL := fmt.Sprintf("%s/api/items/%d/advance", server.URL, item.ID)

	// pending → notified: one SMS attempt.
	resp = postJSON(t, advanceURL, map[string]string{"status": "notified"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("advance to notified: expected 200, got %d", resp.StatusCode)
	}
	var advResp struct {
		Item     model.Item     `json:"item"`
		LogEntry string         `json:"log_entry"`
		Dispatch *notify.Result `json:"dispatch"`
	}
	json.NewDecoder(resp.Body).Decode(&advResp)
	resp.Body.Close()

	if advResp.Item.Status != model.StatusNotified {
		t.Errorf("expected status 'notified', got %q", advResp.Item.Status)
	}
	if sender.calls != 1 {
		t.Errorf("expected exactly 1 SMS attempt, got %d", sender.calls)
	}
	if advResp.Dispatch == nil || !advResp.Dispatch.Sent {
		t.Errorf("expected successful dispatch result, got %+v", advResp.Dispatch)
	}

	// Log has 2 entries.
	if got := logLines(t, server.URL, item.ID); got != 2 {
		t.Errorf("expected 2 log lines, got %d", got)
	}

	// notified → delivered: no further SMS.
	resp = postJSON(t, advanceURL, map[string]string{"status": "delivered"})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("advance to delivered: expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()
	if sender.calls != 1 {
		t.Errorf("expected SMS count unchanged, got %d", sender.calls)
	}
	if got := logLines(t, server.URL, item.ID); got != 3 {
		t.Errorf("expected 3 log lines, got %d", got)
	}

	// delivered → pending is rejected and changes nothing.
	resp = postJSON(t, advanceURL, map[string]string{"status": "pending"})
	if resp.StatusCode != http.StatusConflict {
		t.Errorf("expected 409 for backward move, got %d", resp.StatusCode)
	}
	resp.Body.Close()
	if got := logLines(t, server.URL, item.ID); got != 3 {
		t.Errorf("expected log unchanged at 3 lines, got %d", got)
	}
}

func TestSMSTemplateEndpoints(t *testing.T) {
	server, _ := setupTestServer(t)

	resp, _ := http.Get(server.URL + "/api/settings/sms-template")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var got map[string]string
	json.NewDecoder(resp.Body).Decode(&got)
	resp.Body.Close()
	if got["template"] == "" {
		t.Error("expected a default template")
	}

	data, _ := json.Marshal(map[string]string{"template": "Get {item}"})
	req, _ := http.NewRequest(http.MethodPut, server.URL+"/api/settings/sms-template", bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("PUT sms-template: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Errorf("expected 200, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}

// logLines fetches an item's log and counts its lines.
func logLines(t *testing.T, baseURL string, id int64) int {
	t.Helper()
	resp, err := http.Get(fmt.Sprintf("%s/api/items/%d/log", baseURL, id))
	if err != nil {
		t.Fatalf("GET log: %v", err)
	}
	defer resp.Body.Close()

	var body map[string]string
	json.NewDecoder(resp.Body).Decode(&body)
	log := body["log"]
	if log == "" {
		return 0
	}
	return len(strings.Split(strings.TrimRight(log, "\n"), "\n"))
}
