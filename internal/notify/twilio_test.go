package notify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTwilioTestServer(t *testing.T, handler http.HandlerFunc) *TwilioSender {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	sender := NewTwilioSender("AC0000", "token", "+15551234567", 2*time.Second)
	sender.BaseURL = server.URL
	return sender
}

func TestTwilioSendTextSuccess(t *testing.T) {
	var gotTo, gotFrom, gotBody string
	sender := newTwilioTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/Accounts/AC0000/Messages.json") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if user, pass, ok := r.BasicAuth(); !ok || user != "AC0000" || pass != "token" {
			t.Error("expected basic auth with account credentials")
		}
		r.ParseForm()
		gotTo = r.PostFormValue("To")
		gotFrom = r.PostFormValue("From")
		gotBody = r.PostFormValue("Body")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid": "SM12345"}`))
	})

	result := sender.SendText(context.Background(), "12345678901", "your item arrived")
	if !result.Sent {
		t.Fatalf("expected success, got failure: %s", result.Reason)
	}
	if result.MessageID != "SM12345" {
		t.Errorf("expected message id 'SM12345', got %q", result.MessageID)
	}
	if gotTo != "12345678901" || gotFrom != "+15551234567" || gotBody != "your item arrived" {
		t.Errorf("unexpected form values: to=%q from=%q body=%q", gotTo, gotFrom, gotBody)
	}
}

func TestTwilioSendTextProviderError(t *testing.T) {
	sender := newTwilioTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code": 21211, "message": "invalid 'To' phone number"}`))
	})

	result := sender.SendText(context.Background(), "bogus", "hello")
	if result.Sent {
		t.Fatal("expected failure")
	}
	if !strings.Contains(result.Reason, "invalid 'To' phone number") {
		t.Errorf("expected provider message in reason, got %q", result.Reason)
	}
}

func TestTwilioSendTextTimeout(t *testing.T) {
	sender := newTwilioTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	})
	sender.client = &http.Client{Timeout: 50 * time.Millisecond}

	result := sender.SendText(context.Background(), "12345678901", "hello")
	if result.Sent {
		t.Fatal("expected timeout to be reported as failure")
	}
	if result.Reason == "" {
		t.Error("expected a failure reason")
	}
}

func TestTwilioSendTextMalformedResponse(t *testing.T) {
	sender := newTwilioTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`not json`))
	})

	result := sender.SendText(context.Background(), "12345678901", "hello")
	if result.Sent {
		t.Fatal("expected failure on malformed response")
	}
}

func TestLogSenderAlwaysSucceeds(t *testing.T) {
	result := LogSender{}.SendText(context.Background(), "12345678901", "hello")
	if !result.Sent {
		t.Fatalf("expected success, got %q", result.Reason)
	}
	if !strings.HasPrefix(result.MessageID, "local-") {
		t.Errorf("expected fabricated local message id, got %q", result.MessageID)
	}
}
