package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTwilioBaseURL = "https://api.twilio.com/2010-04-01"

// TwilioSender sends SMS through the Twilio Messages REST API. Credentials
// are injected at construction, never read from the environment here.
type TwilioSender struct {
	// BaseURL can be overridden in tests; defaults to the Twilio API.
	BaseURL string

	accountSID string
	authToken  string
	from       string
	client     *http.Client
}

// NewTwilioSender creates a sender for the given account. timeout bounds the
// whole provider call; a timed-out call is reported as a failed Result, never
// a hang. A zero timeout defaults to 10 seconds.
func NewTwilioSender(accountSID, authToken, from string, timeout time.Duration) *TwilioSender {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &TwilioSender{
		BaseURL:    defaultTwilioBaseURL,
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		client:     &http.Client{Timeout: timeout},
	}
}

// SendText posts one message to the Twilio Messages endpoint.
func (s *TwilioSender) SendText(ctx context.Context, phone, body string) Result {
	form := url.Values{}
	form.Set("To", phone)
	form.Set("From", s.from)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", s.BaseURL, s.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return Failed(fmt.Sprintf("building request: %v", err))
	}
	req.SetBasicAuth(s.accountSID, s.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.client.Do(req)
	if err != nil {
		return Failed(fmt.Sprintf("sending SMS: %v", err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return Failed(fmt.Sprintf("reading provider response: %v", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			return Failed(fmt.Sprintf("provider rejected message: %s", apiErr.Message))
		}
		return Failed(fmt.Sprintf("provider returned status %d", resp.StatusCode))
	}

	var msg struct {
		SID string `json:"sid"`
	}
	if err := json.Unmarshal(raw, &msg); err != nil || msg.SID == "" {
		return Failed("provider response missing message sid")
	}
	return Sent(msg.SID)
}
