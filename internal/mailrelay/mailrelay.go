// Package mailrelay delivers contact messages through the EmailJS REST API.
package mailrelay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultEndpoint is the EmailJS API base URL.
const DefaultEndpoint = "https://api.emailjs.com"

// sendPath is the EmailJS send endpoint relative to the base URL.
const sendPath = "/api/v1.0/email/send"

// ErrSendFailed wraps every delivery failure. Callers do not distinguish
// network, auth and validation failures.
var ErrSendFailed = errors.New("mailrelay: send failed")

// Message is the template payload sent for one contact submission.
type Message struct {
	FromName  string `json:"from_name"`
	FromEmail string `json:"from_email"`
	Phone     string `json:"phone"`
	Message   string `json:"message"`
}

// Credentials identify the EmailJS service, template and account. They are
// passed through unvalidated.
type Credentials struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
}

// sendRequest is the JSON body EmailJS expects.
type sendRequest struct {
	ServiceID      string  `json:"service_id"`
	TemplateID     string  `json:"template_id"`
	UserID         string  `json:"user_id"`
	TemplateParams Message `json:"template_params"`
}

// Client sends messages to EmailJS.
type Client struct {
	endpoint string
	creds    Credentials
	client   *http.Client
}

// NewClient creates a Client. An empty endpoint selects DefaultEndpoint.
func NewClient(endpoint string, creds Credentials, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		endpoint: strings.TrimRight(endpoint, "/"),
		creds:    creds,
		client:   &http.Client{Timeout: timeout},
	}
}

// Send posts msg to the relay. Any transport error or non-2xx response
// is returned wrapped in ErrSendFailed.
func (c *Client) Send(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(sendRequest{
		ServiceID:      c.creds.ServiceID,
		TemplateID:     c.creds.TemplateID,
		UserID:         c.creds.PublicKey,
		TemplateParams: msg,
	})
	if err != nil {
		return fmt.Errorf("%w: marshalling request: %v", ErrSendFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+sendPath, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: creating request: %v", ErrSendFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: relay returned status %d: %s", ErrSendFailed, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}
