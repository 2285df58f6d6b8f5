package mailrelay

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSendPostsTemplatePayload(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != sendPath {
			t.Errorf("path = %s, want %s", r.URL.Path, sendPath)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Content-Type = %q", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding body: %v", err)
		}
		w.Write([]byte("OK"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", Credentials{ServiceID: "svc", TemplateID: "tpl", PublicKey: "pub"}, time.Second)
	msg := Message{FromName: "Nimal", FromEmail: "nimal@example.com", Phone: "0771234567", Message: "New house"}
	if err := c.Send(context.Background(), msg); err != nil {
		t.Fatalf("Send: %v", err)
	}

	if got.ServiceID != "svc" || got.TemplateID != "tpl" || got.UserID != "pub" {
		t.Errorf("ids = %+v", got)
	}
	if got.TemplateParams != msg {
		t.Errorf("template params = %+v, want %+v", got.TemplateParams, msg)
	}
}

func TestSendFailures(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"bad request", http.StatusBadRequest},
		{"unauthorized", http.StatusUnauthorized},
		{"server error", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "The Public Key is invalid", tt.status)
			}))
			defer srv.Close()

			err := NewClient(srv.URL, Credentials{}, time.Second).Send(context.Background(), Message{})
			if !errors.Is(err, ErrSendFailed) {
				t.Errorf("err = %v, want ErrSendFailed", err)
			}
		})
	}
}

func TestSendTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := NewClient(url, Credentials{}, time.Second).Send(context.Background(), Message{})
	if !errors.Is(err, ErrSendFailed) {
		t.Errorf("err = %v, want ErrSendFailed", err)
	}
}

func TestNewClientDefaults(t *testing.T) {
	c := NewClient("", Credentials{}, 0)
	if c.endpoint != DefaultEndpoint {
		t.Errorf("endpoint = %q, want %q", c.endpoint, DefaultEndpoint)
	}
	if c.client.Timeout != 10*time.Second {
		t.Errorf("timeout = %v, want 10s", c.client.Timeout)
	}
}
