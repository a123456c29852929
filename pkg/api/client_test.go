package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"leadboard/pkg/contacts"
)

func TestNewClient(t *testing.T) {
	t.Run("creates client with defaults", func(t *testing.T) {
		client := NewClient("http://localhost:8080/v1")
		if client == nil {
			t.Fatal("expected non-nil client")
		}
		if client.limit != DefaultLimit {
			t.Errorf("expected limit %d, got %d", DefaultLimit, client.limit)
		}
	})

	t.Run("creates client with custom HTTP client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		client := NewClient("http://localhost:8080/v1", WithHTTPClient(customClient))
		if client.httpClient != customClient {
			t.Error("expected custom HTTP client to be set")
		}
	})

	t.Run("ignores non-positive limit", func(t *testing.T) {
		client := NewClient("http://localhost:8080/v1", WithLimit(0))
		if client.limit != DefaultLimit {
			t.Errorf("expected limit %d, got %d", DefaultLimit, client.limit)
		}
	})
}

func TestClient_FetchSubmissions(t *testing.T) {
	t.Run("successful fetch normalizes records", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/submissions" {
				t.Errorf("expected path /submissions, got %s", r.URL.Path)
			}
			if got := r.URL.Query().Get("limit"); got != "500" {
				t.Errorf("expected limit=500, got %s", got)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
				t.Errorf("expected bearer token, got %q", got)
			}

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"items": [
				{"id": "a1", "name": "Alice", "email": "alice@example.com", "date": "2026-03-01T10:00:00Z"},
				{"id": "a2", "message": "no name on this one"}
			]}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, WithToken("tok123"))
		list, err := client.FetchSubmissions(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(list) != 2 {
			t.Fatalf("expected 2 contacts, got %d", len(list))
		}
		for _, c := range list {
			if c.Status != contacts.StatusNew {
				t.Errorf("expected status New, got %s", c.Status)
			}
			if c.Reminders == nil || len(c.Reminders) != 0 {
				t.Errorf("expected empty reminders, got %v", c.Reminders)
			}
		}

		// Absent fields stay empty, untouched
		if list[1].Name != "" {
			t.Errorf("expected empty name, got %q", list[1].Name)
		}
		if list[1].Message != "no name on this one" {
			t.Errorf("unexpected message %q", list[1].Message)
		}
	})

	t.Run("custom limit is sent", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("limit"); got != "50" {
				t.Errorf("expected limit=50, got %s", got)
			}
			w.Write([]byte(`{"items": []}`))
		}))
		defer server.Close()

		client := NewClient(server.URL, WithLimit(50))
		if _, err := client.FetchSubmissions(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("non-success status yields LoadError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusBadGateway)
		}))
		defer server.Close()

		client := NewClient(server.URL)
		_, err := client.FetchSubmissions(context.Background())
		if err == nil {
			t.Fatal("expected error")
		}

		var loadErr *LoadError
		if !errors.As(err, &loadErr) {
			t.Fatalf("expected *LoadError, got %T", err)
		}
		if loadErr.Message == "" {
			t.Error("expected user-facing message")
		}
	})

	t.Run("transport failure yields LoadError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // refuse all connections

		client := NewClient(server.URL)
		_, err := client.FetchSubmissions(context.Background())

		var loadErr *LoadError
		if !errors.As(err, &loadErr) {
			t.Fatalf("expected *LoadError, got %T", err)
		}
		if loadErr.Unwrap() == nil {
			t.Error("expected wrapped cause")
		}
	})

	t.Run("malformed body yields LoadError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"items": [`))
		}))
		defer server.Close()

		client := NewClient(server.URL)
		_, err := client.FetchSubmissions(context.Background())

		var loadErr *LoadError
		if !errors.As(err, &loadErr) {
			t.Fatalf("expected *LoadError, got %T", err)
		}
	})
}
