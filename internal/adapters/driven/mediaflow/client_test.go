package mediaflow

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/custodia-labs/mediaflow-bridge/internal/core/domain"
	"github.com/custodia-labs/mediaflow-bridge/internal/core/ports/driven"
)

func testCredentials() domain.Credentials {
	return domain.Credentials{
		ClientID:     "client-1",
		ClientSecret: "secret-1",
		RefreshToken: "refresh-1",
	}
}

func TestClient_ExchangeToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/oauth2/token" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}

		q := r.URL.Query()
		if q.Get("grant_type") != "refresh_token" {
			t.Errorf("expected grant_type refresh_token, got %q", q.Get("grant_type"))
		}
		if q.Get("client_id") != "client-1" || q.Get("client_secret") != "secret-1" || q.Get("refresh_token") != "refresh-1" {
			t.Errorf("credentials not passed as query parameters: %v", q)
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "access-xyz",
			"expires_in":   3600,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.ExchangeToken(context.Background(), testCredentials())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.AccessToken != "access-xyz" {
		t.Errorf("expected access token, got %q", resp.AccessToken)
	}
	if resp.ExpiresIn != 3600 {
		t.Errorf("expected expires_in 3600, got %d", resp.ExpiresIn)
	}
}

func TestClient_ExchangeToken_NonOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.ExchangeToken(context.Background(), testCredentials()); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}

func TestClient_ExchangeToken_MissingAccessToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"expires_in":3600}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.ExchangeToken(context.Background(), testCredentials()); err == nil {
		t.Fatal("expected error for response without access_token")
	}
}

func TestClient_ReportUsage(t *testing.T) {
	var got driven.UsagePayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/file/123/usage" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer tok-1" {
			t.Errorf("unexpected authorization header: %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		_, _ = w.Write([]byte(`{"status":1}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	payload := driven.UsagePayload{
		Amount:  "1",
		Date:    "2026-08-29 12:00:00",
		Project: "WordPress",
		Contact: "Editor",
		Removed: "false",
		Types:   []string{"web"},
		Web:     driven.WebUsage{Page: "https://example.com/p", PageName: "P"},
	}

	resp, err := client.ReportUsage(context.Background(), "tok-1", 123, payload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Status != 200 {
		t.Errorf("expected status 200, got %d", resp.Status)
	}
	if string(resp.Body) != `{"status":1}` {
		t.Errorf("expected raw body, got %q", resp.Body)
	}
	if got.Amount != "1" || got.Removed != "false" || got.Web.PageName != "P" {
		t.Errorf("payload not forwarded intact: %+v", got)
	}
}

func TestClient_ReportUsage_NonOKIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"errorCode":12}`))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.ReportUsage(context.Background(), "tok-1", 123, driven.UsagePayload{})
	if err != nil {
		t.Fatalf("expected non-2xx vendor response to pass through, got %v", err)
	}
	if resp.Status != http.StatusUnprocessableEntity {
		t.Errorf("expected 422 relayed, got %d", resp.Status)
	}
	if string(resp.Body) != `{"errorCode":12}` {
		t.Errorf("expected vendor body relayed, got %q", resp.Body)
	}
}

func TestClient_ReportUsage_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused

	client := NewClient(server.URL)
	_, err := client.ReportUsage(context.Background(), "tok-1", 123, driven.UsagePayload{})

	ue, ok := domain.AsUpstreamError(err)
	if !ok {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if ue.Code != "http_request_failed" {
		t.Errorf("expected http_request_failed, got %q", ue.Code)
	}
	if ue.Status != http.StatusBadGateway {
		t.Errorf("expected 502, got %d", ue.Status)
	}
}
