package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/custodia-labs/mediaflow-bridge/internal/core/domain"
	"github.com/custodia-labs/mediaflow-bridge/internal/core/ports/driven"
	"github.com/custodia-labs/mediaflow-bridge/internal/core/ports/driven/mocks"
	"github.com/custodia-labs/mediaflow-bridge/internal/core/ports/driving"
)

// staticTokens is a TokenProvider returning a fixed token or error
type staticTokens struct {
	token string
	err   error
}

func (s *staticTokens) AccessToken(ctx context.Context) (string, error) {
	return s.token, s.err
}

func looseInt(v int64) *domain.LooseInt {
	li := domain.LooseInt(v)
	return &li
}

func looseBool(v bool) *domain.LooseBool {
	lb := domain.LooseBool(v)
	return &lb
}

func strPtr(s string) *string {
	return &s
}

func validUsageRequest() driving.UsageRequest {
	return driving.UsageRequest{
		MediaflowID: looseInt(123),
		PostID:      looseInt(7),
		User:        strPtr("Editor Name"),
	}
}

func TestUsageService_MissingParameters(t *testing.T) {
	tests := []struct {
		name string
		req  driving.UsageRequest
	}{
		{"missing mediaflow id", driving.UsageRequest{PostID: looseInt(1), User: strPtr("u")}},
		{"missing post id", driving.UsageRequest{MediaflowID: looseInt(1), User: strPtr("u")}},
		{"missing user", driving.UsageRequest{MediaflowID: looseInt(1), PostID: looseInt(1)}},
		{"empty request", driving.UsageRequest{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := mocks.NewMockMediaflowAPI()
			svc := NewUsageService(&staticTokens{token: "tok"}, mocks.NewMockContentStore(), api, "WordPress")

			_, err := svc.Ping(context.Background(), tt.req)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
			if api.UsageCalls != 0 {
				t.Errorf("expected no outbound call, got %d", api.UsageCalls)
			}
		})
	}
}

func TestUsageService_NoTokenNoOutboundCall(t *testing.T) {
	api := mocks.NewMockMediaflowAPI()
	svc := NewUsageService(&staticTokens{err: domain.ErrNoAccessToken}, mocks.NewMockContentStore(), api, "WordPress")

	_, err := svc.Ping(context.Background(), validUsageRequest())
	if !errors.Is(err, domain.ErrNoAccessToken) {
		t.Errorf("expected ErrNoAccessToken, got %v", err)
	}
	if api.UsageCalls != 0 {
		t.Errorf("expected no outbound call without token, got %d", api.UsageCalls)
	}
}

func TestUsageService_PayloadContents(t *testing.T) {
	api := mocks.NewMockMediaflowAPI()
	content := mocks.NewMockContentStore()
	content.AddPost(&domain.Post{ID: 7, Title: "About us", Permalink: "https://example.com/about"})

	svc := NewUsageService(&staticTokens{token: "tok"}, content, api, "WordPress").(*usageService)
	svc.now = func() time.Time {
		return time.Date(2026, 8, 29, 14, 30, 5, 0, time.UTC)
	}

	req := validUsageRequest()
	req.Removed = looseBool(true)

	result, err := svc.Ping(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != 200 {
		t.Errorf("expected relayed status 200, got %d", result.Status)
	}

	if api.LastToken != "tok" {
		t.Errorf("expected bearer token forwarded, got %q", api.LastToken)
	}
	if api.LastFileID != 123 {
		t.Errorf("expected file ID 123, got %d", api.LastFileID)
	}

	p := api.LastPayload
	if p.Amount != "1" {
		t.Errorf("expected amount \"1\", got %q", p.Amount)
	}
	if p.Date != "2026-08-29 14:30:05" {
		t.Errorf("unexpected date format: %q", p.Date)
	}
	if p.Project != "WordPress" {
		t.Errorf("expected project WordPress, got %q", p.Project)
	}
	if p.Contact != "Editor Name" {
		t.Errorf("expected contact from request, got %q", p.Contact)
	}
	if p.Removed != "true" {
		t.Errorf("expected removed \"true\", got %q", p.Removed)
	}
	if len(p.Types) != 1 || p.Types[0] != "web" {
		t.Errorf("expected types [web], got %v", p.Types)
	}
	if p.Web.Page != "https://example.com/about" || p.Web.PageName != "About us" {
		t.Errorf("unexpected web usage: %+v", p.Web)
	}
}

func TestUsageService_RemovedDefaultsFalse(t *testing.T) {
	api := mocks.NewMockMediaflowAPI()
	svc := NewUsageService(&staticTokens{token: "tok"}, mocks.NewMockContentStore(), api, "WordPress")

	if _, err := svc.Ping(context.Background(), validUsageRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.LastPayload.Removed != "false" {
		t.Errorf("expected removed \"false\", got %q", api.LastPayload.Removed)
	}
}

func TestUsageService_UnknownPostYieldsEmptyPageFields(t *testing.T) {
	api := mocks.NewMockMediaflowAPI()
	svc := NewUsageService(&staticTokens{token: "tok"}, mocks.NewMockContentStore(), api, "WordPress")

	if _, err := svc.Ping(context.Background(), validUsageRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if api.LastPayload.Web.Page != "" || api.LastPayload.Web.PageName != "" {
		t.Errorf("expected empty web usage for unknown post, got %+v", api.LastPayload.Web)
	}
}

func TestUsageService_VendorResponseRelayedVerbatim(t *testing.T) {
	api := mocks.NewMockMediaflowAPI()
	api.ReportUsageFunc = func(ctx context.Context, token string, fileID int64, payload driven.UsagePayload) (*driven.UpstreamResponse, error) {
		return &driven.UpstreamResponse{Status: 422, Body: []byte(`{"errorCode":99}`)}, nil
	}
	svc := NewUsageService(&staticTokens{token: "tok"}, mocks.NewMockContentStore(), api, "WordPress")

	result, err := svc.Ping(context.Background(), validUsageRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != 422 {
		t.Errorf("expected vendor status 422, got %d", result.Status)
	}
	if string(result.Body) != `{"errorCode":99}` {
		t.Errorf("expected vendor body relayed, got %q", result.Body)
	}
}
