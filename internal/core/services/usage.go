package services

import (
	"context"
	"time"

	"github.com/custodia-labs/mediaflow-bridge/internal/core/domain"
	"github.com/custodia-labs/mediaflow-bridge/internal/core/ports/driven"
	"github.com/custodia-labs/mediaflow-bridge/internal/core/ports/driving"
)

// usageTimeFormat is the timestamp layout Mediaflow expects in usage reports.
const usageTimeFormat = "2006-01-02 15:04:05"

// Ensure usageService implements UsageService
var _ driving.UsageService = (*usageService)(nil)

// usageService forwards usage events to Mediaflow's per-file usage endpoint.
// The vendor response is relayed verbatim; usage events are never persisted
// locally.
type usageService struct {
	tokens       driving.TokenProvider
	contentStore driven.ContentStore
	api          driven.MediaflowAPI
	projectName  string

	// now is swappable for tests; defaults to time.Now.
	now func() time.Time
}

// NewUsageService creates a UsageService. projectName labels the usage
// reports in Mediaflow's project column.
func NewUsageService(
	tokens driving.TokenProvider,
	contentStore driven.ContentStore,
	api driven.MediaflowAPI,
	projectName string,
) driving.UsageService {
	return &usageService{
		tokens:       tokens,
		contentStore: contentStore,
		api:          api,
		projectName:  projectName,
		now:          time.Now,
	}
}

// Ping validates the request, obtains a token and forwards the usage event.
func (s *usageService) Ping(ctx context.Context, req driving.UsageRequest) (*driving.UsageResult, error) {
	if req.PostID == nil || req.MediaflowID == nil || req.User == nil {
		return nil, domain.ErrInvalidInput
	}

	token, err := s.tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	removed := false
	if req.Removed != nil {
		removed = bool(*req.Removed)
	}

	// A missing post yields empty page fields, mirroring the original's
	// tolerance for stale post IDs.
	var page, pageName string
	if post, err := s.contentStore.GetPost(ctx, int64(*req.PostID)); err == nil {
		page = post.Permalink
		pageName = post.Title
	} else if err != domain.ErrNotFound {
		return nil, err
	}

	payload := driven.UsagePayload{
		Amount:  "1",
		Date:    s.now().Format(usageTimeFormat),
		Project: s.projectName,
		Contact: *req.User,
		Removed: boolString(removed),
		Types:   []string{"web"},
		Web: driven.WebUsage{
			Page:     page,
			PageName: pageName,
		},
	}

	resp, err := s.api.ReportUsage(ctx, token, int64(*req.MediaflowID), payload)
	if err != nil {
		return nil, err
	}

	return &driving.UsageResult{Status: resp.Status, Body: resp.Body}, nil
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
