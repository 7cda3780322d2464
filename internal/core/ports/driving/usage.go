package driving

import (
	"context"

	"github.com/custodia-labs/mediaflow-bridge/internal/core/domain"
)

// UsageRequest reports a file selection event from the picker widget.
// ID fields tolerate both numbers and numeric strings; Removed keeps the
// original loose truthy parsing. Pointer fields distinguish absent from
// zero for presence validation.
type UsageRequest struct {
	MediaflowID *domain.LooseInt  `json:"mediaflow_id"`
	PostID      *domain.LooseInt  `json:"post_id"`
	User        *string           `json:"user"`
	Removed     *domain.LooseBool `json:"removed,omitempty"`
}

// UsageResult relays the vendor's response verbatim.
type UsageResult struct {
	Status int
	Body   []byte
}

// UsageService forwards usage events to Mediaflow.
type UsageService interface {
	// Ping validates the request, obtains a token and forwards the event.
	// domain.ErrInvalidInput for missing parameters, domain.ErrNoAccessToken
	// when no token is obtainable; otherwise the vendor's raw response.
	Ping(ctx context.Context, req UsageRequest) (*UsageResult, error)
}
