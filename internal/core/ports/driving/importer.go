package driving

import "context"

// ImportRequest registers an externally hosted Mediaflow file as a local
// attachment. ID is the Mediaflow file identifier.
type ImportRequest struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
	ID       int64  `json:"id"`
	AltText  string `json:"altText,omitempty"`
}

// ImportService downloads a remote file and stores it as an attachment.
type ImportService interface {
	// Import runs the download/sideload/insert pipeline and returns the new
	// attachment ID. Download and insert failures propagate as-is; sideload
	// failures surface as *domain.UpstreamError with code
	// "mediaflow_sideload".
	Import(ctx context.Context, req ImportRequest) (int64, error)
}
