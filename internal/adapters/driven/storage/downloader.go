package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/custodia-labs/mediaflow-bridge/internal/core/domain"
	"github.com/custodia-labs/mediaflow-bridge/internal/core/ports/driven"
)

// DefaultDownloadTimeout bounds a single remote fetch
const DefaultDownloadTimeout = 60 * time.Second

// Verify interface compliance
var _ driven.Downloader = (*HTTPDownloader)(nil)

// HTTPDownloader fetches remote files into the OS temp directory. Transport
// and status failures surface as *domain.UpstreamError so handlers relay
// them to the caller unchanged.
type HTTPDownloader struct {
	httpClient *http.Client
}

// NewHTTPDownloader creates a downloader with the default timeout
func NewHTTPDownloader() *HTTPDownloader {
	return &HTTPDownloader{
		httpClient: &http.Client{Timeout: DefaultDownloadTimeout},
	}
}

// Download fetches url into a temporary file and returns its path. The
// caller owns the temporary file and must remove it.
func (d *HTTPDownloader) Download(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &domain.UpstreamError{
			Code:    "http_request_failed",
			Status:  http.StatusBadGateway,
			Message: err.Error(),
		}
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return "", &domain.UpstreamError{
			Code:    "http_request_failed",
			Status:  http.StatusBadGateway,
			Message: err.Error(),
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &domain.UpstreamError{
			Code:    "http_request_failed",
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("remote host returned status %d", resp.StatusCode),
		}
	}

	tmp, err := os.CreateTemp("", "mediaflow-download-*")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}

	if _, err := io.Copy(tmp, resp.Body); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", &domain.UpstreamError{
			Code:    "http_request_failed",
			Status:  http.StatusBadGateway,
			Message: err.Error(),
		}
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("closing temp file: %w", err)
	}

	return tmp.Name(), nil
}
