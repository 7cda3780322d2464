package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/custodia-labs/mediaflow-bridge/internal/core/domain"
	"github.com/custodia-labs/mediaflow-bridge/internal/core/ports/driven"
	"github.com/custodia-labs/mediaflow-bridge/internal/core/ports/driven/mocks"
	"github.com/custodia-labs/mediaflow-bridge/internal/core/ports/driving"
)

func newTestImportService() (*mocks.MockDownloader, *mocks.MockMediaStore, *mocks.MockAttachmentStore, driving.ImportService) {
	downloader := mocks.NewMockDownloader()
	mediaStore := mocks.NewMockMediaStore()
	attachmentStore := mocks.NewMockAttachmentStore()
	svc := NewImportService(downloader, mediaStore, attachmentStore, nil)
	return downloader, mediaStore, attachmentStore, svc
}

func validImportRequest() driving.ImportRequest {
	return driving.ImportRequest{
		URL:      "https://mcdn.example.com/file.jpg",
		Filename: "file.jpg",
		ID:       555,
	}
}

func TestImportService_MissingParameters(t *testing.T) {
	tests := []struct {
		name string
		req  driving.ImportRequest
	}{
		{"missing url", driving.ImportRequest{Filename: "f.jpg", ID: 1}},
		{"missing filename", driving.ImportRequest{URL: "https://x/f.jpg", ID: 1}},
		{"missing id", driving.ImportRequest{URL: "https://x/f.jpg", Filename: "f.jpg"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			downloader, _, _, svc := newTestImportService()

			_, err := svc.Import(context.Background(), tt.req)
			if !errors.Is(err, domain.ErrInvalidInput) {
				t.Errorf("expected ErrInvalidInput, got %v", err)
			}
			if downloader.Calls != 0 {
				t.Errorf("expected no download attempt, got %d", downloader.Calls)
			}
		})
	}
}

func TestImportService_DownloadErrorRelayedUnchanged(t *testing.T) {
	downloader, _, attachmentStore, svc := newTestImportService()
	upstream := &domain.UpstreamError{Code: "http_request_failed", Status: 502, Message: "connection refused"}
	downloader.DownloadFunc = func(ctx context.Context, url string) (string, error) {
		return "", upstream
	}

	_, err := svc.Import(context.Background(), validImportRequest())
	if !errors.Is(err, upstream) {
		t.Errorf("expected download error relayed unchanged, got %v", err)
	}

	// Nothing was inserted
	if _, err := attachmentStore.Get(context.Background(), 1); !errors.Is(err, domain.ErrNotFound) {
		t.Error("expected no attachment record after failed download")
	}
}

func TestImportService_SideloadFailure(t *testing.T) {
	downloader, mediaStore, attachmentStore, svc := newTestImportService()

	tmp := filepath.Join(t.TempDir(), "leftover")
	if err := os.WriteFile(tmp, []byte("data"), 0o600); err != nil {
		t.Fatal(err)
	}
	downloader.DownloadFunc = func(ctx context.Context, url string) (string, error) {
		return tmp, nil
	}
	mediaStore.SideloadFunc = func(ctx context.Context, tmpPath, filename string) (*driven.StoredFile, error) {
		return nil, errors.New("disk full")
	}

	_, err := svc.Import(context.Background(), validImportRequest())
	ue, ok := domain.AsUpstreamError(err)
	if !ok {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if ue.Code != "mediaflow_sideload" {
		t.Errorf("expected code mediaflow_sideload, got %q", ue.Code)
	}
	if ue.Status != 400 {
		t.Errorf("expected status 400, got %d", ue.Status)
	}

	// The temporary file was cleaned up and nothing was inserted
	if _, err := os.Stat(tmp); !os.IsNotExist(err) {
		t.Error("expected temporary file removed after sideload failure")
	}
	if _, err := attachmentStore.Get(context.Background(), 1); !errors.Is(err, domain.ErrNotFound) {
		t.Error("expected no attachment record after sideload failure")
	}
}

func TestImportService_SuccessfulImport(t *testing.T) {
	_, _, attachmentStore, svc := newTestImportService()

	req := validImportRequest()
	req.AltText = "A red bicycle"

	id, err := svc.Import(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id == 0 {
		t.Fatal("expected attachment ID to be returned")
	}

	a, err := attachmentStore.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("expected attachment record: %v", err)
	}
	if a.Status != domain.AttachmentStatusInherit {
		t.Errorf("expected inherit status, got %q", a.Status)
	}
	if a.MimeType != "image/jpeg" {
		t.Errorf("unexpected mime type: %q", a.MimeType)
	}
	if got := a.Metadata[domain.MetadataKeyMediaflowID]; got != int64(555) {
		t.Errorf("expected mediaflow_id 555 in metadata, got %v", got)
	}
	if a.AltText != "A red bicycle" {
		t.Errorf("expected alt text set, got %q", a.AltText)
	}
}

func TestImportService_NoAltTextLeavesFieldUntouched(t *testing.T) {
	_, _, attachmentStore, svc := newTestImportService()

	id, err := svc.Import(context.Background(), validImportRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	a, err := attachmentStore.Get(context.Background(), id)
	if err != nil {
		t.Fatalf("expected attachment record: %v", err)
	}
	if a.AltText != "" {
		t.Errorf("expected empty alt text, got %q", a.AltText)
	}
}

func TestImportService_MetadataFailureDoesNotFailImport(t *testing.T) {
	_, mediaStore, attachmentStore, svc := newTestImportService()
	mediaStore.MetadataErr = errors.New("probe failed")
	attachmentStore.MetadataErr = nil

	id, err := svc.Import(context.Background(), validImportRequest())
	if err != nil {
		t.Fatalf("expected import to succeed despite metadata failure, got %v", err)
	}
	if id == 0 {
		t.Fatal("expected attachment ID")
	}
}

func TestImportService_InsertErrorPropagates(t *testing.T) {
	_, _, attachmentStore, svc := newTestImportService()
	attachmentStore.InsertErr = errors.New("db down")

	_, err := svc.Import(context.Background(), validImportRequest())
	if err == nil {
		t.Fatal("expected error when insert fails")
	}
}
