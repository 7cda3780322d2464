package services

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/custodia-labs/mediaflow-bridge/internal/core/domain"
	"github.com/custodia-labs/mediaflow-bridge/internal/core/ports/driven"
	"github.com/custodia-labs/mediaflow-bridge/internal/core/ports/driving"
)

// Ensure importService implements ImportService
var _ driving.ImportService = (*importService)(nil)

// importService registers externally hosted Mediaflow files as local
// attachments: download, sideload into permanent storage, insert the
// attachment record, tag it with the Mediaflow file ID.
type importService struct {
	downloader      driven.Downloader
	mediaStore      driven.MediaStore
	attachmentStore driven.AttachmentStore
	logger          *slog.Logger
}

// NewImportService creates an ImportService.
func NewImportService(
	downloader driven.Downloader,
	mediaStore driven.MediaStore,
	attachmentStore driven.AttachmentStore,
	logger *slog.Logger,
) driving.ImportService {
	if logger == nil {
		logger = slog.Default()
	}
	return &importService{
		downloader:      downloader,
		mediaStore:      mediaStore,
		attachmentStore: attachmentStore,
		logger:          logger,
	}
}

// Import runs the import pipeline and returns the new attachment ID.
//
// There is no rollback once the sideload has succeeded: if tagging the
// metadata or setting the alt text fails, the attachment exists without
// vendor metadata. That inconsistency window matches the original flow.
func (s *importService) Import(ctx context.Context, req driving.ImportRequest) (int64, error) {
	if req.URL == "" || req.Filename == "" || req.ID == 0 {
		return 0, domain.ErrInvalidInput
	}

	tmpPath, err := s.downloader.Download(ctx, req.URL)
	if err != nil {
		// Relay the download error unchanged.
		return 0, err
	}

	stored, err := s.mediaStore.Sideload(ctx, tmpPath, filepath.Base(req.Filename))
	if err != nil {
		_ = os.Remove(tmpPath)
		return 0, &domain.UpstreamError{
			Code:    "mediaflow_sideload",
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	attachment := &domain.Attachment{
		GUID:     stored.URL,
		FilePath: stored.Path,
		MimeType: stored.Type,
		Title:    filepath.Base(stored.Path),
		Content:  "",
		Status:   domain.AttachmentStatusInherit,
		ParentID: 0,
	}

	id, err := s.attachmentStore.Insert(ctx, attachment)
	if err != nil {
		return 0, err
	}

	metadata, err := s.mediaStore.GenerateMetadata(ctx, stored)
	if err != nil {
		s.logger.Warn("attachment metadata generation failed", "attachment_id", id, "error", err)
		metadata = map[string]any{}
	}
	metadata[domain.MetadataKeyMediaflowID] = req.ID

	if err := s.attachmentStore.UpdateMetadata(ctx, id, metadata); err != nil {
		s.logger.Warn("attachment metadata update failed", "attachment_id", id, "error", err)
	}

	if req.AltText != "" {
		if err := s.attachmentStore.SetAltText(ctx, id, req.AltText); err != nil {
			s.logger.Warn("attachment alt text update failed", "attachment_id", id, "error", err)
		}
	}

	return id, nil
}
