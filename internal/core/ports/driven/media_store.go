package driven

import "context"

// StoredFile describes a file moved into permanent media storage.
type StoredFile struct {
	Path string // absolute path on disk
	URL  string // public URL of the stored file
	Type string // detected MIME type
	Size int64
}

// Downloader fetches a remote file to a local temporary location. Failures
// surface as *domain.UpstreamError so the handler can relay them unchanged.
type Downloader interface {
	// Download fetches url and returns the temporary file path. The caller
	// owns the temporary file.
	Download(ctx context.Context, url string) (string, error)
}

// MediaStore moves downloaded files into permanent media storage.
type MediaStore interface {
	// Sideload moves the temporary file into the uploads area under a
	// collision-free name derived from filename, detecting the MIME type
	// from the file contents.
	Sideload(ctx context.Context, tmpPath, filename string) (*StoredFile, error)

	// GenerateMetadata builds the standard attachment metadata document for
	// a stored file.
	GenerateMetadata(ctx context.Context, stored *StoredFile) (map[string]any, error)
}
