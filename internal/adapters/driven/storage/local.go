package storage

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/custodia-labs/mediaflow-bridge/internal/core/domain"
	"github.com/custodia-labs/mediaflow-bridge/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.MediaStore = (*LocalMediaStore)(nil)

// LocalMediaStore stores media files under a year/month directory layout in
// a local uploads directory, served at a public base URL.
type LocalMediaStore struct {
	uploadsDir string
	baseURL    string
	now        func() time.Time
}

// NewLocalMediaStore creates a media store rooted at uploadsDir. baseURL is
// the public URL prefix under which uploadsDir is served.
func NewLocalMediaStore(uploadsDir, baseURL string) *LocalMediaStore {
	return &LocalMediaStore{
		uploadsDir: uploadsDir,
		baseURL:    strings.TrimRight(baseURL, "/"),
		now:        time.Now,
	}
}

// Sideload moves the temporary file into the uploads area under a
// collision-free name derived from filename.
func (s *LocalMediaStore) Sideload(ctx context.Context, tmpPath, filename string) (*driven.StoredFile, error) {
	filename = sanitizeFilename(filename)
	if filename == "" {
		return nil, &domain.UpstreamError{
			Code:    "mediaflow_sideload",
			Status:  http.StatusBadRequest,
			Message: "invalid filename",
		}
	}

	t := s.now()
	subdir := fmt.Sprintf("%04d/%02d", t.Year(), t.Month())
	dir := filepath.Join(s.uploadsDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &domain.UpstreamError{
			Code:    "mediaflow_sideload",
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	unique, err := uniqueFilename(dir, filename)
	if err != nil {
		return nil, &domain.UpstreamError{
			Code:    "mediaflow_sideload",
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		}
	}
	dest := filepath.Join(dir, unique)

	size, err := moveFile(tmpPath, dest)
	if err != nil {
		return nil, &domain.UpstreamError{
			Code:    "mediaflow_sideload",
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	mimeType, err := detectMimeType(dest)
	if err != nil {
		os.Remove(dest)
		return nil, &domain.UpstreamError{
			Code:    "mediaflow_sideload",
			Status:  http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return &driven.StoredFile{
		Path: dest,
		URL:  s.baseURL + "/" + subdir + "/" + unique,
		Type: mimeType,
		Size: size,
	}, nil
}

// GenerateMetadata builds the standard attachment metadata for a stored file.
func (s *LocalMediaStore) GenerateMetadata(ctx context.Context, stored *driven.StoredFile) (map[string]any, error) {
	rel, err := filepath.Rel(s.uploadsDir, stored.Path)
	if err != nil {
		rel = filepath.Base(stored.Path)
	}

	return map[string]any{
		"file":      filepath.ToSlash(rel),
		"filesize":  stored.Size,
		"mime_type": stored.Type,
	}, nil
}

// sanitizeFilename strips path components and characters unsafe in a URL
// path segment.
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == ".." || name == "/" {
		return ""
	}

	var b strings.Builder
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), ".")
}

// uniqueFilename returns name, or name with a numeric suffix before the
// extension when a file with that name already exists in dir.
func uniqueFilename(dir, name string) (string, error) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	candidate := name
	for i := 1; ; i++ {
		_, err := os.Stat(filepath.Join(dir, candidate))
		if os.IsNotExist(err) {
			return candidate, nil
		}
		if err != nil {
			return "", err
		}
		candidate = fmt.Sprintf("%s-%d%s", stem, i, ext)
	}
}

// moveFile moves src to dest, falling back to copy+remove when the paths
// are on different filesystems.
func moveFile(src, dest string) (int64, error) {
	if err := os.Rename(src, dest); err == nil {
		info, err := os.Stat(dest)
		if err != nil {
			return 0, err
		}
		return info.Size(), nil
	}

	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return 0, err
	}

	size, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		os.Remove(dest)
		return 0, err
	}
	if err := out.Close(); err != nil {
		os.Remove(dest)
		return 0, err
	}

	os.Remove(src)
	return size, nil
}

// detectMimeType sniffs the file contents, preferring the extension mapping
// when sniffing yields only a generic type.
func detectMimeType(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	buf := make([]byte, 512)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}

	sniffed := http.DetectContentType(buf[:n])
	if idx := strings.Index(sniffed, ";"); idx >= 0 {
		sniffed = sniffed[:idx]
	}

	if sniffed == "application/octet-stream" || sniffed == "text/plain" {
		if byExt := mime.TypeByExtension(filepath.Ext(path)); byExt != "" {
			if idx := strings.Index(byExt, ";"); idx >= 0 {
				byExt = byExt[:idx]
			}
			return byExt, nil
		}
	}

	return sniffed, nil
}
