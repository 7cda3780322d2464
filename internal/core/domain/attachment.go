package domain

import "time"

// AttachmentStatus mirrors the host media library's post status model.
const AttachmentStatusInherit = "inherit"

// Attachment is the media library's stored-media record. It is created by
// the file import flow and owned by the media library afterwards.
type Attachment struct {
	ID        int64          `json:"id"`
	GUID      string         `json:"guid"` // public URL of the stored file
	FilePath  string         `json:"file_path"`
	MimeType  string         `json:"mime_type"`
	Title     string         `json:"title"`
	Content   string         `json:"content"`
	Status    string         `json:"status"`
	ParentID  int64          `json:"parent_id"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	AltText   string         `json:"alt_text,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// MetadataKeyMediaflowID is the metadata key tagging an attachment with the
// Mediaflow file it was imported from.
const MetadataKeyMediaflowID = "mediaflow_id"

// Post is a content entry referenced by usage reports. Only the fields the
// Mediaflow usage payload needs are modelled.
type Post struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Permalink string `json:"permalink"`
}
