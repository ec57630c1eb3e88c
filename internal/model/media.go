package model

import (
	"strings"
	"time"

	"github.com/fhuszti/medias-catalog-go/internal/uuid"
)

type FileType string

const (
	FileTypeImage   FileType = "image"
	FileTypeVideo   FileType = "video"
	FileTypeAudio   FileType = "audio"
	FileTypeUnknown FileType = "unknown"
)

// IsValid reports whether t is one of the four known file types.
func (t FileType) IsValid() bool {
	switch t {
	case FileTypeImage, FileTypeVideo, FileTypeAudio, FileTypeUnknown:
		return true
	default:
		return false
	}
}

// FileTypeFromMediaType derives the file type from a declared media type such as "image/png".
func FileTypeFromMediaType(mediaType string) FileType {
	major, _, _ := strings.Cut(strings.ToLower(strings.TrimSpace(mediaType)), "/")
	switch major {
	case "image":
		return FileTypeImage
	case "video":
		return FileTypeVideo
	case "audio":
		return FileTypeAudio
	default:
		return FileTypeUnknown
	}
}

type Media struct {
	ID          uuid.UUID `json:"id"`
	FileName    string    `json:"fileName"`
	Description string    `json:"description"`
	UploadDate  time.Time `json:"uploadDate"`
	FileType    FileType  `json:"fileType"`
	FileSize    *int64    `json:"fileSize,omitempty"`
}

// Clone returns a copy of m that shares no memory with it.
func (m Media) Clone() Media {
	if m.FileSize != nil {
		size := *m.FileSize
		m.FileSize = &size
	}
	return m
}
