package model

import "strings"

const MaxDescriptionLength = 500

// AcceptedMediaTypes are the declared types an upload may carry.
var AcceptedMediaTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
	"video/mp4":  true,
	"video/webm": true,
	"video/ogg":  true,
	"audio/mpeg": true,
	"audio/wav":  true,
	"audio/ogg":  true,
}

func IsAcceptedMediaType(mediaType string) bool {
	return AcceptedMediaTypes[strings.ToLower(strings.TrimSpace(mediaType))]
}

// Label is the human readable name of the file type.
func (t FileType) Label() string {
	switch t {
	case FileTypeImage:
		return "Image"
	case FileTypeVideo:
		return "Video"
	case FileTypeAudio:
		return "Audio"
	default:
		return "Unknown"
	}
}
