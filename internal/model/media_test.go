package model

import (
	"strings"
	"testing"
	"time"

	"github.com/fhuszti/medias-catalog-go/internal/uuid"
	guuid "github.com/google/uuid"
)

func TestFileTypeFromMediaType(t *testing.T) {
	tests := []struct {
		in   string
		want FileType
	}{
		{"image/png", FileTypeImage},
		{"IMAGE/JPEG", FileTypeImage},
		{"video/mp4", FileTypeVideo},
		{"audio/mpeg", FileTypeAudio},
		{" audio/ogg ", FileTypeAudio},
		{"application/pdf", FileTypeUnknown},
		{"", FileTypeUnknown},
		{"image", FileTypeImage},
	}
	for _, tc := range tests {
		if got := FileTypeFromMediaType(tc.in); got != tc.want {
			t.Errorf("FileTypeFromMediaType(%q) = %q; want %q", tc.in, got, tc.want)
		}
	}
}

func TestFileType_IsValid(t *testing.T) {
	for _, ft := range []FileType{FileTypeImage, FileTypeVideo, FileTypeAudio, FileTypeUnknown} {
		if !ft.IsValid() {
			t.Errorf("%q should be valid", ft)
		}
	}
	if FileType("document").IsValid() {
		t.Error(`"document" should not be valid`)
	}
}

func TestMedia_Clone(t *testing.T) {
	size := int64(2048)
	m := Media{ID: uuid.NewUUID(), FileName: "a.png", FileSize: &size}

	c := m.Clone()
	*c.FileSize = 1

	if *m.FileSize != 2048 {
		t.Errorf("original FileSize mutated through clone: %d", *m.FileSize)
	}

	noSize := Media{FileName: "b.png"}.Clone()
	if noSize.FileSize != nil {
		t.Errorf("expected nil FileSize, got %v", *noSize.FileSize)
	}
}

func validMedia() Media {
	return Media{
		ID:          uuid.NewUUID(),
		FileName:    "a.png",
		Description: "cat photo",
		UploadDate:  time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
		FileType:    FileTypeImage,
	}
}

func TestSnapshot_Check(t *testing.T) {
	dup := validMedia()
	negative := int64(-1)

	tests := []struct {
		name    string
		mutate  func(s *Snapshot)
		wantErr string
	}{
		{"valid", func(s *Snapshot) {}, ""},
		{"empty", func(s *Snapshot) { s.MediaItems = nil }, ""},
		{"bad version", func(s *Snapshot) { s.Version = "2.0" }, "unsupported snapshot version"},
		{"missing id", func(s *Snapshot) { s.MediaItems[0].ID = uuid.UUID(guuid.Nil) }, "missing id"},
		{"duplicate id", func(s *Snapshot) { s.MediaItems = []Media{dup, dup} }, "duplicate id"},
		{"missing file name", func(s *Snapshot) { s.MediaItems[0].FileName = "" }, "missing file name"},
		{"missing description", func(s *Snapshot) { s.MediaItems[0].Description = "" }, "missing description"},
		{"missing upload date", func(s *Snapshot) { s.MediaItems[0].UploadDate = time.Time{} }, "missing upload date"},
		{"invalid file type", func(s *Snapshot) { s.MediaItems[0].FileType = "doc" }, "invalid file type"},
		{"negative size", func(s *Snapshot) { s.MediaItems[0].FileSize = &negative }, "negative file size"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := Snapshot{MediaItems: []Media{validMedia()}, Version: SnapshotVersion}
			tc.mutate(&s)

			err := s.Check()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("expected error containing %q, got %v", tc.wantErr, err)
			}
		})
	}
}
