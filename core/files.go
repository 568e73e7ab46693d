package core

import (
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ReferenceFile is an opaque attachment descriptor: uploaded study material on
// a syllabus unit or a supporting document on an attendance request. The core
// never looks inside the file; it only carries the metadata around.
type ReferenceFile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"` // media type
	Size int64  `json:"size"` // bytes
}

var errUnsupportedFileType = errors.New("only PDF and image files are allowed")

// NewReferenceFile captures an uploaded file's metadata under a fresh id.
// Only PDFs and images are accepted.
func NewReferenceFile(name, mediaType string, size int64, url string) (ReferenceFile, error) {
	if mediaType != "application/pdf" && !strings.HasPrefix(mediaType, "image/") {
		return ReferenceFile{}, NewValidationError(errUnsupportedFileType, FieldError{Field: "type", Error: errUnsupportedFileType.Error()})
	}
	return ReferenceFile{
		ID:   uuid.NewString(),
		Name: name,
		URL:  url,
		Type: mediaType,
		Size: size,
	}, nil
}
