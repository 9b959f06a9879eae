package domain

import (
	"context"
	"io"
)

// MaxUploadBytes is the upload size limit (5 MiB).
const MaxUploadBytes = 5 << 20

// AllowedImageExtensions is the filename extension allow-list for uploads.
var AllowedImageExtensions = []string{".jpg", ".jpeg", ".png", ".webp", ".gif"}

// UploadInput carries one file from a multipart request.
type UploadInput struct {
	Filename    string
	ContentType string
	Size        int64
	File        io.Reader
}

// FileStore persists an uploaded file under the given name.
type FileStore interface {
	Save(name string, r io.Reader) error
}

// UploadService validates and stores an uploaded image, returning the public
// reference path.
type UploadService interface {
	Store(ctx context.Context, in UploadInput) (url string, err error)
}
