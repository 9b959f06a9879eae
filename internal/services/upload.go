package services

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"slices"
	"strings"
	"time"

	"communitycalendar/internal/domain"
)

// unsafeFilenameChars matches everything that is not kept as-is in a stored
// filename.
var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.]`)

type uploadService struct {
	files domain.FileStore
}

func NewUploadService(files domain.FileStore) domain.UploadService {
	return &uploadService{
		files: files,
	}
}

// Store validates the upload and writes it to the file store. Checks run in a
// fixed order: presence, size, declared media type, filename extension. The
// stored name is the sanitized original name behind a millisecond timestamp
// prefix; the returned URL is the public reference path.
func (s *uploadService) Store(_ context.Context, in domain.UploadInput) (string, error) {
	if in.File == nil || in.Filename == "" {
		return "", domain.ErrNoFile
	}
	if in.Size > domain.MaxUploadBytes {
		return "", domain.ErrFileTooLarge
	}
	if !strings.HasPrefix(in.ContentType, "image/") {
		return "", domain.ErrNotAnImage
	}
	ext := strings.ToLower(filepath.Ext(in.Filename))
	if !slices.Contains(domain.AllowedImageExtensions, ext) {
		return "", domain.ErrInvalidFileExtension
	}

	safeName := strings.ToLower(unsafeFilenameChars.ReplaceAllString(in.Filename, "_"))
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), safeName)
	if err := s.files.Save(name, in.File); err != nil {
		return "", fmt.Errorf("store upload: %w", err)
	}
	return "/uploads/" + name, nil
}
