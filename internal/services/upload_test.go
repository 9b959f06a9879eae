package services

import (
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"

	"communitycalendar/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeFileStore records saved files in memory.
type fakeFileStore struct {
	saved map[string]string
	err   error
}

func newFakeFileStore() *fakeFileStore {
	return &fakeFileStore{saved: make(map[string]string)}
}

func (f *fakeFileStore) Save(name string, r io.Reader) error {
	if f.err != nil {
		return f.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.saved[name] = string(data)
	return nil
}

func validUpload() domain.UploadInput {
	return domain.UploadInput{
		Filename:    "poster.png",
		ContentType: "image/png",
		Size:        1024,
		File:        strings.NewReader("fake image bytes"),
	}
}

func TestUploadService_Store(t *testing.T) {
	ctx := context.Background()
	store := newFakeFileStore()
	svc := NewUploadService(store)

	url, err := svc.Store(ctx, validUpload())
	require.NoError(t, err)

	require.Regexp(t, `^/uploads/\d+-poster\.png$`, url)
	require.Len(t, store.saved, 1)
	for name, data := range store.saved {
		assert.Regexp(t, `^\d+-poster\.png$`, name)
		assert.Equal(t, "fake image bytes", data)
	}
}

func TestUploadService_Store_sanitizesFilename(t *testing.T) {
	ctx := context.Background()
	store := newFakeFileStore()
	svc := NewUploadService(store)

	in := validUpload()
	in.Filename = "My Étkinlik Poster (1).PNG"
	url, err := svc.Store(ctx, in)
	require.NoError(t, err)

	// Non-alphanumerics (dots excepted) become underscores, then lowercase.
	re := regexp.MustCompile(`^/uploads/\d+-my__tkinlik_poster__1_\.png$`)
	assert.Regexp(t, re, url)
}

func TestUploadService_Store_validationOrder(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		mutate  func(*domain.UploadInput)
		wantErr *domain.ValidationError
	}{
		{
			name:    "missing file",
			mutate:  func(in *domain.UploadInput) { in.File = nil },
			wantErr: domain.ErrNoFile,
		},
		{
			name:    "six megabytes is too large",
			mutate:  func(in *domain.UploadInput) { in.Size = 6 << 20 },
			wantErr: domain.ErrFileTooLarge,
		},
		{
			name:    "non-image content type",
			mutate:  func(in *domain.UploadInput) { in.ContentType = "application/pdf" },
			wantErr: domain.ErrNotAnImage,
		},
		{
			name:    "disallowed extension",
			mutate:  func(in *domain.UploadInput) { in.Filename = "poster.svg" },
			wantErr: domain.ErrInvalidFileExtension,
		},
		{
			// Size is checked before the media type.
			name: "too large wins over bad type",
			mutate: func(in *domain.UploadInput) {
				in.Size = 6 << 20
				in.ContentType = "application/pdf"
			},
			wantErr: domain.ErrFileTooLarge,
		},
		{
			// Media type is checked before the extension.
			name: "bad type wins over bad extension",
			mutate: func(in *domain.UploadInput) {
				in.ContentType = "application/pdf"
				in.Filename = "poster.svg"
			},
			wantErr: domain.ErrNotAnImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeFileStore()
			svc := NewUploadService(store)
			in := validUpload()
			tt.mutate(&in)

			url, err := svc.Store(ctx, in)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, url)
			assert.Empty(t, store.saved, "failed validation must not write anything")
		})
	}
}

func TestUploadService_Store_sizeBoundary(t *testing.T) {
	ctx := context.Background()
	svc := NewUploadService(newFakeFileStore())

	in := validUpload()
	in.Size = domain.MaxUploadBytes
	_, err := svc.Store(ctx, in)
	require.NoError(t, err, "exactly 5 MiB is allowed")
}

func TestUploadService_Store_storeFailure(t *testing.T) {
	ctx := context.Background()
	store := newFakeFileStore()
	store.err = errors.New("disk full")
	svc := NewUploadService(store)

	_, err := svc.Store(ctx, validUpload())
	require.Error(t, err)
	var verr *domain.ValidationError
	assert.False(t, errors.As(err, &verr), "storage faults are not validation errors")
}
