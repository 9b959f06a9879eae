package upload

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiskStore_Save(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store := NewDiskStore(dir)

	err := store.Save("1700000000000-poster.png", strings.NewReader("fake image bytes"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "1700000000000-poster.png"))
	require.NoError(t, err)
	assert.Equal(t, "fake image bytes", string(data))
}

func TestDiskStore_Save_creates_dir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	store := NewDiskStore(dir)

	err := store.Save("f.jpg", strings.NewReader("x"))
	require.NoError(t, err)

	_, err = os.Stat(dir)
	require.NoError(t, err)
}
