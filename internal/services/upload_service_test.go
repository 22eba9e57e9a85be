package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveFileAndDeleteByURL(t *testing.T) {
	db := setupTestDB(t)
	dir := t.TempDir()
	svc := NewUploadService(db, dir, "http://localhost:8080/")

	up, err := svc.SaveFile("screenshot.PNG", "image/png", []byte("fake-png-bytes"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(up.URL, "http://localhost:8080/uploads/"), up.URL)
	assert.True(t, strings.HasSuffix(up.FileName, ".png"))
	assert.Equal(t, int64(len("fake-png-bytes")), up.SizeBytes)

	// The file actually exists on disk.
	data, err := os.ReadFile(filepath.Join(dir, up.FileName))
	require.NoError(t, err)
	assert.Equal(t, "fake-png-bytes", string(data))

	require.NoError(t, svc.DeleteByURL(up.URL))
	_, err = os.Stat(filepath.Join(dir, up.FileName))
	assert.True(t, os.IsNotExist(err))

	uploads, err := svc.GetAllUploads()
	require.NoError(t, err)
	assert.Empty(t, uploads)
}

func TestSaveFile_Empty(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUploadService(db, t.TempDir(), "http://localhost:8080")

	_, err := svc.SaveFile("empty.txt", "text/plain", nil)
	assert.Error(t, err)
}

func TestDeleteByURL_Unknown(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUploadService(db, t.TempDir(), "http://localhost:8080")

	err := svc.DeleteByURL("http://localhost:8080/uploads/nope.png")
	assert.Error(t, err)
}
