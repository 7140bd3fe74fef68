package services

import (
	"bytes"
	"encoding/base64"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pngPayload(t *testing.T, width, height int) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return base64.StdEncoding.EncodeToString(buf.Bytes())
}

func decodeSaved(t *testing.T, dir, filename string) image.Image {
	t.Helper()

	f, err := os.Open(filepath.Join(dir, filename))
	require.NoError(t, err)
	defer f.Close()

	img, err := jpeg.Decode(f)
	require.NoError(t, err)
	return img
}

func TestSaveBase64CompressesToJPEG(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewImageService(dir)
	require.NoError(t, err)

	path := svc.SaveBase64(pngPayload(t, 64, 48), "car.jpg")
	assert.Equal(t, "/uploads/car.jpg", path)

	img := decodeSaved(t, dir, "car.jpg")
	assert.Equal(t, 64, img.Bounds().Dx(), "small images must not be upscaled")
	assert.Equal(t, 48, img.Bounds().Dy())
}

func TestSaveBase64StripsDataURIPrefix(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewImageService(dir)
	require.NoError(t, err)

	payload := "data:image/png;base64," + pngPayload(t, 10, 10)
	path := svc.SaveBase64(payload, "logo.jpg")
	assert.Equal(t, "/uploads/logo.jpg", path)

	decodeSaved(t, dir, "logo.jpg")
}

func TestSaveBase64ResizesIntoBoundingBox(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewImageService(dir)
	require.NoError(t, err)

	svc.SaveBase64(pngPayload(t, 4000, 1000), "wide.jpg")

	img := decodeSaved(t, dir, "wide.jpg")
	assert.LessOrEqual(t, img.Bounds().Dx(), MaxWidth)
	assert.LessOrEqual(t, img.Bounds().Dy(), MaxHeight)
	assert.Equal(t, MaxWidth, img.Bounds().Dx(), "aspect ratio is preserved against the tighter bound")
}

func TestSaveBase64FallsBackToRawBytes(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewImageService(dir)
	require.NoError(t, err)

	// Valid base64, not an image: the decoded bytes land on disk verbatim.
	payload := base64.StdEncoding.EncodeToString([]byte("definitely not an image"))
	path := svc.SaveBase64(payload, "broken.jpg")
	assert.Equal(t, "/uploads/broken.jpg", path)

	data, err := os.ReadFile(filepath.Join(dir, "broken.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "definitely not an image", string(data))
}

func TestSaveBase64UndecodablePayloadStoredVerbatim(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewImageService(dir)
	require.NoError(t, err)

	svc.SaveBase64("%%% not base64 %%%", "junk.jpg")

	data, err := os.ReadFile(filepath.Join(dir, "junk.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "%%% not base64 %%%", string(data))
}

func TestRemoveDeletesOnlyInsideUploadDir(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewImageService(dir)
	require.NoError(t, err)

	svc.SaveBase64(pngPayload(t, 8, 8), "gone.jpg")
	svc.Remove("/uploads/gone.jpg")
	_, statErr := os.Stat(filepath.Join(dir, "gone.jpg"))
	assert.True(t, os.IsNotExist(statErr))

	// Traversal attempts collapse to the basename.
	outside := filepath.Join(filepath.Dir(dir), "outside.txt")
	require.NoError(t, os.WriteFile(outside, []byte("keep"), 0o644))
	svc.Remove("/uploads/../outside.txt")
	_, statErr = os.Stat(outside)
	assert.NoError(t, statErr)
}

func TestRemoveMissingFileIsNoop(t *testing.T) {
	svc, err := NewImageService(t.TempDir())
	require.NoError(t, err)

	svc.Remove("/uploads/never-existed.jpg")
	svc.Remove("")
}
