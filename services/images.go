package services

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/disintegration/imaging"
	log "github.com/sirupsen/logrus"
)

// Image compression settings
const (
	ImageQuality = 80 // JPEG quality (1-100)
	MaxWidth     = 1920
	MaxHeight    = 1080

	// MaxBatchImages caps multi-image uploads; excess inputs are dropped.
	MaxBatchImages = 10
)

var dataURIPattern = regexp.MustCompile(`^data:(.+);base64,(.+)$`)

// ImageService decodes base64 image payloads, resizes them into a bounding
// box and stores the compressed result under the public uploads directory.
type ImageService struct {
	uploadDir string
}

func NewImageService(uploadDir string) (*ImageService, error) {
	if err := os.MkdirAll(uploadDir, 0o755); err != nil {
		return nil, err
	}
	return &ImageService{uploadDir: uploadDir}, nil
}

// UploadDir returns the directory uploads are written to.
func (s *ImageService) UploadDir() string {
	return s.uploadDir
}

// SaveBase64 writes one image payload (data URI or bare base64) under
// filename and returns its public path. Processing never fails the caller:
// any decode, resize or encode error falls back to writing the payload bytes
// verbatim to the same filename.
func (s *ImageService) SaveBase64(payload, filename string) string {
	raw := decodePayload(payload)
	dst := filepath.Join(s.uploadDir, filename)

	if err := s.compress(raw, dst); err != nil {
		log.WithError(err).WithField("file", filename).Warn("image compression failed, storing original bytes")
		if werr := os.WriteFile(dst, raw, 0o644); werr != nil {
			log.WithError(werr).WithField("file", filename).Error("failed to store original image bytes")
		}
	}

	return "/uploads/" + filename
}

// Remove deletes an uploaded file referenced by its public path. Best-effort:
// failures are logged and never propagated, and only basenames inside the
// uploads directory are touched.
func (s *ImageService) Remove(publicPath string) {
	if publicPath == "" {
		return
	}

	filename := filepath.Base(publicPath)
	path := filepath.Join(s.uploadDir, filename)

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.WithError(err).WithField("file", filename).Warn("failed to remove uploaded file")
	}
}

// compress resizes the image to fit within MaxWidth x MaxHeight, preserving
// aspect ratio and never upscaling, then re-encodes it as JPEG.
func (s *ImageService) compress(raw []byte, dst string) error {
	img, err := imaging.Decode(bytes.NewReader(raw))
	if err != nil {
		return err
	}

	img = imaging.Fit(img, MaxWidth, MaxHeight, imaging.Lanczos)

	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer f.Close()

	return imaging.Encode(f, img, imaging.JPEG, imaging.JPEGQuality(ImageQuality))
}

// decodePayload strips a data:<mime>;base64, prefix if present and decodes
// the remainder. An undecodable payload is returned as its raw bytes, so the
// fallback path still writes something readable for post-mortem inspection.
func decodePayload(payload string) []byte {
	b64 := payload
	if m := dataURIPattern.FindStringSubmatch(payload); m != nil {
		b64 = m[2]
	}

	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(b64))
	if err != nil {
		return []byte(payload)
	}
	return raw
}
