package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/niklaus0x/viral-blog/internal/storage"
	"go.uber.org/zap"
)

const maxUploadSize = 5 << 20 // 5 MB

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/webp": {},
	"image/gif":  {},
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

type uploadService struct {
	logger *zap.Logger
	store  storage.Store
}

func newUploadService(logger *zap.Logger, store storage.Store) Upload {
	return &uploadService{
		logger: logger,
		store:  store,
	}
}

// UploadImage checks size then type, sniffing the content rather than
// trusting the client header, and stores the object under
// <timestamp>-<sanitized filename>. Storage failures are reported
// generically.
func (s *uploadService) UploadImage(ctx context.Context, file multipart.File, fileHeader *multipart.FileHeader) (string, error) {
	if fileHeader.Size > maxUploadSize {
		return "", ErrFileTooLarge
	}

	sniff := make([]byte, 512)
	n, err := file.Read(sniff)
	if err != nil && err != io.EOF {
		s.logger.Sugar().Errorf("failed to read uploaded file: %s", err.Error())
		return "", ErrInternal
	}

	contentType := http.DetectContentType(sniff[:n])
	if _, ok := allowedImageTypes[contentType]; !ok {
		return "", ErrInvalidFileType
	}

	if _, err := file.Seek(0, io.SeekStart); err != nil {
		s.logger.Sugar().Errorf("failed to seek to the start of the file: %s", err.Error())
		return "", ErrInternal
	}

	sanitizedName := unsafeFilenameChars.ReplaceAllString(fileHeader.Filename, "_")
	if sanitizedName == "" || strings.Trim(sanitizedName, "_") == "" {
		sanitizedName = "image"
	}
	key := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizedName)

	url, err := s.store.Put(ctx, key, contentType, file)
	if err != nil {
		s.logger.Sugar().Errorf("failed to store uploaded image(%s): %s", key, err.Error())
		return "", ErrInternal
	}

	return url, nil
}
