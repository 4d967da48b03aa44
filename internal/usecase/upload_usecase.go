package usecase

import (
	"context"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"maternity-dashboard/internal/delivery/dto"

	"github.com/gabriel-vasile/mimetype"
	"github.com/sirupsen/logrus"
)

const defaultUploadName = "document.pdf"

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

type UploadUsecase interface {
	Upload(ctx context.Context, req *dto.UploadRequest) (*dto.UploadResponse, error)
}

// uploadUsecase hands out document URLs without storing anything
type uploadUsecase struct {
	log     *logrus.Logger
	baseURL string
	now     func() time.Time
}

func NewUploadUsecase(log *logrus.Logger, baseURL string) UploadUsecase {
	return &uploadUsecase{
		log:     log,
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

// Upload returns <base>/documents/<unix millis>_<name>. The content, if any,
// is only sniffed for its MIME type and then dropped.
func (u *uploadUsecase) Upload(ctx context.Context, req *dto.UploadRequest) (*dto.UploadResponse, error) {
	name := sanitizeFilename(req.Filename)

	resp := &dto.UploadResponse{
		URL:     fmt.Sprintf("%s/documents/%d_%s", u.baseURL, u.now().UnixMilli(), name),
		Message: "File uploaded successfully",
		Size:    req.Size,
	}

	if req.Content != nil {
		mtype, err := mimetype.DetectReader(req.Content)
		if err != nil {
			u.log.Warnf("Failed to read uploaded file %q: %+v", req.Filename, err)
			return nil, err
		}
		resp.ContentType = mtype.String()
	}

	u.log.Infof("Upload accepted: name=%s, size=%d, type=%s", name, req.Size, resp.ContentType)
	return resp, nil
}

// sanitizeFilename keeps the base name and replaces anything outside [A-Za-z0-9._-]
func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return defaultUploadName
	}
	return name
}
