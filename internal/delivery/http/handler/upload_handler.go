package handler

import (
	"errors"
	"net/http"
	"strings"

	"maternity-dashboard/internal/delivery/dto"
	"maternity-dashboard/internal/usecase"
	"maternity-dashboard/pkg/response"
)

const uploadFormField = "file"

type UploadHandler struct {
	uploadUsecase usecase.UploadUsecase
	maxBytes      int64
}

func NewUploadHandler(uploadUsecase usecase.UploadUsecase, maxBytes int64) *UploadHandler {
	return &UploadHandler{
		uploadUsecase: uploadUsecase,
		maxBytes:      maxBytes,
	}
}

// Upload accepts an optional multipart "file" part. Requests without a
// multipart body still get a document URL.
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)

	req := &dto.UploadRequest{}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(h.maxBytes); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				response.Error(w, http.StatusRequestEntityTooLarge, "File too large", nil)
				return
			}
			response.BadRequest(w, "Invalid upload")
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile(uploadFormField)
		switch {
		case err == nil:
			defer file.Close()
			req.Filename = header.Filename
			req.Size = header.Size
			req.Content = file
		case errors.Is(err, http.ErrMissingFile):
		default:
			response.BadRequest(w, "Invalid upload")
			return
		}
	}

	resp, err := h.uploadUsecase.Upload(r.Context(), req)
	if err != nil {
		response.InternalServerError(w, "Failed to upload file")
		return
	}

	response.JSON(w, http.StatusOK, resp)
}
