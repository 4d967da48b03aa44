package dto

import "io"

// UploadRequest describes an uploaded document. Content may be nil when
// the client posted no file part.
type UploadRequest struct {
	Filename string
	Size     int64
	Content  io.Reader
}

type UploadResponse struct {
	URL         string `json:"url"`
	Message     string `json:"message"`
	ContentType string `json:"contentType,omitempty"`
	Size        int64  `json:"size,omitempty"`
}
