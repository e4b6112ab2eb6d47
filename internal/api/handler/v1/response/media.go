package response

import "github.com/gigguide/gigguide-api/internal/domain"

// UploadResponse reports a multi-file upload: what was stored, what was
// rejected and why, and the gallery as it stands afterwards.
type UploadResponse struct {
	Message  string                `json:"message"`
	Uploaded []domain.UploadedFile `json:"uploaded_files"`
	Rejected []domain.RejectedFile `json:"rejected_files,omitempty"`
	Gallery  []string              `json:"gallery"`
}

type SingleUploadResponse struct {
	Message string `json:"message"`
	Path    string `json:"path"`
}

type GalleryResponse struct {
	Message string   `json:"message"`
	Gallery []string `json:"gallery"`
}
