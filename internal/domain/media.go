package domain

// MediaKind selects the subfolder and DB column a file lands in.
type MediaKind string

const (
	MediaKindProfile      MediaKind = "profile"
	MediaKindGallery      MediaKind = "gallery"
	MediaKindVenueMain    MediaKind = "venue_main"
	MediaKindVenueGallery MediaKind = "venue_gallery"
	MediaKindEventPoster  MediaKind = "event_poster"
	MediaKindEventGallery MediaKind = "event_gallery"
)

type UploadedFile struct {
	OriginalName string `json:"original_name"`
	Path         string `json:"path"`
	Size         int64  `json:"size"`
	MimeType     string `json:"mime_type"`
}

type RejectedFile struct {
	OriginalName string `json:"original_name"`
	Reason       string `json:"reason"`
}

// UploadResult reports partial success: rejected files never abort the batch.
type UploadResult struct {
	Accepted []UploadedFile `json:"accepted"`
	Rejected []RejectedFile `json:"rejected"`
	Gallery  []string       `json:"gallery,omitempty"`
}
