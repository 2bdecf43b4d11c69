package models

// GalleryItem is a single image in the station gallery.
type GalleryItem struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Description string `json:"description"`
}
