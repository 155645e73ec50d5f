package models

// Image is a normalized image-search result (Unsplash or placeholder).
type Image struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Description string `json:"alt_description"`
	AuthorName  string `json:"author_name,omitempty"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
}
