// Package dto carries request payloads for YouTube videos.
package dto

// VideoFilter narrows the video listing.
type VideoFilter struct {
	Status string
	Tag    string
}

// VideoInput is the create payload.
type VideoInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	VideoURL    string   `json:"videoUrl"`
	Thumbnail   string   `json:"thumbnail"`
	Tags        []string `json:"tags"`
	Author      string   `json:"author"`
	Status      string   `json:"status"`
}

// VideoUpdate is the partial update payload; nil fields are left untouched.
type VideoUpdate struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	VideoURL    *string   `json:"videoUrl"`
	Thumbnail   *string   `json:"thumbnail"`
	Tags        *[]string `json:"tags"`
	Author      *string   `json:"author"`
	Status      *string   `json:"status"`
}
