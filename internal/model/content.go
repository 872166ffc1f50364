package model

import "fmt"

// PostContent is the structured form of a post's stored content field.
// Media order is the carousel order and must survive encode/decode.
type PostContent struct {
	Body      string      `json:"body"`
	Published bool        `json:"published"`
	Media     []MediaItem `json:"media"`
}

type MediaItem struct {
	ID   string    `json:"id"`
	Kind MediaKind `json:"kind"`
	URL  string    `json:"url"`
}

type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

func (k MediaKind) IsValid() error {
	switch k {
	case MediaKindImage, MediaKindVideo:
		return nil
	}
	return fmt.Errorf("invalid media kind: %s", k)
}
