package content

import (
	"encoding/json"
	"strings"

	"github.com/GalleryApp/post-service/internal/model"
)

type rawContent struct {
	Body      *string           `json:"body"`
	Published interface{}       `json:"published"`
	Media     []json.RawMessage `json:"media"`
}

type rawMediaItem struct {
	ID   *string `json:"id"`
	Kind *string `json:"kind"`
	URL  *string `json:"url"`
}

// Decode converts a post's stored content field into its structured form.
// It never fails: anything that is not a JSON object degrades to a
// caption-only record carrying the raw text, so legacy plain-text content
// keeps rendering.
func Decode(raw *string) model.PostContent {
	if raw == nil {
		return model.PostContent{Media: []model.MediaItem{}}
	}

	fallback := model.PostContent{Body: *raw, Media: []model.MediaItem{}}

	if !strings.HasPrefix(strings.TrimSpace(*raw), "{") {
		return fallback
	}

	var rc rawContent
	if err := json.Unmarshal([]byte(*raw), &rc); err != nil {
		return fallback
	}

	parsed := model.PostContent{
		Published: truthy(rc.Published),
		Media:     make([]model.MediaItem, 0, len(rc.Media)),
	}
	if rc.Body != nil {
		parsed.Body = *rc.Body
	}

	for _, entry := range rc.Media {
		var m rawMediaItem
		if err := json.Unmarshal(entry, &m); err != nil {
			continue
		}
		if m.ID == nil || m.Kind == nil || m.URL == nil {
			continue
		}
		kind := model.MediaKind(*m.Kind)
		if kind.IsValid() != nil {
			continue
		}
		parsed.Media = append(parsed.Media, model.MediaItem{
			ID:   *m.ID,
			Kind: kind,
			URL:  strings.TrimSpace(*m.URL),
		})
	}

	return parsed
}

// Encode serializes structured content back into the stored text form.
// Media entries whose trimmed url is empty are dropped; the rest keep their
// fields and order as given.
func Encode(c model.PostContent) (string, error) {
	kept := make([]model.MediaItem, 0, len(c.Media))
	for _, m := range c.Media {
		if strings.TrimSpace(m.URL) == "" {
			continue
		}
		kept = append(kept, m)
	}

	encoded, err := json.Marshal(model.PostContent{
		Body:      c.Body,
		Published: c.Published,
		Media:     kept,
	})
	if err != nil {
		return "", err
	}

	return string(encoded), nil
}

// truthy mirrors the coercion the legacy content format relied on.
func truthy(v interface{}) bool {
	switch value := v.(type) {
	case nil:
		return false
	case bool:
		return value
	case float64:
		return value != 0
	case string:
		return value != ""
	default:
		return true
	}
}
