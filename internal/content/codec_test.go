package content

import (
	"testing"

	"github.com/GalleryApp/post-service/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestDecode_Absent(t *testing.T) {
	parsed := Decode(nil)

	assert.Equal(t, model.PostContent{Media: []model.MediaItem{}}, parsed)
}

func TestDecode_LegacyPlainText(t *testing.T) {
	parsed := Decode(strPtr("not json"))

	assert.Equal(t, "not json", parsed.Body)
	assert.False(t, parsed.Published)
	assert.Empty(t, parsed.Media)
}

func TestDecode_NonObjectJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "string", raw: `"just a caption"`},
		{name: "number", raw: "42"},
		{name: "array", raw: "[1, 2, 3]"},
		{name: "null", raw: "null"},
		{name: "truncated object", raw: `{"body": "x"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed := Decode(strPtr(tt.raw))

			assert.Equal(t, tt.raw, parsed.Body)
			assert.False(t, parsed.Published)
			assert.Empty(t, parsed.Media)
		})
	}
}

func TestDecode_Structured(t *testing.T) {
	raw := `{"body":"A sunny day","published":true,"media":[
		{"id":"m1","kind":"image","url":"https://cdn.example.com/a.jpg"},
		{"id":"m2","kind":"video","url":"  https://cdn.example.com/b.mp4  "}
	]}`

	parsed := Decode(strPtr(raw))

	assert.Equal(t, "A sunny day", parsed.Body)
	assert.True(t, parsed.Published)
	require.Len(t, parsed.Media, 2)
	assert.Equal(t, model.MediaItem{ID: "m1", Kind: model.MediaKindImage, URL: "https://cdn.example.com/a.jpg"}, parsed.Media[0])
	assert.Equal(t, model.MediaItem{ID: "m2", Kind: model.MediaKindVideo, URL: "https://cdn.example.com/b.mp4"}, parsed.Media[1])
}

func TestDecode_TruthyPublished(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{name: "bool true", raw: `{"published":true}`, want: true},
		{name: "bool false", raw: `{"published":false}`, want: false},
		{name: "absent", raw: `{}`, want: false},
		{name: "null", raw: `{"published":null}`, want: false},
		{name: "nonzero number", raw: `{"published":1}`, want: true},
		{name: "zero number", raw: `{"published":0}`, want: false},
		{name: "non-empty string", raw: `{"published":"yes"}`, want: true},
		{name: "empty string", raw: `{"published":""}`, want: false},
		{name: "object", raw: `{"published":{}}`, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(strPtr(tt.raw)).Published)
		})
	}
}

func TestDecode_DropsInvalidMediaEntries(t *testing.T) {
	raw := `{"body":"","published":false,"media":[
		{"id":"keep","kind":"image","url":"https://x/a.jpg"},
		{"id":"bad-kind","kind":"gif","url":"https://x/b.gif"},
		{"kind":"image","url":"https://x/no-id.jpg"},
		{"id":"no-url","kind":"video"},
		{"id":123,"kind":"image","url":"https://x/numeric-id.jpg"},
		"not an object",
		{"id":"keep2","kind":"video","url":"https://x/c.mp4"}
	]}`

	parsed := Decode(strPtr(raw))

	require.Len(t, parsed.Media, 2)
	assert.Equal(t, "keep", parsed.Media[0].ID)
	assert.Equal(t, "keep2", parsed.Media[1].ID)
}

func TestEncode_DropsEmptyURLs(t *testing.T) {
	encoded, err := Encode(model.PostContent{
		Body:      "caption",
		Published: true,
		Media: []model.MediaItem{
			{ID: "m1", Kind: model.MediaKindImage, URL: "https://x/a.jpg"},
			{ID: "m2", Kind: model.MediaKindImage, URL: "   "},
			{ID: "m3", Kind: model.MediaKindVideo, URL: ""},
			{ID: "m4", Kind: model.MediaKindVideo, URL: "https://x/b.mp4"},
		},
	})
	require.NoError(t, err)

	parsed := Decode(&encoded)
	require.Len(t, parsed.Media, 2)
	assert.Equal(t, "m1", parsed.Media[0].ID)
	assert.Equal(t, "m4", parsed.Media[1].ID)
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	original := model.PostContent{
		Body:      "gallery intro",
		Published: true,
		Media: []model.MediaItem{
			{ID: "a", Kind: model.MediaKindImage, URL: "https://x/1.jpg"},
			{ID: "b", Kind: model.MediaKindVideo, URL: "https://x/2.mp4"},
			{ID: "c", Kind: model.MediaKindImage, URL: "https://x/3.jpg"},
		},
	}

	encoded, err := Encode(original)
	require.NoError(t, err)

	assert.Equal(t, original, Decode(&encoded))
}
