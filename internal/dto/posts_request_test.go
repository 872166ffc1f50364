package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testProfileID = "123e4567-e89b-12d3-a456-426614174000"

func unmarshalBody(t *testing.T, raw string) interface{} {
	t.Helper()
	var body interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &body))
	return body
}

func TestValidateCreatePost(t *testing.T) {
	t.Run("rejects non-object bodies", func(t *testing.T) {
		for _, raw := range []string{`null`, `"text"`, `42`, `[1,2]`} {
			_, err := ValidateCreatePost(unmarshalBody(t, raw))
			assert.ErrorIs(t, err, ErrBodyMustBeObject, "body: %s", raw)
		}
	})

	t.Run("rejects missing title", func(t *testing.T) {
		_, err := ValidateCreatePost(unmarshalBody(t, `{}`))
		assert.ErrorIs(t, err, ErrTitleRequired)
	})

	t.Run("rejects whitespace-only title", func(t *testing.T) {
		_, err := ValidateCreatePost(unmarshalBody(t, `{"title":"   "}`))
		assert.ErrorIs(t, err, ErrTitleRequired)
	})

	t.Run("rejects non-string title", func(t *testing.T) {
		_, err := ValidateCreatePost(unmarshalBody(t, `{"title":5,"profile_id":"`+testProfileID+`"}`))
		assert.ErrorIs(t, err, ErrTitleRequired)
	})

	t.Run("rejects invalid profile_id", func(t *testing.T) {
		_, err := ValidateCreatePost(unmarshalBody(t, `{"title":"T","profile_id":"not-a-uuid"}`))
		assert.ErrorIs(t, err, ErrInvalidProfileID)
	})

	t.Run("rejects missing profile_id", func(t *testing.T) {
		_, err := ValidateCreatePost(unmarshalBody(t, `{"title":"T"}`))
		assert.ErrorIs(t, err, ErrInvalidProfileID)
	})

	t.Run("rejects non-string content", func(t *testing.T) {
		_, err := ValidateCreatePost(unmarshalBody(t, `{"title":"T","profile_id":"`+testProfileID+`","content":7}`))
		assert.ErrorIs(t, err, ErrContentMustBeString)
	})

	t.Run("trims title and defaults content to nil", func(t *testing.T) {
		req, err := ValidateCreatePost(unmarshalBody(t, `{"title":" T ","profile_id":"`+testProfileID+`"}`))
		require.NoError(t, err)
		assert.Equal(t, "T", req.Title)
		assert.Equal(t, testProfileID, req.ProfileID)
		assert.Nil(t, req.Content)
	})

	t.Run("null content treated as absent", func(t *testing.T) {
		req, err := ValidateCreatePost(unmarshalBody(t, `{"title":"T","profile_id":"`+testProfileID+`","content":null}`))
		require.NoError(t, err)
		assert.Nil(t, req.Content)
	})

	t.Run("keeps string content verbatim", func(t *testing.T) {
		req, err := ValidateCreatePost(unmarshalBody(t, `{"title":"T","profile_id":"`+testProfileID+`","content":"  raw  "}`))
		require.NoError(t, err)
		require.NotNil(t, req.Content)
		assert.Equal(t, "  raw  ", *req.Content)
	})
}

func TestValidateUpdatePost(t *testing.T) {
	t.Run("rejects non-object bodies", func(t *testing.T) {
		_, err := ValidateUpdatePost(unmarshalBody(t, `"text"`))
		assert.ErrorIs(t, err, ErrBodyMustBeObject)
	})

	t.Run("rejects empty object", func(t *testing.T) {
		_, err := ValidateUpdatePost(unmarshalBody(t, `{}`))
		assert.ErrorIs(t, err, ErrNoFieldsProvided)
	})

	t.Run("rejects empty title", func(t *testing.T) {
		_, err := ValidateUpdatePost(unmarshalBody(t, `{"title":"  "}`))
		assert.ErrorIs(t, err, ErrTitleRequired)
	})

	t.Run("rejects non-string content", func(t *testing.T) {
		_, err := ValidateUpdatePost(unmarshalBody(t, `{"content":[]}`))
		assert.ErrorIs(t, err, ErrContentMustBeString)
	})

	t.Run("title only", func(t *testing.T) {
		req, err := ValidateUpdatePost(unmarshalBody(t, `{"title":" New "}`))
		require.NoError(t, err)
		require.NotNil(t, req.Title)
		assert.Equal(t, "New", *req.Title)
		assert.False(t, req.ContentProvided)
		assert.Nil(t, req.Content)
	})

	t.Run("explicit null content", func(t *testing.T) {
		req, err := ValidateUpdatePost(unmarshalBody(t, `{"content":null}`))
		require.NoError(t, err)
		assert.Nil(t, req.Title)
		assert.True(t, req.ContentProvided)
		assert.Nil(t, req.Content)
	})

	t.Run("content kept verbatim", func(t *testing.T) {
		req, err := ValidateUpdatePost(unmarshalBody(t, `{"content":"  untouched  "}`))
		require.NoError(t, err)
		assert.True(t, req.ContentProvided)
		require.NotNil(t, req.Content)
		assert.Equal(t, "  untouched  ", *req.Content)
	})

	t.Run("both fields", func(t *testing.T) {
		req, err := ValidateUpdatePost(unmarshalBody(t, `{"title":"T","content":"c"}`))
		require.NoError(t, err)
		require.NotNil(t, req.Title)
		assert.True(t, req.ContentProvided)
		require.NotNil(t, req.Content)
	})
}
