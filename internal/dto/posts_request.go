package dto

import (
	"errors"
	"strings"

	"github.com/GalleryApp/post-service/pkg/utils"
)

// Validation messages are part of the HTTP contract and surface verbatim in
// 400 responses.
var (
	ErrBodyMustBeObject    = errors.New("Request body must be a JSON object.")
	ErrTitleRequired       = errors.New("Field 'title' is required and must be a non-empty string.")
	ErrInvalidProfileID    = errors.New("Field 'profile_id' is required and must be a valid UUID.")
	ErrContentMustBeString = errors.New("Field 'content' must be a string.")
	ErrNoFieldsProvided    = errors.New("At least one field is required.")
)

type CreatePostRequest struct {
	Title     string
	ProfileID string
	Content   *string
}

// UpdatePostRequest is a partial-update record: only fields that were present
// in the request are set. ContentProvided distinguishes "content absent"
// (leave stored value untouched) from "content explicitly null" (clear it).
type UpdatePostRequest struct {
	Title           *string
	Content         *string
	ContentProvided bool
}

// ValidateCreatePost narrows an untyped request body into a create payload.
// Rules run in order and short-circuit on the first failure.
func ValidateCreatePost(body interface{}) (*CreatePostRequest, error) {
	obj, ok := body.(map[string]interface{})
	if !ok {
		return nil, ErrBodyMustBeObject
	}

	title, ok := obj["title"].(string)
	title = strings.TrimSpace(title)
	if !ok || title == "" {
		return nil, ErrTitleRequired
	}

	profileID, ok := obj["profile_id"].(string)
	if !ok || !utils.IsUUID(profileID) {
		return nil, ErrInvalidProfileID
	}

	req := CreatePostRequest{
		Title:     title,
		ProfileID: profileID,
	}

	if raw, present := obj["content"]; present && raw != nil {
		s, ok := raw.(string)
		if !ok {
			return nil, ErrContentMustBeString
		}
		req.Content = &s
	}

	return &req, nil
}

// ValidateUpdatePost narrows an untyped request body into a partial-update
// payload. The target id is validated separately before this runs.
func ValidateUpdatePost(body interface{}) (*UpdatePostRequest, error) {
	obj, ok := body.(map[string]interface{})
	if !ok {
		return nil, ErrBodyMustBeObject
	}

	titleRaw, titlePresent := obj["title"]
	contentRaw, contentPresent := obj["content"]
	if !titlePresent && !contentPresent {
		return nil, ErrNoFieldsProvided
	}

	var req UpdatePostRequest

	if titlePresent {
		title, ok := titleRaw.(string)
		title = strings.TrimSpace(title)
		if !ok || title == "" {
			return nil, ErrTitleRequired
		}
		req.Title = &title
	}

	if contentPresent {
		req.ContentProvided = true
		if contentRaw != nil {
			s, ok := contentRaw.(string)
			if !ok {
				return nil, ErrContentMustBeString
			}
			req.Content = &s
		}
	}

	return &req, nil
}
