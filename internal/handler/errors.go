package handler

import "errors"

// Response messages are part of the HTTP contract.
var (
	errInvalidJSONBody = errors.New("Invalid JSON body.")
	errInvalidPostID   = errors.New("Invalid post id. Expected UUID.")
	errPostNotFound    = errors.New("Post not found.")
	errNotAuthorized   = errors.New("Not authorized.")
)
