package model

import "errors"

var (
	// Validation errors. The wrapped ozzo-validation error names the offending field.
	ErrInvalidSentence = errors.New("invalid sentence")

	// Lookup errors
	ErrSentenceNotFound = errors.New("sentence not found")
)

// Fixed client-facing messages, one per operation
const (
	MsgFetchFailed  = "Failed to fetch sentences"
	MsgCreateFailed = "Failed to create sentence"
	MsgUpdateFailed = "Failed to update sentence"
	MsgDeleteFailed = "Failed to delete sentence"
	MsgDeleted      = "Sentence deleted successfully"
)
