package model

import (
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

const (
	msgEnglishRequired = "Please provide the English sentence"
	msgChineseRequired = "Please provide the Chinese translation"
)

// ========================================
// CREATE
// ========================================

// CreateSentenceRequest - POST /api/sentences
type CreateSentenceRequest struct {
	English string `json:"english"`
	Chinese string `json:"chinese"`
}

// Normalize trims both fields in place
func (r *CreateSentenceRequest) Normalize() {
	r.English = strings.TrimSpace(r.English)
	r.Chinese = strings.TrimSpace(r.Chinese)
}

// Validate requires both fields. Call Normalize first so whitespace-only input fails.
func (r CreateSentenceRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.English, validation.Required.Error(msgEnglishRequired)),
		validation.Field(&r.Chinese, validation.Required.Error(msgChineseRequired)),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSentence, err)
	}
	return nil
}

// ========================================
// UPDATE
// ========================================

// UpdateSentenceRequest - PUT /api/sentences/:id
// Only english and chinese are mutable. Nil means "leave as is"; any other JSON
// field in the body (_id, createdAt, ...) is dropped by decoding.
type UpdateSentenceRequest struct {
	English *string `json:"english,omitempty"`
	Chinese *string `json:"chinese,omitempty"`
}

// Normalize trims the supplied fields in place
func (r *UpdateSentenceRequest) Normalize() {
	if r.English != nil {
		v := strings.TrimSpace(*r.English)
		r.English = &v
	}
	if r.Chinese != nil {
		v := strings.TrimSpace(*r.Chinese)
		r.Chinese = &v
	}
}

// Validate rejects supplied fields that are empty. Call Normalize first.
func (r UpdateSentenceRequest) Validate() error {
	err := validation.ValidateStruct(&r,
		validation.Field(&r.English, validation.NilOrNotEmpty.Error(msgEnglishRequired)),
		validation.Field(&r.Chinese, validation.NilOrNotEmpty.Error(msgChineseRequired)),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidSentence, err)
	}
	return nil
}

// ApplyTo copies the supplied fields onto s
func (r *UpdateSentenceRequest) ApplyTo(s *Sentence) {
	if r.English != nil {
		s.English = *r.English
	}
	if r.Chinese != nil {
		s.Chinese = *r.Chinese
	}
}
