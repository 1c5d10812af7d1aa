package model

import (
	"time"

	"github.com/google/uuid"
)

// Sentence is one collected quote: an English sentence and its Chinese translation.
// ID and timestamps are assigned by the store and never set by callers.
type Sentence struct {
	ID        uuid.UUID `json:"_id" db:"id"`
	English   string    `json:"english" db:"english"`
	Chinese   string    `json:"chinese" db:"chinese"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
