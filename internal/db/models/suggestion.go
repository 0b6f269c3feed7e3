// Package models contains database model definitions.
package models

import (
	"time"
)

const (
	// StatusPending is the status every suggestion carries on creation.
	// No other status is assigned anywhere; the column is kept for a
	// future review workflow.
	StatusPending = "pending"

	// CategoryOther is the default category for suggestions submitted
	// without one.
	CategoryOther = "other"

	// TextMaxLen is the maximum accepted suggestion text length in characters.
	TextMaxLen = 1000
)

// Suggestion represents a single anonymous crew suggestion.
type Suggestion struct {
	ID        uint64    `gorm:"primaryKey"            json:"id"`
	Text      string    `gorm:"not null"              json:"text"`
	Category  string    `gorm:"default:other"         json:"category"`
	Timestamp time.Time `gorm:"autoCreateTime;index"  json:"timestamp"`
	Status    string    `gorm:"default:pending;index" json:"status"`
}
