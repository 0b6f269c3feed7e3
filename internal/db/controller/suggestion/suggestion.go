// Package suggestion provides CRUD operations for crew suggestions.
package suggestion

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"gorm.io/gorm"

	"github.com/maryjean/suggestion-box/internal/db/models"
)

const (
	// WeeklyWindow is the trailing window used for stats and report queries.
	WeeklyWindow = 7 * 24 * time.Hour

	orderNewestFirst = "timestamp DESC"
	statusPattern    = "status = ?"
	windowPattern    = "timestamp >= ?"
)

var (
	// ErrSuggestionNotFound is returned when no suggestion matches the given id.
	ErrSuggestionNotFound = errors.New("suggestion not found")
	// ErrTextEmpty is returned when the submitted text is empty or whitespace only.
	ErrTextEmpty = errors.New("suggestion text is required")
	// ErrTextTooLong is returned when the submitted text exceeds the length limit.
	ErrTextTooLong = errors.New("suggestion is too long")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Stats is a point-in-time snapshot of suggestion counts.
type Stats struct {
	Total  int64 `json:"total"`
	Weekly int64 `json:"weekly"`
}

// Create validates and stores a new suggestion. Text is trimmed, an absent
// category falls back to the default and the status starts out pending.
func Create(db *gorm.DB, text, category string) (*models.Suggestion, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrTextEmpty
	}

	// character count, not bytes, so multibyte text at the limit passes
	if utf8.RuneCountInString(text) > models.TextMaxLen {
		return nil, ErrTextTooLong
	}

	if category == "" {
		category = models.CategoryOther
	}

	s := &models.Suggestion{
		Text:     text,
		Category: category,
		Status:   models.StatusPending,
	}

	result := db.Create(s)
	if result.Error != nil {
		return nil, result.Error
	}

	return s, nil
}

// ListPending retrieves all pending suggestions, newest first.
func ListPending(db *gorm.DB) ([]models.Suggestion, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var suggestions []models.Suggestion
	result := db.Where(statusPattern, models.StatusPending).
		Order(orderNewestFirst).
		Find(&suggestions)
	if result.Error != nil {
		return nil, result.Error
	}

	return suggestions, nil
}

// ListAll retrieves every suggestion regardless of status, newest first.
func ListAll(db *gorm.DB) ([]models.Suggestion, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var suggestions []models.Suggestion
	result := db.Order(orderNewestFirst).Find(&suggestions)
	if result.Error != nil {
		return nil, result.Error
	}

	return suggestions, nil
}

// ListWindow retrieves pending suggestions with a timestamp at or after
// since, newest first. This feeds the weekly report.
func ListWindow(db *gorm.DB, since time.Time) ([]models.Suggestion, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var suggestions []models.Suggestion
	result := db.Where(statusPattern, models.StatusPending).
		Where(windowPattern, since).
		Order(orderNewestFirst).
		Find(&suggestions)
	if result.Error != nil {
		return nil, result.Error
	}

	return suggestions, nil
}

// Delete permanently removes a suggestion by id. Deleting an id that does
// not exist returns ErrSuggestionNotFound, also on repeated deletes.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Suggestion{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrSuggestionNotFound
	}

	return nil
}

// GetStats counts all suggestions and those within the trailing weekly
// window relative to now.
func GetStats(db *gorm.DB, now time.Time) (*Stats, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var stats Stats

	result := db.Model(&models.Suggestion{}).Count(&stats.Total)
	if result.Error != nil {
		return nil, result.Error
	}

	result = db.Model(&models.Suggestion{}).
		Where(windowPattern, now.Add(-WeeklyWindow)).
		Count(&stats.Weekly)
	if result.Error != nil {
		return nil, result.Error
	}

	return &stats, nil
}
