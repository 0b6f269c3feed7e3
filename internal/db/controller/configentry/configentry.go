// Package configentry provides access to the key/value admin configuration store.
package configentry

import (
	"errors"

	"gorm.io/gorm"

	"github.com/maryjean/suggestion-box/internal/db/models"
)

const (
	// KeyAdminPassword stores the shared admin secret.
	KeyAdminPassword = "admin_password"
	// KeyEmailConfig stores the SMTP transport settings as JSON.
	KeyEmailConfig = "email_config"
	// KeyCrewEmails stores the report recipient list as JSON.
	KeyCrewEmails = "crew_emails"

	keyQueryPattern = "key = ?"
)

var (
	// ErrEntryNotFound is returned when a config entry is not found.
	ErrEntryNotFound = errors.New("config entry not found")
	// ErrKeyEmpty is returned when attempting to access an entry with an empty key.
	ErrKeyEmpty = errors.New("config entry key cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Get retrieves a config entry by its key.
func Get(db *gorm.DB, key string) (*models.ConfigEntry, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if key == "" {
		return nil, ErrKeyEmpty
	}

	var entry models.ConfigEntry
	result := db.Where(keyQueryPattern, key).First(&entry)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, result.Error
	}

	return &entry, nil
}

// Set creates or updates a config entry by key (upsert operation).
func Set(db *gorm.DB, key, value string) (*models.ConfigEntry, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if key == "" {
		return nil, ErrKeyEmpty
	}

	var entry models.ConfigEntry
	result := db.Where(keyQueryPattern, key).First(&entry)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		entry = models.ConfigEntry{Key: key, Value: value}

		result = db.Create(&entry)
		if result.Error != nil {
			return nil, result.Error
		}

		return &entry, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}

	entry.Value = value
	result = db.Save(&entry)
	if result.Error != nil {
		return nil, result.Error
	}

	return &entry, nil
}

// SetDefault stores the value only if no entry exists for the key yet.
// Used to seed placeholder configuration at first startup.
func SetDefault(db *gorm.DB, key, value string) error {
	if db == nil {
		return ErrDBNil
	}
	if key == "" {
		return ErrKeyEmpty
	}

	_, err := Get(db, key)
	if err == nil {
		return nil
	}
	if !errors.Is(err, ErrEntryNotFound) {
		return err
	}

	result := db.Create(&models.ConfigEntry{Key: key, Value: value})

	return result.Error
}
