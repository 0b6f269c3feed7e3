// Package mailconfig loads and stores the email transport and recipient
// configuration kept in the admin_config table.
package mailconfig

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/maryjean/suggestion-box/internal/db/controller/configentry"
)

// Auth holds the SMTP credentials.
type Auth struct {
	User string `json:"user"`
	Pass string `json:"pass"`
}

// Transport holds the outbound SMTP transport settings.
type Transport struct {
	Host   string `json:"host"`
	Port   int    `json:"port"`
	Secure bool   `json:"secure"`
	Auth   Auth   `json:"auth"`
}

// Settings combines the transport and the crew recipient list. It is loaded
// once at process start and passed by reference to the notification service.
type Settings struct {
	Transport  Transport
	CrewEmails []string
}

// Configured reports whether the settings are complete enough to dispatch
// mail: a transport host and at least one recipient.
func (s *Settings) Configured() bool {
	return s != nil && s.Transport.Host != "" && len(s.CrewEmails) > 0
}

// Load reads both config entries from the database. A missing entry leaves
// the corresponding field zero instead of failing, mirroring first-startup
// placeholder state.
func Load(db *gorm.DB) (*Settings, error) {
	var settings Settings

	entry, err := configentry.Get(db, configentry.KeyEmailConfig)
	if err == nil {
		if errJSON := json.Unmarshal([]byte(entry.Value), &settings.Transport); errJSON != nil {
			return nil, errJSON
		}
	} else if !errors.Is(err, configentry.ErrEntryNotFound) {
		return nil, err
	}

	entry, err = configentry.Get(db, configentry.KeyCrewEmails)
	if err == nil {
		if errJSON := json.Unmarshal([]byte(entry.Value), &settings.CrewEmails); errJSON != nil {
			return nil, errJSON
		}
	} else if !errors.Is(err, configentry.ErrEntryNotFound) {
		return nil, err
	}

	return &settings, nil
}

// Save writes both config entries to the database.
func (s *Settings) Save(db *gorm.DB) error {
	transport, err := json.Marshal(s.Transport)
	if err != nil {
		return err
	}

	if _, err = configentry.Set(db, configentry.KeyEmailConfig, string(transport)); err != nil {
		return err
	}

	crew, err := json.Marshal(s.CrewEmails)
	if err != nil {
		return err
	}

	_, err = configentry.Set(db, configentry.KeyCrewEmails, string(crew))

	return err
}
