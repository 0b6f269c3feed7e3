package daemon

import (
	"gorm.io/gorm"

	"github.com/maryjean/suggestion-box/internal/db/controller/configentry"
)

const (
	defaultAdminPassword = "maryjean2024"

	defaultEmailConfig = `{
  "host": "smtp.gmail.com",
  "port": 587,
  "secure": false,
  "auth": {
    "user": "your-email@gmail.com",
    "pass": "your-app-password"
  }
}`

	defaultCrewEmails = `[
  "captain@maryjeanii.com",
  "chief.officer@maryjeanii.com",
  "chief.engineer@maryjeanii.com",
  "chief.stew@maryjeanii.com",
  "second.engineer@maryjeanii.com"
]`
)

// seed writes placeholder admin configuration at first startup. Existing
// entries are never overwritten.
func seed(db *gorm.DB) error {
	if err := configentry.SetDefault(db, configentry.KeyAdminPassword, defaultAdminPassword); err != nil {
		return err
	}

	if err := configentry.SetDefault(db, configentry.KeyEmailConfig, defaultEmailConfig); err != nil {
		return err
	}

	return configentry.SetDefault(db, configentry.KeyCrewEmails, defaultCrewEmails)
}
