package mailconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/maryjean/suggestion-box/internal/db/controller/configentry"
	"github.com/maryjean/suggestion-box/internal/db/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.ConfigEntry{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func TestLoad_EmptyDatabase(t *testing.T) {
	db := setupTestDB(t)

	settings, err := Load(db)
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.False(t, settings.Configured())
}

func TestSaveAndLoad(t *testing.T) {
	db := setupTestDB(t)

	original := &Settings{
		Transport: Transport{
			Host:   "smtp.gmail.com",
			Port:   587,
			Secure: false,
			Auth:   Auth{User: "box@example.com", Pass: "app-password"},
		},
		CrewEmails: []string{"captain@example.com", "chief.officer@example.com"},
	}

	require.NoError(t, original.Save(db))

	loaded, err := Load(db)
	require.NoError(t, err)
	assert.True(t, loaded.Configured())
	assert.Equal(t, original.Transport, loaded.Transport)
	assert.Equal(t, original.CrewEmails, loaded.CrewEmails)
}

func TestLoad_MalformedJSON(t *testing.T) {
	db := setupTestDB(t)

	_, err := configentry.Set(db, configentry.KeyEmailConfig, "{not json")
	require.NoError(t, err)

	_, err = Load(db)
	require.Error(t, err)
}

func TestConfigured(t *testing.T) {
	testCases := []struct {
		name     string
		settings *Settings
		want     bool
	}{
		{name: "nil settings", settings: nil, want: false},
		{name: "empty settings", settings: &Settings{}, want: false},
		{
			name: "host without crew",
			settings: &Settings{
				Transport: Transport{Host: "smtp.gmail.com"},
			},
			want: false,
		},
		{
			name: "crew without host",
			settings: &Settings{
				CrewEmails: []string{"captain@example.com"},
			},
			want: false,
		},
		{
			name: "complete",
			settings: &Settings{
				Transport:  Transport{Host: "smtp.gmail.com", Port: 587},
				CrewEmails: []string{"captain@example.com"},
			},
			want: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.settings.Configured())
		})
	}
}
