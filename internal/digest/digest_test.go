package digest

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/maryjean/suggestion-box/internal/db/models"
	"github.com/maryjean/suggestion-box/internal/mailconfig"
)

// fakeSender records the last sent message.
type fakeSender struct {
	sent []*Message
	err  error
}

func (f *fakeSender) Send(msg *Message) error {
	if f.err != nil {
		return f.err
	}

	f.sent = append(f.sent, msg)

	return nil
}

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	err = db.AutoMigrate(&models.Suggestion{})
	require.NoError(t, err, "failed to migrate test database")

	return db
}

func configuredSettings() *mailconfig.Settings {
	return &mailconfig.Settings{
		Transport: mailconfig.Transport{
			Host: "smtp.gmail.com",
			Port: 587,
			Auth: mailconfig.Auth{User: "box@example.com", Pass: "secret"},
		},
		CrewEmails: []string{"captain@example.com", "chief.officer@example.com"},
	}
}

func TestCompose_Empty(t *testing.T) {
	now := time.Date(2024, time.July, 1, 9, 0, 0, 0, time.UTC)

	msg := Compose(now, nil)

	assert.Equal(t, "Mary Jean II - Weekly Suggestions Report (7/1/2024)", msg.Subject)
	assert.Contains(t, msg.HTMLBody, "No new suggestions this week.")
	assert.NotContains(t, msg.HTMLBody, "Suggestion #")
}

func TestCompose_EnumeratesSuggestions(t *testing.T) {
	now := time.Date(2024, time.July, 1, 9, 0, 0, 0, time.UTC)

	suggestions := []models.Suggestion{
		{
			Text:      "Add a new recipe",
			Category:  "food_and_drink",
			Status:    models.StatusPending,
			Timestamp: time.Date(2024, time.June, 30, 18, 0, 0, 0, time.UTC),
		},
		{
			Text:      "Movie night <b>every</b> week",
			Category:  "other",
			Status:    models.StatusPending,
			Timestamp: time.Date(2024, time.June, 28, 8, 0, 0, 0, time.UTC),
		},
	}

	msg := Compose(now, suggestions)

	assert.Contains(t, msg.HTMLBody, "Suggestion #1 - 6/30/2024")
	assert.Contains(t, msg.HTMLBody, "Suggestion #2 - 6/28/2024")
	// underscores in the category become spaces
	assert.Contains(t, msg.HTMLBody, "food and drink")
	// text is inserted verbatim, matching the legacy report
	assert.Contains(t, msg.HTMLBody, "Movie night <b>every</b> week")
	assert.NotContains(t, msg.HTMLBody, "No new suggestions this week.")
}

func TestSendWeeklyReport_NotConfigured(t *testing.T) {
	db := setupTestDB(t)
	sender := &fakeSender{}

	svc := NewService(db, &mailconfig.Settings{}, sender)

	err := svc.SendWeeklyReport(time.Now())
	require.ErrorIs(t, err, ErrNotConfigured)
	assert.Empty(t, sender.sent, "no dispatch must be attempted without configuration")
}

func TestSendWeeklyReport_SendsTrailingWeek(t *testing.T) {
	db := setupTestDB(t)

	now := time.Now().UTC()
	for _, s := range []models.Suggestion{
		{Text: "in window", Status: models.StatusPending, Timestamp: now.Add(-24 * time.Hour)},
		{Text: "too old", Status: models.StatusPending, Timestamp: now.Add(-10 * 24 * time.Hour)},
		{Text: "not pending", Status: "archived", Timestamp: now.Add(-24 * time.Hour)},
	} {
		seed := s
		require.NoError(t, db.Create(&seed).Error)
	}

	sender := &fakeSender{}
	svc := NewService(db, configuredSettings(), sender)

	require.NoError(t, svc.SendWeeklyReport(now))
	require.Len(t, sender.sent, 1)

	msg := sender.sent[0]
	assert.Equal(t, configuredSettings().CrewEmails, msg.Recipients)
	assert.Contains(t, msg.HTMLBody, "in window")
	assert.NotContains(t, msg.HTMLBody, "too old")
	assert.NotContains(t, msg.HTMLBody, "not pending")
}

func TestSendWeeklyReport_SenderFailure(t *testing.T) {
	db := setupTestDB(t)

	sendErr := errors.New("smtp rejected")
	sender := &fakeSender{err: sendErr}
	svc := NewService(db, configuredSettings(), sender)

	err := svc.SendWeeklyReport(time.Now())
	require.ErrorIs(t, err, sendErr)
}
