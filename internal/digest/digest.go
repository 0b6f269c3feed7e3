// Package digest composes and dispatches the weekly suggestion report email.
package digest

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/maryjean/suggestion-box/internal/db/controller/suggestion"
	"github.com/maryjean/suggestion-box/internal/db/models"
	"github.com/maryjean/suggestion-box/internal/mailconfig"
)

// Message is a composed report email ready for dispatch.
type Message struct {
	Subject    string
	HTMLBody   string
	Recipients []string
}

// Service queries, composes and dispatches weekly reports. The mail
// settings are loaded once at startup and never reloaded.
type Service struct {
	db       *gorm.DB
	settings *mailconfig.Settings
	sender   Sender
}

// NewService creates a digest service using the given settings and sender.
func NewService(db *gorm.DB, settings *mailconfig.Settings, sender Sender) *Service {
	return &Service{
		db:       db,
		settings: settings,
		sender:   sender,
	}
}

// SendWeeklyReport queries the trailing week of pending suggestions,
// composes the digest and dispatches it to the crew. It fails fast with
// ErrNotConfigured before any query if the mail settings are incomplete.
func (s *Service) SendWeeklyReport(now time.Time) error {
	if !s.settings.Configured() {
		return ErrNotConfigured
	}

	suggestions, err := suggestion.ListWindow(s.db, now.Add(-suggestion.WeeklyWindow))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStore, err)
	}

	msg := Compose(now, suggestions)
	msg.Recipients = s.settings.CrewEmails

	return s.sender.Send(msg)
}

// Compose builds the report subject and HTML body. An empty suggestion set
// yields a placeholder notice instead of an empty enumeration. Suggestion
// text is inserted verbatim, matching the legacy report format.
func Compose(now time.Time, suggestions []models.Suggestion) *Message {
	var b strings.Builder

	b.WriteString("<h2>Mary Jean II - Weekly Suggestions Report</h2>\n")
	b.WriteString("<p>Here are the suggestions submitted this week:</p>\n<hr>\n")

	if len(suggestions) == 0 {
		b.WriteString("<p><em>No new suggestions this week.</em></p>\n")
	} else {
		for i := range suggestions {
			writeEntry(&b, i+1, &suggestions[i])
		}
	}

	b.WriteString("<hr>\n")
	b.WriteString("<p><em>This report was automatically generated by the Mary Jean II Suggestion Box system.</em></p>\n")
	b.WriteString("<p><em>To review and manage suggestions, please access the admin panel.</em></p>\n")

	return &Message{
		Subject:  fmt.Sprintf("Mary Jean II - Weekly Suggestions Report (%s)", shortDate(now)),
		HTMLBody: b.String(),
	}
}

func writeEntry(b *strings.Builder, index int, s *models.Suggestion) {
	category := strings.ReplaceAll(s.Category, "_", " ")

	fmt.Fprintf(b, "<div>\n<h4>Suggestion #%d - %s</h4>\n", index, shortDate(s.Timestamp))
	fmt.Fprintf(b, "<p><strong>Category:</strong> %s</p>\n", category)
	fmt.Fprintf(b, "<p><strong>Suggestion:</strong></p>\n<p>%s</p>\n</div>\n", s.Text)
}

func shortDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}
