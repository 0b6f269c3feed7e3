// Package report renders admin reporting output for stored suggestions.
package report

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/maryjean/suggestion-box/internal/db/controller/suggestion"
	"github.com/maryjean/suggestion-box/internal/db/models"
)

// CSVHeader is the fixed header row of the export.
const CSVHeader = "Date,Category,Status,Suggestion"

// ExportCSV renders all suggestions as a comma separated table, newest
// first. Commas inside category and text become semicolons and newlines
// inside text become spaces before quoting, so the output is deliberately
// lossy and not RFC 4180 round-trippable.
func ExportCSV(db *gorm.DB) (string, error) {
	suggestions, err := suggestion.ListAll(db)
	if err != nil {
		return "", err
	}

	var b strings.Builder

	b.WriteString(CSVHeader)
	b.WriteString("\n")

	for i := range suggestions {
		b.WriteString(csvRow(&suggestions[i]))
		b.WriteString("\n")
	}

	return b.String(), nil
}

func csvRow(s *models.Suggestion) string {
	date := fmt.Sprintf("%d/%d/%d", int(s.Timestamp.Month()), s.Timestamp.Day(), s.Timestamp.Year())

	category := strings.ReplaceAll(s.Category, ",", ";")

	text := strings.ReplaceAll(s.Text, ",", ";")
	text = strings.ReplaceAll(text, "\n", " ")

	// plain quote wrapping, inner double quotes are not escaped
	return fmt.Sprintf(`"%s","%s","%s","%s"`, date, category, s.Status, text)
}
