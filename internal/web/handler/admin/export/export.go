// Package export provides the admin CSV export endpoint.
package export

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/maryjean/suggestion-box/internal/config"
	"github.com/maryjean/suggestion-box/internal/report"
	"github.com/maryjean/suggestion-box/internal/web/handler"
)

const (
	// Path is the admin export endpoint.
	Path = handler.AdminBasePath + "/export"
)

// Service is the admin export handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the admin export handler.
var Handler = Service{}

// Init initializes the admin export handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, s.Get)

	return nil
}

// Get answers with the CSV rendering of every stored suggestion. The CSV
// is carried inside the JSON body, matching the legacy client.
func (s *Service) Get(c *fiber.Ctx) error {
	csv, err := report.ExportCSV(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to export suggestions")
		return c.JSON(handler.Fail(handler.ErrDatabase))
	}

	return c.JSON(exportResponse{
		Result: handler.OK(),
		CSV:    csv,
	})
}
