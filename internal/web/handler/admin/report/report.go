// Package report provides the on-demand weekly report dispatch endpoint.
package report

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/maryjean/suggestion-box/internal/config"
	"github.com/maryjean/suggestion-box/internal/digest"
	"github.com/maryjean/suggestion-box/internal/web/handler"
)

const (
	// Path is the on-demand weekly report endpoint.
	Path = handler.AdminBasePath + "/send-weekly-report"

	// ErrNotConfigured is returned when the email settings are incomplete.
	ErrNotConfigured = "Email configuration not set up"
	// ErrSendFailed is returned when the transport rejects the dispatch.
	ErrSendFailed = "Failed to send email"
)

// Service is the weekly report handler service.
type Service struct {
	handler.Service
	cfg    *config.Config
	db     *gorm.DB
	digest *digest.Service
}

// Handler is the weekly report handler.
var Handler = Service{}

// Init initializes the weekly report handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB, digestService *digest.Service) error {
	if app == nil || cfg == nil || db == nil || digestService == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg
	s.digest = digestService

	app.Post(Path, s.Post)

	return nil
}

// Post runs the identical query-compose-dispatch sequence the scheduler
// uses, but surfaces the outcome to the caller.
func (s *Service) Post(c *fiber.Ctx) error {
	if err := s.digest.SendWeeklyReport(time.Now()); err != nil {
		switch {
		case errors.Is(err, digest.ErrNotConfigured):
			return c.JSON(handler.Fail(ErrNotConfigured))
		case errors.Is(err, digest.ErrStore):
			log.Error().Err(err).Msg("failed to query weekly suggestions")
			return c.JSON(handler.Fail(handler.ErrDatabase))
		default:
			log.Error().Err(err).Msg("failed to send weekly report")
			return c.JSON(handler.Fail(ErrSendFailed))
		}
	}

	return c.JSON(handler.OK())
}
