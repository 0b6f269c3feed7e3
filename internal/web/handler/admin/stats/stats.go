// Package stats provides the admin statistics endpoint.
package stats

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/maryjean/suggestion-box/internal/config"
	"github.com/maryjean/suggestion-box/internal/db/controller/suggestion"
	"github.com/maryjean/suggestion-box/internal/web/handler"
)

const (
	// Path is the admin stats endpoint.
	Path = handler.AdminBasePath + "/stats"
)

// Service is the admin stats handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the admin stats handler.
var Handler = Service{}

// Init initializes the admin stats handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, s.Get)

	return nil
}

// Get answers with a point-in-time snapshot of suggestion counts.
func (s *Service) Get(c *fiber.Ctx) error {
	stats, err := suggestion.GetStats(s.db, time.Now())
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch stats")
		return c.JSON(handler.Fail(handler.ErrDatabase))
	}

	return c.JSON(statsResponse{
		Result: handler.OK(),
		Stats:  stats,
	})
}
