// Package login provides the admin gate: an exact comparison of the
// submitted password against the stored shared secret. No session or token
// is issued; the client keeps its own logged-in flag and the remaining
// admin endpoints perform no credential check of their own.
package login

import (
	"crypto/subtle"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/maryjean/suggestion-box/internal/config"
	"github.com/maryjean/suggestion-box/internal/db/controller/configentry"
	"github.com/maryjean/suggestion-box/internal/web/handler"
)

const (
	// Path is the admin login endpoint.
	Path = handler.AdminBasePath + "/login"

	// ErrInvalidPassword is returned on a failed password comparison.
	ErrInvalidPassword = "Invalid password"
)

// Service is the admin login handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the admin login handler.
var Handler = Service{}

// Init initializes the admin login handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg

	app.Post(Path, s.Post)

	return nil
}

// Post handles the login request.
func (s *Service) Post(c *fiber.Ctx) error {
	var req loginRequest

	if err := c.BodyParser(&req); err != nil {
		return c.JSON(handler.Fail(ErrInvalidPassword))
	}

	entry, err := configentry.Get(s.db, configentry.KeyAdminPassword)
	if err != nil {
		if errors.Is(err, configentry.ErrEntryNotFound) {
			return c.JSON(handler.Fail(ErrInvalidPassword))
		}

		log.Error().Err(err).Msg("failed to check admin password")

		return c.JSON(handler.Fail(handler.ErrDatabase))
	}

	if subtle.ConstantTimeCompare([]byte(entry.Value), []byte(req.Password)) != 1 {
		return c.JSON(handler.Fail(ErrInvalidPassword))
	}

	return c.JSON(handler.OK())
}
