// Package suggestions provides the admin listing and delete endpoints.
// Beyond the login endpoint there is no server-side credential check on
// these routes; the legacy client gates them with a local flag only.
package suggestions

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/maryjean/suggestion-box/internal/config"
	"github.com/maryjean/suggestion-box/internal/db/controller/suggestion"
	"github.com/maryjean/suggestion-box/internal/web/handler"
)

const (
	// Path is the admin suggestions endpoint.
	Path = handler.AdminBasePath + "/suggestions"

	// RouteDelete is the route for deleting a single suggestion.
	RouteDelete = Path + "/:id"

	// ErrNotFound is returned when no suggestion matches the given id.
	ErrNotFound = "Suggestion not found"
)

// Service is the admin suggestions handler service.
type Service struct {
	handler.Service
	cfg *config.Config
	db  *gorm.DB
}

// Handler is the admin suggestions handler.
var Handler = Service{}

// Init initializes the admin suggestions handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg

	app.Get(Path, s.List)
	app.Delete(RouteDelete, s.Delete)

	return nil
}

// List answers with every suggestion regardless of status, newest first.
func (s *Service) List(c *fiber.Ctx) error {
	all, err := suggestion.ListAll(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch admin suggestions")
		return c.JSON(handler.Fail(handler.ErrDatabase))
	}

	return c.JSON(listResponse{
		Result:      handler.OK(),
		Suggestions: all,
	})
}

// Delete permanently removes a suggestion.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return c.JSON(handler.Fail(ErrNotFound))
	}

	if err = suggestion.Delete(s.db, id); err != nil {
		if errors.Is(err, suggestion.ErrSuggestionNotFound) {
			return c.JSON(handler.Fail(ErrNotFound))
		}

		log.Error().Err(err).Msg("failed to delete suggestion")

		return c.JSON(handler.Fail(handler.ErrDatabase))
	}

	return c.JSON(handler.OK())
}
