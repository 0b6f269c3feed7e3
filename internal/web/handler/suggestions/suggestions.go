// Package suggestions provides the public API for submitting and listing
// crew suggestions.
package suggestions

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/maryjean/suggestion-box/internal/config"
	"github.com/maryjean/suggestion-box/internal/db/controller/suggestion"
	"github.com/maryjean/suggestion-box/internal/web/handler"
)

const (
	// Path is the public suggestions endpoint.
	Path = handler.APIBasePath + "/suggestions"

	// ErrTextRequired is returned when the submitted text is missing or blank.
	ErrTextRequired = "Suggestion text is required"
	// ErrTextTooLong is returned when the submitted text exceeds the limit.
	ErrTextTooLong = "Suggestion is too long"
	// ErrInvalidBody is returned when the request body cannot be parsed.
	ErrInvalidBody = "Invalid request body"
)

// Service is the public suggestions handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	db        *gorm.DB
	validator *validator.Validate
}

var (
	// Handler is the public suggestions handler.
	Handler = Service{}

	// submitted is a singleton for the submission counter.
	submitted prometheus.Counter //nolint:gochecknoglobals
)

// Init initializes the public suggestions handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.db = db
	s.cfg = cfg
	s.validator = validator.New()

	if submitted == nil {
		submitted = promauto.NewCounter(prometheus.CounterOpts{
			Name: "suggestions_submitted_total",
			Help: "Number of successfully submitted suggestions.",
		})
	}

	// register routes
	app.Route(Path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, s.List)
		router.Post(handler.RouterRootPath, s.Submit)
	})

	return nil
}

// List answers with all pending suggestions, newest first.
func (s *Service) List(c *fiber.Ctx) error {
	pending, err := suggestion.ListPending(s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch suggestions")
		return c.JSON(handler.Fail(handler.ErrDatabase))
	}

	return c.JSON(listResponse{
		Result:      handler.OK(),
		Suggestions: pending,
	})
}

// Submit validates and stores a new suggestion.
func (s *Service) Submit(c *fiber.Ctx) error {
	var req submitRequest

	if err := c.BodyParser(&req); err != nil {
		return c.JSON(handler.Fail(ErrInvalidBody))
	}

	if err := s.validator.Struct(&req); err != nil {
		return c.JSON(handler.Fail(validationMessage(err)))
	}

	created, err := suggestion.Create(s.db, req.Text, req.Category)
	if err != nil {
		switch {
		case errors.Is(err, suggestion.ErrTextEmpty):
			return c.JSON(handler.Fail(ErrTextRequired))
		case errors.Is(err, suggestion.ErrTextTooLong):
			return c.JSON(handler.Fail(ErrTextTooLong))
		default:
			log.Error().Err(err).Msg("failed to insert suggestion")
			return c.JSON(handler.Fail(handler.ErrDatabase))
		}
	}

	submitted.Inc()

	return c.JSON(submitResponse{
		Result: handler.OK(),
		ID:     created.ID,
	})
}

// validationMessage maps a validator error on the submit request to the
// legacy user-facing message.
func validationMessage(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) {
		for _, fe := range fieldErrs {
			if fe.Field() == "Text" && fe.Tag() == "max" {
				return ErrTextTooLong
			}
		}
	}

	return ErrTextRequired
}
