// Package web assembles the fiber application serving the suggestion box.
package web

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/maryjean/suggestion-box/internal/config"
	"github.com/maryjean/suggestion-box/internal/digest"
	accesslog "github.com/maryjean/suggestion-box/internal/logger/adapter/fiber"
	adminexport "github.com/maryjean/suggestion-box/internal/web/handler/admin/export"
	adminlogin "github.com/maryjean/suggestion-box/internal/web/handler/admin/login"
	adminreport "github.com/maryjean/suggestion-box/internal/web/handler/admin/report"
	adminstats "github.com/maryjean/suggestion-box/internal/web/handler/admin/stats"
	adminsuggestions "github.com/maryjean/suggestion-box/internal/web/handler/admin/suggestions"
	"github.com/maryjean/suggestion-box/internal/web/handler/home"
	"github.com/maryjean/suggestion-box/internal/web/handler/suggestions"
)

const (
	// CheckAlivePath is the liveness endpoint used during graceful shutdown.
	CheckAlivePath = "/checkalive"

	// MetricsPath serves prometheus metrics.
	MetricsPath = "/metrics"
)

// Service represents the web service.
type Service struct {
	App   *fiber.App
	cfg   *config.Config
	alive atomic.Bool
	db    *gorm.DB
}

// Start starts the web service on the configured port and blocks until
// shutdown completes.
func (s *Service) Start() error {
	var doneFiber = make(chan bool)

	go func() {
		addr := fmt.Sprintf(":%d", s.cfg.Webserver.Port)

		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	s.WaitShutdown()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for a termination signal and gracefully stops fiber.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: fail the liveness check first
	// so a load balancer can drain this instance.
	if s.cfg.Webserver.ShutDownTime > 0 {
		log.Info().Msgf(
			"graceful shutdown: return 503 for %d seconds to let LB remove this instance from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB, digestService *digest.Service) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	httpFS := http.FS(templateEmbedFS{embeddedTemplates})
	templateEngine := html.NewFileSystem(httpFS, ".gohtml")

	// in dev mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.ShouldReload = true

		log.Warn().Msg("dev mode enabled: using local filesystem for templates")
	}

	// create fiber app
	app := fiber.New(
		fiber.Config{
			AppName:       "suggestion-box",
			CaseSensitive: true,
			Prefork:       false,
			Immutable:     true,
			Views:         templateEngine,
		},
	)

	// access logging
	app.Use(accesslog.New(accesslog.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	// the API is open to cross-origin callers
	app.Use(cors.New())

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:       http.FS(embeddedStaticFiles),
				PathPrefix: "static",
			},
		),
	)

	// init web service
	service := &Service{
		cfg: cfg,
		App: app,
		db:  db,
	}

	service.alive.Store(true)

	app.Get(CheckAlivePath, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendString("ok")
	})

	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	// init handlers (they register their own routes)
	mustInit(home.Handler.Init(app, cfg, db))
	mustInit(suggestions.Handler.Init(app, cfg, db))
	mustInit(adminlogin.Handler.Init(app, cfg, db))
	mustInit(adminsuggestions.Handler.Init(app, cfg, db))
	mustInit(adminstats.Handler.Init(app, cfg, db))
	mustInit(adminexport.Handler.Init(app, cfg, db))
	mustInit(adminreport.Handler.Init(app, cfg, db, digestService))

	return service
}

func mustInit(err error) {
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init web handler")
	}
}
