// Package daemon wires the store, notification service, scheduler and web
// service together.
package daemon

import (
	"time"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/maryjean/suggestion-box/internal/config"
	"github.com/maryjean/suggestion-box/internal/db/models"
	"github.com/maryjean/suggestion-box/internal/digest"
	"github.com/maryjean/suggestion-box/internal/logger"
	"github.com/maryjean/suggestion-box/internal/mailconfig"
	"github.com/maryjean/suggestion-box/internal/scheduler"
	"github.com/maryjean/suggestion-box/internal/web"
)

// Daemon represents the main application daemon.
type Daemon struct {
	webService *web.Service
	scheduler  *scheduler.Scheduler
}

// Start runs the scheduler and the web service. It blocks until shutdown.
func (d *Daemon) Start() error {
	if d.scheduler != nil {
		d.scheduler.Start()
		defer d.scheduler.Stop()
	}

	return d.webService.Start()
}

// New creates a new Daemon instance with the provided configuration.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		log.Fatal().Msg("config is nil")
		return nil, nil
	}

	if err := logger.Init(cfg.Log); err != nil {
		return nil, err
	}

	db, err := gorm.Open(sqlite.Open(cfg.DB.Path), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err = db.AutoMigrate(
		&models.Suggestion{},
		&models.ConfigEntry{},
	); err != nil {
		return nil, err
	}

	if err = seed(db); err != nil {
		return nil, err
	}

	// Mail settings are read once and cached for the process lifetime.
	settings, err := mailconfig.Load(db)
	if err != nil {
		return nil, err
	}

	if !settings.Configured() {
		log.Warn().Msg("email configuration not set up, weekly reports will fail until setup is run")
	}

	digestService := digest.NewService(db, settings, digest.NewSMTPSender(settings.Transport))

	d := &Daemon{
		webService: web.New(cfg, db, digestService),
	}

	if cfg.Report.Enabled {
		d.scheduler, err = scheduler.New(cfg.Report.CronSpec, func() error {
			return digestService.SendWeeklyReport(time.Now())
		})
		if err != nil {
			return nil, err
		}
	}

	return d, nil
}
