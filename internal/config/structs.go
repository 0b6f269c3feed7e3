package config

import (
	"github.com/maryjean/suggestion-box/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Report    Report
}

// DB holds the database configuration settings.
type DB struct {
	Path string // path to the sqlite database file
}

// Webserver implement webserver settings.
type Webserver struct {
	Domain       string // domain name for the webserver
	Port         int    // listening port for the webserver
	ShutDownTime int    // wait time for shutdown
	URL          string // base url for the webserver
}

// Report holds the weekly report schedule settings.
type Report struct {
	Enabled  bool   // false = never fire the scheduled report
	CronSpec string // cron spec for the weekly report, e.g. "0 9 * * 1"
}
