package handler

const (
	// RouterRootPath is the root path within a route group.
	RouterRootPath = "/"

	// RootPath is the root path of the application.
	RootPath = "/"

	// APIBasePath is the base path for the JSON API.
	APIBasePath = "/api"

	// AdminBasePath is the base path for admin API endpoints.
	AdminBasePath = "/api/admin"

	// ErrNilACDFatalLogMsg is used if app or cfg or db var pointer is nil.
	ErrNilACDFatalLogMsg = "app, cfg or db is nil"

	// ErrDatabase is the generic error surfaced for any store failure.
	ErrDatabase = "Database error"
)
