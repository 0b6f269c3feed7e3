// Package main provides the entry point for the crew suggestion box service.
// It runs a web server using the Fiber framework through which crew members
// submit anonymous suggestions and administrators review, delete, export and
// email-report them. The application uses gorm for data persistence and a
// cron timer for the weekly report dispatch.
package main
