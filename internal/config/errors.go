package config

import (
	"errors"
)

var (
	// ErrEmptyDBPath error if config db.path is empty.
	ErrEmptyDBPath = errors.New("toml config db.path can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("toml config webserver.port listening port can not be 0")
)
