package constants

import "errors"

// Configuration errors.
var (
	ErrTokenNotConfigured  = errors.New("no API token configured, use 'doofinder login' or --token")
	ErrUserIDNotConfigured = errors.New("no user id configured, use 'doofinder login' or --user-id")
	ErrUnknownConfigKey    = errors.New("unknown configuration key")
	ErrInvalidOutputFormat = errors.New("invalid output format, expected table, json or yaml")
)

// Validation errors.
var (
	ErrInvalidParam = errors.New(`invalid parameter, expected "key=value"`)
	ErrEmptyToken   = errors.New("token must not be empty")
)
