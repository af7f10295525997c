package config

import "errors"

var (
	// ErrInvalidShowTime is returned for a show_time that is neither a
	// boolean, a string nor a list of strings
	ErrInvalidShowTime = errors.New("invalid show_time")
	// ErrInvalidLevels is returned for an unknown level name or a
	// malformed level set
	ErrInvalidLevels = errors.New("invalid levels")
	// ErrInvalidStyle is returned for an unknown style name or a
	// malformed style selection
	ErrInvalidStyle = errors.New("invalid style")
	// ErrInvalidEnv is returned for an environment variable that cannot
	// be parsed
	ErrInvalidEnv = errors.New("invalid environment variable")
	// ErrUnknownKey is returned for keys the file format does not define
	ErrUnknownKey = errors.New("unknown key")
)
