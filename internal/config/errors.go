package config

import (
	"github.com/pkg/errors"
)

var ErrMissingKey = errors.New("missing required key")

// ConfigurationError reports a missing, unreadable or incomplete
// configuration source.
type ConfigurationError struct {
	Section string
	Key     string
	Err     error
}

func (e *ConfigurationError) Error() string {
	if e.Key != "" {
		return "configuration error: [" + e.Section + "] " + e.Key + ": " + e.Err.Error()
	}
	return "configuration error: " + e.Err.Error()
}

func (e *ConfigurationError) Unwrap() error { return e.Err }
