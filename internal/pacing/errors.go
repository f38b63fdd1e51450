package pacing

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConfig is wrapped by every ConfigError.
var ErrInvalidConfig = errors.New("invalid time control")

// ConfigError reports an invalid or contradictory combination of parameters.
type ConfigError struct {
	Params []string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid %s: %s", strings.Join(e.Params, " and "), e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

func configErr(reason string, params ...string) error {
	return &ConfigError{Params: params, Reason: reason}
}
