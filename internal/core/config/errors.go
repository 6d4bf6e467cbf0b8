package config

import (
	"errors"
	"fmt"
)

// ErrMissingHome is returned when HOME is not set
var ErrMissingHome = errors.New("HOME is not set")

// InvalidValueError reports an environment variable with an unusable value
type InvalidValueError struct {
	Var   string
	Value string
	Err   error
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid %s=%q: %v", e.Var, e.Value, e.Err)
}

func (e *InvalidValueError) Unwrap() error {
	return e.Err
}
