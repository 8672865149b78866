package calculation

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter is wrapped by every validation failure of the engine.
var ErrInvalidParameter = errors.New("invalid parameter")

// ParameterError reports which input was rejected and why.
type ParameterError struct {
	Param  string
	Reason string
}

func (e *ParameterError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidParameter, e.Param, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidParameter.
func (e *ParameterError) Unwrap() error { return ErrInvalidParameter }

func invalidParam(param, format string, args ...any) error {
	return &ParameterError{Param: param, Reason: fmt.Sprintf(format, args...)}
}
