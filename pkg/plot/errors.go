// ABOUTME: Error taxonomy for the rasterization core: input, config, and render errors
// ABOUTME: Typed structs checked with errors.As; all validation runs before canvas allocation

package plot

import "fmt"

// InputError reports malformed series data: an empty series list, an empty
// series, non-finite values, or a bad scatter pair.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string {
	return "invalid input: " + e.Reason
}

// ConfigError reports an unusable configuration, such as a non-positive
// explicit dimension or bin count.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid config: " + e.Reason
}

// RenderError reports an internal invariant violation discovered after
// validation. Reachable only through a bug; surfaced rather than letting a
// corrupt canvas escape.
type RenderError struct {
	Reason string
}

func (e *RenderError) Error() string {
	return "render: " + e.Reason
}

func inputErrorf(format string, args ...any) error {
	return &InputError{Reason: fmt.Sprintf(format, args...)}
}

func configErrorf(format string, args ...any) error {
	return &ConfigError{Reason: fmt.Sprintf(format, args...)}
}

func renderErrorf(format string, args ...any) error {
	return &RenderError{Reason: fmt.Sprintf(format, args...)}
}
