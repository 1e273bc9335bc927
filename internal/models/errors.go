package models

import (
	"fmt"
	"net/http"
)

// MissingParameterError is returned when a required query parameter is
// absent or empty.
type MissingParameterError struct {
	Name string
}

func (e *MissingParameterError) Error() string {
	return fmt.Sprintf("missing required parameter %q", e.Name)
}

// UpstreamError carries a non-2xx status returned by the template API.
type UpstreamError struct {
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream responded with %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// ValidationError reports the first place where a template payload departs
// from the expected shape. Path uses dotted JSON notation rooted at "$".
type ValidationError struct {
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid template payload at %s: %s", e.Path, e.Reason)
}
