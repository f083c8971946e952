package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrProviderUnavailable marks catalog or model endpoints that were
	// unreachable, answered non-2xx, or returned an undecodable payload.
	ErrProviderUnavailable = errors.New("provider unavailable")
	// ErrUnparsableModelOutput marks model completions that did not contain a
	// usable filter object.
	ErrUnparsableModelOutput = errors.New("unparsable model output")
	ErrConfiguration         = errors.New("configuration error")
	ErrValidation            = errors.New("validation error")
)

// Wrap builds an error message that includes component context while tagging it
// with the provided marker for later classification. The marker should be one
// of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrProviderUnavailable
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// Recoverable reports whether the pipeline should degrade and continue after err.
// Provider and model-output failures narrow the request; configuration and
// validation failures abort it.
func Recoverable(err error) bool {
	switch {
	case err == nil:
		return true
	case errors.Is(err, ErrConfiguration), errors.Is(err, ErrValidation):
		return false
	case errors.Is(err, ErrProviderUnavailable), errors.Is(err, ErrUnparsableModelOutput):
		return true
	default:
		return false
	}
}

// UserNotice returns the short message shown to the end user for a recoverable
// failure. Unknown errors fall back to their own text.
func UserNotice(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrUnparsableModelOutput):
		return "The assistant's response couldn't be parsed. Try rewording your query."
	case errors.Is(err, ErrProviderUnavailable):
		return "A remote service is unavailable; continuing with the filters you selected."
	default:
		return err.Error()
	}
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
