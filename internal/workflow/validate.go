package workflow

import (
	"errors"
	"strings"
)

// ErrEmptyURL is the fixed user-facing rejection for blank input.
// The message is shown verbatim in the UI, hence the sentence casing.
var ErrEmptyURL = errors.New("Please enter a valid product URL.")

// ValidateURL trims the submitted URL and rejects empty or whitespace-only
// input. Anything non-empty is forwarded untouched - the service is the
// authority on whether a URL is actually analyzable.
func ValidateURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", ErrEmptyURL
	}
	return trimmed, nil
}
