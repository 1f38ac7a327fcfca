package domain

import (
	"fmt"
	"strings"
)

// checkField rejects empty values and values that would break the line format.
func checkField(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: empty %s", ErrInvalid, name)
	}
	if strings.ContainsAny(value, ",\r\n") {
		return fmt.Errorf("%w: %s must not contain commas or line breaks", ErrInvalid, name)
	}
	return nil
}
