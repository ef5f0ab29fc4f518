package utils

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// Limits applied to identifiers and tool parameters
const (
	MaxIDLength   = 128
	MaxParamDepth = 16
)

var (
	serviceIDPattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	toolIDPattern    = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)
)

func checkLength(value, fieldName string) error {
	if n := utf8.RuneCountInString(value); n > MaxIDLength {
		return fmt.Errorf("%s must not exceed %d characters, got %d", fieldName, MaxIDLength, n)
	}
	return nil
}

// ValidateID checks a service ID: letters, digits, '-' and '_' only.
// An empty ID passes unless required.
func ValidateID(id, fieldName string, required bool) error {
	if id == "" {
		if required {
			return fmt.Errorf("%s is required", fieldName)
		}
		return nil
	}
	if err := checkLength(id, fieldName); err != nil {
		return err
	}
	if !serviceIDPattern.MatchString(id) {
		return fmt.Errorf("%s %q may only contain letters, digits, hyphens and underscores", fieldName, id)
	}
	return nil
}

// ValidateToolID checks a "service.tool" ID and returns the service part.
func ValidateToolID(id string) (service string, err error) {
	if id == "" {
		return "", fmt.Errorf("tool ID is required")
	}
	if err := checkLength(id, "tool ID"); err != nil {
		return "", err
	}
	if !toolIDPattern.MatchString(id) {
		return "", fmt.Errorf("tool ID %q may only contain letters, digits, dots, hyphens and underscores", id)
	}

	service, tool, ok := strings.Cut(id, ".")
	if !ok || service == "" || tool == "" {
		return "", fmt.Errorf("tool ID %q must have the form service.tool", id)
	}
	return service, nil
}

// ValidateParamsDepth rejects parameter maps whose nested maps and
// slices go deeper than maxDepth.
func ValidateParamsDepth(params map[string]interface{}, maxDepth int) error {
	if depth := nesting(params, maxDepth+1); depth > maxDepth {
		return fmt.Errorf("parameter nesting exceeds maximum depth %d", maxDepth)
	}
	return nil
}

// nesting returns the depth of v, stopping once limit is reached.
func nesting(v interface{}, limit int) int {
	if limit <= 0 {
		return 0
	}
	deepest := 0
	switch v := v.(type) {
	case map[string]interface{}:
		for _, child := range v {
			deepest = max(deepest, 1+nesting(child, limit-1))
		}
	case []interface{}:
		for _, child := range v {
			deepest = max(deepest, 1+nesting(child, limit-1))
		}
	}
	return deepest
}
