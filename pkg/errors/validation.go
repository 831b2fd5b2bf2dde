package errors

import (
	"strings"
	"unicode"
)

// maxElementNameLength bounds element names accepted from payloads and flags.
const maxElementNameLength = 128

// ValidateElementName validates an element name for safety and correctness.
//
// Element names are free-form display strings ("Acid Rain", "Big Bang"), so
// the rules only reject what cannot be rendered or safely used in file names:
//   - No empty or whitespace-only names
//   - No control characters or null bytes
//   - Maximum length of 128 characters
func ValidateElementName(name string) error {
	if strings.TrimSpace(name) == "" {
		return New(ErrCodeInvalidElement, "element name cannot be empty")
	}

	if len(name) > maxElementNameLength {
		return New(ErrCodeInvalidElement, "element name too long (max %d characters)", maxElementNameLength)
	}

	for _, r := range name {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidElement, "element name contains invalid control characters")
		}
	}

	return nil
}

// ValidateAlgo validates a search algorithm selector.
// Only "bfs" and "dfs" are understood by the search service.
func ValidateAlgo(algo string) error {
	switch strings.ToLower(algo) {
	case "bfs", "dfs":
		return nil
	case "":
		return New(ErrCodeInvalidAlgo, "algorithm cannot be empty")
	default:
		return New(ErrCodeInvalidAlgo, "algo must be bfs or dfs, got %q", algo)
	}
}

// ValidatePath validates an output path for safety.
//
// Validation rules:
//   - Path cannot be empty
//   - Maximum length of 500 characters
//   - No null bytes or control characters
func ValidatePath(path string) error {
	if path == "" {
		return New(ErrCodeInvalidPath, "path cannot be empty")
	}

	const maxPathLength = 500
	if len(path) > maxPathLength {
		return New(ErrCodeInvalidPath, "path too long (max %d characters)", maxPathLength)
	}

	for _, r := range path {
		if r == '\x00' || unicode.IsControl(r) {
			return New(ErrCodeInvalidPath, "path contains invalid characters")
		}
	}

	return nil
}
