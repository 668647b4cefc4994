package catalog

import (
	"fmt"
	"regexp"
	"strings"
)

const maxKeyLength = 100

// Keys are addressed from URLs, so the convention is a lowercase hyphenated slug.
var keyPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

// Issue is an advisory finding about a registered unit.
type Issue struct {
	Key     string `json:"key"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Key, i.Message)
}

// Lint checks registered units against the authoring conventions. It reports
// problems only; keys are never rewritten.
func Lint(r *Registry) []Issue {
	var issues []Issue
	for _, u := range r.Entries() {
		if err := ValidateKey(u.Key); err != nil {
			issues = append(issues, Issue{Key: u.Key, Message: err.Error()})
		}
		if strings.TrimSpace(u.Payload) == "" {
			issues = append(issues, Issue{Key: u.Key, Message: "payload is empty"})
		}
		if strings.TrimSpace(u.Title) == "" {
			issues = append(issues, Issue{Key: u.Key, Message: "title is empty"})
		}
	}
	return issues
}

// ValidateKey checks a key against the slug naming convention.
func ValidateKey(key string) error {
	if key == "" {
		return fmt.Errorf("key cannot be empty")
	}

	if len(key) > maxKeyLength {
		return fmt.Errorf("key too long (max %d characters)", maxKeyLength)
	}

	if !keyPattern.MatchString(key) {
		return fmt.Errorf("key must be a lowercase slug (letters, digits, single hyphens)")
	}

	return nil
}
