package validation

import (
	"errors"
	"regexp"
	"unicode/utf8"
)

// Validation rule patterns
var (
	// Course names allow letters, digits, spaces, parentheses and hyphens,
	// anchored over the whole string.
	CourseNamePattern = `^[A-Za-z0-9 ()-]+$`

	// Course name min length
	CourseNameMinLength = 5
)

// CompiledPatterns caches compiled regex patterns for better performance
var CompiledPatterns = struct {
	CourseName *regexp.Regexp
}{
	CourseName: regexp.MustCompile(CourseNamePattern),
}

// CourseName validates a course name against the length and character rules.
func CourseName(name string) error {
	if utf8.RuneCountInString(name) < CourseNameMinLength {
		return errors.New("name must be at least 5 characters")
	}
	if !CompiledPatterns.CourseName.MatchString(name) {
		return errors.New("name contains invalid characters")
	}
	return nil
}
