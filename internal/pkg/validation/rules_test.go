package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCourseName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "too short", input: "Math", wantErr: "name must be at least 5 characters"},
		{name: "minimum length", input: "Maths", wantErr: ""},
		{name: "empty", input: "", wantErr: "name must be at least 5 characters"},
		{name: "parentheses and hyphen", input: "Algebra (Intro) - 1", wantErr: ""},
		{name: "digits", input: "Biology 101", wantErr: ""},
		{name: "invalid punctuation", input: "Maths!", wantErr: "name contains invalid characters"},
		{name: "invalid underscore", input: "Study_Skills", wantErr: "name contains invalid characters"},
		{name: "invalid in the middle", input: "Chemistry & Physics", wantErr: "name contains invalid characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CourseName(tt.input)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestCourseNamePatternMatchesWholeString(t *testing.T) {
	// A single valid leading character must not carry an otherwise
	// invalid name.
	assert.False(t, CompiledPatterns.CourseName.MatchString("A_____"))
	assert.True(t, CompiledPatterns.CourseName.MatchString("ABCDE"))
}
