package middleware

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bindingProbe struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

func TestBindingErrorMessageUsesJSONFieldNames(t *testing.T) {
	probe := bindingProbe{Email: "carol.mendes@example.com"}

	err := binding.Validator.ValidateStruct(&probe)
	require.Error(t, err)

	assert.Equal(t, "name is required", BindingErrorMessage(err))
}

func TestBindingErrorMessageForFailedRule(t *testing.T) {
	probe := bindingProbe{Name: "Carol Mendes", Email: "not-an-email"}

	err := binding.Validator.ValidateStruct(&probe)
	require.Error(t, err)

	assert.Equal(t, "email is invalid", BindingErrorMessage(err))
}

func TestBindingErrorMessageForTypeMismatch(t *testing.T) {
	var probe bindingProbe

	err := json.Unmarshal([]byte(`{"name":123}`), &probe)
	require.Error(t, err)

	assert.Equal(t, "name must be a string", BindingErrorMessage(err))
}

func TestBindingErrorMessageFallsBackToErrorString(t *testing.T) {
	err := errors.New("unexpected EOF")
	assert.Equal(t, "unexpected EOF", BindingErrorMessage(err))
}
