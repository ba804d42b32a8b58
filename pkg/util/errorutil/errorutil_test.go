package errorutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDomainError(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))

	validation := NewValidationError("title or description is required", map[string]any{"field": "description"})
	wrapped := fmt.Errorf("triage: %w", validation)
	de := ToDomainError(wrapped)
	require.NotNil(t, de)
	assert.Equal(t, CodeValidation, de.Code)
	assert.Equal(t, http.StatusBadRequest, de.HTTPStatus)
	assert.Equal(t, "description", de.Details["field"])

	plain := errors.New("boom")
	de = ToDomainError(plain)
	assert.Equal(t, CodeInternal, de.Code)
	assert.Equal(t, http.StatusInternalServerError, de.HTTPStatus)
	assert.ErrorIs(t, de, plain)
}

func TestErrorMessages(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := NewUnavailable("redis unavailable", cause)
	assert.Equal(t, "redis unavailable: dial tcp: refused", err.Error())
	assert.ErrorIs(t, err, cause)

	assert.Equal(t, "rules not found", NewNotFound("rules", nil).Error())
	assert.Equal(t, http.StatusRequestTimeout, ToDomainError(NewTimeout()).HTTPStatus)
	assert.Equal(t, http.StatusUnprocessableEntity, ToDomainError(NewInvalidRules(cause, nil)).HTTPStatus)
}
