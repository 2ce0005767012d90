package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	id, err := parseID("play", "0b6b5d2c-3f0e-4c55-9a5e-3c1c2f4b8e11")
	require.NoError(t, err)
	assert.Equal(t, "0b6b5d2c-3f0e-4c55-9a5e-3c1c2f4b8e11", id.String())

	for _, malformed := range []string{"", "7", "not-a-uuid"} {
		_, err := parseID("play", malformed)
		assert.ErrorIs(t, err, ErrNotFound, malformed)
	}
}

func TestValidationError(t *testing.T) {
	err := validate(struct {
		Name string `json:"name" validate:"required"`
	}{})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, map[string]string{"name": "This field is required"}, ve.Fields)
	assert.Equal(t, "validation failed: name: This field is required", err.Error())

	assert.NoError(t, validate(struct {
		Name string `json:"name" validate:"required"`
	}{Name: "Hamlet"}))
}
