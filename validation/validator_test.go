package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcp-playground/models"
)

func TestValidateMissingFields(t *testing.T) {
	err := Validate(models.CreateToolRequest{Name: "x"})
	require.Error(t, err)

	var ve models.ErrorValidation
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "Missing required fields: description, category", ve.Message)
}

func TestValidateEmail(t *testing.T) {
	err := Validate(models.CreateContactMessageRequest{
		Name: "Ada", Email: "not-an-email", Subject: "Hi", Message: "long enough message",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email")
	assert.True(t, models.IsValidation(err))
}

func TestValidateMessageLength(t *testing.T) {
	req := models.CreateContactMessageRequest{
		Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: strings.Repeat("a", 9),
	}
	err := Validate(req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "message")

	req.Message = strings.Repeat("a", 10)
	assert.NoError(t, Validate(req))

	req.Message = strings.Repeat("a", 5001)
	assert.Error(t, Validate(req))
}

func TestValidateRatingRange(t *testing.T) {
	bad := 5.5
	assert.Error(t, Validate(models.UpdateToolRequest{Rating: &bad}))

	ok := 4.2
	assert.NoError(t, Validate(models.UpdateToolRequest{Rating: &ok}))
	assert.NoError(t, Validate(models.UpdateToolRequest{}))
}

func TestValidateReportsFieldAndRule(t *testing.T) {
	err := Validate(models.CreateContactMessageRequest{
		Name: "Ada", Email: "ada@example.com", Subject: "Hi", Message: "short",
	})

	var ve models.ErrorValidation
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "message", ve.Field)
	assert.Equal(t, "min", ve.Rule)
}
