package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type input struct {
	Value     string `json:"value" validate:"required,min=1,max=10000"`
	ProjectID string `json:"projectId" validate:"required"`
}

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, Struct(input{Value: "build a todo app", ProjectID: "p1"}))
}

func TestStruct_EmptyValue(t *testing.T) {
	err := Struct(input{Value: "", ProjectID: "p1"})

	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	var verr *Error
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "value", verr.Fields[0].Field)
	assert.Equal(t, "required", verr.Fields[0].Rule)
}

func TestStruct_LengthBoundaries(t *testing.T) {
	assert.NoError(t, Struct(input{Value: strings.Repeat("a", 10000), ProjectID: "p1"}))

	err := Struct(input{Value: strings.Repeat("a", 10001), ProjectID: "p1"})
	require.Error(t, err)
	assert.Equal(t, "value: must be at most 10000 characters", err.Error())
}

func TestStruct_CountsCodePoints(t *testing.T) {
	// 10000 runes, 30000 bytes
	assert.NoError(t, Struct(input{Value: strings.Repeat("界", 10000), ProjectID: "p1"}))
}

func TestStruct_MultipleFields(t *testing.T) {
	err := Struct(input{})

	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Fields, 2)
	assert.Contains(t, err.Error(), "projectId: is required")
}

func TestIsValidationError_OtherErrors(t *testing.T) {
	assert.False(t, IsValidationError(assert.AnError))
	assert.False(t, IsValidationError(nil))
}
