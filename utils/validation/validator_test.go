package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type marksRequest struct {
	Marks   map[string]int `validate:"required,min=1,dive,keys,subject,endkeys,gte=0,lte=100"`
	Variant string         `validate:"apsvariant"`
}

func TestValidator_Marks(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.ValidateStruct(marksRequest{Marks: map[string]int{"mathematics": 80}}))
	assert.NoError(t, v.ValidateStruct(marksRequest{Marks: map[string]int{"english": 0}, Variant: "all_subjects"}))

	err := v.ValidateStruct(marksRequest{Marks: map[string]int{"latin": 80}})
	require.Error(t, err)
	assert.Equal(t, map[string]string{"marks[latin]": `unknown subject "latin"`}, FormatValidationErrors(err))

	err = v.ValidateStruct(marksRequest{Marks: map[string]int{"history": 101}})
	require.Error(t, err)
	assert.Equal(t, "Marks[history] must be less than or equal to 100", FormatValidationErrors(err)["marks[history]"])

	err = v.ValidateStruct(marksRequest{Marks: map[string]int{"history": 50}, Variant: "best_five"})
	require.Error(t, err)
	assert.Contains(t, FormatValidationErrors(err), "variant")
}

func TestSanitizeString(t *testing.T) {
	assert.Equal(t, "abc", SanitizeString("  a\x00bc \n"))
}
