package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidTime24(t *testing.T) {
	valid := []string{"00:00", "9:00", "09:30", "17:00", "23:59"}
	for _, v := range valid {
		assert.True(t, IsValidTime24(v), v)
	}

	invalid := []string{"24:00", "12:60", "9", "9:5", "abc", ""}
	for _, v := range invalid {
		assert.False(t, IsValidTime24(v), v)
	}
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2024-03-10")
	assert.True(t, ok)

	_, ok = IsValidDate("10-03-2024")
	assert.False(t, ok)
}

func TestHasDuplicates(t *testing.T) {
	assert.False(t, HasDuplicates([]string{"monday", "sunday"}))
	assert.True(t, HasDuplicates([]string{"monday", "monday"}))
	assert.False(t, HasDuplicates(nil))
}

func TestIsValidEmployeeCode(t *testing.T) {
	assert.True(t, IsValidEmployeeCode("EMP1234"))
	assert.False(t, IsValidEmployeeCode("EMP123"))
	assert.False(t, IsValidEmployeeCode("emp1234"))
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "name", Message: "name is required"},
	}
	m := errs.ToMap()
	assert.Equal(t, "email is required", m["email"])
	assert.Equal(t, "name is required", m["name"])
	assert.Contains(t, errs.Error(), "email: email is required")
}
