package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("owner@avis.dev"))
	assert.True(t, IsValidEmail("first.last+tag@example.co.uk"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@domain"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("3f0e9f2a-6f1a-4b47-9c3e-60bb1a2f4a11"))
	assert.False(t, IsValidUUID("3f0e9f2a"))
	assert.False(t, IsValidUUID(""))
}

func TestIsValidDate(t *testing.T) {
	parsed, ok := IsValidDate("2026-08-29")
	assert.True(t, ok)
	assert.Equal(t, 2026, parsed.Year())

	_, ok = IsValidDate("29-08-2026")
	assert.False(t, ok)

	_, ok = IsValidDate("2026-13-01")
	assert.False(t, ok)
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email must be a valid email address"},
		{Field: "password", Message: "password must be at least 6 characters"},
	}

	m := errs.ToMap()
	assert.Len(t, m, 2)
	assert.Equal(t, "email must be a valid email address", m["email"])
	assert.Error(t, errs)
}
