package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.False(t, IsEmpty("x"))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("jane.doe@example.com"))
	assert.False(t, IsValidEmail("jane.doe"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestIsValidUUID(t *testing.T) {
	assert.True(t, IsValidUUID("6f1f9a52-0b08-4d1e-90cb-9cb5a1b0a001"))
	assert.False(t, IsValidUUID("not-a-uuid"))
	assert.False(t, IsValidUUID(""))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2026-02-07")
	assert.True(t, ok)

	for _, s := range []string{"2026-13-01", "07/02/2026", "2026-2-7", ""} {
		_, ok := IsValidDate(s)
		assert.False(t, ok, "IsValidDate(%q)", s)
	}
}

func TestIsValidClock(t *testing.T) {
	for _, s := range []string{"7:30", "0:00", "160:00", "-20:00"} {
		assert.True(t, IsValidClock(s), "IsValidClock(%q)", s)
	}
	for _, s := range []string{"7", "7:5", "7:60", "7.5", ""} {
		assert.False(t, IsValidClock(s), "IsValidClock(%q)", s)
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "Invalid email address"},
		{Field: "password", Message: "Password is required"},
	}

	assert.Equal(t, "email: Invalid email address; password: Password is required", errs.Error())
	assert.Equal(t, map[string]string{
		"email":    "Invalid email address",
		"password": "Password is required",
	}, errs.ToMap())
}
