package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("owner@club.example"))
	assert.True(t, IsValidEmail("first.last+tag@sub.domain.co"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail(""))
}

func TestIsValidClubSlug(t *testing.T) {
	assert.True(t, IsValidClubSlug("arena-51"))
	assert.True(t, IsValidClubSlug("cyber-club-central"))
	assert.False(t, IsValidClubSlug("ab"))
	assert.False(t, IsValidClubSlug("Has Spaces"))
	assert.False(t, IsValidClubSlug("UPPER"))
}

func TestIsValidEmployeeCode(t *testing.T) {
	assert.True(t, IsValidEmployeeCode("2024-0017"))
	assert.False(t, IsValidEmployeeCode("20240017"))
	assert.False(t, IsValidEmployeeCode("2024-17"))
}

func TestIsValidDateTime(t *testing.T) {
	_, ok := IsValidDateTime("2024-01-15T10:30:00Z")
	assert.True(t, ok)
	_, ok = IsValidDateTime("2024-01-15T10:30:00+07:00")
	assert.True(t, ok)
	_, ok = IsValidDateTime("2024-01-15")
	assert.False(t, ok)
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "is required"},
		{Field: "slug", Message: "is invalid"},
	}
	m := errs.ToMap()
	assert.Equal(t, "is required", m["name"])
	assert.Equal(t, "is invalid", m["slug"])
	assert.Contains(t, errs.Error(), "name: is required")
}
