package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last@sub.domain.org",
		"user+tag@example.co.id",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@domain",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidDate(t *testing.T) {
	date, ok := IsValidDate("2026-06-15")
	assert.True(t, ok)
	assert.Equal(t, 2026, date.Year())
	assert.Equal(t, 15, date.Day())

	_, ok = IsValidDate("15-06-2026")
	assert.False(t, ok)

	_, ok = IsValidDate("2026-13-01")
	assert.False(t, ok)

	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsPDFFilename(t *testing.T) {
	assert.True(t, IsPDFFilename("report.pdf"))
	assert.True(t, IsPDFFilename("REPORT.PDF"))
	assert.True(t, IsPDFFilename("archive.tar.pdf"))
	assert.False(t, IsPDFFilename("report.pdf.exe"))
	assert.False(t, IsPDFFilename("report.txt"))
	assert.False(t, IsPDFFilename("pdf"))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "email", Message: "email is required"},
		{Field: "password", Message: "too short"},
	}

	assert.Equal(t, "email: email is required; password: too short", errs.Error())

	m := errs.ToMap()
	assert.Equal(t, "email is required", m["email"])
	assert.Equal(t, "too short", m["password"])
}
