package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSchemaPath_FindsRepoSchemas(t *testing.T) {
	assert.NotEmpty(t, ResolveSchemaPath(JobPostingSchema))
	assert.NotEmpty(t, ResolveSchemaPath(UserProfileSchema))
}

func TestResolveSchemaPath_MissingFile(t *testing.T) {
	assert.Empty(t, ResolveSchemaPath("schemas/does_not_exist.schema.json"))
}

func TestValidateJobPosting_Valid(t *testing.T) {
	doc := `{
		"id": "job-1",
		"title": "Backend Engineer",
		"company": "Acme",
		"remote_type": "remote",
		"salary_min": 120000,
		"required_skills": ["Go", "PostgreSQL"]
	}`

	assert.NoError(t, ValidateJobPosting(doc))
}

func TestValidateJobPosting_MissingRequiredFields(t *testing.T) {
	err := ValidateJobPosting(`{"company": "Acme"}`)

	require.Error(t, err)
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.NotEmpty(t, validationErr.Errors)
}

func TestValidateJobPosting_RejectsUnknownFields(t *testing.T) {
	err := ValidateJobPosting(`{"id": "job-1", "title": "Engineer", "surprise": true}`)

	assert.Error(t, err)
}

func TestValidateUserProfile_Valid(t *testing.T) {
	doc := `{
		"user_id": "user-1",
		"primary_title": "Backend Engineer",
		"skills": ["go", "postgresql"],
		"remote_preference": "remote",
		"min_salary": 120000
	}`

	assert.NoError(t, ValidateUserProfile(doc))
}

func TestValidateUserProfile_RejectsBadRemotePreference(t *testing.T) {
	err := ValidateUserProfile(`{"remote_preference": "sometimes"}`)

	require.Error(t, err)
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "remote_preference", validationErr.Errors[0].Field)
}

func TestValidateDocument_UnknownSchema(t *testing.T) {
	err := ValidateDocument("schemas/missing.schema.json", `{}`)

	assert.ErrorContains(t, err, "schema file not found")
}
