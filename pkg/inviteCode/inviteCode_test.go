package inviteCode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAndDecode(t *testing.T) {
	email := "admin@example.com"
	code := Generate(email)
	assert.NotEmpty(t, code, "Invite code should not be empty")

	decodedEmail, uniqueID, err := Decode(code)
	assert.Nil(t, err, "Should not have an error during decoding")
	assert.Equal(t, email, decodedEmail, "Decoded email should match the original")
	assert.NotEmpty(t, uniqueID, "Decoded unique ID should not be empty")
}

func TestGenerateIsUnique(t *testing.T) {
	first := Generate("admin@example.com")
	second := Generate("admin@example.com")
	assert.NotEqual(t, first, second, "Two invites for the same email should differ")
}

func TestDecode_ErrorHandling(t *testing.T) {
	_, _, err := Decode("this is not a base64 string")
	assert.NotNil(t, err, "Expected an error for incorrect base64 string")

	_, _, err = Decode("bm8tc2VwYXJhdG9y") // valid base64, no separator
	assert.NotNil(t, err, "Expected an error for a code without a separator")
}
