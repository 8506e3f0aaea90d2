package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeBodyRedactsPassword(t *testing.T) {
	out := sanitizeBody(`{"username":"chef_amy","password":"super-secret-pw"}`)
	assert.Contains(t, out, "[REDACTED]")
	assert.NotContains(t, out, "super-secret-pw")
	assert.Contains(t, out, "chef_amy")
}

func TestSanitizeBodyLeavesOtherPayloadsAlone(t *testing.T) {
	in := `{"name":"Al","email":"al@x.com"}`
	assert.Equal(t, in, sanitizeBody(in))

	assert.Equal(t, "", sanitizeBody(""))
	assert.Equal(t, "not json", sanitizeBody("not json"))
}

func TestHeaderStringSkipsCredentials(t *testing.T) {
	out := headerString(map[string][]string{
		"Content-Type":  {"application/json"},
		"Authorization": {"Bearer token"},
		"Cookie":        {"access=abc"},
	})
	assert.Contains(t, out, "Content-Type: application/json")
	assert.NotContains(t, out, "Bearer token")
	assert.NotContains(t, out, "access=abc")
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hashed, err := HashPassword("super-secret-pw")
	assert.NoError(t, err)
	assert.NotEqual(t, "super-secret-pw", hashed)
	assert.True(t, CheckPassword(hashed, "super-secret-pw"))
	assert.False(t, CheckPassword(hashed, "wrong-password"))
}
