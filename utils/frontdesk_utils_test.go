package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessPIN(t *testing.T) {
	pin, err := GenerateAccessPIN(PINLength)
	require.NoError(t, err)
	require.Len(t, pin, PINLength)
	for _, r := range pin {
		assert.True(t, r >= '0' && r <= '9', "pin must be numeric, got %q", pin)
	}
}

func TestGenerateAccessPIN_InvalidLength(t *testing.T) {
	_, err := GenerateAccessPIN(0)
	assert.Error(t, err)
}

func TestValidateGSTIN(t *testing.T) {
	assert.NoError(t, ValidateGSTIN(""))
	assert.NoError(t, ValidateGSTIN("22AAAAA0000A1Z5"))
	assert.Error(t, ValidateGSTIN("too-short"))
	assert.Error(t, ValidateGSTIN("22AAAAA0000A1Z55"))
}

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("FRONTDESK_TEST_KEY", "value")
	assert.Equal(t, "value", EnvOrDefault("FRONTDESK_TEST_KEY", "fallback"))
	assert.Equal(t, "fallback", EnvOrDefault("FRONTDESK_TEST_MISSING", "fallback"))

	t.Setenv("FRONTDESK_TEST_BLANK", "   ")
	assert.Equal(t, "fallback", EnvOrDefault("FRONTDESK_TEST_BLANK", "fallback"))
}
