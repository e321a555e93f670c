package codemode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateNamespace_Valid(t *testing.T) {
	assert.NoError(t, validateNamespace("api"))
	assert.NoError(t, validateNamespace("_petStore"))
	assert.NoError(t, validateNamespace("$ns"))
}

func TestValidateNamespace_InvalidIdentifier(t *testing.T) {
	err := validateNamespace("123abc")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "must be a valid JavaScript identifier")
}

func TestValidateNamespace_Reserved(t *testing.T) {
	for _, ns := range []string{"spec", "console", "global", "Object", "globalThis"} {
		err := validateNamespace(ns)
		assert.Errorf(t, err, "expected %q to be rejected", ns)
		assert.Contains(t, err.Error(), "conflicts with reserved name")
	}
}

func TestConfig_WithDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	assert.Equal(t, defaultNamespace, cfg.Namespace)
	assert.Equal(t, defaultBaseURL, cfg.BaseURL)
	assert.Equal(t, defaultMaxResponseTokens, cfg.MaxResponseTokens)
	assert.Equal(t, defaultSearchToolName, cfg.SearchToolName)
	assert.Equal(t, defaultExecuteToolName, cfg.ExecuteToolName)
}
