package specprocessor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSpec_YAML(t *testing.T) {
	doc, err := LoadSpec([]byte("openapi: 3.0.0\npaths:\n  /pet:\n    get:\n      summary: Get\n"))
	require.NoError(t, err)
	assert.Equal(t, "3.0.0", doc["openapi"])
}

func TestLoadSpec_JSON(t *testing.T) {
	doc, err := LoadSpec([]byte(`{"openapi":"3.0.0","paths":{}}`))
	require.NoError(t, err)
	assert.Equal(t, "3.0.0", doc["openapi"])
}

func TestLoadSpec_Invalid(t *testing.T) {
	_, err := LoadSpec([]byte("not: valid: yaml: : :"))
	assert.Error(t, err)
}
