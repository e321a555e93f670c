package toolsurface

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSearchDescriptor_NoContext(t *testing.T) {
	d := SearchDescriptor("search", Context{})
	assert.Equal(t, "search", d.Name)
	assert.Contains(t, d.Description, "async, zero-argument function")
	assert.Contains(t, d.Description, "spec")
	assert.NotContains(t, d.Description, "endpoint")
	assert.Equal(t, []string{"code"}, d.InputSchema["required"])
}

func TestSearchDescriptor_WithContext(t *testing.T) {
	ctx := Context{Tags: []string{"pet", "store", "user"}, EndpointCount: 14}
	d := SearchDescriptor("search", ctx)
	assert.Contains(t, d.Description, "14 endpoints")
	assert.Contains(t, d.Description, "pet, store, user")
}

func TestSearchDescriptor_SingleEndpoint(t *testing.T) {
	d := SearchDescriptor("search", Context{EndpointCount: 1})
	assert.Contains(t, d.Description, "1 endpoint.")
}

func TestSearchDescriptor_TruncatesTagList(t *testing.T) {
	tags := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}
	d := SearchDescriptor("search", Context{Tags: tags, EndpointCount: 3})
	assert.Contains(t, d.Description, "a, b, c, d, e, f, g, h")
	assert.NotContains(t, d.Description, "i, j")
}

func TestExecuteDescriptor_NamesNamespace(t *testing.T) {
	d := ExecuteDescriptor("execute", "api")
	assert.Equal(t, "execute", d.Name)
	assert.Contains(t, d.Description, "api.request(")
	assert.Equal(t, []string{"code"}, d.InputSchema["required"])
}

func TestExecuteDescriptor_CustomToolName(t *testing.T) {
	d := ExecuteDescriptor("run_api", "petstore")
	assert.Equal(t, "run_api", d.Name)
	assert.Contains(t, d.Description, "petstore.request(")
}
