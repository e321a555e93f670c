package specprocessor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRefs_Primitives(t *testing.T) {
	assert.Equal(t, "hello", ResolveRefs("hello", nil, nil, 0, nil))
	assert.Equal(t, float64(42), ResolveRefs(float64(42), nil, nil, 0, nil))
	assert.Nil(t, ResolveRefs(nil, nil, nil, 0, nil))
}

func TestResolveRefs_SimpleRef(t *testing.T) {
	root := map[string]any{
		"components": map[string]any{
			"schemas": map[string]any{
				"Pet": map[string]any{"type": "object"},
			},
		},
	}
	node := map[string]any{"$ref": "#/components/schemas/Pet"}

	resolved := ResolveRefs(node, root, nil, 0, nil)
	assert.Equal(t, map[string]any{"type": "object"}, resolved)
}

func TestResolveRefs_CircularSchema(t *testing.T) {
	// Node.properties.child -> $ref -> Node, an exact S3 scenario.
	root := map[string]any{
		"components": map[string]any{
			"schemas": map[string]any{
				"Node": map[string]any{
					"properties": map[string]any{
						"child": map[string]any{"$ref": "#/components/schemas/Node"},
					},
				},
			},
		},
	}

	node := root["components"].(map[string]any)["schemas"].(map[string]any)["Node"]
	resolved := ResolveRefs(node, root, nil, 0, nil)

	top, ok := resolved.(map[string]any)
	assert.True(t, ok)
	props, ok := top["properties"].(map[string]any)
	assert.True(t, ok)
	child, ok := props["child"].(map[string]any)
	assert.True(t, ok)

	childProps, ok := child["properties"].(map[string]any)
	assert.True(t, ok)
	circular, ok := childProps["child"].(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "#/components/schemas/Node", circular["$circular"])
}

func TestResolveRefs_SiblingsShareResolution(t *testing.T) {
	root := map[string]any{
		"components": map[string]any{
			"schemas": map[string]any{
				"Pet": map[string]any{"type": "object"},
			},
		},
	}
	node := map[string]any{
		"a": map[string]any{"$ref": "#/components/schemas/Pet"},
		"b": map[string]any{"$ref": "#/components/schemas/Pet"},
	}

	resolved := ResolveRefs(node, root, nil, 0, nil).(map[string]any)
	assert.Equal(t, map[string]any{"type": "object"}, resolved["a"])
	assert.Equal(t, map[string]any{"type": "object"}, resolved["b"])
	// neither sibling is mistaken for a circular reference of the other.
	_, aHasCircular := resolved["a"].(map[string]any)["$circular"]
	assert.False(t, aHasCircular)
}

func TestResolveRefs_MaxDepth(t *testing.T) {
	root := map[string]any{
		"components": map[string]any{
			"schemas": map[string]any{
				"A": map[string]any{"$ref": "#/components/schemas/B"},
				"B": map[string]any{"$ref": "#/components/schemas/A"},
			},
		},
	}
	node := map[string]any{"$ref": "#/components/schemas/A"}
	resolved := ResolveRefs(node, root, nil, 1, nil).(map[string]any)
	_, hasReason := resolved["$reason"]
	assert.True(t, hasReason)
}

func TestResolveRefs_UnsafeSegments(t *testing.T) {
	root := map[string]any{"components": map[string]any{}}

	for _, seg := range []string{"__proto__", "constructor", "prototype"} {
		node := map[string]any{"$ref": "#/components/" + seg}
		resolved := ResolveRefs(node, root, nil, 0, nil).(map[string]any)
		assert.Equal(t, unsafeRefPath, resolved["$error"])
		assert.Equal(t, "#/components/"+seg, resolved["$ref"])
	}
}

func TestResolveRefs_DropsUnsafeKeysOnPlainMaps(t *testing.T) {
	node := map[string]any{
		"safe":        "value",
		"__proto__":   "bad",
		"constructor": "bad",
		"prototype":   "bad",
	}
	resolved := ResolveRefs(node, nil, nil, 0, nil).(map[string]any)
	assert.Equal(t, map[string]any{"safe": "value"}, resolved)
}

func TestResolveRefs_RefNotFound(t *testing.T) {
	root := map[string]any{"components": map[string]any{}}
	node := map[string]any{"$ref": "#/components/missing"}
	resolved := ResolveRefs(node, root, nil, 0, nil).(map[string]any)
	assert.Contains(t, resolved["$error"], "ref not found")
}
