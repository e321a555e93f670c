package toolsurface

// Descriptor is the embedder-facing shape of one tool: a name, a prose
// description, and a JSON-schema-shaped input contract.
type Descriptor struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	InputSchema map[string]any `json:"inputSchema"`
}

// Context carries the discovery hints used to enrich the search
// descriptor's description. A zero-value Context (EndpointCount == 0,
// Tags == nil) is valid and simply omits the enrichment paragraph.
type Context struct {
	Tags          []string
	EndpointCount int
}

const maxTagsInDescription = 8

func codeInputSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"code": map[string]any{
				"type":        "string",
				"description": "JavaScript source for an async, zero-argument function, e.g. \"async () => { ... }\".",
			},
		},
		"required": []string{"code"},
	}
}
