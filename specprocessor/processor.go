package specprocessor

import (
	"net/url"
	"sort"
	"strings"
)

// httpMethods lists the operation verbs ProcessSpec looks for on a path
// item, in the fixed order they are considered. Any other key on a path
// item (parameters shared across methods, vendor extensions, $ref) is
// intentionally dropped.
var httpMethods = []string{"get", "post", "put", "patch", "delete"}

// Operation is one HTTP method entry of a processed path, with every $ref
// reachable from its parameters, requestBody, and responses resolved
// inline. Summary, Description, and Tags are copied verbatim from the
// source document.
type Operation struct {
	Summary     any `json:"summary,omitempty"`
	Description any `json:"description,omitempty"`
	Tags        any `json:"tags,omitempty"`
	Parameters  any `json:"parameters,omitempty"`
	RequestBody any `json:"requestBody,omitempty"`
	Responses   any `json:"responses,omitempty"`
}

// Methods is the per-path map of HTTP method -> Operation. Agent-visible
// output is always a JSON-serialized value (see ToJSON and the sandbox
// injection path), and encoding/json sorts map keys on marshal regardless
// of how they were inserted, so this is a plain map rather than an
// order-preserving one: nothing downstream of ProcessSpec can observe
// insertion order.
type Methods map[string]*Operation

// Processed is the flattened, dereferenced document an agent's search code
// walks: paths[fullPath][method] -> Operation, with every $ref inlined.
type Processed struct {
	Paths map[string]*Methods
}

// ProcessSpec dereferences doc's $refs and flattens it into Processed. A
// maxRefDepth of 0 selects DefaultMaxRefDepth. Paths are iterated in
// sorted order purely to make the resolver's memoization order (and hence
// which sibling ref "wins" a shared cache entry) deterministic across
// runs; the resulting map carries no ordering guarantee of its own.
func ProcessSpec(doc map[string]any, maxRefDepth int) (*Processed, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	if maxRefDepth <= 0 {
		maxRefDepth = DefaultMaxRefDepth
	}

	basePath := ExtractServerBasePath(doc)
	memo := map[string]any{}
	result := make(map[string]*Methods)

	rawPaths, _ := doc["paths"].(map[string]any)
	for _, pathKey := range sortedKeys(rawPaths) {
		item, ok := rawPaths[pathKey].(map[string]any)
		if !ok {
			continue
		}
		fullPath := basePath + pathKey

		methods := make(Methods)
		for _, method := range httpMethods {
			rawOp, ok := item[method]
			if !ok {
				continue
			}
			opMap, ok := rawOp.(map[string]any)
			if !ok {
				continue
			}

			op := &Operation{
				Summary:     opMap["summary"],
				Description: opMap["description"],
				Tags:        opMap["tags"],
			}
			if v, ok := opMap["parameters"]; ok {
				op.Parameters = ResolveRefs(v, doc, nil, maxRefDepth, memo)
			}
			if v, ok := opMap["requestBody"]; ok {
				op.RequestBody = ResolveRefs(v, doc, nil, maxRefDepth, memo)
			}
			if v, ok := opMap["responses"]; ok {
				op.Responses = ResolveRefs(v, doc, nil, maxRefDepth, memo)
			}
			methods[method] = op
		}
		result[fullPath] = &methods
	}

	return &Processed{Paths: result}, nil
}

// ExtractServerBasePath returns the pathname portion of doc.servers[0].url
// with trailing slashes stripped, or "" when no server is declared or the
// URL carries no path.
func ExtractServerBasePath(doc map[string]any) string {
	servers, ok := doc["servers"].([]any)
	if !ok || len(servers) == 0 {
		return ""
	}
	first, ok := servers[0].(map[string]any)
	if !ok {
		return ""
	}
	rawURL, ok := first["url"].(string)
	if !ok || rawURL == "" {
		return ""
	}

	u, err := url.Parse(rawURL)
	if err != nil || u.Path == "" {
		return ""
	}
	return strings.TrimRight(u.Path, "/")
}

// ToJSON flattens Processed into the plain map[string]any/[]any tree that
// gets deep-copied into the sandbox as the "spec" global.
func (p *Processed) ToJSON() map[string]any {
	paths := make(map[string]any, len(p.Paths))
	for path, methods := range p.Paths {
		ops := make(map[string]any, len(*methods))
		for method, op := range *methods {
			ops[method] = operationToMap(op)
		}
		paths[path] = ops
	}
	return map[string]any{"paths": paths}
}

func operationToMap(op *Operation) map[string]any {
	out := map[string]any{}
	if op.Summary != nil {
		out["summary"] = op.Summary
	}
	if op.Description != nil {
		out["description"] = op.Description
	}
	if op.Tags != nil {
		out["tags"] = op.Tags
	}
	if op.Parameters != nil {
		out["parameters"] = op.Parameters
	}
	if op.RequestBody != nil {
		out["requestBody"] = op.RequestBody
	}
	if op.Responses != nil {
		out["responses"] = op.Responses
	}
	return out
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
