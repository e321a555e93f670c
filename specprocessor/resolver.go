package specprocessor

import (
	"strconv"
	"strings"
)

// DefaultMaxRefDepth bounds how deep a chain of nested $refs may run before
// resolution gives up and reports it as circular. An explicit depth cap
// guards against unbounded recursion on a pathological document.
const DefaultMaxRefDepth = 50

// ResolveRefs walks node and returns a structurally equivalent tree with
// every "#/..." $ref replaced by the value it points to in root.
//
// ancestorRefs is the chain of $refs currently open above node in the
// current branch of the walk; it is cloned and extended whenever resolution
// descends through a $ref, so that sibling branches never see each other's
// ancestry. memo caches a ref's fully-resolved value across sibling branches
// so that two identical refs at the same depth both resolve in full instead
// of one being mistaken for a cycle of the other.
func ResolveRefs(node any, root map[string]any, ancestorRefs []string, maxRefDepth int, memo map[string]any) any {
	if maxRefDepth <= 0 {
		maxRefDepth = DefaultMaxRefDepth
	}
	if memo == nil {
		memo = map[string]any{}
	}
	return resolveValue(node, root, ancestorRefs, maxRefDepth, memo)
}

func resolveValue(node any, root map[string]any, ancestors []string, maxRefDepth int, memo map[string]any) any {
	switch v := node.(type) {
	case nil:
		return nil
	case map[string]any:
		if ref, ok := refString(v); ok {
			return resolveRef(ref, root, ancestors, maxRefDepth, memo)
		}
		out := make(map[string]any, len(v))
		for key, val := range v {
			if unsafeSegments[key] {
				continue
			}
			out[key] = resolveValue(val, root, ancestors, maxRefDepth, memo)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = resolveValue(val, root, ancestors, maxRefDepth, memo)
		}
		return out
	default:
		// primitives (string, float64, bool, int) pass through unchanged.
		return v
	}
}

func refString(v map[string]any) (string, bool) {
	raw, ok := v["$ref"]
	if !ok {
		return "", false
	}
	s, ok := raw.(string)
	return s, ok
}

func resolveRef(ref string, root map[string]any, ancestors []string, maxRefDepth int, memo map[string]any) any {
	for _, seen := range ancestors {
		if seen == ref {
			return map[string]any{circularMarkerKey: ref}
		}
	}
	if len(ancestors) >= maxRefDepth {
		return map[string]any{circularMarkerKey: ref, circularReasonKey: maxDepthReason}
	}
	if cached, ok := memo[ref]; ok {
		return cached
	}

	target, err := walkPointer(root, ref)
	if err != nil {
		return map[string]any{refKey: ref, refErrorKey: err.Error()}
	}

	nextAncestors := make([]string, len(ancestors)+1)
	copy(nextAncestors, ancestors)
	nextAncestors[len(ancestors)] = ref

	resolved := resolveValue(target, root, nextAncestors, maxRefDepth, memo)
	memo[ref] = resolved
	return resolved
}

// walkPointer resolves a "#/a/b/c" JSON-pointer style ref against root. It
// refuses to step through __proto__, constructor, or prototype segments,
// returning unsafeRefPath without continuing the walk past that point.
func walkPointer(root map[string]any, ref string) (any, error) {
	if ref == "#" {
		return root, nil
	}
	trimmed := strings.TrimPrefix(ref, "#/")
	if trimmed == ref {
		return nil, errUnsupportedRef(ref)
	}

	var cur any = root
	for _, raw := range strings.Split(trimmed, "/") {
		seg := unescapePointerSegment(raw)
		if unsafeSegments[seg] {
			return nil, errUnsafePath()
		}

		switch c := cur.(type) {
		case map[string]any:
			v, ok := c[seg]
			if !ok {
				return nil, errRefNotFound(ref)
			}
			cur = v
		case []any:
			idx, convErr := strconv.Atoi(seg)
			if convErr != nil || idx < 0 || idx >= len(c) {
				return nil, errRefNotFound(ref)
			}
			cur = c[idx]
		default:
			return nil, errRefNotFound(ref)
		}
	}
	return cur, nil
}

func unescapePointerSegment(seg string) string {
	if !strings.Contains(seg, "~") {
		return seg
	}
	seg = strings.ReplaceAll(seg, "~1", "/")
	seg = strings.ReplaceAll(seg, "~0", "~")
	return seg
}
