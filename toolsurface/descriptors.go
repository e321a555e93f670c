package toolsurface

import (
	"fmt"
	"strings"
)

// SearchDescriptor builds the "search" tool descriptor. name is the
// configured tool name (callers default it to "search"); ctx may be the
// zero value when no spec has been processed yet.
func SearchDescriptor(name string, ctx Context) Descriptor {
	var b strings.Builder
	b.WriteString("Run read-only discovery code against this API's specification. ")
	b.WriteString("code must be the source of an async, zero-argument function; its return value is the result. ")
	b.WriteString("The global `spec` is the full OpenAPI document with every $ref resolved inline, ")
	b.WriteString("so nested schemas can be inspected directly without chasing pointers. ")
	b.WriteString("Example: `async () => Object.keys(spec.paths)`.")

	if ctx.EndpointCount > 0 {
		fmt.Fprintf(&b, " The spec currently exposes %d endpoint%s", ctx.EndpointCount, plural(ctx.EndpointCount))
		if len(ctx.Tags) > 0 {
			b.WriteString(" spanning tags: ")
			b.WriteString(strings.Join(topTags(ctx.Tags, maxTagsInDescription), ", "))
		}
		b.WriteString(".")
	}

	return Descriptor{
		Name:        name,
		Description: b.String(),
		InputSchema: codeInputSchema(),
	}
}

// ExecuteDescriptor builds the "execute" tool descriptor. namespace is the
// configured global object name under which the request function appears.
func ExecuteDescriptor(name, namespace string) Descriptor {
	var b strings.Builder
	b.WriteString("Run code that performs live HTTP calls against this API. ")
	b.WriteString("code must be the source of an async, zero-argument function; its return value is the result. ")
	fmt.Fprintf(&b, "The global `%s` exposes a single function, `%s.request({ method, path, query?, body?, headers? })`, ", namespace, namespace)
	b.WriteString("which returns a promise resolving to `{ status, headers, body }`. ")
	fmt.Fprintf(&b, "Example: `async () => (await %s.request({ method: \"GET\", path: \"/pets\" })).body`.", namespace)

	return Descriptor{
		Name:        name,
		Description: b.String(),
		InputSchema: codeInputSchema(),
	}
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}

func topTags(tags []string, n int) []string {
	if len(tags) <= n {
		return tags
	}
	return tags[:n]
}
