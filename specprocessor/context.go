package specprocessor

// Context summarizes a Processed spec for enriching the search tool's
// description: which tags exist, by frequency, and how many endpoints the
// document exposes in total.
type Context struct {
	Tags          []string
	EndpointCount int
}

// BuildContext computes a Context from a document and its already-processed
// form. doc is scanned separately for tag frequency because tags are copied
// verbatim during processing and never touch the resolver.
func BuildContext(doc map[string]any, processed *Processed) *Context {
	ctx := &Context{Tags: ExtractTags(doc)}
	if processed == nil {
		return ctx
	}
	for _, methods := range processed.Paths {
		if methods != nil {
			ctx.EndpointCount += len(*methods)
		}
	}
	return ctx
}
