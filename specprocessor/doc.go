// Package specprocessor resolves an OpenAPI document's $ref pointers inline
// and flattens it into the shape an agent's search code can walk directly.
//
// Resolution happens once per processed document: every $ref is replaced by
// the node it points to, sibling refs to the same target share the resolved
// value, and a ref that loops back onto one of its own ancestors is replaced
// by a small circular marker instead of being expanded forever.
package specprocessor
