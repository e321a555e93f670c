package specprocessor

import "sort"

// ExtractTags returns the unique operation tags of doc sorted by descending
// frequency. Tags tied on frequency keep the order they were first
// encountered while scanning paths (alphabetically by path, then by the
// fixed method order). The tie-break only needs to be stable given
// identical input, not canonical; this is a committed choice.
func ExtractTags(doc map[string]any) []string {
	rawPaths, _ := doc["paths"].(map[string]any)

	order := make([]string, 0)
	counts := map[string]int{}

	for _, pathKey := range sortedKeys(rawPaths) {
		item, ok := rawPaths[pathKey].(map[string]any)
		if !ok {
			continue
		}
		for _, method := range httpMethods {
			rawOp, ok := item[method]
			if !ok {
				continue
			}
			op, ok := rawOp.(map[string]any)
			if !ok {
				continue
			}
			tags, ok := op["tags"].([]any)
			if !ok {
				continue
			}
			for _, rawTag := range tags {
				tag, ok := rawTag.(string)
				if !ok {
					continue
				}
				if _, seen := counts[tag]; !seen {
					order = append(order, tag)
				}
				counts[tag]++
			}
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	return order
}
