package codemode

import (
	"encoding/json"
	"fmt"
)

// ToolResult is the embedder-facing shape returned by CallTool, Search,
// and Execute: a list of content blocks plus an error flag, mirroring
// the shape tool-calling agent runtimes expect.
type ToolResult struct {
	Content []ContentBlock `json:"content"`
	IsError bool           `json:"isError"`
}

// ContentBlock is one piece of a ToolResult. Only the "text" type is
// produced today.
type ContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

func errorResult(message string) ToolResult {
	return ToolResult{
		Content: []ContentBlock{{Type: "text", Text: "Error: " + message}},
		IsError: true,
	}
}

func successResult(value any, maxResponseTokens int) ToolResult {
	text := stringifyResult(value)
	maxChars := maxResponseTokens * 4

	if len(text) > maxChars {
		estimatedTokens := len(text) / 4
		text = text[:maxChars] + fmt.Sprintf(
			"\n--- truncated ---\nresult truncated: estimated %d tokens exceeds configured limit of %d tokens",
			estimatedTokens, maxResponseTokens,
		)
	}

	return ToolResult{Content: []ContentBlock{{Type: "text", Text: text}}}
}

func stringifyResult(value any) string {
	if s, ok := value.(string); ok {
		return s
	}
	encoded, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", value)
	}
	return string(encoded)
}
