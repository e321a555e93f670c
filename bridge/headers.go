package bridge

import (
	"regexp"
	"strings"
)

// blockedHeaderPatterns are the header names (or prefixes) stripped in
// blocklist mode, matched case-insensitively against the full header name.
var blockedHeaderPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^authorization$`),
	regexp.MustCompile(`(?i)^cookie$`),
	regexp.MustCompile(`(?i)^host$`),
	regexp.MustCompile(`(?i)^origin$`),
	regexp.MustCompile(`(?i)^referer$`),
	regexp.MustCompile(`(?i)^x-forwarded-`),
	regexp.MustCompile(`(?i)^x-real-ip$`),
	regexp.MustCompile(`(?i)^x-client-ip$`),
	regexp.MustCompile(`(?i)^cf-connecting-ip$`),
	regexp.MustCompile(`(?i)^true-client-ip$`),
	regexp.MustCompile(`(?i)^proxy-`),
	regexp.MustCompile(`(?i)^transfer-encoding$`),
	regexp.MustCompile(`(?i)^connection$`),
	regexp.MustCompile(`(?i)^upgrade$`),
	regexp.MustCompile(`(?i)^te$`),
}

// filterHeaders applies whitelist mode when allowed is non-nil, otherwise
// blocklist mode against blockedHeaderPatterns.
func filterHeaders(headers map[string]string, allowed []string) map[string]string {
	out := make(map[string]string, len(headers))

	if allowed != nil {
		allowSet := make(map[string]bool, len(allowed))
		for _, name := range allowed {
			allowSet[strings.ToLower(name)] = true
		}
		for name, value := range headers {
			if allowSet[strings.ToLower(name)] {
				out[name] = value
			}
		}
		return out
	}

	for name, value := range headers {
		if isBlockedHeader(name) {
			continue
		}
		out[name] = value
	}
	return out
}

func isBlockedHeader(name string) bool {
	for _, pattern := range blockedHeaderPatterns {
		if pattern.MatchString(name) {
			return true
		}
	}
	return false
}
