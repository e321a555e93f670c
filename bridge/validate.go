package bridge

import "strings"

// normalizeMethod upper-cases method and reports whether the result is one
// of the seven methods the bridge allows through.
func normalizeMethod(method string) (string, bool) {
	m := strings.ToUpper(strings.TrimSpace(method))
	return m, allowedMethods[m]
}

// validatePath enforces the SSRF/request-smuggling checks: path must start
// with exactly one "/", must not contain "://", must not start with "//",
// and must contain no null byte, CR, LF, or backslash.
func validatePath(path string) error {
	if strings.Contains(path, "://") {
		return errInvalidPath(`must not contain "://"`)
	}
	if path == "" || path[0] != '/' {
		return errInvalidPath(`must start with "/"`)
	}
	if strings.HasPrefix(path, "//") {
		return errInvalidPath(`must not start with "//"`)
	}
	if strings.ContainsAny(path, "\x00\r\n\\") {
		return errInvalidPath("must not contain a null byte, CR, LF, or backslash")
	}
	return nil
}
