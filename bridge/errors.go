package bridge

import "fmt"

var allowedMethods = map[string]bool{
	"GET": true, "POST": true, "PUT": true, "PATCH": true,
	"DELETE": true, "HEAD": true, "OPTIONS": true,
}

func errInvalidMethod(method string) error {
	return fmt.Errorf("Invalid HTTP method: %q. Allowed: GET, POST, PUT, PATCH, DELETE, HEAD, OPTIONS", method)
}

func errInvalidPath(reason string) error {
	return fmt.Errorf("Invalid path: %s", reason)
}

func errRequestLimit(max int) error {
	return fmt.Errorf("Request limit exceeded: max %d requests per execution", max)
}

func errResponseTooLarge(max int64) error {
	return fmt.Errorf("Response too large: exceeded limit of %d bytes", max)
}
