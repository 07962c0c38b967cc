package utils

// ErrorResponse is a struct for error response
type ErrorResponse struct {
	Message string            `json:"message"`
	Error   string            `json:"error"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// StatusText is the machine readable error name for an HTTP status.
func StatusText(code int) string {
	switch code {
	case 400:
		return "bad_request"
	case 401:
		return "unauthorized"
	case 404:
		return "not_found"
	case 405:
		return "method_not_allowed"
	case 429:
		return "rate_limited"
	default:
		if code >= 500 {
			return "internal"
		}
		return "error"
	}
}
