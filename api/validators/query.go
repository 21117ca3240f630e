package validators

import "net/http"

// maxQueryLen bounds free-text search input, in characters.
const maxQueryLen = 200

// FirstQuery returns the first non-empty value among keys, e.g. `q` then `search`.
// Demo endpoints never reject a request because of its query string.
func FirstQuery(r *http.Request, keys ...string) string {
	values := r.URL.Query()
	for _, key := range keys {
		if v := SanitizeString(values.Get(key), maxQueryLen); v != "" {
			return v
		}
	}
	return ""
}
