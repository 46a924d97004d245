package shared

import (
	"encoding/json"
	"io"
	"net/http"
)

// MaxBodyBytes caps JSON request bodies.
const MaxBodyBytes = 1 << 20

// DecodeJSON decodes the request body into v. Unknown fields are ignored.
// A missing or empty body yields io.EOF.
func DecodeJSON(r *http.Request, v any) error {
	if r.Body == nil || r.Body == http.NoBody {
		return io.EOF
	}
	body := http.MaxBytesReader(nil, r.Body, MaxBodyBytes)
	return json.NewDecoder(body).Decode(v)
}
