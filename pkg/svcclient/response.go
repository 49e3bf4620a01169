package svcclient

import (
	"encoding/json"
	"net/http"
)

// Response is the pass-through result of a service call. The wrapper
// does not interpret it; callers inspect status and body themselves.
type Response struct {
	status int
	header http.Header
	body   []byte
}

// StatusCode returns the HTTP status code.
func (r *Response) StatusCode() int { return r.status }

// Header returns the response headers.
func (r *Response) Header() http.Header { return r.header }

// Body returns the raw response body bytes.
func (r *Response) Body() []byte { return r.body }

// IsSuccess reports whether the status code is in the 2xx range.
func (r *Response) IsSuccess() bool { return r.status >= 200 && r.status <= 299 }

// IsError reports whether the status code is 4xx or 5xx.
func (r *Response) IsError() bool { return r.status >= 400 }

// JSON decodes the response body into v.
func (r *Response) JSON(v any) error { return json.Unmarshal(r.body, v) }
