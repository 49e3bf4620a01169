package svcclient

import "github.com/go-resty/resty/v2"

// RequestOption customizes a single outgoing request.
type RequestOption func(*resty.Request)

// WithQuery adds query string parameters to the request.
func WithQuery(params map[string]string) RequestOption {
	return func(r *resty.Request) {
		if len(params) > 0 {
			r.SetQueryParams(params)
		}
	}
}

// WithHeaders adds headers to the request.
func WithHeaders(headers map[string]string) RequestOption {
	return func(r *resty.Request) {
		if len(headers) > 0 {
			r.SetHeaders(headers)
		}
	}
}

// WithJSON sets a JSON-encoded request body.
func WithJSON(body any) RequestOption {
	return func(r *resty.Request) {
		r.SetHeader("Content-Type", "application/json")
		r.SetBody(body)
	}
}

// WithBasicAuth sets HTTP basic auth credentials on the request.
func WithBasicAuth(username, password string) RequestOption {
	return func(r *resty.Request) {
		r.SetBasicAuth(username, password)
	}
}
