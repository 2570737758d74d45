package transport

import "fmt"

// RequestError reports a failed HTTP exchange with the bank access point.
type RequestError struct {
	StatusCode int
	Err        error
	Body       string
}

func (r *RequestError) Error() string {
	return fmt.Sprintf("fints transport: status %d err: %v body: %s", r.StatusCode, r.Err, r.Body)
}

func (r *RequestError) Unwrap() error { return r.Err }
