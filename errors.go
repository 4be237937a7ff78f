package client

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// ErrRequestFailed matches every [*RequestFailedError] via [errors.Is].
var ErrRequestFailed = errors.New("notion request failed")

// RequestFailedError is returned when Notion answers with any status other
// than 200. Client (4xx) and server (5xx) errors are reported the same way.
//
// Op names the client operation, e.g. "failed to create page". Body is the
// raw response body, and Code is Notion's error code (e.g.
// "object_not_found") when the body was a Notion error object.
type RequestFailedError struct {
	Op         string
	Method     string
	Path       string
	StatusCode int
	Code       string
	Body       string
}

func (e *RequestFailedError) Error() string {
	return fmt.Sprintf("%s: %s %s returned status %d: %s", e.Op, e.Method, e.Path, e.StatusCode, e.message())
}

func (e *RequestFailedError) Is(target error) bool {
	return target == ErrRequestFailed
}

func (e *RequestFailedError) message() string {
	var notionErr notionError

	if err := json.Unmarshal([]byte(e.Body), &notionErr); err == nil && notionErr.Message != "" {
		return notionErr.Message
	}

	if body := strings.TrimSpace(e.Body); body != "" {
		return body
	}

	return "(empty error body)"
}

type notionError struct {
	Object  string `json:"object"`
	Status  int    `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func newRequestFailedError(op, method, path string, statusCode int, body []byte) *RequestFailedError {
	e := &RequestFailedError{
		Op:         op,
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
		Body:       string(body),
	}

	var notionErr notionError
	if err := json.Unmarshal(body, &notionErr); err == nil && notionErr.Object == "error" {
		e.Code = notionErr.Code
	}

	return e
}
