package client

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/go-resty/resty/v2"
)

// DefaultRetryPolicy is the retry condition used by [Client] once retries are
// enabled with [WithRetryCount]. It retries on HTTP 429 (Notion's rate
// limit), 409 (Notion's conflict_error, returned when concurrent writes
// collide) and 5xx server errors, and on transient connection errors. It
// does not retry on context cancellation, deadline exceeded, or DNS
// resolution failures.
//
// Retrying [Client.Create] can produce duplicate records if the first
// attempt reached Notion but the response was lost.
func DefaultRetryPolicy(r *resty.Response, err error) bool {
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false
		}

		var dnsErr *net.DNSError
		if errors.As(err, &dnsErr) {
			return false
		}

		return true
	}

	if r == nil {
		return false
	}

	switch code := r.StatusCode(); {
	case code == http.StatusTooManyRequests, code == http.StatusConflict:
		return true
	default:
		return code >= http.StatusInternalServerError
	}
}
