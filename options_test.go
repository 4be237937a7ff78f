package client

import (
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
)

func TestNewClientOptions(t *testing.T) {
	t.Parallel()

	opts := newClientOptions()

	if opts.baseURL != "https://api.notion.com" {
		t.Errorf("expected baseURL=https://api.notion.com, got %s", opts.baseURL)
	}

	if opts.timeout != 0 || opts.retryCount != 0 {
		t.Errorf("expected no timeout and no retries, got timeout=%v retryCount=%d", opts.timeout, opts.retryCount)
	}

	if opts.retryWaitTime != 500*time.Millisecond || opts.retryMaxWaitTime != 3*time.Second {
		t.Errorf("expected retry waits 500ms/3s, got %v/%v", opts.retryWaitTime, opts.retryMaxWaitTime)
	}

	if opts.requestLogger == nil || opts.retryPolicy == nil {
		t.Error("expected requestLogger and retryPolicy to be set")
	}

	if len(opts.requestHeaders) != 0 {
		t.Errorf("expected no extra headers, got %v", opts.requestHeaders)
	}
}

// TestOptionSetters applies one option to fresh defaults and checks the
// resulting field; ignored inputs must leave the default in place.
func TestOptionSetters(t *testing.T) {
	t.Parallel()

	logger := &NoopLogger{}

	tests := []struct {
		name   string
		option Option
		check  func(*Options) bool
	}{
		{"base URL", WithBaseURL("http://127.0.0.1:8080"), func(o *Options) bool { return o.baseURL == "http://127.0.0.1:8080" }},
		{"base URL trailing slash", WithBaseURL(" http://127.0.0.1:8080/ "), func(o *Options) bool { return o.baseURL == "http://127.0.0.1:8080" }},
		{"base URL blank ignored", WithBaseURL("   "), func(o *Options) bool { return o.baseURL == DefaultBaseURL }},
		{"timeout", WithTimeout(10 * time.Second), func(o *Options) bool { return o.timeout == 10*time.Second }},
		{"timeout negative ignored", WithTimeout(-time.Second), func(o *Options) bool { return o.timeout == 0 }},
		{"retry count", WithRetryCount(5), func(o *Options) bool { return o.retryCount == 5 }},
		{"retry count negative ignored", WithRetryCount(-1), func(o *Options) bool { return o.retryCount == 0 }},
		{"retry wait at minimum", WithRetryWaitTime(100 * time.Millisecond), func(o *Options) bool { return o.retryWaitTime == 100*time.Millisecond }},
		{"retry wait below minimum ignored", WithRetryWaitTime(50 * time.Millisecond), func(o *Options) bool { return o.retryWaitTime == 500*time.Millisecond }},
		{"retry max wait", WithRetryMaxWaitTime(5 * time.Second), func(o *Options) bool { return o.retryMaxWaitTime == 5*time.Second }},
		{"retry max wait below minimum ignored", WithRetryMaxWaitTime(50 * time.Millisecond), func(o *Options) bool { return o.retryMaxWaitTime == 3*time.Second }},
		{"logger", WithRequestLogger(logger), func(o *Options) bool { return o.requestLogger == logger }},
		{"logger nil ignored", WithRequestLogger(nil), func(o *Options) bool { return o.requestLogger != nil }},
		{"retry policy", WithRetryPolicy(func(_ *resty.Response, _ error) bool { return true }), func(o *Options) bool { return o.retryPolicy(nil, nil) }},
		{"retry policy nil ignored", WithRetryPolicy(nil), func(o *Options) bool { return o.retryPolicy != nil && !o.retryPolicy(nil, nil) }},
		{"header", WithRequestHeader("X-Custom", "value"), func(o *Options) bool { return o.requestHeaders["X-Custom"] == "value" }},
		{"header blank ignored", WithRequestHeader("   ", "value"), func(o *Options) bool { return len(o.requestHeaders) == 0 }},
		{"Content-Type protected", WithRequestHeader("content-type", "text/plain"), func(o *Options) bool { return len(o.requestHeaders) == 0 }},
		{"Accept protected", WithRequestHeader("ACCEPT", "text/plain"), func(o *Options) bool { return len(o.requestHeaders) == 0 }},
		{"Authorization protected", WithRequestHeader("authorization", "Basic abc"), func(o *Options) bool { return len(o.requestHeaders) == 0 }},
		{"Notion-Version protected", WithRequestHeader("NOTION-VERSION", "2021-05-13"), func(o *Options) bool { return len(o.requestHeaders) == 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := newClientOptions()
			tt.option(opts)

			if !tt.check(opts) {
				t.Errorf("unexpected options after %s: %+v", tt.name, *opts)
			}
		})
	}
}

func TestOptionsValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		modify    func(*Options)
		wantError string
	}{
		{"valid defaults", func(_ *Options) {}, ""},
		{"empty baseURL", func(o *Options) { o.baseURL = "" }, "baseURL must be set"},
		{"negative timeout", func(o *Options) { o.timeout = -time.Second }, "timeout must be non-negative"},
		{"negative retryCount", func(o *Options) { o.retryCount = -1 }, "retryCount must be non-negative"},
		{"retryCount too high", func(o *Options) { o.retryCount = 101 }, "retryCount must not exceed 100"},
		{"retryWaitTime too low", func(o *Options) { o.retryWaitTime = time.Millisecond }, "retryWaitTime must be at least 100ms"},
		{"retryWaitTime too high", func(o *Options) { o.retryWaitTime = 2 * time.Minute }, "retryWaitTime must not exceed 1m0s"},
		{"retryMaxWaitTime too low", func(o *Options) { o.retryMaxWaitTime = time.Millisecond }, "retryMaxWaitTime must be at least 100ms"},
		{"retryMaxWaitTime too high", func(o *Options) { o.retryMaxWaitTime = 6 * time.Minute }, "retryMaxWaitTime must not exceed 5m0s"},
		{
			"retryMaxWaitTime below retryWaitTime",
			func(o *Options) { o.retryWaitTime, o.retryMaxWaitTime = time.Second, 500*time.Millisecond },
			"retryMaxWaitTime (500ms) must be greater than or equal to retryWaitTime (1s)",
		},
		{"nil requestLogger", func(o *Options) { o.requestLogger = nil }, "requestLogger must not be nil"},
		{"nil retryPolicy", func(o *Options) { o.retryPolicy = nil }, "retryPolicy must not be nil"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			opts := newClientOptions()
			tt.modify(opts)

			err := opts.Validate()

			switch {
			case tt.wantError == "" && err != nil:
				t.Errorf("expected no error, got %v", err)
			case tt.wantError != "" && (err == nil || err.Error() != tt.wantError):
				t.Errorf("expected error %q, got %v", tt.wantError, err)
			}
		})
	}
}
