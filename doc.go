// Package client provides an HTTP client for a single Notion database.
//
// The client wraps [github.com/go-resty/resty/v2] and exposes four record
// operations: [Client.List], [Client.Create], [Client.Update] and
// [Client.Delete]. Records are passed through as [Record] maps; the client
// never interprets Notion's property model.
//
// # Basic Usage
//
//	c := client.New("secret_token", "database-id")
//
//	records, err := c.List(ctx, 0) // every record, following cursors
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	created, err := c.Create(ctx, client.Record{
//	    "Name": map[string]any{"title": []any{
//	        map[string]any{"text": map[string]any{"content": "New Page Title"}},
//	    }},
//	})
//
//	_, err = c.Update(ctx, created["id"].(string), client.Record{
//	    "Status": map[string]any{"select": map[string]any{"name": "In Progress"}},
//	})
//
//	_, err = c.Delete(ctx, created["id"].(string)) // archives the record
//
// [Client.Records] is the lazy form of List: pages are fetched as the loop
// consumes them.
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained;
// all configuration is validated when [Client.Connect] is called.
// Connect is optional and additionally checks the token against Notion.
//
// # Errors
//
// Any response other than HTTP 200 is returned as a [*RequestFailedError]
// carrying the status code and the raw body. Use [errors.As] to inspect it,
// or [errors.Is] with [ErrRequestFailed].
//
// # Retry Behaviour
//
// Requests are sent once. [WithRetryCount] enables retries, governed by
// [DefaultRetryPolicy] unless [WithRetryPolicy] supplies another function.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library, or use the zap, hclog and slog
// adapters in the logadapter package. The default [NoopLogger] discards
// all log output.
package client
