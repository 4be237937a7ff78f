package client

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"net/http"
	"net/url"
)

// MaxPageSize is the largest page Notion returns from a database query. List
// uses it when fetching every record.
const MaxPageSize = 100

// ErrMissingCursor is returned when a query page reports more results but
// carries no next_cursor to fetch them with.
var ErrMissingCursor = errors.New("query response has has_more set without next_cursor")

// Record is a Notion page object, passed through without interpretation.
type Record map[string]any

// Page is one page of database query results.
type Page struct {
	Results    []Record `json:"results"`
	HasMore    bool     `json:"has_more"`
	NextCursor string   `json:"next_cursor"`
}

type queryRequest struct {
	PageSize    int    `json:"page_size"`
	StartCursor string `json:"start_cursor,omitempty"`
}

type createRequest struct {
	Parent     parent `json:"parent"`
	Properties Record `json:"properties"`
}

type parent struct {
	DatabaseID string `json:"database_id"`
}

type updateRequest struct {
	Properties Record `json:"properties"`
}

type archiveRequest struct {
	Archived bool `json:"archived"`
}

// List returns records from the database in the order Notion returns them.
//
// With limit <= 0 every record is fetched, following pagination cursors
// until Notion reports no more results. With limit > 0 exactly one query is
// sent with that page size and no further pages are fetched, even if more
// exist.
//
// If any request fails, List returns nil and the error; records from pages
// that were already fetched are discarded.
func (c *Client) List(ctx context.Context, limit int) ([]Record, error) {
	if c == nil {
		return nil, errors.New("notion client is nil")
	}

	if limit > 0 {
		page, err := c.queryPage(ctx, "failed to fetch pages", limit, "")
		if err != nil {
			return nil, err
		}

		return page.Results, nil
	}

	records := make([]Record, 0)

	for record, err := range c.Records(ctx) {
		if err != nil {
			return nil, err
		}

		records = append(records, record)
	}

	return records, nil
}

// Records iterates over every record in the database. A page is fetched only
// once the records of the previous page have been consumed, and fetching
// stops as soon as the loop exits. On failure a single (nil, err) pair is
// yielded and iteration ends.
func (c *Client) Records(ctx context.Context) iter.Seq2[Record, error] {
	return func(yield func(Record, error) bool) {
		if c == nil {
			yield(nil, errors.New("notion client is nil"))
			return
		}

		op := "failed to fetch pages"
		cursor := ""

		for {
			page, err := c.queryPage(ctx, op, MaxPageSize, cursor)
			if err != nil {
				yield(nil, err)
				return
			}

			for _, record := range page.Results {
				if !yield(record, nil) {
					return
				}
			}

			if !page.HasMore {
				return
			}

			if page.NextCursor == "" {
				yield(nil, fmt.Errorf("%s: %w", op, ErrMissingCursor))
				return
			}

			op = "failed to fetch more pages"
			cursor = page.NextCursor
		}
	}
}

// QueryPage sends a single database query. An empty cursor requests the
// first page; otherwise pass the NextCursor of the previous page.
func (c *Client) QueryPage(ctx context.Context, pageSize int, cursor string) (*Page, error) {
	if c == nil {
		return nil, errors.New("notion client is nil")
	}

	return c.queryPage(ctx, "failed to fetch pages", pageSize, cursor)
}

func (c *Client) queryPage(ctx context.Context, op string, pageSize int, cursor string) (*Page, error) {
	path := "/v1/databases/" + url.PathEscape(c.databaseID) + "/query"

	var page Page
	if err := c.do(ctx, op, http.MethodPost, path, queryRequest{PageSize: pageSize, StartCursor: cursor}, &page); err != nil {
		return nil, err
	}

	return &page, nil
}

// Create adds a record to the database. The properties are sent exactly as
// given. Create is not idempotent: repeated calls create duplicate records.
func (c *Client) Create(ctx context.Context, properties Record) (Record, error) {
	if c == nil {
		return nil, errors.New("notion client is nil")
	}

	body := createRequest{
		Parent:     parent{DatabaseID: c.databaseID},
		Properties: properties,
	}

	var record Record
	if err := c.do(ctx, "failed to create page", http.MethodPost, "/v1/pages", body, &record); err != nil {
		return nil, err
	}

	return record, nil
}

// Update sends properties to the record identified by recordID. How they
// are merged with existing values is decided by Notion.
func (c *Client) Update(ctx context.Context, recordID string, properties Record) (Record, error) {
	if c == nil {
		return nil, errors.New("notion client is nil")
	}

	var record Record
	if err := c.do(ctx, "failed to update page", http.MethodPatch, recordPath(recordID), updateRequest{Properties: properties}, &record); err != nil {
		return nil, err
	}

	return record, nil
}

// Delete archives the record identified by recordID. Notion keeps archived
// records and they can be restored from the Notion UI.
func (c *Client) Delete(ctx context.Context, recordID string) (Record, error) {
	if c == nil {
		return nil, errors.New("notion client is nil")
	}

	var record Record
	if err := c.do(ctx, "failed to delete page", http.MethodPatch, recordPath(recordID), archiveRequest{Archived: true}, &record); err != nil {
		return nil, err
	}

	return record, nil
}

func recordPath(recordID string) string {
	return "/v1/pages/" + url.PathEscape(recordID)
}
