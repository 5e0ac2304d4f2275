package fetch

import (
	"context"
	"net/url"
	"strconv"
)

// /history/last[?count=N]
// A nil count leaves the page size to the API.
func (c *Client) HistoryLast(ctx context.Context, count *int) (any, error) {
	return c.FetchJSON(ctx, "/history/last", historyQuery(count))
}

// HistoryLastURL is the full URL HistoryLast requests.
func (c *Client) HistoryLastURL(count *int) string {
	return c.URL("/history/last", historyQuery(count))
}

func historyQuery(count *int) url.Values {
	if count == nil {
		return nil
	}
	return url.Values{"count": []string{strconv.Itoa(*count)}}
}
