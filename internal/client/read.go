package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/friendsofgo/errors"

	"printduka-admin/internal/cache"
	"printduka-admin/internal/query"
	"printduka-admin/pkg/paginator"
)

// FetchList executes the read identified by key and decodes the paginated
// envelope into a typed page. With a cache attached, concurrent calls for
// the same key share a single network request.
func FetchList[T any](ctx context.Context, c *Client, key query.Key) (paginator.Page[T], error) {
	body, err := c.FetchListRaw(ctx, key)
	if err != nil {
		return paginator.Page[T]{}, err
	}
	return DecodePage[T](body)
}

// FetchListRaw returns the raw envelope body for key, going through the
// attached cache when present.
func (c *Client) FetchListRaw(ctx context.Context, key query.Key) ([]byte, error) {
	if c.cache == nil {
		return c.fetchOnce(ctx, key)
	}
	return c.cache.Do(ctx, key, cache.FetchFunc(func(ctx context.Context) ([]byte, error) {
		return c.fetchOnce(ctx, key)
	}))
}

func (c *Client) fetchOnce(ctx context.Context, key query.Key) ([]byte, error) {
	path := fmt.Sprintf("%s/%s/?%s", APIPrefix, key.Resource, key.Query)
	body, _, err := c.send(ctx, http.MethodGet, path, nil, "")
	return body, err
}

// DecodePage decodes a collection envelope. A 2xx body without the
// count/results wrapper yields ErrNoData, never a panic: the view decides
// how to render the affordance.
func DecodePage[T any](body []byte) (paginator.Page[T], error) {
	var probe struct {
		Count   *int64          `json:"count"`
		Results json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(body, &probe); err != nil {
		return paginator.Page[T]{}, errors.WithStack(ErrNoData)
	}
	if probe.Count == nil && probe.Results == nil {
		return paginator.Page[T]{}, errors.WithStack(ErrNoData)
	}

	var page paginator.Page[T]
	if err := json.Unmarshal(body, &page); err != nil {
		return paginator.Page[T]{}, errors.Wrap(err, "client: decode results")
	}
	return page, nil
}
