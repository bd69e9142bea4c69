package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/friendsofgo/errors"
)

// Create POSTs a new record to the resource collection. On success the
// resource's cached list family is invalidated so the next read re-fetches.
func Create[T any](ctx context.Context, c *Client, resource string, payload any) (T, error) {
	path := fmt.Sprintf("%s/%s/", APIPrefix, resource)
	return writeJSON[T](ctx, c, http.MethodPost, path, resource, payload)
}

// Update PATCHes one record.
func Update[T any](ctx context.Context, c *Client, resource, id string, payload any) (T, error) {
	path := fmt.Sprintf("%s/%s/%s/", APIPrefix, resource, id)
	return writeJSON[T](ctx, c, http.MethodPatch, path, resource, payload)
}

// Delete removes one record. A 204 still invalidates the list family.
func (c *Client) Delete(ctx context.Context, resource, id string) error {
	path := fmt.Sprintf("%s/%s/%s/", APIPrefix, resource, id)
	if _, _, err := c.send(ctx, http.MethodDelete, path, nil, ""); err != nil {
		return err
	}
	c.invalidate(ctx, resource)
	return nil
}

// Action POSTs a resource-specific action (invite, publish, archive,
// qualify, convert, approve, clone, send_to_pt_for_review,
// send_to_customer) on one record. A nil payload sends an empty body.
func Action[T any](ctx context.Context, c *Client, resource, id, action string, payload any) (T, error) {
	path := fmt.Sprintf("%s/%s/%s/%s/", APIPrefix, resource, id, action)
	return writeJSON[T](ctx, c, http.MethodPost, path, resource, payload)
}

func writeJSON[T any](ctx context.Context, c *Client, method, path, resource string, payload any) (T, error) {
	var out T

	var body io.Reader
	contentType := ""
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return out, errors.Wrap(err, "client: encode payload")
		}
		body = bytes.NewReader(encoded)
		contentType = "application/json"
	}

	respBody, status, err := c.send(ctx, method, path, body, contentType)
	if err != nil {
		return out, err
	}
	c.invalidate(ctx, resource)

	// 204 and empty bodies decode to the zero value.
	if status == http.StatusNoContent || len(bytes.TrimSpace(respBody)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(respBody, &out); err != nil {
		return out, errors.Wrap(err, "client: decode response")
	}
	return out, nil
}
