package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/friendsofgo/errors"

	"printduka-admin/pkg/apierror"
)

// Get issues a credentialed GET for path (relative to the base URL) and
// returns the response body. Non-2xx responses come back as *apierror.Error.
func (c *Client) Get(ctx context.Context, path string) ([]byte, error) {
	body, _, err := c.send(ctx, http.MethodGet, path, nil, "")
	return body, err
}

// Post issues a JSON POST outside the collection API (the auth boundary
// uses this). A nil payload sends an empty body.
func (c *Client) Post(ctx context.Context, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	contentType := ""
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "client: encode payload")
		}
		reqBody = bytes.NewReader(encoded)
		contentType = "application/json"
	}
	body, _, err := c.send(ctx, http.MethodPost, path, reqBody, contentType)
	return body, err
}

// send is the single transport funnel. Unsafe methods get the CSRF header
// attached from the cookie jar; network failures map to the internal error
// kind so callers only ever see the typed taxonomy.
func (c *Client) send(ctx context.Context, method, path string, body io.Reader, contentType string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+path, body)
	if err != nil {
		return nil, 0, errors.Wrap(err, "client: build request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.cfg.UserAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if method != http.MethodGet && method != http.MethodHead {
		token, err := c.ensureCSRF(ctx)
		if err != nil {
			return nil, 0, err
		}
		req.Header.Set(c.cfg.CSRFHeaderName, token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.l.Warnf(ctx, "client.send: %s %s failed: %v", method, path, err)
		return nil, 0, apierror.NewInternalError()
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.l.Warnf(ctx, "client.send: %s %s read body failed: %v", method, path, err)
		return nil, resp.StatusCode, apierror.NewInternalError()
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, resp.StatusCode, apierror.FromResponse(resp.StatusCode, resp.Header, respBody)
	}
	return respBody, resp.StatusCode, nil
}

// csrfToken reads the backend's CSRF cookie from the jar.
func (c *Client) csrfToken() string {
	for _, cookie := range c.http.Jar.Cookies(c.base) {
		if cookie.Name == c.cfg.CSRFCookieName {
			return cookie.Value
		}
	}
	return ""
}

// ensureCSRF returns the CSRF token, priming the cookie with a session
// check when the jar has none yet (the backend sets it on any GET).
func (c *Client) ensureCSRF(ctx context.Context) (string, error) {
	if token := c.csrfToken(); token != "" {
		return token, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base.String()+SessionCheckPath, nil)
	if err != nil {
		return "", errors.Wrap(err, "client: build csrf priming request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		c.l.Warnf(ctx, "client.ensureCSRF: priming request failed: %v", err)
		return "", apierror.NewInternalError()
	}
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()

	if token := c.csrfToken(); token != "" {
		return token, nil
	}
	return "", errors.WithStack(ErrMissingCSRF)
}

// invalidate drops the cached list family for resource after a successful
// mutation. No automatic cross-resource invalidation happens here.
func (c *Client) invalidate(ctx context.Context, resource string) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Invalidate(ctx, resource); err != nil {
		c.l.Warnf(ctx, "client.invalidate: %s: %v", resource, err)
	}
}
