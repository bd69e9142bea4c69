package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"github.com/friendsofgo/errors"
)

// FormFile is one file part of a multipart upload.
type FormFile struct {
	Field       string
	Name        string
	ContentType string
	Reader      io.Reader
}

// UploadForm sends a multipart form mutation (e.g. a product with its
// image). Empty id POSTs to the collection; otherwise the record is
// PATCHed. Successful uploads invalidate the resource's list family.
func UploadForm[T any](ctx context.Context, c *Client, resource, id string, fields map[string]string, files []FormFile) (T, error) {
	var out T

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return out, errors.Wrap(err, "client: write form field")
		}
	}
	for _, file := range files {
		part, err := writer.CreatePart(filePartHeader(file))
		if err != nil {
			return out, errors.Wrap(err, "client: create form part")
		}
		if _, err := io.Copy(part, file.Reader); err != nil {
			return out, errors.Wrapf(err, "client: copy %s", file.Name)
		}
	}
	if err := writer.Close(); err != nil {
		return out, errors.Wrap(err, "client: finish form")
	}

	method := http.MethodPost
	path := fmt.Sprintf("%s/%s/", APIPrefix, resource)
	if id != "" {
		method = http.MethodPatch
		path = fmt.Sprintf("%s/%s/%s/", APIPrefix, resource, id)
	}

	respBody, status, err := c.send(ctx, method, path, &buf, writer.FormDataContentType())
	if err != nil {
		return out, err
	}
	c.invalidate(ctx, resource)

	if status == http.StatusNoContent || len(bytes.TrimSpace(respBody)) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(respBody, &out); err != nil {
		return out, errors.Wrap(err, "client: decode response")
	}
	return out, nil
}

func filePartHeader(file FormFile) textproto.MIMEHeader {
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`,
		escapeQuotes(file.Field), escapeQuotes(file.Name)))
	contentType := file.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)
	return header
}

func escapeQuotes(s string) string {
	return strings.NewReplacer("\\", "\\\\", `"`, "\\\"").Replace(s)
}
