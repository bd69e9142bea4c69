package stubapi

import (
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
	miniogo "github.com/minio/minio-go/v7"
)

const maxUploadBytes = 10 << 20 // 10 MiB

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// handleUpload services multipart create (empty id) and update requests.
// Scalar form fields merge into the record; each file part is stored and
// referenced from the record by its form field name.
func (s *Server) handleUpload(c *gin.Context, id string) {
	res := c.Param("resource")

	form, err := c.MultipartForm()
	if err != nil {
		respondFieldErrors(c, map[string][]string{
			"non_field_errors": {"Invalid multipart body."},
		})
		return
	}

	body := Record{}
	for field, values := range form.Value {
		if len(values) > 0 {
			body[field] = values[0]
		}
	}

	for field, headers := range form.File {
		if len(headers) == 0 {
			continue
		}
		fh := headers[0]
		if fh.Size > maxUploadBytes {
			respondFieldErrors(c, map[string][]string{
				field: {"File too large."},
			})
			return
		}
		ref, err := s.storeFile(c, res, id, fh.Filename, field)
		if err != nil {
			s.l.Errorf(c.Request.Context(), "Failed to store upload %s: %v", fh.Filename, err)
			respondDetail(c, http.StatusInternalServerError, "Failed to store file.")
			return
		}
		body[field] = ref
	}

	if id == "" {
		rec, err := s.store.Create(res, body)
		if err != nil {
			s.respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusCreated, rec)
		return
	}

	rec, err := s.store.Update(res, id, body)
	if err != nil {
		s.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

// storeFile persists an uploaded file to MinIO when configured and
// returns the reference stored on the record. Without MinIO the file is
// accepted and a synthetic reference returned, which is enough for
// client round-trip testing.
func (s *Server) storeFile(c *gin.Context, res, id, filename, field string) (string, error) {
	if s.images == nil {
		return fmt.Sprintf("stub://%s/%s", res, filename), nil
	}

	fh, err := c.FormFile(field)
	if err != nil {
		return "", err
	}
	f, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	key := path.Join(res, id, filename)
	if id == "" {
		key = path.Join(res, "new", filename)
	}
	_, err = s.images.PutObject(c.Request.Context(), s.imageBucket, key, f, fh.Size, miniogo.PutObjectOptions{
		ContentType: fh.Header.Get("Content-Type"),
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("s3://%s/%s", s.imageBucket, key), nil
}
