package stubapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// listEnvelope is the paginated body of every collection endpoint.
type listEnvelope struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  any     `json:"results"`
	Summary  any     `json:"summary,omitempty"`
}

// respondDetail sends an error body of the form {"detail": "..."}.
func respondDetail(c *gin.Context, status int, detail string) {
	c.JSON(status, gin.H{"detail": detail})
}

// respondFieldErrors sends a validation body keyed by field name.
func respondFieldErrors(c *gin.Context, fields map[string][]string) {
	c.JSON(http.StatusBadRequest, fields)
}

func respondPage(c *gin.Context, env listEnvelope) {
	c.JSON(http.StatusOK, env)
}

// pageLink builds the next/previous URL for a list response, or nil when
// the page does not exist.
func pageLink(c *gin.Context, page int, exists bool) *string {
	if !exists {
		return nil
	}
	u := *c.Request.URL
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	u.RawQuery = q.Encode()
	link := u.String()
	return &link
}
