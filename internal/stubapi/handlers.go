package stubapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"printduka-admin/internal/resource"
)

func (s *Server) handleList(c *gin.Context) {
	res := c.Param("resource")
	result, err := s.store.List(res, c.Request.URL.Query())
	if err != nil {
		s.respondStoreError(c, err)
		return
	}

	pq := c.Request.URL.Query()
	page := atoiDefault(pq.Get("page"), 1)
	pageSize := atoiDefault(pq.Get("page_size"), 20)
	lastPage := int((result.Count + int64(pageSize) - 1) / int64(pageSize))

	respondPage(c, listEnvelope{
		Count:    result.Count,
		Next:     pageLink(c, page+1, page < lastPage),
		Previous: pageLink(c, page-1, page > 1),
		Results:  result.Results,
		Summary:  result.Summary,
	})
}

func (s *Server) handleRetrieve(c *gin.Context) {
	rec, err := s.store.Get(c.Param("resource"), c.Param("id"))
	if err != nil {
		s.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) handleCreate(c *gin.Context) {
	if isMultipart(c) {
		s.handleUpload(c, "")
		return
	}
	var body Record
	if err := c.ShouldBindJSON(&body); err != nil {
		respondFieldErrors(c, map[string][]string{
			"non_field_errors": {"Invalid request body."},
		})
		return
	}
	rec, err := s.store.Create(c.Param("resource"), body)
	if err != nil {
		s.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rec)
}

func (s *Server) handleUpdate(c *gin.Context) {
	if isMultipart(c) {
		s.handleUpload(c, c.Param("id"))
		return
	}
	var body Record
	if err := c.ShouldBindJSON(&body); err != nil {
		respondFieldErrors(c, map[string][]string{
			"non_field_errors": {"Invalid request body."},
		})
		return
	}
	rec, err := s.store.Update(c.Param("resource"), c.Param("id"), body)
	if err != nil {
		s.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) handleDelete(c *gin.Context) {
	if err := s.store.Delete(c.Param("resource"), c.Param("id")); err != nil {
		s.respondStoreError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) handleAction(c *gin.Context) {
	res := c.Param("resource")
	action := c.Param("action")

	rec, err := s.store.Act(res, c.Param("id"), action)
	if err != nil {
		if errors.Is(err, errUnknownAction) {
			if _, ok := resource.Lookup(res); ok {
				respondDetail(c, http.StatusConflict, "Action not allowed in the current state.")
				return
			}
		}
		s.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (s *Server) respondStoreError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errUnknownResource), errors.Is(err, errRecordNotFound):
		respondDetail(c, http.StatusNotFound, "Not found.")
	case errors.Is(err, errUnknownAction):
		respondDetail(c, http.StatusNotFound, "Not found.")
	default:
		respondDetail(c, http.StatusInternalServerError, "Internal server error.")
	}
}
