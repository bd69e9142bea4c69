package stubapi

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"printduka-admin/internal/resource"
	"printduka-admin/pkg/paginator"
)

var (
	errUnknownResource = errors.New("unknown resource")
	errRecordNotFound  = errors.New("record not found")
	errUnknownAction   = errors.New("unknown action")
)

// Record is one fixture row, decoded-JSON shaped so every collection can
// share the same filtering and ordering machinery.
type Record map[string]any

// Store is the in-memory fixture database behind the stub API.
type Store struct {
	mu      sync.RWMutex
	records map[string][]Record
}

// NewStore builds a store seeded with fixture data for every collection
// in the catalog.
func NewStore() *Store {
	return &Store{records: seedFixtures()}
}

// ListResult is the outcome of a filtered, ordered, paginated list query.
type ListResult struct {
	Results []Record
	Count   int64
	Summary any
}

// List applies the query parameters the admin client encodes: exact-match
// filters (including Django-style nested lookups and __gte/__lte ranges),
// free-text search, ordering and pagination. Summary covers the whole
// filtered set, not just the returned page.
func (s *Store) List(res string, params url.Values) (ListResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all, ok := s.records[res]
	if !ok {
		return ListResult{}, errUnknownResource
	}

	filtered := make([]Record, 0, len(all))
	for _, rec := range all {
		if matches(rec, params) {
			filtered = append(filtered, rec)
		}
	}

	if ordering := params.Get("ordering"); ordering != "" {
		sortRecords(filtered, ordering)
	}

	pq := paginator.PaginateQuery{
		Page:     atoiDefault(params.Get("page"), paginator.DefaultPage),
		PageSize: atoiDefault(params.Get("page_size"), paginator.DefaultPageSize),
	}
	page, total := paginator.PaginateSlice(filtered, pq)

	return ListResult{
		Results: page,
		Count:   total,
		Summary: summarize(res, filtered),
	}, nil
}

// Get returns a single record by id.
func (s *Store) Get(res, id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	all, ok := s.records[res]
	if !ok {
		return nil, errUnknownResource
	}
	for _, rec := range all {
		if recordID(rec) == id {
			return rec, nil
		}
	}
	return nil, errRecordNotFound
}

// Create inserts a record, assigning id and created_at.
func (s *Store) Create(res string, body Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[res]; !ok {
		return nil, errUnknownResource
	}

	rec := Record{}
	for k, v := range body {
		rec[k] = v
	}
	rec["id"] = uuid.New().String()
	rec["created_at"] = time.Now().UTC().Format(time.RFC3339)

	s.records[res] = append(s.records[res], rec)
	return rec, nil
}

// Update merges a partial body into an existing record.
func (s *Store) Update(res, id string, body Record) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, ok := s.records[res]
	if !ok {
		return nil, errUnknownResource
	}
	for _, rec := range all {
		if recordID(rec) != id {
			continue
		}
		for k, v := range body {
			if k == "id" {
				continue
			}
			rec[k] = v
		}
		rec["updated_at"] = time.Now().UTC().Format(time.RFC3339)
		return rec, nil
	}
	return nil, errRecordNotFound
}

// Delete removes a record by id.
func (s *Store) Delete(res, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, ok := s.records[res]
	if !ok {
		return errUnknownResource
	}
	for i, rec := range all {
		if recordID(rec) == id {
			s.records[res] = append(all[:i], all[i+1:]...)
			return nil
		}
	}
	return errRecordNotFound
}

// Act applies a record-level action: a status transition, or a copy for
// clone. The action must be declared for the resource in the catalog.
func (s *Store) Act(res, id, action string) (Record, error) {
	desc, ok := resource.Lookup(res)
	if !ok {
		return nil, errUnknownResource
	}
	if !desc.HasAction(action) {
		return nil, errUnknownAction
	}

	if action == resource.ActionClone {
		orig, err := s.Get(res, id)
		if err != nil {
			return nil, err
		}
		body := Record{}
		for k, v := range orig {
			if k == "id" || k == "created_at" || k == "updated_at" {
				continue
			}
			body[k] = v
		}
		body["status"] = "draft"
		return s.Create(res, body)
	}

	next, ok := actionTransitions[action]
	if !ok {
		return nil, errUnknownAction
	}
	return s.Update(res, id, Record{"status": next})
}

// actionTransitions maps each action to the status it leaves behind.
var actionTransitions = map[string]string{
	resource.ActionInvite:         "invited",
	resource.ActionPublish:        "published",
	resource.ActionArchive:        "archived",
	resource.ActionQualify:        "qualified",
	resource.ActionConvert:        "converted",
	resource.ActionApprove:        "approved",
	resource.ActionSendToPTReview: "pt_review",
	resource.ActionSendToCustomer: "sent",
}

// reservedParams are query parameters that are not field filters.
var reservedParams = map[string]bool{
	"page":      true,
	"page_size": true,
	"search":    true,
	"ordering":  true,
}

func matches(rec Record, params url.Values) bool {
	for key, values := range params {
		if reservedParams[key] || len(values) == 0 {
			continue
		}
		want := values[0]
		switch {
		case strings.HasSuffix(key, "__gte"):
			got := fieldString(rec, strings.TrimSuffix(key, "__gte"))
			// ISO dates compare lexicographically.
			if got == "" || got < want {
				return false
			}
		case strings.HasSuffix(key, "__lte"):
			got := fieldString(rec, strings.TrimSuffix(key, "__lte"))
			// Truncate timestamps to the bound's precision so a
			// date-only upper bound includes that whole day.
			if got == "" || got[:min(len(got), len(want))] > want {
				return false
			}
		default:
			if fieldString(rec, key) != want {
				return false
			}
		}
	}

	if search := params.Get("search"); search != "" {
		return searchMatch(rec, search)
	}
	return true
}

// fieldString resolves a Django-style lookup path (job__delivery_method)
// against a record and stringifies the value.
func fieldString(rec Record, path string) string {
	var cur any = map[string]any(rec)
	for _, seg := range strings.Split(path, "__") {
		var obj map[string]any
		switch m := cur.(type) {
		case map[string]any:
			obj = m
		case Record:
			obj = map[string]any(m)
		default:
			return ""
		}
		var ok bool
		cur, ok = obj[seg]
		if !ok {
			return ""
		}
	}
	return stringify(cur)
}

func stringify(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case float64:
		// Fixture numbers are JSON-shaped floats; render ints without
		// a decimal point so id filters compare cleanly.
		if val == float64(int64(val)) {
			return fmt.Sprintf("%d", int64(val))
		}
		return fmt.Sprintf("%g", val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

func searchMatch(rec Record, needle string) bool {
	needle = strings.ToLower(needle)
	for _, v := range rec {
		if s, ok := v.(string); ok && strings.Contains(strings.ToLower(s), needle) {
			return true
		}
	}
	return false
}

func sortRecords(recs []Record, ordering string) {
	fields := strings.Split(ordering, ",")
	sort.SliceStable(recs, func(i, j int) bool {
		for _, f := range fields {
			f = strings.TrimSpace(f)
			if f == "" {
				continue
			}
			desc := strings.HasPrefix(f, "-")
			name := strings.TrimPrefix(f, "-")
			a, b := fieldString(recs[i], name), fieldString(recs[j], name)
			if a == b {
				continue
			}
			if desc {
				return a > b
			}
			return a < b
		}
		return false
	})
}

func recordID(rec Record) string {
	return fieldString(rec, "id")
}

func atoiDefault(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
