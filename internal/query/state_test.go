package query

import (
	"testing"
	"time"
)

func testSchema() Schema {
	return Schema{
		Resource: "lpos",
		Fields: []Field{
			{Name: "status", Unset: UnsetEnum},
			{Name: "vendor", Param: "vendor__id", Unset: UnsetEnum},
			{Name: "dateFrom", Param: "created_at__gte", Unset: UnsetText},
			{Name: "dateTo", Param: "created_at__lte", Unset: UnsetText},
			{Name: "ordering", Unset: UnsetText},
		},
	}
}

func TestNewStateDefaults(t *testing.T) {
	s := NewState(testSchema())
	defer s.Close()

	snap := s.Snapshot()
	if len(snap.Params) != 0 {
		t.Errorf("fresh state emits params %v, want none", snap.Params)
	}
	if snap.Page != 1 {
		t.Errorf("Page = %d, want 1", snap.Page)
	}
	if snap.PageSize != 20 {
		t.Errorf("PageSize = %d, want 20", snap.PageSize)
	}
	if got := s.Filter("status"); got != UnsetEnum {
		t.Errorf("Filter(status) = %q, want %q", got, UnsetEnum)
	}
	if got := s.Filter("dateFrom"); got != UnsetText {
		t.Errorf("Filter(dateFrom) = %q, want %q", got, UnsetText)
	}
}

func TestSetFilterResetsPage(t *testing.T) {
	s := NewState(testSchema())
	defer s.Close()

	s.SetPage(4)
	s.SetFilter("status", "pending")

	snap := s.Snapshot()
	if snap.Page != 1 {
		t.Errorf("Page after SetFilter = %d, want 1", snap.Page)
	}
	if snap.Params["status"] != "pending" {
		t.Errorf("Params[status] = %q, want %q", snap.Params["status"], "pending")
	}
}

func TestSetPageSizeResetsPage(t *testing.T) {
	s := NewState(testSchema())
	defer s.Close()

	s.SetPage(3)
	s.SetPageSize(50)

	snap := s.Snapshot()
	if snap.Page != 1 {
		t.Errorf("Page after SetPageSize = %d, want 1", snap.Page)
	}
	if snap.PageSize != 50 {
		t.Errorf("PageSize = %d, want 50", snap.PageSize)
	}
}

func TestSnapshotParamMapping(t *testing.T) {
	s := NewState(testSchema())
	defer s.Close()

	s.SetFilter("vendor", "v-001")
	s.SetFilter("dateFrom", "2026-08-01")

	snap := s.Snapshot()
	if snap.Params["vendor__id"] != "v-001" {
		t.Errorf("Params[vendor__id] = %q, want %q", snap.Params["vendor__id"], "v-001")
	}
	if _, ok := snap.Params["vendor"]; ok {
		t.Error("view-facing name leaked into params")
	}
	if snap.Params["created_at__gte"] != "2026-08-01" {
		t.Errorf("Params[created_at__gte] = %q, want %q", snap.Params["created_at__gte"], "2026-08-01")
	}
}

func TestResetRestoresSentinels(t *testing.T) {
	s := NewState(testSchema(), WithQuietPeriod(10*time.Millisecond))
	defer s.Close()

	s.SetFilter("status", "approved")
	s.SetFilter("ordering", "-created_at")
	s.SetSearchText("acme")
	s.FlushSearch()
	s.SetPageSize(50)
	s.SetPage(2)

	s.Reset()

	snap := s.Snapshot()
	if len(snap.Params) != 0 {
		t.Errorf("params after Reset = %v, want none", snap.Params)
	}
	if snap.Search != "" {
		t.Errorf("Search after Reset = %q, want empty", snap.Search)
	}
	if s.SearchText() != "" {
		t.Errorf("SearchText after Reset = %q, want empty", s.SearchText())
	}
	if snap.Page != 1 {
		t.Errorf("Page after Reset = %d, want 1", snap.Page)
	}
	// Page size is a display preference and survives Reset.
	if snap.PageSize != 50 {
		t.Errorf("PageSize after Reset = %d, want 50", snap.PageSize)
	}
}

func TestSearchAdoptionResetsPage(t *testing.T) {
	s := NewState(testSchema(), WithQuietPeriod(5*time.Millisecond))
	defer s.Close()

	s.SetPage(7)
	s.SetSearchText("banner")
	s.FlushSearch()

	snap := s.Snapshot()
	if snap.Search != "banner" {
		t.Errorf("Search = %q, want %q", snap.Search, "banner")
	}
	if snap.Page != 1 {
		t.Errorf("Page after search adoption = %d, want 1", snap.Page)
	}
}

func TestSearchSettledCallback(t *testing.T) {
	settled := make(chan struct{}, 1)
	s := NewState(testSchema(),
		WithQuietPeriod(5*time.Millisecond),
		WithSearchSettled(func() { settled <- struct{}{} }),
	)
	defer s.Close()

	s.SetSearchText("mugs")

	select {
	case <-settled:
	case <-time.After(time.Second):
		t.Fatal("searchSettled never fired")
	}

	// Re-adopting the same value must not fire again.
	s.SetSearchText("mugs")
	s.FlushSearch()
	select {
	case <-settled:
		t.Error("searchSettled fired for unchanged value")
	case <-time.After(20 * time.Millisecond):
	}
}
