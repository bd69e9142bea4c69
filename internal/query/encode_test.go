package query

import (
	"testing"
	"time"
)

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		snap Snapshot
		want string
	}{
		{
			name: "no active filters still carries pagination",
			snap: Snapshot{Resource: "lpos", Page: 1, PageSize: 20},
			want: "page=1&page_size=20",
		},
		{
			name: "single filter",
			snap: Snapshot{
				Resource: "lpos",
				Params:   map[string]string{"status": "pending"},
				Page:     1, PageSize: 20,
			},
			want: "page=1&page_size=20&status=pending",
		},
		{
			name: "parameters sorted regardless of map order",
			snap: Snapshot{
				Resource: "payments",
				Params: map[string]string{
					"payment_method": "mpesa",
					"paid_at__gte":   "2026-08-01",
					"status":         "confirmed",
				},
				Page: 2, PageSize: 50,
			},
			want: "page=2&page_size=50&paid_at__gte=2026-08-01&payment_method=mpesa&status=confirmed",
		},
		{
			name: "search included when set",
			snap: Snapshot{
				Resource: "vendors",
				Search:   "kazi print",
				Page:     1, PageSize: 20,
			},
			want: "page=1&page_size=20&search=kazi+print",
		},
		{
			name: "ordering passes through verbatim",
			snap: Snapshot{
				Resource: "jobs",
				Params:   map[string]string{"ordering": "-due_date"},
				Page:     1, PageSize: 20,
			},
			want: "ordering=-due_date&page=1&page_size=20",
		},
		{
			name: "zero pagination normalized",
			snap: Snapshot{Resource: "leads"},
			want: "page=1&page_size=1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Encode(tt.snap); got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEncodeDeterministic(t *testing.T) {
	snap := Snapshot{
		Resource: "quotes",
		Params: map[string]string{
			"status":          "sent",
			"customer__id":    "c-011",
			"created_at__gte": "2026-08-01",
		},
		Search: "safari",
		Page:   3, PageSize: 20,
	}

	first := Encode(snap)
	for i := 0; i < 100; i++ {
		if got := Encode(snap); got != first {
			t.Fatalf("Encode() not deterministic: %q vs %q", got, first)
		}
	}
}

func TestKeyForEqualStatesCollide(t *testing.T) {
	schema := testSchema()

	// Same filters applied in different order must share one key.
	a := NewState(schema)
	defer a.Close()
	a.SetFilter("status", "pending")
	a.SetFilter("vendor", "v-001")

	b := NewState(schema)
	defer b.Close()
	b.SetFilter("vendor", "v-001")
	b.SetFilter("status", "pending")

	ka, kb := KeyFor(a.Snapshot()), KeyFor(b.Snapshot())
	if ka != kb {
		t.Errorf("keys differ for equal states: %v vs %v", ka, kb)
	}
	if ka.Resource != "lpos" {
		t.Errorf("Key.Resource = %q, want %q", ka.Resource, "lpos")
	}
}

// The canonical round trip: filter, search, paginate, then reset back to
// the bare pagination-only query.
func TestFilterLifecycle(t *testing.T) {
	s := NewState(testSchema(), WithQuietPeriod(5*time.Millisecond))
	defer s.Close()

	s.SetFilter("status", "pending")
	if got := Encode(s.Snapshot()); got != "page=1&page_size=20&status=pending" {
		t.Errorf("after SetFilter: Encode() = %q", got)
	}

	s.SetPage(2)
	if got := Encode(s.Snapshot()); got != "page=2&page_size=20&status=pending" {
		t.Errorf("after SetPage: Encode() = %q", got)
	}

	s.Reset()
	if got := Encode(s.Snapshot()); got != "page=1&page_size=20" {
		t.Errorf("after Reset: Encode() = %q", got)
	}
}
