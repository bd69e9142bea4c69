package resource

import (
	"sort"
	"testing"

	"printduka-admin/internal/query"
)

func TestLookup(t *testing.T) {
	d, ok := Lookup(Deliveries)
	if !ok {
		t.Fatal("deliveries descriptor missing")
	}
	if d.Name != Deliveries {
		t.Errorf("Name = %q", d.Name)
	}
	if _, ok := Lookup("invoices"); ok {
		t.Error("Lookup should miss for undeclared resources")
	}
}

func TestHasAction(t *testing.T) {
	quotes, _ := Lookup(Quotes)
	for _, action := range []string{ActionApprove, ActionClone, ActionSendToPTReview, ActionSendToCustomer} {
		if !quotes.HasAction(action) {
			t.Errorf("quotes should declare %s", action)
		}
	}
	if quotes.HasAction(ActionInvite) {
		t.Error("quotes must not declare invite")
	}

	deliveries, _ := Lookup(Deliveries)
	if len(deliveries.Actions) != 0 {
		t.Errorf("deliveries declares actions %v, want none", deliveries.Actions)
	}
}

func TestCatalogSchemas(t *testing.T) {
	// Every schema's resource must match its catalog key, and every enum
	// filter must use the enum sentinel.
	for _, d := range All() {
		if d.Schema.Resource != d.Name {
			t.Errorf("%s: schema resource = %q", d.Name, d.Schema.Resource)
		}
		for _, f := range d.Schema.Fields {
			if f.Unset != query.UnsetEnum && f.Unset != query.UnsetText {
				t.Errorf("%s.%s: unknown sentinel %q", d.Name, f.Name, f.Unset)
			}
		}
	}
}

func TestParamMappings(t *testing.T) {
	tests := []struct {
		resource string
		filter   string
		want     string
	}{
		{Deliveries, "method", "job__delivery_method"},
		{Payments, "method", "payment_method"},
		{Payments, "dateFrom", "paid_at__gte"},
		{Products, "vendor", "vendor__id"},
		{Jobs, "assignee", "assigned_to"},
		{Quotes, "customer", "customer__id"},
	}

	for _, tt := range tests {
		d, ok := Lookup(tt.resource)
		if !ok {
			t.Fatalf("missing descriptor %s", tt.resource)
		}
		found := false
		for _, f := range d.Schema.Fields {
			if f.Name == tt.filter {
				found = true
				if f.Param != tt.want {
					t.Errorf("%s.%s param = %q, want %q", tt.resource, tt.filter, f.Param, tt.want)
				}
			}
		}
		if !found {
			t.Errorf("%s has no filter %q", tt.resource, tt.filter)
		}
	}
}

func TestAllSorted(t *testing.T) {
	all := All()
	if len(all) != 10 {
		t.Fatalf("len(All()) = %d, want 10", len(all))
	}
	names := make([]string, len(all))
	for i, d := range all {
		names[i] = d.Name
	}
	if !sort.StringsAreSorted(names) {
		t.Errorf("All() not sorted: %v", names)
	}
}
