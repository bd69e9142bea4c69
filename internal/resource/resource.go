// Package resource declares the backend collections the admin UI manages.
//
// Every list page has the same shape, so instead of ten near-identical
// filter/table/pagination stacks there is one descriptor per resource:
// endpoint name, filter schema with wire-parameter mapping, and the
// record-level actions the backend exposes.
package resource

import (
	"sort"

	"printduka-admin/internal/query"
)

// Descriptor is the contract of one backend collection.
type Descriptor struct {
	// Name is the collection segment under /api/v1/.
	Name string

	// Schema declares the list view's filters and how they serialize.
	Schema query.Schema

	// Actions are the record-level POST actions (e.g. invite, publish).
	Actions []string
}

// HasAction reports whether the resource exposes the named action.
func (d Descriptor) HasAction(name string) bool {
	for _, action := range d.Actions {
		if action == name {
			return true
		}
	}
	return false
}

// Lookup returns the descriptor for a collection name.
func Lookup(name string) (Descriptor, bool) {
	d, ok := catalog[name]
	return d, ok
}

// All returns every descriptor, sorted by name.
func All() []Descriptor {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)

	descriptors := make([]Descriptor, 0, len(names))
	for _, name := range names {
		descriptors = append(descriptors, catalog[name])
	}
	return descriptors
}
