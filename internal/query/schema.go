package query

// UnsetEnum is the sentinel an enum filter holds when no constraint is
// applied. It must be omitted from outgoing requests, never sent literally.
const UnsetEnum = "all"

// UnsetText is the sentinel for free-text and date filters.
const UnsetText = ""

// Field describes one filter of a list view.
type Field struct {
	// Name is the view-facing filter name.
	Name string

	// Param is the backend's documented query parameter, which may differ
	// from Name (e.g. a "method" filter serializes to job__delivery_method).
	// Empty means Param == Name.
	Param string

	// Unset is the value meaning "no constraint" for this filter.
	Unset string
}

func (f Field) param() string {
	if f.Param == "" {
		return f.Name
	}
	return f.Param
}

// Schema is the filter contract of one resource's list view.
type Schema struct {
	Resource string
	Fields   []Field
}

// lookup returns the declared field by view-facing name. Undeclared names
// fall back to an identity field with the empty-string sentinel: filter
// values are opaque here and the backend is the source of truth.
func (s Schema) lookup(name string) Field {
	for _, f := range s.Fields {
		if f.Name == name {
			return f
		}
	}
	return Field{Name: name, Unset: UnsetText}
}
