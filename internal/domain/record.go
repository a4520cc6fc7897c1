package domain

// Record is one version of a versioned entity (e.g. a content item) as seen
// at publish time. It is owned by the host system; history only reads it.
type Record struct {
	ID     string
	Fields []Field
}

// Field is a named, typed value inside a Record.
// A nil Value is the null value.
type Field struct {
	ID      string
	Alias   string
	TypeTag string
	Value   any
}

// HasFields reports whether r is non-nil and carries at least one field.
func (r *Record) HasFields() bool {
	return r != nil && len(r.Fields) > 0
}

// FieldByID returns the first field with the given id.
func (r *Record) FieldByID(id string) (Field, bool) {
	if r == nil {
		return Field{}, false
	}
	for _, f := range r.Fields {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}

// FieldIndex maps field ids to fields. When an id repeats, the first
// occurrence wins, matching FieldByID.
func (r *Record) FieldIndex() map[string]Field {
	if r == nil {
		return nil
	}
	idx := make(map[string]Field, len(r.Fields))
	for _, f := range r.Fields {
		if _, ok := idx[f.ID]; !ok {
			idx[f.ID] = f
		}
	}
	return idx
}
