package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// ChangeEntry is the immutable audit row for one field whose serialized value
// changed between two versions of a record. It is never updated or deleted.
type ChangeEntry struct {
	FieldID       string
	FieldAlias    string
	FieldTypeTag  string
	RecordID      string
	Timestamp     time.Time
	Actor         string
	PreviousValue string
	CurrentValue  string
}

// Validate reports text PostgreSQL TEXT columns cannot store: NUL bytes and
// invalid UTF-8. Such an entry could never be appended, so it is rejected as
// a validation error instead of failing the write.
func (e ChangeEntry) Validate() error {
	columns := []struct {
		name  string
		value string
	}{
		{"field_id", e.FieldID},
		{"field_alias", e.FieldAlias},
		{"field_type_tag", e.FieldTypeTag},
		{"record_id", e.RecordID},
		{"updated_by", e.Actor},
		{"previous_value", e.PreviousValue},
		{"current_value", e.CurrentValue},
	}

	var errs []FieldError
	for _, c := range columns {
		switch {
		case strings.IndexByte(c.value, 0) >= 0:
			errs = append(errs, FieldError{Field: c.name, Message: fmt.Sprintf("field %q: contains a NUL byte", e.FieldID)})
		case !utf8.ValidString(c.value):
			errs = append(errs, FieldError{Field: c.name, Message: fmt.Sprintf("field %q: invalid UTF-8", e.FieldID)})
		}
	}
	if len(errs) > 0 {
		return NewValidationErrors(errs)
	}
	return nil
}
