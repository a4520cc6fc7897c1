package publish

import (
	"strings"

	"github.com/heartmarshall/approveit/internal/domain"
)

// Event is a record about to be published. Previous is the stored version,
// nil when the record has never been saved.
type Event struct {
	RecordID  string
	Previous  *domain.Record
	Candidate *domain.Record
}

// Result reports how many history entries one event appended.
type Result struct {
	RecordID string
	Appended int
}

// Validate checks all fields and collects all errors.
func (e Event) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(e.RecordID) == "" {
		errs = append(errs, domain.FieldError{Field: "record_id", Message: "required"})
	}

	if e.Candidate != nil {
		if e.Candidate.ID != e.RecordID {
			errs = append(errs, domain.FieldError{Field: "candidate.id", Message: "must match record_id"})
		}
		for _, f := range e.Candidate.Fields {
			if strings.TrimSpace(f.ID) == "" {
				errs = append(errs, domain.FieldError{Field: "candidate.fields.id", Message: "required"})
				break
			}
		}
	}

	if e.Previous != nil && e.Candidate != nil && e.Previous.ID != e.Candidate.ID {
		errs = append(errs, domain.FieldError{Field: "previous.id", Message: "must match candidate id"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
