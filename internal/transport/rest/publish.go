package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/heartmarshall/approveit/internal/domain"
	"github.com/heartmarshall/approveit/internal/service/publish"
)

type publishHook interface {
	SendingToPublish(ctx context.Context, ev publish.Event) (publish.Result, error)
}

// PublishHandler serves the publish event endpoint.
type PublishHandler struct {
	hook     publishHook
	validate *validator.Validate
	maxBody  int64
	log      *slog.Logger
}

// NewPublishHandler creates a PublishHandler. Request bodies larger than
// maxBody bytes are rejected.
func NewPublishHandler(hook publishHook, maxBody int64, logger *slog.Logger) *PublishHandler {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonTagName)

	return &PublishHandler{
		hook:     hook,
		validate: validate,
		maxBody:  maxBody,
		log:      logger.With("handler", "publish"),
	}
}

type publishRequest struct {
	Previous  *recordPayload `json:"previous"`
	Candidate *recordPayload `json:"candidate" validate:"required"`
}

type recordPayload struct {
	ID     string         `json:"id"`
	Fields []fieldPayload `json:"fields" validate:"unique=ID,dive"`
}

type fieldPayload struct {
	ID      string `json:"id" validate:"required"`
	Alias   string `json:"alias"`
	TypeTag string `json:"type_tag" validate:"required"`
	Value   any    `json:"value"`
}

type publishResponse struct {
	RecordID string `json:"record_id"`
	Appended int    `json:"appended"`
}

// Publish handles POST /v1/records/{recordID}/publish.
// A payload without an id inherits the id from the path (candidate) or from
// the candidate (previous).
func (h *PublishHandler) Publish(w http.ResponseWriter, r *http.Request) {
	recordID := strings.TrimSpace(chi.URLParam(r, "recordID"))

	var req publishRequest
	if err := h.decode(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.validate.Struct(req); err != nil {
		handleError(h.log, w, r, toValidationError(err))
		return
	}

	candidate := req.Candidate.toDomain()
	if candidate.ID == "" {
		candidate.ID = recordID
	}
	var previous *domain.Record
	if req.Previous != nil {
		previous = req.Previous.toDomain()
		if previous.ID == "" {
			previous.ID = candidate.ID
		}
	}

	res, err := h.hook.SendingToPublish(r.Context(), publish.Event{
		RecordID:  recordID,
		Previous:  previous,
		Candidate: candidate,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, publishResponse{RecordID: res.RecordID, Appended: res.Appended})
}

// decode reads one JSON document, keeping numbers as their literal text so
// the recorded snapshot matches what the host sent.
func (h *PublishHandler) decode(w http.ResponseWriter, r *http.Request, dst any) error {
	body := http.MaxBytesReader(w, r.Body, h.maxBody)
	dec := json.NewDecoder(body)
	dec.UseNumber()

	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return errors.New("request body too large")
		}
		return errors.New("invalid request body")
	}
	if dec.More() {
		return errors.New("invalid request body: trailing data")
	}
	return nil
}

func (p *recordPayload) toDomain() *domain.Record {
	rec := &domain.Record{ID: strings.TrimSpace(p.ID)}
	if len(p.Fields) == 0 {
		return rec
	}
	rec.Fields = make([]domain.Field, len(p.Fields))
	for i, f := range p.Fields {
		rec.Fields[i] = domain.Field{
			ID:      f.ID,
			Alias:   f.Alias,
			TypeTag: f.TypeTag,
			Value:   rawValue(f.Value),
		}
	}
	return rec
}

// rawValue keeps scalars as decoded and re-encodes composite values as
// compact JSON without HTML escaping, so markup inside them stays readable.
func rawValue(v any) any {
	switch v.(type) {
	case map[string]any, []any:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return v
		}
		return strings.TrimSuffix(buf.String(), "\n")
	default:
		return v
	}
}

func toValidationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return domain.NewValidationError("body", err.Error())
	}

	fields := make([]domain.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.FieldError{
			Field:   jsonPath(fe.Namespace()),
			Message: fe.Tag(),
		})
	}
	return domain.NewValidationErrors(fields)
}

// jsonPath drops the root struct name from a validator namespace, e.g.
// "publishRequest.candidate.fields[0].type_tag" becomes
// "candidate.fields[0].type_tag".
func jsonPath(ns string) string {
	_, rest, ok := strings.Cut(ns, ".")
	if !ok {
		return ns
	}
	return rest
}

func jsonTagName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	return name
}
