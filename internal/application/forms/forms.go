// Package forms accepts the contact and compliance verification forms. Submissions are
// simulated: after a short delay a receipt is issued and nothing is stored or sent.
package forms

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/content"

	"github.com/rs/zerolog/log"
)

// DefaultDelay is the artificial processing time of a submission.
const DefaultDelay = 600 * time.Millisecond

const StatusSubmitted = "submitted"

// Kind names the form a receipt belongs to.
type Kind string

const (
	KindContact    Kind = "contact"
	KindCompliance Kind = "compliance"
)

// Form is a submittable form. Both ContactForm and ComplianceRequest implement it.
type Form interface {
	Kind() Kind
	// normalize returns the cleaned form or a *ValidationError.
	normalize(cat *content.Catalog) (Form, error)
	subject() string
	message() string
}

// Receipt is returned for every accepted submission.
type Receipt struct {
	Reference   string    `json:"reference"`
	Kind        Kind      `json:"kind"`
	Status      string    `json:"status"`
	Subject     string    `json:"subject,omitempty"`
	Message     string    `json:"message,omitempty"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// Service validates and "submits" forms.
type Service struct {
	Catalog *content.Catalog
	Delay   time.Duration
	Now     func() time.Time
}

// Validate normalizes f without waiting or issuing a reference.
func (s *Service) Validate(f Form) (Form, error) {
	return f.normalize(s.Catalog)
}

// Submit validates f, waits the configured delay and returns a receipt. Only validation
// and context cancellation fail.
func (s *Service) Submit(ctx context.Context, f Form) (Receipt, error) {
	clean, err := f.normalize(s.Catalog)
	if err != nil {
		return Receipt{}, err
	}

	if s.Delay > 0 {
		t := time.NewTimer(s.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return Receipt{}, ctx.Err()
		case <-t.C:
		}
	}

	now := s.now()
	r := Receipt{
		Reference:   Reference(prefixFor(clean.Kind()), now),
		Kind:        clean.Kind(),
		Status:      StatusSubmitted,
		Subject:     clean.subject(),
		Message:     clean.message(),
		SubmittedAt: now,
	}
	log.Info().
		Str("kind", string(r.Kind)).
		Str("reference", r.Reference).
		Msg("Form submitted")
	return r, nil
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func prefixFor(k Kind) string {
	if k == KindCompliance {
		return "VER"
	}
	return "MSG"
}

// Reference builds PREFIX-<unix millis in upper-case base 36>.
func Reference(prefix string, t time.Time) string {
	return prefix + "-" + strings.ToUpper(strconv.FormatInt(t.UnixMilli(), 36))
}

// FieldError is one rejected field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every rejected field of a form.
type ValidationError struct {
	Kind   Kind
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Field
	}
	return fmt.Sprintf("invalid %s form: %s", e.Kind, strings.Join(names, ", "))
}

type fieldErrors []FieldError

func (fe *fieldErrors) add(field, msg string) {
	*fe = append(*fe, FieldError{Field: field, Message: msg})
}

func (fe fieldErrors) err(k Kind) error {
	if len(fe) == 0 {
		return nil
	}
	return &ValidationError{Kind: k, Fields: fe}
}

// ByField maps each rejected field to its first message.
func (e *ValidationError) ByField() map[string]string {
	out := make(map[string]string, len(e.Fields))
	for _, f := range e.Fields {
		if _, ok := out[f.Field]; !ok {
			out[f.Field] = f.Message
		}
	}
	return out
}
