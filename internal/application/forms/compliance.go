package forms

import (
	"strings"

	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/content"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/pkg/validation"
)

const PurposeOther = "other"

// ComplianceRequest asks for verification documents. Documents lists the names of the
// documents picked on the page; each adds a "Requesting: <name>" line to the message.
type ComplianceRequest struct {
	Name         string   `json:"name" form:"name"`
	Organization string   `json:"organization" form:"organization"`
	Email        string   `json:"email" form:"email"`
	Purpose      string   `json:"purpose" form:"purpose"`
	PurposeOther string   `json:"purposeOther,omitempty" form:"purposeOther"`
	Message      string   `json:"message" form:"message"`
	Documents    []string `json:"documents,omitempty" form:"documents"`
	NDAAgreed    bool     `json:"ndaAgreed" form:"ndaAgreed"`
}

func (ComplianceRequest) Kind() Kind { return KindCompliance }

func (r ComplianceRequest) subject() string { return r.Purpose }
func (r ComplianceRequest) message() string { return r.Message }

// RequestDocument appends a request line for doc to message.
func RequestDocument(message, doc string) string {
	line := "Requesting: " + doc
	if message == "" {
		return line
	}
	return message + "\n\n" + line
}

func (r ComplianceRequest) normalize(cat *content.Catalog) (Form, error) {
	r.Name = strings.TrimSpace(r.Name)
	r.Organization = strings.TrimSpace(r.Organization)
	r.Email = strings.TrimSpace(r.Email)
	r.Purpose = strings.TrimSpace(r.Purpose)
	r.PurposeOther = strings.TrimSpace(r.PurposeOther)
	r.Message = strings.TrimSpace(r.Message)
	if r.Purpose != PurposeOther {
		r.PurposeOther = ""
	}

	var errs fieldErrors
	if !validation.IsValidFullname(r.Name) {
		errs.add("name", "Please enter your full name")
	} else if !validation.WithinLength(r.Name, maxShort) {
		errs.add("name", "Name is too long")
	}
	if validation.IsBlank(r.Organization) {
		errs.add("organization", "Organization is required")
	} else if !validation.WithinLength(r.Organization, maxShort) {
		errs.add("organization", "Organization is too long")
	}
	if !validation.IsValidEmail(r.Email) {
		errs.add("email", "Please enter a valid email address")
	}
	if _, ok := cat.CompliancePurpose(r.Purpose); !ok {
		errs.add("purpose", "Please select a purpose")
	} else if r.Purpose == PurposeOther && validation.IsBlank(r.PurposeOther) {
		errs.add("purposeOther", "Please specify the purpose")
	}

	known := map[string]bool{}
	for _, d := range cat.ComplianceDocuments() {
		known[d.Name] = true
	}
	for _, doc := range r.Documents {
		doc = strings.TrimSpace(doc)
		if doc == "" {
			continue
		}
		if !known[doc] {
			errs.add("documents", "Unknown document: "+doc)
			continue
		}
		r.Message = RequestDocument(r.Message, doc)
	}
	r.Documents = nil

	if !validation.WithinLength(r.Message, maxMessage) {
		errs.add("message", "Message is too long")
	}
	if !r.NDAAgreed {
		errs.add("ndaAgreed", "Confidentiality acknowledgement is required")
	}
	if err := errs.err(KindCompliance); err != nil {
		return nil, err
	}
	return r, nil
}
