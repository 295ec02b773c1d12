package forms

import (
	"strings"

	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/content"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/pkg/validation"
)

const (
	maxShort   = 200
	maxMessage = 5000
)

// ContactForm is the general contact form.
type ContactForm struct {
	Name             string `json:"name" form:"name"`
	Email            string `json:"email" form:"email"`
	Company          string `json:"company" form:"company"`
	InquiryType      string `json:"inquiryType" form:"inquiryType"`
	Subject          string `json:"subject" form:"subject"`
	Message          string `json:"message" form:"message"`
	InvestmentDetail string `json:"investmentDetail,omitempty" form:"investmentDetail"`
	MediaOutlet      string `json:"mediaOutlet,omitempty" form:"mediaOutlet"`
	Consent          bool   `json:"consent" form:"consent"`
}

func (ContactForm) Kind() Kind { return KindContact }

func (f ContactForm) subject() string { return f.Subject }
func (f ContactForm) message() string { return f.Message }

// WithInquiryType selects an inquiry type. An empty subject takes the type's template.
func (f ContactForm) WithInquiryType(cat *content.Catalog, id string) ContactForm {
	f.InquiryType = id
	if t, ok := cat.InquiryType(id); ok && strings.TrimSpace(f.Subject) == "" {
		f.Subject = t.SubjectTemplate
	}
	return f
}

func (f ContactForm) normalize(cat *content.Catalog) (Form, error) {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Company = strings.TrimSpace(f.Company)
	f.Subject = strings.TrimSpace(f.Subject)
	f.Message = strings.TrimSpace(f.Message)
	f.InquiryType = strings.TrimSpace(f.InquiryType)
	f = f.WithInquiryType(cat, f.InquiryType)

	// type-specific fields only travel with their type
	if f.InquiryType != "investment" {
		f.InvestmentDetail = ""
	}
	if f.InquiryType != "media" {
		f.MediaOutlet = ""
	}

	var errs fieldErrors
	if !validation.IsValidFullname(f.Name) {
		errs.add("name", "Please enter your full name")
	} else if !validation.WithinLength(f.Name, maxShort) {
		errs.add("name", "Name is too long")
	}
	if !validation.IsValidEmail(f.Email) {
		errs.add("email", "Please enter a valid email address")
	}
	if !validation.WithinLength(f.Company, maxShort) {
		errs.add("company", "Company name is too long")
	}
	if f.InquiryType != "" {
		if _, ok := cat.InquiryType(f.InquiryType); !ok {
			errs.add("inquiryType", "Unknown inquiry type")
		}
	}
	if validation.IsBlank(f.Subject) {
		errs.add("subject", "Subject is required")
	} else if !validation.WithinLength(f.Subject, maxShort) {
		errs.add("subject", "Subject is too long")
	}
	if validation.IsBlank(f.Message) {
		errs.add("message", "Message is required")
	} else if !validation.WithinLength(f.Message, maxMessage) {
		errs.add("message", "Message is too long")
	}
	if !f.Consent {
		errs.add("consent", "Consent to data processing is required")
	}
	if err := errs.err(KindContact); err != nil {
		return nil, err
	}
	return f, nil
}
