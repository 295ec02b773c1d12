package pages

import (
	"errors"

	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/application/forms"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/domain"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/middleware"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/web"

	"github.com/gofiber/fiber/v2"
)

type ContactView struct {
	Form    forms.ContactForm
	Types   []domain.InquiryType
	Errors  map[string]string
	Receipt *forms.Receipt
}

type ComplianceView struct {
	Documents []domain.ComplianceDocument
	Purposes  []domain.CompliancePurpose
	Form      forms.ComplianceRequest
	Errors    map[string]string
	Selected  map[string]bool
	Receipt   *forms.Receipt
}

// GET /contact?type=&subject= prefills the inquiry type and subject.
func (h *Handlers) Contact(c *fiber.Ctx) error {
	f := forms.ContactForm{Subject: c.Query("subject")}
	if t := c.Query("type"); t != "" {
		f = f.WithInquiryType(h.Catalog, t)
	}
	return h.renderContact(c, fiber.StatusOK, f, nil, nil)
}

// POST /contact
func (h *Handlers) SubmitContact(c *fiber.Ctx) error {
	var f forms.ContactForm
	if err := c.BodyParser(&f); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form body")
	}
	receipt, err := h.Forms.Submit(c.UserContext(), f)
	if err != nil {
		var ve *forms.ValidationError
		if errors.As(err, &ve) {
			return h.renderContact(c, fiber.StatusBadRequest, f, ve.ByField(), nil)
		}
		return err
	}
	return h.renderContact(c, fiber.StatusOK, f, nil, &receipt)
}

func (h *Handlers) renderContact(c *fiber.Ctx, status int, f forms.ContactForm, errs map[string]string, r *forms.Receipt) error {
	loc := middleware.GetLocale(c)
	return h.render(c, status, "contact", web.T(loc, "contact.title"), ContactView{
		Form:    f,
		Types:   h.Catalog.InquiryTypes(),
		Errors:  errs,
		Receipt: r,
	})
}

// GET /compliance?request=<document> preselects a document and adds its request line.
func (h *Handlers) Compliance(c *fiber.Ctx) error {
	var f forms.ComplianceRequest
	if doc := c.Query("request"); doc != "" && h.knownDocument(doc) {
		f.Documents = []string{doc}
	}
	return h.renderCompliance(c, fiber.StatusOK, f, nil, nil)
}

// POST /compliance
func (h *Handlers) SubmitCompliance(c *fiber.Ctx) error {
	var f forms.ComplianceRequest
	if err := c.BodyParser(&f); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid form body")
	}
	receipt, err := h.Forms.Submit(c.UserContext(), f)
	if err != nil {
		var ve *forms.ValidationError
		if errors.As(err, &ve) {
			return h.renderCompliance(c, fiber.StatusBadRequest, f, ve.ByField(), nil)
		}
		return err
	}
	return h.renderCompliance(c, fiber.StatusOK, f, nil, &receipt)
}

func (h *Handlers) knownDocument(name string) bool {
	for _, d := range h.Catalog.ComplianceDocuments() {
		if d.Name == name {
			return true
		}
	}
	return false
}

func (h *Handlers) renderCompliance(c *fiber.Ctx, status int, f forms.ComplianceRequest, errs map[string]string, r *forms.Receipt) error {
	loc := middleware.GetLocale(c)
	selected := make(map[string]bool, len(f.Documents))
	for _, d := range f.Documents {
		selected[d] = true
	}
	return h.render(c, status, "compliance", web.T(loc, "compliance.title"), ComplianceView{
		Documents: h.Catalog.ComplianceDocuments(),
		Purposes:  h.Catalog.CompliancePurposes(),
		Form:      f,
		Errors:    errs,
		Selected:  selected,
		Receipt:   r,
	})
}
