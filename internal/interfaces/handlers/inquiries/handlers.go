package inquiries

import (
	"errors"

	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/application/forms"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Forms *forms.Service
}

// POST /api/v1/contact
func (h *Handlers) Contact(c *fiber.Ctx) error {
	var f forms.ContactForm
	if err := c.BodyParser(&f); err != nil {
		return response.BadRequest(c, "Invalid request body", nil)
	}
	return h.submit(c, f, "Message received")
}

// POST /api/v1/compliance/verification
func (h *Handlers) Compliance(c *fiber.Ctx) error {
	var f forms.ComplianceRequest
	if err := c.BodyParser(&f); err != nil {
		return response.BadRequest(c, "Invalid request body", nil)
	}
	return h.submit(c, f, "Verification request received")
}

// GET /api/v1/contact/types
func (h *Handlers) InquiryTypes(c *fiber.Ctx) error {
	return response.Success(c, "Inquiry types retrieved", h.Forms.Catalog.InquiryTypes(), nil)
}

func (h *Handlers) submit(c *fiber.Ctx, f forms.Form, message string) error {
	receipt, err := h.Forms.Submit(c.UserContext(), f)
	if err != nil {
		var ve *forms.ValidationError
		if errors.As(err, &ve) {
			return response.BadRequest(c, "Validation failed", ve.ByField())
		}
		return err
	}
	return response.SuccessCreated(c, message, receipt, nil)
}
