// Package pages serves the HTML site. Every handler reads the request locale from
// middleware.GetLocale and passes it to the renderer explicitly.
package pages

import (
	"bytes"
	"net/url"
	"time"

	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/application/forms"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/content"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/middleware"
	"github.com/Satoshi-Nakamoto68/HangKyGroup/internal/web"

	"github.com/gofiber/fiber/v2"
)

type Handlers struct {
	Catalog  *content.Catalog
	Forms    *forms.Service
	Renderer *web.Renderer
	// FrameInterval is the virtual frame length used to precompute count-up keyframes.
	FrameInterval time.Duration
}

func (h *Handlers) render(c *fiber.Ctx, status int, name, title string, data interface{}) error {
	p := web.Page{
		Locale:  middleware.GetLocale(c),
		Title:   title,
		Path:    c.Path(),
		Query:   currentQuery(c),
		TraceID: middleware.GetTraceID(c),
		Data:    data,
	}
	var buf bytes.Buffer
	if err := h.Renderer.Render(&buf, name, p); err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}

// currentQuery copies the query string for the language switcher, minus lang itself.
func currentQuery(c *fiber.Ctx) url.Values {
	q := url.Values{}
	for k, v := range c.Queries() {
		if k == "lang" {
			continue
		}
		q.Set(k, v)
	}
	return q
}

type ErrorData struct {
	Code    int
	Message string
}

// ErrorPage renders the site error page. It matches middleware.ErrorPage.
func (h *Handlers) ErrorPage(c *fiber.Ctx, code int, message string) error {
	return h.render(c, code, "error", message, ErrorData{Code: code, Message: message})
}
