package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/NoeTobes/FullStackWebApp/internal/routing"
	"github.com/NoeTobes/FullStackWebApp/internal/view"
)

// PagesHandler drives the router from page GETs and serves the painted
// document.
type PagesHandler struct {
	router *routing.Router
	doc    *view.Document
}

// NewPagesHandler constructs handler.
func NewPagesHandler(router *routing.Router, doc *view.Document) *PagesHandler {
	return &PagesHandler{router: router, doc: doc}
}

// Show handles GET on every route path. The router runs the full pipeline;
// when the access policy redirected, the location marker has moved and the
// response mirrors it as an HTTP redirect. Otherwise the painted document is
// served as-is.
func (h *PagesHandler) Show(c *fiber.Ctx) error {
	path := c.Path()
	h.router.Navigate(path)

	if location := h.router.Location(); location != path {
		return c.Redirect(location, fiber.StatusFound)
	}
	c.Type("html", "utf-8")
	return c.SendString(h.doc.HTML())
}
