package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/NoeTobes/FullStackWebApp/internal/api/dto"
	"github.com/NoeTobes/FullStackWebApp/internal/routing"
	"github.com/NoeTobes/FullStackWebApp/internal/service"
	"github.com/NoeTobes/FullStackWebApp/internal/view"
	apperrors "github.com/NoeTobes/FullStackWebApp/pkg/util"
)

// AccountsHandler exposes the account flows as form posts. JSON clients get
// the error envelope; browser clients get a toast plus the re-populated
// form, and a redirect on success.
type AccountsHandler struct {
	accounts *service.AccountService
	router   *routing.Router
	renderer *view.PageRenderer
	toasts   *view.ToastCenter
}

// NewAccountsHandler constructs handler.
func NewAccountsHandler(accounts *service.AccountService, router *routing.Router, renderer *view.PageRenderer, toasts *view.ToastCenter) *AccountsHandler {
	return &AccountsHandler{accounts: accounts, router: router, renderer: renderer, toasts: toasts}
}

func wantsJSON(c *fiber.Ctx) bool {
	return strings.Contains(c.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON)
}

// fail renders a flow failure: JSON clients get the domain error, browser
// clients get a toast and the form view repainted with its values kept.
func (h *AccountsHandler) fail(c *fiber.Ctx, err error, formView routing.View, form map[string]string) error {
	if wantsJSON(c) {
		return err
	}
	domainErr := apperrors.ToDomainError(err)
	h.toasts.Notify(routing.NoticeError, domainErr.Message)

	html, renderErr := h.renderer.Paint(formView, form)
	if renderErr != nil {
		return renderErr
	}
	c.Status(domainErr.HTTPStatus)
	c.Type("html", "utf-8")
	return c.SendString(html)
}

// succeed follows the navigation the flow performed.
func (h *AccountsHandler) succeed(c *fiber.Ctx, message string) error {
	location := h.router.Location()
	if wantsJSON(c) {
		return c.JSON(fiber.Map{"data": fiber.Map{"redirect": location}})
	}
	if message != "" {
		h.toasts.Notify(routing.NoticeInfo, message)
	}
	return c.Redirect(location, fiber.StatusFound)
}

// Register handles POST /register.
func (h *AccountsHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	form := map[string]string{
		"firstName": req.FirstName,
		"lastName":  req.LastName,
		"email":     req.Email,
	}
	if err := h.accounts.Register(c.UserContext(), req.FirstName, req.LastName, req.Email, req.Password); err != nil {
		return h.fail(c, err, routing.ViewRegister, form)
	}
	return h.succeed(c, "")
}

// Verify handles POST /verify-email (the simulated verification click).
func (h *AccountsHandler) Verify(c *fiber.Ctx) error {
	if err := h.accounts.VerifyPending(c.UserContext()); err != nil {
		return h.fail(c, err, routing.ViewVerifyEmail, nil)
	}
	return h.succeed(c, "Email verified successfully! You can now login.")
}

// Login handles POST /login.
func (h *AccountsHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	form := map[string]string{"email": req.Email}
	if err := h.accounts.Login(c.UserContext(), req.Email, req.Password); err != nil {
		return h.fail(c, err, routing.ViewLogin, form)
	}
	return h.succeed(c, "")
}

// Logout handles POST /logout.
func (h *AccountsHandler) Logout(c *fiber.Ctx) error {
	if err := h.accounts.Logout(c.UserContext()); err != nil {
		return h.fail(c, err, routing.ViewHome, nil)
	}
	return h.succeed(c, "")
}
