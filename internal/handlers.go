package internal

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/sportunion/clubmart/internal/model"
)

type Handlers struct {
	Service IService
	Billing IBilling
	logger  *zap.SugaredLogger
}

func NewHandlers(Service IService, Billing IBilling, logger *zap.SugaredLogger) *Handlers {
	return &Handlers{Service: Service, Billing: Billing, logger: logger}
}

func (h *Handlers) GetCatalog(c *fiber.Ctx) error {
	catalog, err := h.Service.GetCatalog(c.Context(), true)
	if err != nil {
		h.logger.Errorf("Error on catalog request: %s", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Error loading the catalog", "data": nil})
	}

	return c.Status(fiber.StatusOK).JSON(catalog)
}

func (h *Handlers) SubmitOrder(c *fiber.Ctx) error {
	var i model.SubmitOrderInput

	if err := c.BodyParser(&i); err != nil {
		h.logger.Errorf("Error on order request: %s", err.Error())
		return c.SendStatus(fiber.StatusBadRequest)
	}

	confirmation, err := h.Service.SubmitOrder(c.Context(), i, c.IP())
	if err != nil {
		h.logger.Errorf("Error on order request: %s", err.Error())
		if errors.Is(err, ErrEmptyOrder) || errors.Is(err, ErrBadAmount) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "The order is empty.", "data": nil})
		}
		if errors.Is(err, ErrUnknownArticle) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"status": "error", "message": "One or more articles are not available.", "data": nil})
		}
		if errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrKeyCodeInvalid) || errors.Is(err, ErrNoRecords) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "Wrong member and key code combination.", "data": nil})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Error saving the order.", "data": nil})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok", "message": "Your order has been saved.", "data": confirmation})
}

type statementInput struct {
	MemberID int    `json:"memberId"`
	KeyCode  string `json:"keyCode"`
}

func (h *Handlers) GetStatement(c *fiber.Ctx) error {
	var i statementInput

	if err := c.BodyParser(&i); err != nil {
		h.logger.Errorf("Error on statement request: %s", err.Error())
		return c.SendStatus(fiber.StatusBadRequest)
	}

	member, err := h.Service.AuthenticateMember(c.Context(), i.MemberID, i.KeyCode)
	if err != nil {
		h.logger.Errorf("Error on statement request: %s", err.Error())
		if errors.Is(err, ErrInvalidCredentials) || errors.Is(err, ErrKeyCodeInvalid) || errors.Is(err, ErrNoRecords) {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"status": "error", "message": "Wrong member and key code combination.", "data": nil})
		}
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	months, err := h.Service.GetStatement(c.Context(), member.ID, time.Time{}, time.Time{})
	if err != nil {
		h.logger.Errorf("Error on statement request: %s", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Error loading the orders.", "data": nil})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok", "message": member.FullName(), "data": months})
}

func (h *Handlers) AdminLogin(c *fiber.Ctx) error {
	var i struct {
		Password string `json:"password"`
	}

	if err := c.BodyParser(&i); err != nil {
		h.logger.Errorf("Error on admin login request: %s", err.Error())
		return c.SendStatus(fiber.StatusBadRequest)
	}

	t, err := h.Service.AdminLogin(i.Password)
	if err != nil {
		h.logger.Errorf("Error on admin login request: %s", err.Error())
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	setAuthCookie(c, t)
	return c.SendStatus(fiber.StatusOK)
}

// AdminOnly guards the admin group; it runs before every admin handler.
func (h *Handlers) AdminOnly(c *fiber.Ctx) error {
	err := h.Service.VerifyAdminToken(c.Cookies("token"))
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	return c.Next()
}

func (h *Handlers) GetAdminCatalog(c *fiber.Ctx) error {
	catalog, err := h.Service.GetCatalog(c.Context(), false)
	if err != nil {
		h.logger.Errorf("Error on admin catalog request: %s", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Error loading the catalog", "data": nil})
	}

	return c.Status(fiber.StatusOK).JSON(catalog)
}

func (h *Handlers) SaveArticles(c *fiber.Ctx) error {
	var i struct {
		Articles []model.ArticleChange `json:"articles"`
	}

	if err := c.BodyParser(&i); err != nil {
		h.logger.Errorf("Error on save articles request: %s", err.Error())
		return c.SendStatus(fiber.StatusBadRequest)
	}

	err := h.Service.SaveArticles(c.Context(), i.Articles)
	if err != nil {
		h.logger.Errorf("Error on save articles request: %s", err.Error())
		if errors.Is(err, ErrBadPrice) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"status": "error", "message": "One or more prices are not valid.", "data": nil})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Error saving one or more articles.", "data": nil})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok", "message": "Articles saved.", "data": nil})
}

func (h *Handlers) AddArticleGroup(c *fiber.Ctx) error {
	var i struct {
		Name  string `json:"name"`
		Grade int    `json:"grade"`
	}

	if err := c.BodyParser(&i); err != nil || i.Name == "" {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	id, err := h.Service.AddArticleGroup(c.Context(), i.Name, i.Grade)
	if err != nil {
		h.logger.Errorf("Error on add group request: %s", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Error saving the group.", "data": nil})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok", "message": "Group saved.", "data": id})
}

func (h *Handlers) RenameArticleGroup(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	var i struct {
		Name string `json:"name"`
	}

	if err := c.BodyParser(&i); err != nil || i.Name == "" {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	err = h.Service.RenameArticleGroup(c.Context(), id, i.Name)
	if err != nil {
		h.logger.Errorf("Error on rename group request: %s", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Error saving the group.", "data": nil})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok", "message": "Group saved.", "data": nil})
}

// GetYearStatement backs the printable statistics view: a whole calendar
// year for one member, or for all members when memberId is missing.
func (h *Handlers) GetYearStatement(c *fiber.Ctx) error {
	memberID, _ := strconv.Atoi(c.Query("memberId", "0"))
	year, _ := strconv.Atoi(c.Query("year", "0"))

	months, err := h.Service.GetYearStatement(c.Context(), memberID, year)
	if err != nil {
		h.logger.Errorf("Error on statistics request: %s", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Error loading the orders.", "data": nil})
	}

	return c.Status(fiber.StatusOK).JSON(months)
}

func (h *Handlers) RunBilling(c *fiber.Ctx) error {
	var i model.BillingInput

	if err := c.BodyParser(&i); err != nil {
		h.logger.Errorf("Error on billing request: %s", err.Error())
		return c.SendStatus(fiber.StatusBadRequest)
	}
	if i.Cutoff.IsZero() {
		i.Cutoff = time.Now()
	}

	report, err := h.Billing.RunBilling(c.Context(), i)
	if err != nil {
		h.logger.Errorf("Error on billing request: %s", err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"status": "error", "message": "Error sending the invoices.", "data": nil})
	}

	status := "ok"
	if !report.OK() {
		status = "error"
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": status, "message": billingMessage(report), "data": report})
}

func billingMessage(r model.BillingReport) string {
	msg := fmt.Sprintf("%d member(s) with orders in the given period found.", r.MembersWithOrders)
	msg += fmt.Sprintf(" %d member(s) could not be invoiced due to a missing email address.", len(r.NoEmail))
	if len(r.BelowMinimum) > 0 {
		msg += fmt.Sprintf(" %d member(s) stayed below the minimum invoice total.", len(r.BelowMinimum))
	}
	msg += fmt.Sprintf(" An error occurred while sending to %d member(s).", len(r.Errors))
	return msg
}

func setAuthCookie(c *fiber.Ctx, token string) {
	cookie := &fiber.Cookie{
		Name:    "token",
		Value:   token,
		Path:    "/",
		Expires: time.Now().Add(12 * time.Hour),
	}

	c.Cookie(cookie)
}
