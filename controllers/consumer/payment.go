package consumer

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/meinhoongagan/handyhub/apperr"
	"github.com/meinhoongagan/handyhub/middleware"
	"github.com/meinhoongagan/handyhub/payments"
	"github.com/meinhoongagan/handyhub/utils"
)

type PaymentHandler struct {
	bridge   *payments.Bridge
	validate *validator.Validate
}

func NewPaymentHandler(bridge *payments.Bridge) *PaymentHandler {
	return &PaymentHandler{bridge: bridge, validate: validator.New()}
}

// createIntentRequest has no amount field. The charge comes from the
// stored booking total.
type createIntentRequest struct {
	BookingID string `json:"bookingId" validate:"required"`
}

func (h *PaymentHandler) CreatePaymentIntent(c *fiber.Ctx) error {
	p, err := middleware.CurrentPrincipal(c)
	if err != nil {
		return err
	}
	if !h.bridge.Configured() {
		return apperr.Unconfigured(payments.MsgNotConfigured)
	}

	var req createIntentRequest
	if err := utils.ParseBody(c, h.validate, &req); err != nil {
		return err
	}

	secret, err := h.bridge.InitiatePayment(c.UserContext(), req.BookingID, p)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"clientSecret": secret})
}
