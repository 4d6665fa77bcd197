package http

import (
	"net/http"
	"time"

	"rentease-backend/internal/adapter/middleware"
	leasedomain "rentease-backend/internal/domain/lease"
	"rentease-backend/internal/usecase/payment"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct{ uc *payment.Service }

func NewPaymentHandler(uc *payment.Service) *PaymentHandler { return &PaymentHandler{uc: uc} }

type createOrderReq struct {
	PropertyID      string  `json:"property_id"       validate:"required,hex32"`
	StartDate       string  `json:"start_date"        validate:"required,datetime=2006-01-02"`
	EndDate         string  `json:"end_date"          validate:"required,datetime=2006-01-02"`
	RentAmount      float64 `json:"rent_amount"       validate:"required,gt=0,dec2"`
	SecurityDeposit float64 `json:"security_deposit"  validate:"gte=0,dec2"`
	RentDueDate     int     `json:"rent_due_date"     validate:"gte=0,lte=28"`
	Maintenance     string  `json:"maintenance"`
	Utilities       string  `json:"utilities"`
	NoticePeriod    string  `json:"notice_period"`
	RenewalTerms    string  `json:"renewal_terms"`
}

func (h *PaymentHandler) CreateOrder(c echo.Context) error {
	who, found := middleware.ActorFrom(c)
	if !found {
		return unauthorized(c)
	}
	var req createOrderReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	start, _ := time.Parse(dateLayout, req.StartDate)
	end, _ := time.Parse(dateLayout, req.EndDate)
	res, err := h.uc.CreateOrder(c.Request().Context(), who, payment.CreateOrderInput{
		PropertyID: req.PropertyID,
		StartDate:  start,
		EndDate:    end,
		Terms: leasedomain.Terms{
			RentAmount:      req.RentAmount,
			SecurityDeposit: req.SecurityDeposit,
			RentDueDate:     req.RentDueDate,
			Maintenance:     req.Maintenance,
			Utilities:       req.Utilities,
			NoticePeriod:    req.NoticePeriod,
			RenewalTerms:    req.RenewalTerms,
		},
	})
	if err != nil {
		return writeErr(c, err)
	}
	return okMsg(c, http.StatusCreated, "order created", res)
}

type verifyOrderReq struct {
	OrderID   string `json:"order_id"   validate:"required"`
	PaymentID string `json:"payment_id" validate:"required"`
	Signature string `json:"signature"  validate:"required"`
}

func (h *PaymentHandler) Verify(c echo.Context) error {
	var req verifyOrderReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	p, err := h.uc.Verify(c.Request().Context(), req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		return writeErr(c, err)
	}
	return okMsg(c, http.StatusOK, "payment verified", p)
}

func (h *PaymentHandler) Get(c echo.Context) error {
	p, err := h.uc.GetDetails(c.Request().Context(), c.Param("paymentId"))
	if err != nil {
		return writeErr(c, err)
	}
	return ok(c, http.StatusOK, p)
}

func (h *PaymentHandler) Upcoming(c echo.Context) error {
	who, found := middleware.ActorFrom(c)
	if !found {
		return unauthorized(c)
	}
	list, err := h.uc.UpcomingForActor(c.Request().Context(), who)
	if err != nil {
		return writeErr(c, err)
	}
	return ok(c, http.StatusOK, list)
}
