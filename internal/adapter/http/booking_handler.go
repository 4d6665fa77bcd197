package http

import (
	"net/http"
	"time"

	"rentease-backend/internal/adapter/middleware"
	"rentease-backend/internal/usecase/booking"
	"rentease-backend/internal/usecase/leasedraft"

	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	uc     *booking.Service
	drafts *leasedraft.Engine
}

func NewBookingHandler(uc *booking.Service, drafts *leasedraft.Engine) *BookingHandler {
	return &BookingHandler{uc: uc, drafts: drafts}
}

type createBookingReq struct {
	PropertyID      string  `json:"property_id"      validate:"required,hex32"`
	StartDate       string  `json:"start_date"       validate:"required,datetime=2006-01-02"`
	EndDate         string  `json:"end_date"         validate:"required,datetime=2006-01-02"`
	MonthlyRent     float64 `json:"monthly_rent"     validate:"required,gt=0,dec2"`
	SecurityDeposit float64 `json:"security_deposit" validate:"required,gt=0,dec2"`
	Message         string  `json:"message"`
}

func (h *BookingHandler) Create(c echo.Context) error {
	who, found := middleware.ActorFrom(c)
	if !found {
		return unauthorized(c)
	}
	var req createBookingReq
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
	b, err := h.uc.Book(c.Request().Context(), who, booking.BookInput{
		PropertyID:      req.PropertyID,
		StartDate:       start,
		EndDate:         end,
		MonthlyRent:     req.MonthlyRent,
		SecurityDeposit: req.SecurityDeposit,
		Message:         req.Message,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return okMsg(c, http.StatusCreated, "booking created, payment pending", b)
}

type verifyPaymentReq struct {
	OrderID   string `json:"order_id"   validate:"required"`
	PaymentID string `json:"payment_id" validate:"required"`
	Signature string `json:"signature"  validate:"required"`
}

func (h *BookingHandler) VerifyPayment(c echo.Context) error {
	who, found := middleware.ActorFrom(c)
	if !found {
		return unauthorized(c)
	}
	var req verifyPaymentReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	b, err := h.uc.VerifyPaymentAndActivate(c.Request().Context(), who, c.Param("bookingId"), req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		return writeErr(c, err)
	}
	return okMsg(c, http.StatusOK, "payment verified, booking confirmed", b)
}

func (h *BookingHandler) Cancel(c echo.Context) error {
	who, found := middleware.ActorFrom(c)
	if !found {
		return unauthorized(c)
	}
	var req cancelReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	b, err := h.uc.Cancel(c.Request().Context(), who, c.Param("id"), req.Reason)
	if err != nil {
		return writeErr(c, err)
	}
	return okMsg(c, http.StatusOK, "booking cancelled", b)
}

type updateBookingReq struct {
	Status string `json:"status" validate:"required"`
}

func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	who, found := middleware.ActorFrom(c)
	if !found {
		return unauthorized(c)
	}
	var req updateBookingReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	b, err := h.uc.UpdateStatus(c.Request().Context(), who, c.Param("id"), req.Status)
	if err != nil {
		return writeErr(c, err)
	}
	return okMsg(c, http.StatusOK, "booking status updated", b)
}

func (h *BookingHandler) Get(c echo.Context) error {
	b, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeErr(c, err)
	}
	return ok(c, http.StatusOK, b)
}

func (h *BookingHandler) List(c echo.Context) error {
	list, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	return ok(c, http.StatusOK, list)
}

type leaseDraftReq struct {
	PropertyID      string  `json:"property_id"      validate:"required,hex32"`
	StartDate       string  `json:"start_date"       validate:"required,datetime=2006-01-02"`
	EndDate         string  `json:"end_date"         validate:"required,datetime=2006-01-02"`
	RentAmount      float64 `json:"rent_amount"      validate:"required,gt=0,dec2"`
	SecurityDeposit float64 `json:"security_deposit" validate:"gte=0,dec2"`
	MaintenanceFee  float64 `json:"maintenance_fee"  validate:"gte=0,dec2"`
}

// LeaseDraft returns an advisory draft without creating a booking.
func (h *BookingHandler) LeaseDraft(c echo.Context) error {
	who, found := middleware.ActorFrom(c)
	if !found {
		return unauthorized(c)
	}
	var req leaseDraftReq
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
	d, err := h.drafts.Generate(c.Request().Context(), req.PropertyID, who.ID, start, end, leasedraft.Terms{
		RentAmount:      req.RentAmount,
		SecurityDeposit: req.SecurityDeposit,
		MaintenanceFee:  req.MaintenanceFee,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return ok(c, http.StatusOK, d)
}
