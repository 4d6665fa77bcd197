package http

import (
	"net/http"
	"strconv"
	"time"

	"rentease-backend/internal/adapter/middleware"
	"rentease-backend/internal/usecase/lease"

	"github.com/labstack/echo/v4"
)

type LeaseHandler struct{ uc *lease.Service }

func NewLeaseHandler(uc *lease.Service) *LeaseHandler { return &LeaseHandler{uc: uc} }

type signLeaseReq struct {
	Signature string `json:"signature" validate:"required"`
}

func (h *LeaseHandler) Sign(c echo.Context) error {
	who, found := middleware.ActorFrom(c)
	if !found {
		return unauthorized(c)
	}
	var req signLeaseReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	l, err := h.uc.Sign(c.Request().Context(), who, c.Param("id"), req.Signature)
	if err != nil {
		return writeErr(c, err)
	}
	msg := "signature recorded"
	if l.FullySigned() {
		msg = "lease fully signed and active"
	}
	return okMsg(c, http.StatusOK, msg, l)
}

type renewLeaseReq struct {
	StartDate  string  `json:"start_date"  validate:"required,datetime=2006-01-02"`
	EndDate    string  `json:"end_date"    validate:"required,datetime=2006-01-02"`
	RentAmount float64 `json:"rent_amount" validate:"gte=0,dec2"`
}

func (h *LeaseHandler) Renew(c echo.Context) error {
	who, found := middleware.ActorFrom(c)
	if !found {
		return unauthorized(c)
	}
	var req renewLeaseReq
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
	l, err := h.uc.Renew(c.Request().Context(), who, c.Param("id"), lease.RenewInput{
		StartDate:  start,
		EndDate:    end,
		RentAmount: req.RentAmount,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return okMsg(c, http.StatusCreated, "renewal drafted, signatures pending", l)
}

func (h *LeaseHandler) Terminate(c echo.Context) error {
	who, found := middleware.ActorFrom(c)
	if !found {
		return unauthorized(c)
	}
	var req cancelReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	l, err := h.uc.Terminate(c.Request().Context(), who, c.Param("id"), req.Reason)
	if err != nil {
		return writeErr(c, err)
	}
	return okMsg(c, http.StatusOK, "lease terminated", l)
}

func (h *LeaseHandler) Get(c echo.Context) error {
	l, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeErr(c, err)
	}
	return ok(c, http.StatusOK, l)
}

func (h *LeaseHandler) ListByActor(c echo.Context) error {
	who, found := middleware.ActorFrom(c)
	if !found {
		return unauthorized(c)
	}
	list, err := h.uc.ListByActor(c.Request().Context(), who)
	if err != nil {
		return writeErr(c, err)
	}
	return ok(c, http.StatusOK, list)
}

func (h *LeaseHandler) Expiring(c echo.Context) error {
	days := 30
	if raw := c.QueryParam("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return badRequest(c, "days must be an integer")
		}
		days = n
	}
	list, err := h.uc.ExpiringWithin(c.Request().Context(), days)
	if err != nil {
		return writeErr(c, err)
	}
	return ok(c, http.StatusOK, list)
}
