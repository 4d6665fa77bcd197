package http

import (
	"net/http"
	"time"

	"rentease-backend/internal/adapter/middleware"
	"rentease-backend/internal/usecase/visit"

	"github.com/labstack/echo/v4"
)

type VisitHandler struct{ uc *visit.Service }

func NewVisitHandler(uc *visit.Service) *VisitHandler { return &VisitHandler{uc: uc} }

const dateLayout = "2006-01-02"

type scheduleVisitReq struct {
	PropertyID string `json:"property_id" validate:"required,hex32"`
	VisitDate  string `json:"visit_date"  validate:"required,datetime=2006-01-02"`
	VisitTime  string `json:"visit_time"  validate:"required,clock"`
	Message    string `json:"message"`
}

func (h *VisitHandler) Schedule(c echo.Context) error {
	who, found := middleware.ActorFrom(c)
	if !found {
		return unauthorized(c)
	}
	var req scheduleVisitReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	date, _ := time.Parse(dateLayout, req.VisitDate)
	v, err := h.uc.Schedule(c.Request().Context(), who, visit.ScheduleInput{
		PropertyID: req.PropertyID,
		VisitDate:  date,
		VisitTime:  req.VisitTime,
		Message:    req.Message,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return okMsg(c, http.StatusCreated, "visit scheduled", v)
}

type rescheduleVisitReq struct {
	VisitDate string `json:"visit_date" validate:"required,datetime=2006-01-02"`
	VisitTime string `json:"visit_time" validate:"required,clock"`
}

func (h *VisitHandler) Reschedule(c echo.Context) error {
	who, found := middleware.ActorFrom(c)
	if !found {
		return unauthorized(c)
	}
	var req rescheduleVisitReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	date, _ := time.Parse(dateLayout, req.VisitDate)
	v, err := h.uc.Reschedule(c.Request().Context(), who, c.Param("id"), date, req.VisitTime)
	if err != nil {
		return writeErr(c, err)
	}
	return okMsg(c, http.StatusOK, "visit rescheduled", v)
}

type cancelReq struct {
	Reason string `json:"reason"`
}

func (h *VisitHandler) Cancel(c echo.Context) error {
	who, found := middleware.ActorFrom(c)
	if !found {
		return unauthorized(c)
	}
	var req cancelReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	v, err := h.uc.Cancel(c.Request().Context(), who, c.Param("id"), req.Reason)
	if err != nil {
		return writeErr(c, err)
	}
	return okMsg(c, http.StatusOK, "visit cancelled", v)
}

func (h *VisitHandler) Confirm(c echo.Context) error {
	who, found := middleware.ActorFrom(c)
	if !found {
		return unauthorized(c)
	}
	v, err := h.uc.Confirm(c.Request().Context(), who, c.Param("visitId"))
	if err != nil {
		return writeErr(c, err)
	}
	return okMsg(c, http.StatusOK, "visit confirmed", v)
}

func (h *VisitHandler) Reject(c echo.Context) error {
	who, found := middleware.ActorFrom(c)
	if !found {
		return unauthorized(c)
	}
	var req cancelReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	v, err := h.uc.Reject(c.Request().Context(), who, c.Param("visitId"), req.Reason)
	if err != nil {
		return writeErr(c, err)
	}
	return okMsg(c, http.StatusOK, "visit rejected", v)
}

func (h *VisitHandler) Delete(c echo.Context) error {
	who, found := middleware.ActorFrom(c)
	if !found {
		return unauthorized(c)
	}
	if err := h.uc.DeletePermanently(c.Request().Context(), who, c.Param("id")); err != nil {
		return writeErr(c, err)
	}
	return okMsg(c, http.StatusOK, "visit deleted", nil)
}

func (h *VisitHandler) Get(c echo.Context) error {
	v, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeErr(c, err)
	}
	return ok(c, http.StatusOK, v)
}

func (h *VisitHandler) ListByTenant(c echo.Context) error {
	list, err := h.uc.ListByTenant(c.Request().Context(), c.Param("tenantId"))
	if err != nil {
		return writeErr(c, err)
	}
	return ok(c, http.StatusOK, list)
}
