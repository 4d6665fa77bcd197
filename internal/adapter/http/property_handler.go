package http

import (
	"net/http"
	"strconv"

	"rentease-backend/internal/adapter/middleware"
	propertydomain "rentease-backend/internal/domain/property"
	"rentease-backend/internal/usecase/property"

	"github.com/labstack/echo/v4"
)

type PropertyHandler struct{ uc *property.Service }

func NewPropertyHandler(uc *property.Service) *PropertyHandler { return &PropertyHandler{uc: uc} }

type createPropertyReq struct {
	Title    string  `json:"title"    validate:"required"`
	Location string  `json:"location" validate:"required"`
	Price    float64 `json:"price"    validate:"required,gt=0,dec2"`
	Status   string  `json:"status"`
}

func (h *PropertyHandler) Create(c echo.Context) error {
	who, found := middleware.ActorFrom(c)
	if !found {
		return unauthorized(c)
	}
	var req createPropertyReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	p, err := h.uc.Create(c.Request().Context(), who, property.CreateInput(req))
	if err != nil {
		return writeErr(c, err)
	}
	return okMsg(c, http.StatusCreated, "property listed", p)
}

func (h *PropertyHandler) Get(c echo.Context) error {
	p, err := h.uc.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeErr(c, err)
	}
	return ok(c, http.StatusOK, p)
}

func (h *PropertyHandler) FindAvailable(c echo.Context) error {
	f := propertydomain.Filter{Location: c.QueryParam("location")}
	if raw := c.QueryParam("max_price"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v < 0 {
			return badRequest(c, "max_price must be a non-negative number")
		}
		f.MaxPrice = v
	}
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return badRequest(c, "limit must be a non-negative integer")
		}
		f.Limit = n
	}
	list, err := h.uc.FindAvailable(c.Request().Context(), f)
	if err != nil {
		return writeErr(c, err)
	}
	return ok(c, http.StatusOK, list)
}

type setStatusReq struct {
	Status string `json:"status" validate:"required"`
}

func (h *PropertyHandler) SetStatus(c echo.Context) error {
	who, found := middleware.ActorFrom(c)
	if !found {
		return unauthorized(c)
	}
	var req setStatusReq
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid body")
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	p, err := h.uc.SetStatus(c.Request().Context(), who, c.Param("id"), req.Status)
	if err != nil {
		return writeErr(c, err)
	}
	return okMsg(c, http.StatusOK, "property status updated", p)
}
