package http

import (
	"github.com/labstack/echo/v4"
)

// Handlers groups everything the router needs.
type Handlers struct {
	Base     *Handler
	Property *PropertyHandler
	Visit    *VisitHandler
	Booking  *BookingHandler
	Payment  *PaymentHandler
	Lease    *LeaseHandler
}

// Register wires the route table. auth guards everything except
// /health; idem additionally guards the money-moving mutations.
func Register(e *echo.Echo, h Handlers, auth, idem echo.MiddlewareFunc) {
	e.GET("/health", h.Base.Health)

	g := e.Group("", auth)

	g.POST("/properties", h.Property.Create)
	g.PUT("/properties/:id/status", h.Property.SetStatus)
	g.GET("/properties/available", h.Property.FindAvailable)
	g.GET("/properties/:id", h.Property.Get)

	g.POST("/visit/schedule", h.Visit.Schedule)
	g.PUT("/visit/reschedule/:id", h.Visit.Reschedule)
	g.PUT("/visit/cancel/:id", h.Visit.Cancel)
	g.PUT("/visit-properties/confirm/:visitId", h.Visit.Confirm)
	g.PUT("/visit-properties/reject/:visitId", h.Visit.Reject)
	g.DELETE("/visit/:id", h.Visit.Delete)
	g.GET("/visit/tenant/:tenantId", h.Visit.ListByTenant)
	g.GET("/visit/:id", h.Visit.Get)

	g.POST("/book/new", h.Booking.Create, idem)
	g.PUT("/book/verify-payment/:bookingId", h.Booking.VerifyPayment, idem)
	g.PUT("/book/update/:id", h.Booking.UpdateStatus)
	g.PUT("/book/cancel/:id", h.Booking.Cancel)
	g.POST("/book/lease-draft", h.Booking.LeaseDraft)
	g.GET("/book/:id", h.Booking.Get)
	g.GET("/book", h.Booking.List)

	g.POST("/payments/create-order", h.Payment.CreateOrder, idem)
	g.POST("/payments/verify", h.Payment.Verify, idem)
	g.GET("/payments/upcoming", h.Payment.Upcoming)
	g.GET("/payments/:paymentId", h.Payment.Get)

	g.POST("/leases/:id/sign", h.Lease.Sign)
	g.PUT("/leases/:id/renew", h.Lease.Renew)
	g.POST("/leases/:id/terminate", h.Lease.Terminate)
	g.GET("/leases/expiring", h.Lease.Expiring)
	g.GET("/leases", h.Lease.ListByActor)
	g.GET("/leases/:id", h.Lease.Get)
}
