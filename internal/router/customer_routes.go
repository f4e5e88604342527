package router

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/coworking-reservation/internal/handler"
    "github.com/iliyamo/coworking-reservation/internal/middleware"
    "github.com/iliyamo/coworking-reservation/internal/model"
)

// RegisterCustomer registers the booking endpoints under /v1.  All
// routes require a valid JWT; both regular users and administrators
// can book rooms and manage their own reservations.
func RegisterCustomer(e *echo.Echo, b *handler.BookingHandler, h *handler.CustomerHandler, jwtSecret string) {
    g := e.Group(
        "/v1",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole(model.RoleUser, model.RoleAdmin),
    )
    // One request drives the whole booking attempt: interval selection,
    // availability check, simulated payment and submission.
    g.POST("/rooms/:id/reservations", b.Create)

    g.GET("/reservations", h.ListMine)
    g.GET("/reservations/:id", h.GetMine)
    g.POST("/reservations/:id/cancel", h.CancelMine)
}
