package router

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/coworking-reservation/internal/handler"
    "github.com/iliyamo/coworking-reservation/internal/middleware"
    "github.com/iliyamo/coworking-reservation/internal/model"
)

// RegisterAdmin registers the admin console endpoints under
// /v1/admin.  All routes require a valid JWT and the ADMIN role.
func RegisterAdmin(e *echo.Echo, a *handler.AdminHandler, jwtSecret string) {
    g := e.Group(
        "/v1/admin",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole(model.RoleAdmin),
    )

    // ---- Users ----
    g.GET("/users", a.ListUsers)
    g.PUT("/users/:id", a.UpdateUser)
    g.DELETE("/users/:id", a.DeleteUser)

    // ---- Companies ----
    // Listing is served by the public browse API.
    g.POST("/companies", a.CreateCompany)
    g.PUT("/companies/:id", a.UpdateCompany)
    g.DELETE("/companies/:id", a.DeleteCompany)

    // ---- Rooms ----
    g.POST("/companies/:id/rooms", a.CreateRoom)
    g.PUT("/rooms/:id", a.UpdateRoom)
    g.DELETE("/rooms/:id", a.DeleteRoom)

    // ---- Reservations ----
    g.GET("/reservations", a.ListReservations)
    g.POST("/reservations/:id/confirm", a.ConfirmReservation)
    g.POST("/reservations/:id/cancel", a.CancelReservation)
    g.DELETE("/reservations/:id", a.DeleteReservation)
}
