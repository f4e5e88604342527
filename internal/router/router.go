package router // package router defines how HTTP routes are registered for the API

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/coworking-reservation/internal/handler"
    "github.com/iliyamo/coworking-reservation/internal/middleware"
    "github.com/iliyamo/coworking-reservation/internal/model"
)

// RegisterRoutes registers routes that require no authentication at
// all.  Currently that is only the health check.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/healthz", handler.Health)
}

// RegisterAuth registers authentication and profile routes.  Session
// operations (register, login, refresh, logout) live under /v1/auth
// and need no token; the profile endpoints live under /v1 behind the
// JWT middleware and accept both roles.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
    g := e.Group("/v1/auth")
    g.POST("/register", a.Register)
    g.POST("/login", a.Login)
    // Rotates the refresh token.
    g.POST("/refresh", a.Refresh)
    // Issues a new access token without rotating the refresh token.
    g.POST("/refresh-access", a.RefreshAccess)
    // Logout works without the JWT middleware: a bearer token revokes
    // all sessions, a refresh_token in the body revokes one.
    g.POST("/logout", a.Logout)

    auth := e.Group("/v1",
        middleware.JWTAuth(jwtSecret),
        middleware.RequireRole(model.RoleUser, model.RoleAdmin),
    )
    auth.GET("/me", a.Me)
    auth.PUT("/me", a.UpdateProfile)
}

// RegisterPublic registers the unauthenticated browse endpoints:
// companies, rooms, the slot domain and the availability check.  The
// caller passes the response-cache and rate-limit middleware so guests
// hammering the picker hit Redis, not MySQL.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, mws ...echo.MiddlewareFunc) {
    g := e.Group("/v1", mws...)
    g.GET("/companies", p.ListCompanies)
    g.GET("/companies/:id", p.GetCompany)
    g.GET("/rooms", p.ListRooms)
    g.GET("/rooms/:id", p.GetRoom)
    g.GET("/rooms/:id/slots", p.RoomSlots)
    g.GET("/rooms/:id/availability", p.RoomAvailability)
}
