package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/coworking-reservation/internal/repository"
)

// CustomerHandler lets an authenticated user inspect and cancel their
// own reservations.  Creation goes through BookingHandler; everything
// here enforces ownership before touching a row.
type CustomerHandler struct {
    Reservations *repository.ReservationRepo
}

func NewCustomerHandler(rs *repository.ReservationRepo) *CustomerHandler {
    if rs == nil {
        panic("nil repository passed to NewCustomerHandler")
    }
    return &CustomerHandler{Reservations: rs}
}

// ListMine handles GET /v1/reservations: the caller's reservations with
// room details, newest first.
func (h *CustomerHandler) ListMine(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    details, err := h.Reservations.ListDetailsByUser(c.Request().Context(), userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"reservations": reservationDetailViews(details)})
}

// GetMine handles GET /v1/reservations/:id.  A reservation belonging to
// another user answers 404, not 403, so ids cannot be probed.
func (h *CustomerHandler) GetMine(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
    }
    res, err := h.Reservations.GetByID(c.Request().Context(), id)
    if err != nil {
        if err == repository.ErrReservationNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    if res.UserID != userID {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
    }
    return c.JSON(http.StatusOK, newReservationView(res))
}

// CancelMine handles POST /v1/reservations/:id/cancel.  Pending and
// confirmed reservations can be cancelled; cancelling twice is a 409.
func (h *CustomerHandler) CancelMine(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
    }

    ctx := c.Request().Context()
    res, err := h.Reservations.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrReservationNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    if res.UserID != userID {
        return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
    }

    if err := h.Reservations.Cancel(ctx, id); err != nil {
        switch err {
        case repository.ErrReservationNotFound:
            return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
        case repository.ErrBadTransition:
            return c.JSON(http.StatusConflict, echo.Map{"error": "reservation already cancelled"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cancel failed"})
    }
    updated, err := h.Reservations.GetByID(ctx, id)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, newReservationView(updated))
}
