package handler

import (
    "context"
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/coworking-reservation/internal/model"
    "github.com/iliyamo/coworking-reservation/internal/repository"
)

// ListReservations handles GET /v1/admin/reservations with optional
// room_id, user_id, date and status query filters.
func (h *AdminHandler) ListReservations(c echo.Context) error {
    var roomID, userID uint64
    if s := c.QueryParam("room_id"); s != "" {
        n, err := strconv.ParseUint(s, 10, 64)
        if err != nil || n == 0 {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room_id"})
        }
        roomID = n
    }
    if s := c.QueryParam("user_id"); s != "" {
        n, err := strconv.ParseUint(s, 10, 64)
        if err != nil || n == 0 {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user_id"})
        }
        userID = n
    }
    status := c.QueryParam("status")
    switch status {
    case "", model.ReservationStatusPending, model.ReservationStatusConfirmed, model.ReservationStatusCancelled:
    default:
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid status"})
    }

    details, err := h.Reservations.ListDetails(c.Request().Context(), roomID, userID, c.QueryParam("date"), status)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"reservations": reservationDetailViews(details)})
}

// ConfirmReservation handles POST /v1/admin/reservations/:id/confirm.
// Only a pending reservation can be confirmed.
func (h *AdminHandler) ConfirmReservation(c echo.Context) error {
    return h.transitionReservation(c, h.Reservations.Confirm, "only pending reservations can be confirmed")
}

// CancelReservation handles POST /v1/admin/reservations/:id/cancel.
func (h *AdminHandler) CancelReservation(c echo.Context) error {
    return h.transitionReservation(c, h.Reservations.Cancel, "reservation already cancelled")
}

// transitionReservation applies a status transition and maps the
// repository sentinels onto HTTP responses.
func (h *AdminHandler) transitionReservation(c echo.Context, apply func(context.Context, uint64) error, conflictMsg string) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
    }
    ctx := c.Request().Context()
    if err := apply(ctx, id); err != nil {
        switch err {
        case repository.ErrReservationNotFound:
            return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
        case repository.ErrBadTransition:
            return c.JSON(http.StatusConflict, echo.Map{"error": conflictMsg})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "transition failed"})
    }
    res, err := h.Reservations.GetByID(ctx, id)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, newReservationView(res))
}

// DeleteReservation handles DELETE /v1/admin/reservations/:id.  Hard
// delete; customers cancel instead.
func (h *AdminHandler) DeleteReservation(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
    }
    if err := h.Reservations.Delete(c.Request().Context(), id); err != nil {
        if err == repository.ErrReservationNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "reservation not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    return c.NoContent(http.StatusNoContent)
}
