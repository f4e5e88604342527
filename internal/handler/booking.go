package handler

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/coworking-reservation/internal/booking"
    "github.com/iliyamo/coworking-reservation/internal/payment"
    "github.com/iliyamo/coworking-reservation/internal/repository"
)

// BookingHandler exposes the reservation flow over HTTP.  One request
// drives a full booking attempt through the state machine: select the
// interval, run the availability check, take the simulated payment and
// submit.  The backend repeats the overlap check inside the insert
// transaction, so a 409 can still come back even after the advisory
// check passed.
type BookingHandler struct {
    Backend booking.Backend
}

func NewBookingHandler(backend booking.Backend) *BookingHandler {
    if backend == nil {
        panic("nil backend passed to NewBookingHandler")
    }
    return &BookingHandler{Backend: backend}
}

type createReservationReq struct {
    Date      string       `json:"date"`       // YYYY-MM-DD
    StartTime string       `json:"start_time"` // HH:MM
    EndTime   string       `json:"end_time"`   // HH:MM
    Card      payment.Card `json:"card"`
}

// Create handles POST /v1/rooms/:id/reservations.
func (h *BookingHandler) Create(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    roomID, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
    }
    var req createReservationReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
    }

    ctx := c.Request().Context()
    flow := booking.NewFlow(h.Backend, userID)

    if err := flow.SelectInterval(ctx, roomID, req.Date, req.StartTime, req.EndTime); err != nil {
        if errors.Is(err, repository.ErrRoomNotFound) {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
        }
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }

    if err := flow.ProceedToPayment(ctx); err != nil {
        return bookingError(c, err)
    }

    created, err := flow.SubmitPayment(ctx, req.Card)
    if err != nil {
        switch {
        case errors.Is(err, payment.ErrCardNumber),
            errors.Is(err, payment.ErrExpiry),
            errors.Is(err, payment.ErrCVV):
            return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
        }
        return bookingError(c, err)
    }
    return c.JSON(http.StatusCreated, newReservationView(created))
}

// bookingError maps flow errors onto HTTP responses.  Conflicts carry
// the occupied ranges so the client can show them in the picker.
func bookingError(c echo.Context, err error) error {
    var conflict *booking.ConflictError
    switch {
    case errors.As(err, &conflict):
        return c.JSON(http.StatusConflict, echo.Map{
            "error":     "room already reserved in the selected interval",
            "conflicts": conflict.Ranges,
        })
    case errors.Is(err, booking.ErrNotAuthenticated):
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": err.Error()})
    case errors.Is(err, booking.ErrRoomNotBookable):
        return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
    case errors.Is(err, booking.ErrAvailabilityCheck):
        return c.JSON(http.StatusServiceUnavailable, echo.Map{"error": err.Error()})
    case errors.Is(err, booking.ErrNoInterval), errors.Is(err, booking.ErrPaymentNotReady):
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }
    return c.JSON(http.StatusInternalServerError, echo.Map{"error": "reservation failed"})
}
