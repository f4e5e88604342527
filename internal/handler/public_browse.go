package handler

import (
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/coworking-reservation/internal/repository"
    "github.com/iliyamo/coworking-reservation/internal/schedule"
)

// PublicHandler serves the unauthenticated browse surface: companies,
// rooms and the availability check a visitor runs before signing in to
// book.  These endpoints sit behind the response cache and the rate
// limiter.
type PublicHandler struct {
    Companies    *repository.CompanyRepo
    Rooms        *repository.RoomRepo
    Reservations *repository.ReservationRepo
}

func NewPublicHandler(co *repository.CompanyRepo, rm *repository.RoomRepo, rs *repository.ReservationRepo) *PublicHandler {
    if co == nil || rm == nil || rs == nil {
        panic("nil repository passed to NewPublicHandler")
    }
    return &PublicHandler{Companies: co, Rooms: rm, Reservations: rs}
}

// ListCompanies handles GET /v1/companies.
func (h *PublicHandler) ListCompanies(c echo.Context) error {
    companies, err := h.Companies.List(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    out := make([]companyView, 0, len(companies))
    for _, co := range companies {
        out = append(out, newCompanyView(co))
    }
    return c.JSON(http.StatusOK, echo.Map{"companies": out})
}

// GetCompany handles GET /v1/companies/:id and includes the company's
// rooms so a visitor can browse straight into one.
func (h *PublicHandler) GetCompany(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid company id"})
    }
    ctx := c.Request().Context()
    co, err := h.Companies.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrCompanyNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "company not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    rooms, err := h.Rooms.List(ctx, id, "")
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    roomViews := make([]roomView, 0, len(rooms))
    for _, rm := range rooms {
        roomViews = append(roomViews, newRoomView(rm))
    }
    return c.JSON(http.StatusOK, echo.Map{"company": newCompanyView(co), "rooms": roomViews})
}

// ListRooms handles GET /v1/rooms with optional company_id and status
// query filters.
func (h *PublicHandler) ListRooms(c echo.Context) error {
    var companyID uint64
    if s := c.QueryParam("company_id"); s != "" {
        n, err := strconv.ParseUint(s, 10, 64)
        if err != nil || n == 0 {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid company_id"})
        }
        companyID = n
    }
    status := c.QueryParam("status")

    rooms, err := h.Rooms.List(c.Request().Context(), companyID, status)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    out := make([]roomView, 0, len(rooms))
    for _, rm := range rooms {
        out = append(out, newRoomView(rm))
    }
    return c.JSON(http.StatusOK, echo.Map{"rooms": out})
}

// GetRoom handles GET /v1/rooms/:id.
func (h *PublicHandler) GetRoom(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
    }
    rm, err := h.Rooms.GetByID(c.Request().Context(), id)
    if err != nil {
        if err == repository.ErrRoomNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, newRoomView(rm))
}

// RoomSlots handles GET /v1/rooms/:id/slots.  It returns the half-hour
// start time domain and, when a start query parameter is present, the
// matching end time domain.  The picker UI renders directly from this.
func (h *PublicHandler) RoomSlots(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
    }
    if _, err := h.Rooms.GetByID(c.Request().Context(), id); err != nil {
        if err == repository.ErrRoomNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }

    resp := echo.Map{"start_times": schedule.StartTimes()}
    if start := c.QueryParam("start"); start != "" {
        ends, err := schedule.EndTimes(start)
        if err != nil {
            return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid start time"})
        }
        resp["end_times"] = ends
    }
    return c.JSON(http.StatusOK, resp)
}

// availabilityResp is the wire shape of an availability check.
type availabilityResp struct {
    RoomID        uint64  `json:"room_id"`
    Date          string  `json:"date"`
    StartTime     string  `json:"start_time"`
    EndTime       string  `json:"end_time"`
    DurationHours float64 `json:"duration_hours"`
    TotalPrice    *string `json:"total_price,omitempty"`
    Available     bool    `json:"available"`
    Conflicts     string  `json:"conflicts,omitempty"`
}

// RoomAvailability handles GET /v1/rooms/:id/availability.  Query
// parameters: date (YYYY-MM-DD), start and end (HH:MM).  The answer is
// advisory; the booking endpoint re-checks inside its transaction.
func (h *PublicHandler) RoomAvailability(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
    }
    cand, err := schedule.NewCandidate(id, c.QueryParam("date"), c.QueryParam("start"), c.QueryParam("end"))
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }

    ctx := c.Request().Context()
    rm, err := h.Rooms.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrRoomNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }

    hours, err := cand.DurationHours()
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
    }
    total, err := cand.PriceFor(rm.HourlyPrice)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "price computation failed"})
    }

    existing, err := h.Reservations.ListByRoom(ctx, id)
    if err != nil {
        // Never guess "available" when the check itself failed.
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "availability check failed"})
    }
    conflicts := schedule.FindConflicts(existing, cand.Date(), cand.Interval())

    iv := cand.Interval()
    resp := availabilityResp{
        RoomID:        id,
        Date:          cand.Date(),
        StartTime:     iv.Start,
        EndTime:       iv.End,
        DurationHours: hours,
        TotalPrice:    total,
        Available:     rm.Bookable() && len(conflicts) == 0,
    }
    if len(conflicts) > 0 {
        resp.Conflicts = schedule.FormatConflicts(conflicts)
    }
    return c.JSON(http.StatusOK, resp)
}
