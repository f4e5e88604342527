package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"
    "github.com/shopspring/decimal"

    "github.com/iliyamo/coworking-reservation/internal/model"
    "github.com/iliyamo/coworking-reservation/internal/repository"
)

type roomReq struct {
    Name        string  `json:"name"`
    Capacity    uint32  `json:"capacity"`
    Status      string  `json:"status"`
    Description *string `json:"description"`
    Equipment   *string `json:"equipment"`
    Location    *string `json:"location"`
    HourlyPrice *string `json:"hourly_price"`
}

// validate normalizes the request in place and returns an error message
// for the client, or "" when the payload is acceptable.  The hourly
// price must be a non-negative decimal; it is re-rendered with two
// fraction digits so "12.5" and "12.50" store identically.
func (r *roomReq) validate() string {
    r.Name = strings.TrimSpace(r.Name)
    if r.Name == "" {
        return "name required"
    }
    if r.Capacity == 0 {
        return "capacity must be positive"
    }
    if r.Status == "" {
        r.Status = model.RoomStatusAvailable
    }
    switch r.Status {
    case model.RoomStatusAvailable, model.RoomStatusMaintenance, model.RoomStatusUnavailable:
    default:
        return "status must be available, maintenance or unavailable"
    }
    if r.HourlyPrice != nil {
        s := strings.TrimSpace(*r.HourlyPrice)
        if s == "" {
            r.HourlyPrice = nil
        } else {
            d, err := decimal.NewFromString(s)
            if err != nil || d.IsNegative() {
                return "hourly_price must be a non-negative decimal"
            }
            normalized := d.StringFixed(2)
            r.HourlyPrice = &normalized
        }
    }
    return ""
}

// CreateRoom handles POST /v1/admin/companies/:id/rooms.
func (h *AdminHandler) CreateRoom(c echo.Context) error {
    companyID, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid company id"})
    }
    var req roomReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if msg := req.validate(); msg != "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
    }

    ctx := c.Request().Context()
    if _, err := h.Companies.GetByID(ctx, companyID); err != nil {
        if err == repository.ErrCompanyNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "company not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }

    rm := model.Room{
        CompanyID:   companyID,
        Name:        req.Name,
        Capacity:    req.Capacity,
        Status:      req.Status,
        Description: req.Description,
        Equipment:   req.Equipment,
        Location:    req.Location,
        HourlyPrice: req.HourlyPrice,
    }
    if err := h.Rooms.Create(ctx, &rm); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create room failed"})
    }
    return c.JSON(http.StatusCreated, newRoomView(rm))
}

// UpdateRoom handles PUT /v1/admin/rooms/:id.
func (h *AdminHandler) UpdateRoom(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
    }
    var req roomReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if msg := req.validate(); msg != "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
    }

    ctx := c.Request().Context()
    rm, err := h.Rooms.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrRoomNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }

    rm.Name = req.Name
    rm.Capacity = req.Capacity
    rm.Status = req.Status
    rm.Description = req.Description
    rm.Equipment = req.Equipment
    rm.Location = req.Location
    rm.HourlyPrice = req.HourlyPrice
    if err := h.Rooms.Update(ctx, &rm); err != nil {
        if err == repository.ErrRoomNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    return c.JSON(http.StatusOK, newRoomView(rm))
}

// DeleteRoom handles DELETE /v1/admin/rooms/:id.  Existing reservations
// of the room are removed by ON DELETE CASCADE.
func (h *AdminHandler) DeleteRoom(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid room id"})
    }
    if err := h.Rooms.Delete(c.Request().Context(), id); err != nil {
        if err == repository.ErrRoomNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    return c.NoContent(http.StatusNoContent)
}
