package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/coworking-reservation/internal/model"
    "github.com/iliyamo/coworking-reservation/internal/repository"
)

// AdminHandler bundles the repositories the admin console manipulates.
// Every route using it sits behind RequireRole(ADMIN).
type AdminHandler struct {
    Users        *repository.UserRepo
    Companies    *repository.CompanyRepo
    Rooms        *repository.RoomRepo
    Reservations *repository.ReservationRepo
}

// NewAdminHandler constructs an AdminHandler and panics if any
// dependency is nil.
func NewAdminHandler(u *repository.UserRepo, co *repository.CompanyRepo, rm *repository.RoomRepo, rs *repository.ReservationRepo) *AdminHandler {
    if u == nil || co == nil || rm == nil || rs == nil {
        panic("nil repository passed to NewAdminHandler")
    }
    return &AdminHandler{Users: u, Companies: co, Rooms: rm, Reservations: rs}
}

// ListUsers handles GET /v1/admin/users.
func (h *AdminHandler) ListUsers(c echo.Context) error {
    users, err := h.Users.List(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    out := make([]userView, 0, len(users))
    for _, u := range users {
        out = append(out, newUserView(u))
    }
    return c.JSON(http.StatusOK, echo.Map{"users": out})
}

type adminUserReq struct {
    FullName string  `json:"full_name"`
    Phone    *string `json:"phone"`
    Role     string  `json:"role"`
    IsActive *bool   `json:"is_active"`
}

// UpdateUser handles PUT /v1/admin/users/:id.  Role changes and the
// active flag are admin-only operations.
func (h *AdminHandler) UpdateUser(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
    }
    var req adminUserReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.FullName = strings.TrimSpace(req.FullName)
    if req.FullName == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "full_name required"})
    }
    role := strings.ToUpper(strings.TrimSpace(req.Role))
    if role != model.RoleUser && role != model.RoleAdmin {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "role must be USER or ADMIN"})
    }
    active := true
    if req.IsActive != nil {
        active = *req.IsActive
    }

    ctx := c.Request().Context()
    if err := h.Users.AdminUpdate(ctx, id, req.FullName, req.Phone, role, active); err != nil {
        if err == repository.ErrUserNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    u, err := h.Users.GetByID(ctx, id)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, newUserView(u))
}

// DeleteUser handles DELETE /v1/admin/users/:id.  An administrator
// cannot delete their own account while logged into it.
func (h *AdminHandler) DeleteUser(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid user id"})
    }
    if self, err := getUserID(c); err == nil && self == id {
        return c.JSON(http.StatusConflict, echo.Map{"error": "cannot delete your own account"})
    }
    if err := h.Users.Delete(c.Request().Context(), id); err != nil {
        if err == repository.ErrUserNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    return c.NoContent(http.StatusNoContent)
}
