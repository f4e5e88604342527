package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/coworking-reservation/internal/model"
    "github.com/iliyamo/coworking-reservation/internal/repository"
)

type companyReq struct {
    Name       string  `json:"name"`
    Address    string  `json:"address"`
    City       string  `json:"city"`
    Country    string  `json:"country"`
    PostalCode string  `json:"postal_code"`
    Phone      string  `json:"phone"`
    Email      string  `json:"email"`
    Website    *string `json:"website"`
}

func (r *companyReq) validate() string {
    r.Name = strings.TrimSpace(r.Name)
    r.Address = strings.TrimSpace(r.Address)
    r.City = strings.TrimSpace(r.City)
    r.Country = strings.TrimSpace(r.Country)
    r.Email = strings.ToLower(strings.TrimSpace(r.Email))
    switch {
    case r.Name == "":
        return "name required"
    case r.Address == "":
        return "address required"
    case r.City == "":
        return "city required"
    case r.Country == "":
        return "country required"
    case r.Email == "":
        return "email required"
    }
    return ""
}

// CreateCompany handles POST /v1/admin/companies.  The creating
// administrator becomes the company's owner of record.
func (h *AdminHandler) CreateCompany(c echo.Context) error {
    userID, err := getUserID(c)
    if err != nil {
        return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
    }
    var req companyReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if msg := req.validate(); msg != "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
    }

    co := model.Company{
        UserID:     userID,
        Name:       req.Name,
        Address:    req.Address,
        City:       req.City,
        Country:    req.Country,
        PostalCode: req.PostalCode,
        Phone:      req.Phone,
        Email:      req.Email,
        Website:    req.Website,
    }
    if err := h.Companies.Create(c.Request().Context(), &co); err != nil {
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create company failed"})
    }
    return c.JSON(http.StatusCreated, newCompanyView(co))
}

// UpdateCompany handles PUT /v1/admin/companies/:id.
func (h *AdminHandler) UpdateCompany(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid company id"})
    }
    var req companyReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if msg := req.validate(); msg != "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
    }

    ctx := c.Request().Context()
    co, err := h.Companies.GetByID(ctx, id)
    if err != nil {
        if err == repository.ErrCompanyNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "company not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }

    co.Name = req.Name
    co.Address = req.Address
    co.City = req.City
    co.Country = req.Country
    co.PostalCode = req.PostalCode
    co.Phone = req.Phone
    co.Email = req.Email
    co.Website = req.Website
    if err := h.Companies.Update(ctx, &co); err != nil {
        if err == repository.ErrCompanyNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "company not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    return c.JSON(http.StatusOK, newCompanyView(co))
}

// DeleteCompany handles DELETE /v1/admin/companies/:id.  Rooms and
// their reservations go with it via ON DELETE CASCADE.
func (h *AdminHandler) DeleteCompany(c echo.Context) error {
    id, err := pathID(c)
    if err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid company id"})
    }
    if err := h.Companies.Delete(c.Request().Context(), id); err != nil {
        if err == repository.ErrCompanyNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "company not found"})
        }
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
    }
    return c.NoContent(http.StatusNoContent)
}
