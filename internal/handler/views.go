package handler

// views.go defines the JSON shapes returned to clients.  The model
// structs deliberately carry no json tags; handlers translate them into
// these views so the wire format is owned here and password hashes can
// never leak by accident.

import (
    "time"

    "github.com/iliyamo/coworking-reservation/internal/model"
    "github.com/iliyamo/coworking-reservation/internal/repository"
)

type userView struct {
    ID        uint64    `json:"id"`
    Email     string    `json:"email"`
    FullName  string    `json:"full_name"`
    Phone     *string   `json:"phone,omitempty"`
    Role      string    `json:"role"`
    IsActive  bool      `json:"is_active"`
    CreatedAt time.Time `json:"created_at"`
}

func newUserView(u model.User) userView {
    return userView{
        ID:        u.ID,
        Email:     u.Email,
        FullName:  u.FullName,
        Phone:     u.Phone,
        Role:      u.Role,
        IsActive:  u.IsActive,
        CreatedAt: u.CreatedAt,
    }
}

type companyView struct {
    ID         uint64    `json:"id"`
    UserID     uint64    `json:"user_id"`
    Name       string    `json:"name"`
    Address    string    `json:"address"`
    City       string    `json:"city"`
    Country    string    `json:"country"`
    PostalCode string    `json:"postal_code"`
    Phone      string    `json:"phone"`
    Email      string    `json:"email"`
    Website    *string   `json:"website,omitempty"`
    CreatedAt  time.Time `json:"created_at"`
}

func newCompanyView(co model.Company) companyView {
    return companyView{
        ID:         co.ID,
        UserID:     co.UserID,
        Name:       co.Name,
        Address:    co.Address,
        City:       co.City,
        Country:    co.Country,
        PostalCode: co.PostalCode,
        Phone:      co.Phone,
        Email:      co.Email,
        Website:    co.Website,
        CreatedAt:  co.CreatedAt,
    }
}

type roomView struct {
    ID          uint64    `json:"id"`
    CompanyID   uint64    `json:"company_id"`
    Name        string    `json:"name"`
    Capacity    uint32    `json:"capacity"`
    Status      string    `json:"status"`
    Description *string   `json:"description,omitempty"`
    Equipment   *string   `json:"equipment,omitempty"`
    Location    *string   `json:"location,omitempty"`
    HourlyPrice *string   `json:"hourly_price,omitempty"`
    CreatedAt   time.Time `json:"created_at"`
}

func newRoomView(rm model.Room) roomView {
    return roomView{
        ID:          rm.ID,
        CompanyID:   rm.CompanyID,
        Name:        rm.Name,
        Capacity:    rm.Capacity,
        Status:      rm.Status,
        Description: rm.Description,
        Equipment:   rm.Equipment,
        Location:    rm.Location,
        HourlyPrice: rm.HourlyPrice,
        CreatedAt:   rm.CreatedAt,
    }
}

type reservationView struct {
    ID             uint64    `json:"id"`
    RoomID         uint64    `json:"room_id"`
    UserID         uint64    `json:"user_id"`
    Date           string    `json:"date"`
    StartTime      string    `json:"start_time"`
    EndTime        string    `json:"end_time"`
    Status         string    `json:"status"`
    TotalPrice     *string   `json:"total_price,omitempty"`
    PaymentStatus  *string   `json:"payment_status,omitempty"`
    PaymentMethod  *string   `json:"payment_method,omitempty"`
    CardLastDigits *string   `json:"card_last_digits,omitempty"`
    CreatedAt      time.Time `json:"created_at"`
}

func newReservationView(res model.Reservation) reservationView {
    return reservationView{
        ID:             res.ID,
        RoomID:         res.RoomID,
        UserID:         res.UserID,
        Date:           res.Date,
        StartTime:      res.StartTime,
        EndTime:        res.EndTime,
        Status:         res.Status,
        TotalPrice:     res.TotalPrice,
        PaymentStatus:  res.PaymentStatus,
        PaymentMethod:  res.PaymentMethod,
        CardLastDigits: res.CardLastDigits,
        CreatedAt:      res.CreatedAt,
    }
}

type reservationDetailView struct {
    reservationView
    RoomName        string  `json:"room_name"`
    RoomCompanyID   uint64  `json:"room_company_id"`
    RoomCapacity    uint32  `json:"room_capacity"`
    RoomHourlyPrice *string `json:"room_hourly_price,omitempty"`
}

func newReservationDetailView(d repository.Detail) reservationDetailView {
    return reservationDetailView{
        reservationView: newReservationView(d.Reservation),
        RoomName:        d.RoomName,
        RoomCompanyID:   d.RoomCompanyID,
        RoomCapacity:    d.RoomCapacity,
        RoomHourlyPrice: d.RoomHourlyPrice,
    }
}

func reservationDetailViews(ds []repository.Detail) []reservationDetailView {
    out := make([]reservationDetailView, 0, len(ds))
    for _, d := range ds {
        out = append(out, newReservationDetailView(d))
    }
    return out
}
