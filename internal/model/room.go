package model

import "time"

// Room status values.  Only rooms in StatusAvailable accept new
// reservations; the other two states are set by administrators.
const (
    RoomStatusAvailable   = "available"
    RoomStatusMaintenance = "maintenance"
    RoomStatusUnavailable = "unavailable"
)

// Room describes a bookable space inside a company's premises.
// Rooms are priced per hour; the price is optional and stored as a
// decimal string so that no precision is lost on the wire.
//
// Fields:
//  ID          – primary key identifier.
//  CompanyID   – company that owns the room.
//  Name        – room name, unique per company.
//  Capacity    – number of people the room holds.
//  Status      – availability status (available, maintenance, unavailable).
//  Description – optional free-form description.
//  Equipment   – optional comma separated equipment list.
//  Location    – optional floor/building hint inside the premises.
//  HourlyPrice – price per hour as a decimal string (nil when unpriced).
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type Room struct {
    ID          uint64    // rooms.id
    CompanyID   uint64    // rooms.company_id
    Name        string    // rooms.name
    Capacity    uint32    // rooms.capacity
    Status      string    // rooms.status
    Description *string   // rooms.description (nullable)
    Equipment   *string   // rooms.equipment (nullable)
    Location    *string   // rooms.location (nullable)
    HourlyPrice *string   // rooms.hourly_price (nullable, DECIMAL(10,2))
    CreatedAt   time.Time // rooms.created_at
    UpdatedAt   time.Time // rooms.updated_at
}

// Bookable reports whether new reservations may target this room.
func (r Room) Bookable() bool { return r.Status == RoomStatusAvailable }
