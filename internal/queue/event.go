// Package queue defines message payloads exchanged over the message broker.
package queue

// ReservationCreatedEvent is published when a reservation is successfully
// created and paid. It contains enough information for downstream consumers
// to log, notify, or trigger analytics without querying the primary database.
type ReservationCreatedEvent struct {
    ReservationID uint64  `json:"reservation_id"`
    RoomID        uint64  `json:"room_id"`
    RoomName      string  `json:"room_name"`
    UserID        uint64  `json:"user_id"`
    Date          string  `json:"date"`       // YYYY-MM-DD
    StartTime     string  `json:"start_time"` // HH:MM:SS
    EndTime       string  `json:"end_time"`   // HH:MM:SS
    TotalPrice    *string `json:"total_price,omitempty"`
    CreatedAt     string  `json:"created_at"` // RFC 3339
}
