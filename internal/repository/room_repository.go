package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/iliyamo/coworking-reservation/internal/model"
)

// ErrRoomNotFound is returned when a room lookup fails.
var ErrRoomNotFound = errors.New("room not found")

// RoomRepo provides access to the rooms table.  The hourly price is a
// DECIMAL column surfaced as a string so no precision is lost between
// the database and the wire.
type RoomRepo struct{ DB *sql.DB }

func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{DB: db} }

const roomColumns = "id,company_id,name,capacity,status,description,equipment,location,hourly_price,created_at,updated_at"

func scanRoom(row interface{ Scan(...any) error }) (model.Room, error) {
    var rm model.Room
    var description, equipment, location, price sql.NullString
    err := row.Scan(&rm.ID, &rm.CompanyID, &rm.Name, &rm.Capacity, &rm.Status,
        &description, &equipment, &location, &price, &rm.CreatedAt, &rm.UpdatedAt)
    if description.Valid {
        v := description.String
        rm.Description = &v
    }
    if equipment.Valid {
        v := equipment.String
        rm.Equipment = &v
    }
    if location.Valid {
        v := location.String
        rm.Location = &v
    }
    if price.Valid {
        v := price.String
        rm.HourlyPrice = &v
    }
    return rm, err
}

// Create inserts a room and populates its generated ID, defaults and
// timestamps on the provided struct.
func (r *RoomRepo) Create(ctx context.Context, rm *model.Room) error {
    res, err := r.DB.ExecContext(ctx,
        `INSERT INTO rooms (company_id, name, capacity, status, description, equipment, location, hourly_price)
         VALUES (?,?,?,?,?,?,?,?)`,
        rm.CompanyID, rm.Name, rm.Capacity, rm.Status, rm.Description, rm.Equipment, rm.Location, rm.HourlyPrice)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    created, err := r.GetByID(ctx, uint64(id))
    if err != nil {
        return err
    }
    *rm = created
    return nil
}

// GetByID fetches a room by id, returning ErrRoomNotFound when no row
// exists.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (model.Room, error) {
    rm, err := scanRoom(r.DB.QueryRowContext(ctx,
        "SELECT "+roomColumns+" FROM rooms WHERE id=?", id))
    if errors.Is(err, sql.ErrNoRows) {
        return model.Room{}, ErrRoomNotFound
    }
    return rm, err
}

// GetForUpdateTx fetches a room inside a transaction with a row lock.
// The reservation flow locks the room row so that concurrent bookings
// for the same room serialize on it, closing the gap between the
// overlap check and the insert.
func (r *RoomRepo) GetForUpdateTx(ctx context.Context, tx *sql.Tx, id uint64) (model.Room, error) {
    rm, err := scanRoom(tx.QueryRowContext(ctx,
        "SELECT "+roomColumns+" FROM rooms WHERE id=? FOR UPDATE", id))
    if errors.Is(err, sql.ErrNoRows) {
        return model.Room{}, ErrRoomNotFound
    }
    return rm, err
}

// List returns rooms, optionally filtered by company and/or status.
// Zero/empty filter values mean "any".
func (r *RoomRepo) List(ctx context.Context, companyID uint64, status string) ([]model.Room, error) {
    query := "SELECT " + roomColumns + " FROM rooms WHERE 1=1"
    args := make([]any, 0, 2)
    if companyID != 0 {
        query += " AND company_id=?"
        args = append(args, companyID)
    }
    if status != "" {
        query += " AND status=?"
        args = append(args, status)
    }
    query += " ORDER BY company_id, name"

    rows, err := r.DB.QueryContext(ctx, query, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    rooms := make([]model.Room, 0)
    for rows.Next() {
        rm, err := scanRoom(rows)
        if err != nil {
            return nil, err
        }
        rooms = append(rooms, rm)
    }
    return rooms, rows.Err()
}

// Update rewrites the mutable fields of a room.
func (r *RoomRepo) Update(ctx context.Context, rm *model.Room) error {
    res, err := r.DB.ExecContext(ctx,
        `UPDATE rooms SET name=?, capacity=?, status=?, description=?, equipment=?, location=?, hourly_price=?
         WHERE id=?`,
        rm.Name, rm.Capacity, rm.Status, rm.Description, rm.Equipment, rm.Location, rm.HourlyPrice, rm.ID)
    if err != nil {
        return err
    }
    return requireRow(res, ErrRoomNotFound)
}

// Delete removes a room and, via ON DELETE CASCADE, its reservations.
func (r *RoomRepo) Delete(ctx context.Context, id uint64) error {
    res, err := r.DB.ExecContext(ctx, "DELETE FROM rooms WHERE id=?", id)
    if err != nil {
        return err
    }
    return requireRow(res, ErrRoomNotFound)
}
