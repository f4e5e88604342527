package repository

import (
    "context"
    "database/sql"
    "errors"
    "strings"

    "github.com/iliyamo/coworking-reservation/internal/model"
    "github.com/iliyamo/coworking-reservation/internal/utils"
)

// ErrUserNotFound is returned when a user lookup fails.
var ErrUserNotFound = errors.New("user not found")

// UserRepo provides access to the users table.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

const userColumns = "id,email,password_hash,full_name,phone,role,is_active,created_at,updated_at"

func scanUser(row interface{ Scan(...any) error }) (model.User, error) {
    var u model.User
    var phone sql.NullString
    err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FullName, &phone,
        &u.Role, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
    if phone.Valid {
        p := phone.String
        u.Phone = &p
    }
    return u, err
}

// Create inserts a user and returns its ID. The email is normalized to
// lower case; the password is bcrypt-hashed with the given cost.
func (r *UserRepo) Create(ctx context.Context, email, password, fullName, role string, cost int) (uint64, error) {
    email = strings.ToLower(strings.TrimSpace(email))
    hash, err := utils.HashPassword(password, cost)
    if err != nil {
        return 0, err
    }
    res, err := r.DB.ExecContext(ctx,
        "INSERT INTO users (email, password_hash, full_name, role) VALUES (?,?,?,?)",
        email, hash, fullName, role)
    if err != nil {
        // MySQL duplicate-key error for the unique email index
        if strings.Contains(strings.ToLower(err.Error()), "1062") {
            return 0, ErrEmailExists
        }
        return 0, err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return 0, err
    }
    return uint64(id), nil
}

// GetByEmail fetches a user by normalized email.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (model.User, error) {
    email = strings.ToLower(strings.TrimSpace(email))
    return scanUser(r.DB.QueryRowContext(ctx,
        "SELECT "+userColumns+" FROM users WHERE email=? LIMIT 1", email))
}

// GetByID fetches a user by id.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (model.User, error) {
    return scanUser(r.DB.QueryRowContext(ctx,
        "SELECT "+userColumns+" FROM users WHERE id=? LIMIT 1", id))
}

// List returns all users ordered by id. Used by the admin console.
func (r *UserRepo) List(ctx context.Context) ([]model.User, error) {
    rows, err := r.DB.QueryContext(ctx, "SELECT "+userColumns+" FROM users ORDER BY id")
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    users := make([]model.User, 0)
    for rows.Next() {
        u, err := scanUser(rows)
        if err != nil {
            return nil, err
        }
        users = append(users, u)
    }
    return users, rows.Err()
}

// UpdateProfile updates the caller-editable fields of a user.
func (r *UserRepo) UpdateProfile(ctx context.Context, id uint64, fullName string, phone *string) error {
    res, err := r.DB.ExecContext(ctx,
        "UPDATE users SET full_name=?, phone=? WHERE id=?", fullName, phone, id)
    if err != nil {
        return err
    }
    return requireRow(res, ErrUserNotFound)
}

// AdminUpdate lets an administrator change a user's role and active
// flag in addition to the profile fields.
func (r *UserRepo) AdminUpdate(ctx context.Context, id uint64, fullName string, phone *string, role string, isActive bool) error {
    res, err := r.DB.ExecContext(ctx,
        "UPDATE users SET full_name=?, phone=?, role=?, is_active=? WHERE id=?",
        fullName, phone, role, isActive, id)
    if err != nil {
        return err
    }
    return requireRow(res, ErrUserNotFound)
}

// Delete removes a user. Reservations and companies referencing the
// user are removed by ON DELETE CASCADE.
func (r *UserRepo) Delete(ctx context.Context, id uint64) error {
    res, err := r.DB.ExecContext(ctx, "DELETE FROM users WHERE id=?", id)
    if err != nil {
        return err
    }
    return requireRow(res, ErrUserNotFound)
}

// requireRow maps a zero-rows-affected result to the given sentinel.
func requireRow(res sql.Result, missing error) error {
    n, err := res.RowsAffected()
    if err != nil {
        return err
    }
    if n == 0 {
        return missing
    }
    return nil
}
