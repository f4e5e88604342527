package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/iliyamo/coworking-reservation/internal/model"
)

// ErrCompanyNotFound is returned when a company lookup fails.
var ErrCompanyNotFound = errors.New("company not found")

// CompanyRepo provides access to the companies table.  Companies own
// rooms; deleting a company cascades to its rooms and in turn to the
// reservations of those rooms.
type CompanyRepo struct{ DB *sql.DB }

func NewCompanyRepo(db *sql.DB) *CompanyRepo { return &CompanyRepo{DB: db} }

const companyColumns = "id,user_id,name,address,city,country,postal_code,phone,email,website,created_at,updated_at"

func scanCompany(row interface{ Scan(...any) error }) (model.Company, error) {
    var co model.Company
    var website sql.NullString
    err := row.Scan(&co.ID, &co.UserID, &co.Name, &co.Address, &co.City, &co.Country,
        &co.PostalCode, &co.Phone, &co.Email, &website, &co.CreatedAt, &co.UpdatedAt)
    if website.Valid {
        w := website.String
        co.Website = &w
    }
    return co, err
}

// Create inserts a company and populates its generated ID and
// timestamps on the provided struct.
func (r *CompanyRepo) Create(ctx context.Context, co *model.Company) error {
    res, err := r.DB.ExecContext(ctx,
        `INSERT INTO companies (user_id, name, address, city, country, postal_code, phone, email, website)
         VALUES (?,?,?,?,?,?,?,?,?)`,
        co.UserID, co.Name, co.Address, co.City, co.Country, co.PostalCode, co.Phone, co.Email, co.Website)
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
    *co = created
    return nil
}

// GetByID fetches a company by id, returning ErrCompanyNotFound when
// no row exists.
func (r *CompanyRepo) GetByID(ctx context.Context, id uint64) (model.Company, error) {
    co, err := scanCompany(r.DB.QueryRowContext(ctx,
        "SELECT "+companyColumns+" FROM companies WHERE id=?", id))
    if errors.Is(err, sql.ErrNoRows) {
        return model.Company{}, ErrCompanyNotFound
    }
    return co, err
}

// List returns all companies ordered by name.
func (r *CompanyRepo) List(ctx context.Context) ([]model.Company, error) {
    return r.list(ctx, "SELECT "+companyColumns+" FROM companies ORDER BY name")
}

// ListByUser returns the companies owned by a user.
func (r *CompanyRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Company, error) {
    return r.list(ctx, "SELECT "+companyColumns+" FROM companies WHERE user_id=? ORDER BY name", userID)
}

func (r *CompanyRepo) list(ctx context.Context, query string, args ...any) ([]model.Company, error) {
    rows, err := r.DB.QueryContext(ctx, query, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    companies := make([]model.Company, 0)
    for rows.Next() {
        co, err := scanCompany(rows)
        if err != nil {
            return nil, err
        }
        companies = append(companies, co)
    }
    return companies, rows.Err()
}

// Update rewrites the mutable fields of a company.
func (r *CompanyRepo) Update(ctx context.Context, co *model.Company) error {
    res, err := r.DB.ExecContext(ctx,
        `UPDATE companies SET name=?, address=?, city=?, country=?, postal_code=?, phone=?, email=?, website=?
         WHERE id=?`,
        co.Name, co.Address, co.City, co.Country, co.PostalCode, co.Phone, co.Email, co.Website, co.ID)
    if err != nil {
        return err
    }
    return requireRow(res, ErrCompanyNotFound)
}

// Delete removes a company and, via ON DELETE CASCADE, its rooms and
// their reservations.
func (r *CompanyRepo) Delete(ctx context.Context, id uint64) error {
    res, err := r.DB.ExecContext(ctx, "DELETE FROM companies WHERE id=?", id)
    if err != nil {
        return err
    }
    return requireRow(res, ErrCompanyNotFound)
}
