package model

import "time"

// Company represents a coworking operator that owns one or more
// bookable rooms.  Each company belongs to the user who registered
// it.  This struct corresponds to a row in the `companies` table.
//
// Fields:
//  ID         – primary key identifier.
//  UserID     – user ID of the company owner.
//  Name       – company name, unique per owner.
//  Address    – street address of the premises.
//  City       – city the premises are located in.
//  Country    – country the premises are located in.
//  PostalCode – postal code of the address.
//  Phone      – contact phone number.
//  Email      – contact email address.
//  Website    – public website URL, if any.
//  CreatedAt  – timestamp when the company was created.
//  UpdatedAt  – timestamp of last update.
type Company struct {
    ID         uint64    // companies.id
    UserID     uint64    // companies.user_id
    Name       string    // companies.name
    Address    string    // companies.address
    City       string    // companies.city
    Country    string    // companies.country
    PostalCode string    // companies.postal_code
    Phone      string    // companies.phone
    Email      string    // companies.email
    Website    *string   // companies.website (nullable)
    CreatedAt  time.Time // companies.created_at
    UpdatedAt  time.Time // companies.updated_at
}
