// Package payment simulates the card payment step of the booking flow.
// There is no gateway integration: any syntactically valid card number,
// expiry and CVV is accepted and the resulting reservation is stored
// with payment_status "completed".  Validation exists so the portal
// behaves like a real checkout, nothing more.
package payment

import (
    "errors"
    "strconv"
    "strings"
    "time"
)

// MethodCreditCard is the only payment method the simulated flow offers.
const MethodCreditCard = "credit_card"

// Validation errors surfaced to the payment form.
var (
    ErrCardNumber = errors.New("payment: card number must be 13-19 digits")
    ErrExpiry     = errors.New("payment: expiry must be MM/YY and not in the past")
    ErrCVV        = errors.New("payment: cvv must be 3 or 4 digits")
)

// Card carries the fields of the simulated payment form.
type Card struct {
    Number string `json:"card_number"`
    Expiry string `json:"expiry"` // MM/YY
    CVV    string `json:"cvv"`
    Holder string `json:"holder"`
}

// Validate performs the syntactic checks of the simulated gateway
// against the supplied reference time (normally time.Now).
func (c Card) Validate(now time.Time) error {
    digits := strings.ReplaceAll(strings.ReplaceAll(c.Number, " ", ""), "-", "")
    if !allDigits(digits) || len(digits) < 13 || len(digits) > 19 {
        return ErrCardNumber
    }
    if !validExpiry(c.Expiry, now) {
        return ErrExpiry
    }
    if !allDigits(c.CVV) || (len(c.CVV) != 3 && len(c.CVV) != 4) {
        return ErrCVV
    }
    return nil
}

// LastDigits returns the final four digits of the card number, the
// only part of the number that is ever persisted.
func (c Card) LastDigits() string {
    digits := strings.ReplaceAll(strings.ReplaceAll(c.Number, " ", ""), "-", "")
    if len(digits) < 4 {
        return digits
    }
    return digits[len(digits)-4:]
}

func allDigits(s string) bool {
    if s == "" {
        return false
    }
    for _, r := range s {
        if r < '0' || r > '9' {
            return false
        }
    }
    return true
}

// validExpiry accepts MM/YY with a month of 01-12 that has not passed.
// A card expires at the end of its stated month.
func validExpiry(expiry string, now time.Time) bool {
    parts := strings.SplitN(expiry, "/", 2)
    if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
        return false
    }
    month, err := strconv.Atoi(parts[0])
    if err != nil || month < 1 || month > 12 {
        return false
    }
    year, err := strconv.Atoi(parts[1])
    if err != nil {
        return false
    }
    year += 2000
    if year > now.Year() {
        return true
    }
    return year == now.Year() && month >= int(now.Month())
}
