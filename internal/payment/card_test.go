package payment

import (
    "testing"
    "time"
)

var testNow = time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)

func TestValidateAcceptsWellFormedCard(t *testing.T) {
    cards := []Card{
        {Number: "4111111111111111", Expiry: "12/25", CVV: "123", Holder: "Jane Roe"},
        {Number: "4111 1111 1111 1111", Expiry: "06/24", CVV: "1234"},
        {Number: "4111-1111-1111-1111", Expiry: "01/30", CVV: "999"},
    }
    for _, c := range cards {
        if err := c.Validate(testNow); err != nil {
            t.Errorf("Validate(%q) = %v, want nil", c.Number, err)
        }
    }
}

func TestValidateRejections(t *testing.T) {
    cases := []struct {
        name string
        card Card
        want error
    }{
        {"short number", Card{Number: "4111", Expiry: "12/25", CVV: "123"}, ErrCardNumber},
        {"letters in number", Card{Number: "4111abcd11111111", Expiry: "12/25", CVV: "123"}, ErrCardNumber},
        {"empty number", Card{Number: "", Expiry: "12/25", CVV: "123"}, ErrCardNumber},
        {"past expiry", Card{Number: "4111111111111111", Expiry: "05/24", CVV: "123"}, ErrExpiry},
        {"malformed expiry", Card{Number: "4111111111111111", Expiry: "2025-12", CVV: "123"}, ErrExpiry},
        {"month thirteen", Card{Number: "4111111111111111", Expiry: "13/25", CVV: "123"}, ErrExpiry},
        {"short cvv", Card{Number: "4111111111111111", Expiry: "12/25", CVV: "12"}, ErrCVV},
        {"alpha cvv", Card{Number: "4111111111111111", Expiry: "12/25", CVV: "12a"}, ErrCVV},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            if err := tc.card.Validate(testNow); err != tc.want {
                t.Errorf("Validate error = %v, want %v", err, tc.want)
            }
        })
    }
}

func TestLastDigits(t *testing.T) {
    c := Card{Number: "4111 1111 1111 1234"}
    if got := c.LastDigits(); got != "1234" {
        t.Errorf("LastDigits = %q, want %q", got, "1234")
    }
}
