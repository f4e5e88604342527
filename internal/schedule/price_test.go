package schedule

import "testing"

func TestDurationHours(t *testing.T) {
    cases := []struct {
        start string
        end   string
        want  float64
    }{
        {"09:00", "10:30", 1.5},
        {"00:00", "00:30", 0.5},
        {"09:30", "10:00", 0.5},
        {"23:30", "00:30", 1},   // crosses midnight
        {"22:00", "21:00", 23},  // wraps almost a full day
        {"10:00", "10:00", 24},  // full-day booking
    }
    for _, tc := range cases {
        got, err := DurationHours(tc.start, tc.end)
        if err != nil {
            t.Fatalf("DurationHours(%q, %q) returned error: %v", tc.start, tc.end, err)
        }
        if got != tc.want {
            t.Errorf("DurationHours(%q, %q) = %v, want %v", tc.start, tc.end, got, tc.want)
        }
    }
}

func TestDurationAlwaysPositiveAndBounded(t *testing.T) {
    for _, start := range StartTimes() {
        ends, err := EndTimes(start)
        if err != nil {
            t.Fatalf("EndTimes(%q) returned error: %v", start, err)
        }
        for _, end := range ends {
            d, err := DurationHours(start, end)
            if err != nil {
                t.Fatalf("DurationHours(%q, %q) returned error: %v", start, end, err)
            }
            if d <= 0 || d > 24 {
                t.Errorf("DurationHours(%q, %q) = %v, want in (0, 24]", start, end, d)
            }
        }
    }
}

func TestPrice(t *testing.T) {
    rate := "10.00"
    cases := []struct {
        start string
        end   string
        want  string
    }{
        {"09:00", "10:30", "15.00"},
        {"00:00", "00:30", "5.00"},
        {"23:30", "00:30", "10.00"},
        {"10:00", "10:00", "240.00"},
    }
    for _, tc := range cases {
        got, err := Price(tc.start, tc.end, &rate)
        if err != nil {
            t.Fatalf("Price(%q, %q, %q) returned error: %v", tc.start, tc.end, rate, err)
        }
        if got == nil || *got != tc.want {
            t.Errorf("Price(%q, %q, %q) = %v, want %q", tc.start, tc.end, rate, got, tc.want)
        }
    }
}

func TestPriceSuppressedWithoutRate(t *testing.T) {
    got, err := Price("09:00", "10:30", nil)
    if err != nil {
        t.Fatalf("Price with nil rate returned error: %v", err)
    }
    if got != nil {
        t.Errorf("Price with nil rate = %q, want nil", *got)
    }
    empty := ""
    got, err = Price("09:00", "10:30", &empty)
    if err != nil {
        t.Fatalf("Price with empty rate returned error: %v", err)
    }
    if got != nil {
        t.Errorf("Price with empty rate = %q, want nil", *got)
    }
}

func TestPriceRejectsBadRate(t *testing.T) {
    bad := "ten euros"
    if _, err := Price("09:00", "10:30", &bad); err == nil {
        t.Error("Price accepted a non-decimal hourly rate")
    }
}

func TestPriceKeepsDecimalPrecision(t *testing.T) {
    rate := "12.33"
    got, err := Price("09:00", "10:30", &rate) // 1.5h
    if err != nil {
        t.Fatalf("Price returned error: %v", err)
    }
    if got == nil || *got != "18.50" {
        t.Errorf("Price(1.5h at 12.33) = %v, want %q", got, "18.50")
    }
}
