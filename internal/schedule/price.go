package schedule

import (
    "fmt"

    "github.com/shopspring/decimal"
)

// DurationHours computes the elapsed hours between two "HH:MM" clocks.
// An end clock that reads at or before the start clock is taken to fall
// on the following day, consistent with the wrap-around end-time domain:
// identical clocks denote a full 24h booking.  For any pair drawn from
// EndTimes the result is strictly positive and at most 24.
func DurationHours(start, end string) (float64, error) {
    minutes, err := durationMinutes(start, end)
    if err != nil {
        return 0, err
    }
    return float64(minutes) / 60, nil
}

func durationMinutes(start, end string) (int, error) {
    startMinutes, err := ClockMinutes(start)
    if err != nil {
        return 0, err
    }
    endMinutes, err := ClockMinutes(end)
    if err != nil {
        return 0, err
    }
    diff := endMinutes - startMinutes
    if diff <= 0 {
        diff += 24 * 60
    }
    return diff, nil
}

// Price computes the total price for an interval at the given hourly
// rate.  The rate arrives as a decimal string (rooms store it that
// way); the result is a decimal string with two fractional digits.
// When the room has no configured rate, hourlyRate is nil and the
// returned price is nil as well – the total is suppressed, not zero.
func Price(start, end string, hourlyRate *string) (*string, error) {
    if hourlyRate == nil || *hourlyRate == "" {
        return nil, nil
    }
    rate, err := decimal.NewFromString(*hourlyRate)
    if err != nil {
        return nil, fmt.Errorf("schedule: bad hourly rate %q: %w", *hourlyRate, err)
    }
    minutes, err := durationMinutes(start, end)
    if err != nil {
        return nil, err
    }
    total := rate.Mul(decimal.NewFromInt(int64(minutes))).Div(decimal.NewFromInt(60))
    s := total.StringFixed(2)
    return &s, nil
}
