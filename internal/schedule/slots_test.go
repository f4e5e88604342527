package schedule

import "testing"

func TestStartTimes(t *testing.T) {
    slots := StartTimes()
    if len(slots) != 48 {
        t.Fatalf("StartTimes() returned %d slots, want 48", len(slots))
    }
    if slots[0] != "00:00" {
        t.Errorf("first slot = %q, want %q", slots[0], "00:00")
    }
    if slots[47] != "23:30" {
        t.Errorf("last slot = %q, want %q", slots[47], "23:30")
    }
    for i, s := range slots {
        if !Aligned(s) {
            t.Errorf("slot %d = %q is not half-hour aligned", i, s)
        }
    }
}

func TestEndTimesShape(t *testing.T) {
    for _, start := range StartTimes() {
        times, err := EndTimes(start)
        if err != nil {
            t.Fatalf("EndTimes(%q) returned error: %v", start, err)
        }
        if len(times) != 48 {
            t.Fatalf("EndTimes(%q) returned %d entries, want 48", start, len(times))
        }
        startMinutes, _ := ClockMinutes(start)
        for i, e := range times {
            want := MinutesClock((startMinutes + (i+1)*30) % (24 * 60))
            if e != want {
                t.Errorf("EndTimes(%q)[%d] = %q, want %q", start, i, e, want)
            }
        }
        // Minimum duration is one slot; only the final +24h entry reads
        // the same as the start clock.
        for i, e := range times[:47] {
            if e == start {
                t.Errorf("EndTimes(%q)[%d] equals the start time", start, i)
            }
        }
    }
}

func TestEndTimesWrapsPastMidnight(t *testing.T) {
    times, err := EndTimes("23:30")
    if err != nil {
        t.Fatalf("EndTimes returned error: %v", err)
    }
    if times[0] != "00:00" {
        t.Errorf("EndTimes(23:30)[0] = %q, want %q", times[0], "00:00")
    }
    if times[1] != "00:30" {
        t.Errorf("EndTimes(23:30)[1] = %q, want %q", times[1], "00:30")
    }
}

func TestNormalizeEnd(t *testing.T) {
    cases := []struct {
        name  string
        start string
        end   string
        want  string
    }{
        {"kept when in domain", "09:00", "10:30", "10:30"},
        {"reset when equal to start after change", "10:30", "10:30", "11:00"},
        {"kept across midnight", "23:30", "00:30", "00:30"},
    }
    for _, tc := range cases {
        t.Run(tc.name, func(t *testing.T) {
            got, err := NormalizeEnd(tc.start, tc.end)
            if err != nil {
                t.Fatalf("NormalizeEnd(%q, %q) returned error: %v", tc.start, tc.end, err)
            }
            if got != tc.want {
                t.Errorf("NormalizeEnd(%q, %q) = %q, want %q", tc.start, tc.end, got, tc.want)
            }
        })
    }
}

func TestClockMinutesRejectsMalformed(t *testing.T) {
    for _, bad := range []string{"", "9:00", "24:00", "12:60", "12-30", "ab:cd"} {
        if _, err := ClockMinutes(bad); err == nil {
            t.Errorf("ClockMinutes(%q) accepted malformed input", bad)
        }
    }
}
