package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/hrcore/leave-backend-go/internal/domain/holiday"
	"github.com/shopspring/decimal"
)

const dayLayout = "2006-01-02"

var halfDayCost = decimal.NewFromFloat(0.5)

// Calendar decides which calendar days count as working days. It holds no
// mutable state: weekend days come from startup configuration and holidays
// are read from the repository on every call, so holiday edits take effect
// immediately.
type Calendar struct {
	holidayRepo holiday.HolidayRepository
	weekend     map[time.Weekday]bool
}

func NewCalendar(holidayRepo holiday.HolidayRepository, weekendDays []time.Weekday) *Calendar {
	weekend := make(map[time.Weekday]bool, len(weekendDays))
	for _, d := range weekendDays {
		weekend[d] = true
	}
	return &Calendar{holidayRepo: holidayRepo, weekend: weekend}
}

// UTCDay truncates a timestamp to its UTC calendar day. Every comparison in
// this package goes through it; a timestamp carrying a non-UTC offset is
// mapped to the UTC day it falls on, not its local day.
func UTCDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// IsWeekend checks the date's UTC day-of-week against the configured weekend set.
func (c *Calendar) IsWeekend(date time.Time) bool {
	return c.weekend[UTCDay(date).Weekday()]
}

// IsHoliday checks whether a holiday record occupies the date's UTC calendar day.
func (c *Calendar) IsHoliday(ctx context.Context, date time.Time) (bool, error) {
	day := UTCDay(date)
	holidays, err := c.holidayRepo.GetByDateRange(ctx, day, day)
	if err != nil {
		return false, fmt.Errorf("failed to query holidays: %w", err)
	}
	return len(holidays) > 0, nil
}

// IsBusinessDay reports whether the date is neither a weekend day nor a holiday.
func (c *Calendar) IsBusinessDay(ctx context.Context, date time.Time) (bool, error) {
	if c.IsWeekend(date) {
		return false, nil
	}
	isHoliday, err := c.IsHoliday(ctx, date)
	if err != nil {
		return false, err
	}
	return !isHoliday, nil
}

// CountBusinessDays counts business days in [start, end] inclusive. Returns 0
// when end precedes start. Holidays for the whole span are fetched with a
// single range query.
func (c *Calendar) CountBusinessDays(ctx context.Context, start, end time.Time) (int, error) {
	days, err := c.ListBusinessDays(ctx, start, end)
	if err != nil {
		return 0, err
	}
	return len(days), nil
}

// ListBusinessDays returns the qualifying UTC calendar days in [start, end]
// inclusive, ascending. Re-calling with the same inputs yields the same result
// unless the holiday set changed.
func (c *Calendar) ListBusinessDays(ctx context.Context, start, end time.Time) ([]time.Time, error) {
	startDay := UTCDay(start)
	endDay := UTCDay(end)
	if endDay.Before(startDay) {
		return []time.Time{}, nil
	}

	holidays, err := c.holidayRepo.GetByDateRange(ctx, startDay, endDay)
	if err != nil {
		return nil, fmt.Errorf("failed to query holidays: %w", err)
	}
	holidaySet := make(map[string]bool, len(holidays))
	for _, h := range holidays {
		holidaySet[UTCDay(h.Date).Format(dayLayout)] = true
	}

	out := []time.Time{}
	for d := startDay; !d.After(endDay); d = d.AddDate(0, 0, 1) {
		if c.weekend[d.Weekday()] {
			continue
		}
		if holidaySet[d.Format(dayLayout)] {
			continue
		}
		out = append(out, d)
	}
	return out, nil
}

// ResolveDays converts a leave's date range into its day cost. A half-day
// leave always costs exactly 0.5 regardless of the range width; that mirrors
// how requests have always been priced and is relied upon downstream.
func (c *Calendar) ResolveDays(ctx context.Context, start, end time.Time, halfDay bool) (decimal.Decimal, error) {
	if halfDay {
		return halfDayCost, nil
	}
	count, err := c.CountBusinessDays(ctx, start, end)
	if err != nil {
		return decimal.Zero, err
	}
	return decimal.NewFromInt(int64(count)), nil
}
