package holiday

import (
	"context"
	"time"
)

// ListFilter narrows holiday listings by calendar year and month. Zero values
// mean "no filter".
type ListFilter struct {
	Year  int
	Month time.Month
	Limit int
}

type HolidayRepository interface {
	Create(ctx context.Context, newHoliday Holiday) (Holiday, error)
	GetByID(ctx context.Context, id string) (Holiday, error)

	// GetByDateRange returns holidays whose date falls within [start, end],
	// both interpreted as inclusive UTC calendar days.
	GetByDateRange(ctx context.Context, start, end time.Time) ([]Holiday, error)

	// ExistsOnDate reports whether a holiday already occupies the given UTC
	// calendar day. excludeID, when non-nil, ignores that holiday (used by
	// updates).
	ExistsOnDate(ctx context.Context, date time.Time, excludeID *string) (bool, error)

	Update(ctx context.Context, updated Holiday) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter ListFilter) ([]Holiday, error)
}
