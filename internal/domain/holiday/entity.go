package holiday

import "time"

// Holiday is a single non-working calendar day. Date is stored at UTC
// midnight and is unique: no two holidays share a calendar day.
type Holiday struct {
	ID          string
	Name        string
	Date        time.Time
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
