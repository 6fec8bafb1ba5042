package models

// Booking statuses that count toward availability conflicts. Any other
// status (cancelled, pending, ...) never blocks a requested slot.
const (
	BookingStatusConfirmed  = "confirmed"
	BookingStatusCompleted  = "completed"
	BookingStatusInProgress = "in_progress"
	BookingStatusCancelled  = "cancelled"
)

// Booking represents a scheduled caregiver engagement. The matching
// engine only ever reads bookings, it never creates or mutates them.
type Booking struct {
	ID          string  `bson:"id" json:"id"`
	CaregiverID string  `bson:"caregiver_id" json:"caregiver_id"`
	SeniorID    string  `bson:"senior_id" json:"senior_id"`
	Date        string  `bson:"booking_date" json:"booking_date"` // "2006-01-02"
	StartTime   string  `bson:"start_time" json:"start_time"`     // "15:04:05"
	DurationHrs float64 `bson:"duration_hrs" json:"duration_hrs"`
	Status      string  `bson:"status" json:"status"`
	HourlyRate  float64 `bson:"hourly_rate" json:"hourly_rate"`
	TotalAmount float64 `bson:"total_amount" json:"total_amount"`
}

// IsActive reports whether the booking's status counts toward
// availability conflicts.
func (b *Booking) IsActive() bool {
	switch b.Status {
	case BookingStatusConfirmed, BookingStatusCompleted, BookingStatusInProgress:
		return true
	}
	return false
}
