package matching

import (
	"fmt"
	"time"

	"shebacare/utils"

	"go.uber.org/zap"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04:05"
)

// parseSlot combines a calendar date and a time-of-day into a concrete
// start instant.
func parseSlot(date, startTime string) (time.Time, error) {
	t, err := time.Parse(dateLayout+" "+timeLayout, date+" "+startTime)
	if err != nil {
		// Tolerate "HH:MM" without seconds.
		t, err = time.Parse(dateLayout+" 15:04", date+" "+startTime)
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse slot %q %q: %w", date, startTime, err)
	}
	return t, nil
}

// isAvailable reports whether the caregiver has no active booking
// overlapping the requested half-open interval [start, start+duration).
//
// On any parse failure the caregiver is reported available rather than
// failing the whole match. That is a documented compatibility trade-off:
// unparsable schedule data can mask a real conflict, so every swallowed
// failure is logged at Warn for observability.
func isAvailable(d *Dataset, caregiverID, date, startTime string, durationHrs float64) bool {
	logger := utils.GetLogger()

	reqStart, err := parseSlot(date, startTime)
	if err != nil {
		logger.Warn("availability check skipped: unparsable requested slot",
			zap.String("caregiverID", caregiverID),
			zap.String("date", date),
			zap.String("startTime", startTime),
			zap.Error(err))
		return true
	}
	reqEnd := reqStart.Add(time.Duration(durationHrs * float64(time.Hour)))

	for _, booking := range d.BookingsFor(caregiverID) {
		if booking.Date != date || !booking.IsActive() {
			continue
		}

		bookingStart, err := parseSlot(booking.Date, booking.StartTime)
		if err != nil {
			logger.Warn("availability check: unparsable booking slot, treating as free",
				zap.String("caregiverID", caregiverID),
				zap.String("bookingID", booking.ID),
				zap.Error(err))
			continue
		}
		bookingEnd := bookingStart.Add(time.Duration(booking.DurationHrs * float64(time.Hour)))

		// Half-open interval intersection.
		if reqStart.Before(bookingEnd) && reqEnd.After(bookingStart) {
			return false
		}
	}
	return true
}
