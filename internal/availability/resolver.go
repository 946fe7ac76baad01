package availability

import (
	"fmt"
	"strconv"
	"strings"

	"venuehub/internal/domain"
)

// DateLayout is the civil-date format used across the API. Dates are
// venue-local and carry no timezone.
const DateLayout = "2006-01-02"

type DateClassification string

const (
	DateAvailable       DateClassification = "available"
	DatePartiallyBooked DateClassification = "partially_booked"
	DateFullyBooked     DateClassification = "fully_booked"
	DateBlocked         DateClassification = "blocked"
)

// DefaultFullyBookedHourThreshold marks a date "effectively unavailable" for
// hourly booking once this many distinct hour buckets are occupied.
const DefaultFullyBookedHourThreshold = 12

// ClassifyDate derives the calendar state of one date from already-loaded
// active reservations and blocked dates. It is a pure function: callers are
// expected to pass only non-cancelled reservations (LoadAvailability does).
//
// Precedence: blocked > full-day sentinel > booking-type policy. A blocked
// date stays blocked no matter what reservations exist on it.
func ClassifyDate(
	date string,
	reservationsByDate map[string][]domain.Reservation,
	blockedDates map[string]bool,
	bookingType domain.BookingType,
	hourThreshold int,
) DateClassification {
	if blockedDates[date] {
		return DateBlocked
	}
	if hourThreshold <= 0 {
		hourThreshold = DefaultFullyBookedHourThreshold
	}

	day := reservationsByDate[date]
	for _, r := range day {
		if r.IsFullDay() {
			return DateFullyBooked
		}
	}

	if bookingType == domain.BookingFullDay {
		// Conservative policy: any partial booking blocks a full-day booking.
		if len(day) > 0 {
			return DateFullyBooked
		}
		return DateAvailable
	}

	occupied := occupiedHourCount(day)
	switch {
	case occupied >= hourThreshold:
		return DateFullyBooked
	case occupied > 0:
		return DatePartiallyBooked
	default:
		return DateAvailable
	}
}

// AvailableSlots enumerates the free hour-start labels ("00:00".."23:00") on
// a date. A reservation occupies the integer hour buckets
// [floor(startHour), floor(endHour)); times off the hour are floored, so
// 09:30-10:15 occupies bucket 9 only.
func AvailableSlots(date string, reservationsByDate map[string][]domain.Reservation) []string {
	var occupied [24]bool
	markOccupiedHours(reservationsByDate[date], &occupied)

	out := make([]string, 0, 24)
	for h := 0; h < 24; h++ {
		if !occupied[h] {
			out = append(out, fmt.Sprintf("%02d:00", h))
		}
	}
	return out
}

func occupiedHourCount(day []domain.Reservation) int {
	var occupied [24]bool
	markOccupiedHours(day, &occupied)
	n := 0
	for _, b := range occupied {
		if b {
			n++
		}
	}
	return n
}

func markOccupiedHours(day []domain.Reservation, occupied *[24]bool) {
	for _, r := range day {
		if r.IsFullDay() {
			// The 23:59 sentinel floors to bucket 23; a full-day booking
			// still occupies the whole day.
			for h := 0; h < 24; h++ {
				occupied[h] = true
			}
			continue
		}
		start, okS := minuteOf(r.StartTime)
		end, okE := minuteOf(r.EndTime)
		if !okS || !okE {
			continue
		}
		for h := start / 60; h < end/60 && h < 24; h++ {
			occupied[h] = true
		}
	}
}

// overlaps reports whether two half-open minute intervals intersect.
func overlaps(aStart, aEnd, bStart, bEnd int) bool {
	return aStart < bEnd && bStart < aEnd
}

// minuteOf parses a strict "HH:MM" wall-clock label into minutes since
// midnight.
func minuteOf(t string) (int, bool) {
	hh, mm, ok := strings.Cut(t, ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil {
		return 0, false
	}
	m, err := strconv.Atoi(mm)
	if err != nil {
		return 0, false
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}
