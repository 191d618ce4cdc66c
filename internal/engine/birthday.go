package engine

import "time"

// NextOccurrence returns the next birthday on or after the day of now.
// Feb 29 birthdays fall on March 1st in common years (time.Date normalization).
func NextOccurrence(now time.Time, dob Date) time.Time {
	loc := now.Location()

	candidate := time.Date(now.Year(), time.Month(dob.Month), dob.Day, 0, 0, 0, 0, loc)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)

	if candidate.Before(todayStart) {
		candidate = time.Date(now.Year()+1, time.Month(dob.Month), dob.Day, 0, 0, 0, 0, loc)
	}
	return candidate
}

// Age returns the number of completed years at now. Dates in the future give 0.
func Age(now time.Time, dob Date) int {
	age := now.Year() - dob.Year
	// Birthday not reached yet this year.
	if time.Month(dob.Month) > now.Month() || (time.Month(dob.Month) == now.Month() && dob.Day > now.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// DaysUntil returns the whole days between the day of now and the next birthday.
func DaysUntil(now time.Time, dob Date) int {
	next := NextOccurrence(now, dob)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	// Round absorbs DST shifts of one hour.
	return int((next.Sub(todayStart).Hours() + 12) / 24)
}
