package domain

import (
	"errors"
	"fmt"
)

// Day identifies one of the seven canonical weekdays of the generic
// timetable week, Monday-first. Slots carry a Day rather than a date:
// the same week is reused across an export date range.
type Day int

const (
	Monday Day = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

// NumDays is the number of canonical days in the timetable week.
const NumDays = 7

// ErrInvalidDay indicates a day token outside the canonical set.
var ErrInvalidDay = errors.New("invalid day")

// dayTokens are the canonical day tokens used by the parsed schedule
// export, Monday-first. The source schedules are French.
var dayTokens = [NumDays]string{"Lundi", "Mardi", "Mercredi", "Jeudi", "Vendredi", "Samedi", "Dimanche"}

// ParseDay maps a canonical day token to its Day.
func ParseDay(token string) (Day, error) {
	for i, t := range dayTokens {
		if t == token {
			return Day(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDay, token)
}

// String returns the canonical token for the day.
func (d Day) String() string {
	if d < 0 || d >= NumDays {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return dayTokens[d]
}
