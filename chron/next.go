package chron

import "github.com/arvich/go-chron/internal/calendar"

// searchHorizonYears bounds the forward search. A schedule with no
// occurrence within this many years of the start instant is reported
// as having none at all.
const searchHorizonYears = 4

// NextAfter returns the smallest instant strictly greater than from
// that satisfies the expression. It reports false when no such instant
// exists within the search horizon; an expression that can never fire
// (for example second 0 of Feb 31) terminates this way rather than
// scanning forever.
//
// The search advances each calendar unit to its smallest accepted value
// and carries into the next larger unit on overflow, resetting all
// smaller units. The weekday is recomputed from the candidate date on
// every pass, never incremented independently.
func (e *Expression) NextAfter(from Instant) (Instant, bool) {
	horizon := from.Year + searchHorizonYears

	year, month, day := from.Year, from.Month, from.Day
	hour, minute, second := from.Hour, from.Minute, from.Second+1

	for year <= horizon {
		if next, ok := e.months.next(month); !ok {
			year++
			month, day, hour, minute, second = 1, 1, 0, 0, 0
			continue
		} else if next != month {
			month, day, hour, minute, second = next, 1, 0, 0, 0
		}

		if day > calendar.DaysInMonth(year, month) {
			month++
			day, hour, minute, second = 1, 0, 0, 0
			continue
		}
		if !e.days.matches(day) || !e.weekdays.matches(calendar.DayOfWeek(year, month, day)) {
			day++
			hour, minute, second = 0, 0, 0
			continue
		}

		if next, ok := e.hours.next(hour); !ok {
			day++
			hour, minute, second = 0, 0, 0
			continue
		} else if next != hour {
			hour, minute, second = next, 0, 0
		}

		if next, ok := e.minutes.next(minute); !ok {
			hour++
			minute, second = 0, 0
			continue
		} else if next != minute {
			minute, second = next, 0
		}

		if next, ok := e.seconds.next(second); !ok {
			minute++
			second = 0
			continue
		} else if next != second {
			second = next
		}

		return Instant{year, month, day, hour, minute, second}, true
	}
	return Instant{}, false
}

// weekdayOf derives the weekday of an instant's date, 0 = Sunday.
func weekdayOf(t Instant) int {
	return calendar.DayOfWeek(t.Year, t.Month, t.Day)
}
