// Package chron implements a cron expression engine: parsing of 5- and
// 6-field schedule expressions into immutable matchers, point-in-time
// matching against caller-decomposed calendar components, and bounded
// next-occurrence search.
//
// The engine never reads a clock and performs no timezone conversion;
// all fields are evaluated in whatever calendar the caller's
// decomposition already uses. A parsed Expression is immutable and safe
// for concurrent use without synchronization.
package chron

import "fmt"

// Instant is a calendar point in time decomposed into its components.
// The weekday is always derived from the date, never stored.
type Instant struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

func (i Instant) String() string {
	return fmt.Sprintf("%04d-%02d-%02d %02d:%02d:%02d",
		i.Year, i.Month, i.Day, i.Hour, i.Minute, i.Second)
}

// Expression is a parsed cron schedule: six field matchers, one per
// calendar unit, plus the verbatim source text. Expressions are built
// by Parse and ParseWithSeconds and never mutated afterwards.
type Expression struct {
	source   string
	seconds  fieldMatcher
	minutes  fieldMatcher
	hours    fieldMatcher
	days     fieldMatcher
	months   fieldMatcher
	weekdays fieldMatcher
}

// Matches reports whether the expression accepts the given calendar
// components: second/minute 0-59, hour 0-23, day 1-31, month 1-12,
// weekday 0-6 with 0 = Sunday. The components are tested independently;
// no bounds checking is performed, so an out-of-domain value simply
// fails to match unless the field is a wildcard.
func (e *Expression) Matches(second, minute, hour, day, month, weekday int) bool {
	return e.seconds.matches(second) &&
		e.minutes.matches(minute) &&
		e.hours.matches(hour) &&
		e.days.matches(day) &&
		e.months.matches(month) &&
		e.weekdays.matches(weekday)
}

// MatchesInstant reports whether the expression accepts the given
// instant, deriving the weekday from the date.
func (e *Expression) MatchesInstant(t Instant) bool {
	return e.Matches(t.Second, t.Minute, t.Hour, t.Day, t.Month, weekdayOf(t))
}

// String returns the original parser input unchanged.
func (e *Expression) String() string {
	return e.source
}
