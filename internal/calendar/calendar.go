// Package calendar provides Gregorian calendar arithmetic as pure,
// stateless functions. It deliberately avoids the time package so that
// the cron engine evaluates whatever calendar decomposition the caller
// supplies, with no implicit timezone handling.
package calendar

// monthDays holds the length of each month in a non-leap year,
// indexed by month-1.
var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the number of days in the given month of the given
// year. A month outside 1-12 yields 31; upstream validation keeps months
// in range during normal operation.
func DaysInMonth(year, month int) int {
	if month < 1 || month > 12 {
		return 31
	}
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return monthDays[month-1]
}

// DayOfWeek returns the day of the week for the given date, with
// 0 = Sunday. It uses Zeller's congruence; January and February are
// treated as months 13 and 14 of the previous year. The raw congruence
// is Saturday-based, so the result is shifted to the Sunday-based
// convention.
func DayOfWeek(year, month, day int) int {
	y, m := year, month
	if m < 3 {
		y--
		m += 12
	}
	k := y % 100
	j := y / 100
	h := (day + 13*(m+1)/5 + k + k/4 + j/4 - 2*j) % 7
	// Go's %7 truncates toward zero, so h is in [-6, 6] and h+6 is
	// non-negative.
	return (h + 6) % 7
}
