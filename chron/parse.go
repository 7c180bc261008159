package chron

import "strings"

var (
	monthNames   = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}
	weekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

	// predefined expressions, expanded to the 6-field form
	macros = map[string]string{
		"@yearly":  "0 0 0 1 1 *",
		"@monthly": "0 0 0 1 * *",
		"@weekly":  "0 0 0 * * 0",
		"@daily":   "0 0 0 * * *",
		"@hourly":  "0 0 * * * *",
	}
)

// Parse parses a standard 5-field cron expression in the order
// "minute hour day month weekday". The seconds matcher is fixed to {0},
// so an instant only matches at second 0 of its minute. Predefined
// expressions (@yearly, @monthly, @weekly, @daily, @hourly) are
// accepted as well.
func Parse(expr string) (*Expression, error) {
	if expansion, ok := macros[strings.TrimSpace(expr)]; ok {
		return parseSixFields(expr, strings.Fields(expansion))
	}
	fields := strings.Fields(expr)
	if len(fields) != 5 {
		return nil, &FieldCountError{Expected: "5", Got: len(fields)}
	}
	seconds := fieldMatcher{kind: matchValues, values: []int{0}, min: 0, max: 59}
	return newExpression(expr, seconds, fields)
}

// ParseWithSeconds parses an extended 6-field cron expression in the
// order "second minute hour day month weekday".
func ParseWithSeconds(expr string) (*Expression, error) {
	if expansion, ok := macros[strings.TrimSpace(expr)]; ok {
		return parseSixFields(expr, strings.Fields(expansion))
	}
	fields := strings.Fields(expr)
	if len(fields) != 6 {
		return nil, &FieldCountError{Expected: "6", Got: len(fields)}
	}
	return parseSixFields(expr, fields)
}

func parseSixFields(source string, fields []string) (*Expression, error) {
	seconds, err := parseField(fields[0], "second", 0, 59, nil)
	if err != nil {
		return nil, err
	}
	return newExpression(source, seconds, fields[1:])
}

// newExpression parses the trailing five fields left to right; the
// first error aborts the parse, so no partial Expression escapes.
func newExpression(source string, seconds fieldMatcher, fields []string) (*Expression, error) {
	minutes, err := parseField(fields[0], "minute", 0, 59, nil)
	if err != nil {
		return nil, err
	}
	hours, err := parseField(fields[1], "hour", 0, 23, nil)
	if err != nil {
		return nil, err
	}
	days, err := parseField(fields[2], "day", 1, 31, nil)
	if err != nil {
		return nil, err
	}
	months, err := parseField(fields[3], "month", 1, 12, monthNames)
	if err != nil {
		return nil, err
	}
	weekdays, err := parseField(fields[4], "weekday", 0, 6, weekdayNames)
	if err != nil {
		return nil, err
	}
	return &Expression{
		source:   source,
		seconds:  seconds,
		minutes:  minutes,
		hours:    hours,
		days:     days,
		months:   months,
		weekdays: weekdays,
	}, nil
}
