package chron_test

import (
	"testing"
	"time"

	"github.com/gorhill/cronexpr"

	"github.com/arvich/go-chron/chron"
	"github.com/arvich/go-chron/internal/assert"
)

func TestNextAfter_DailyNoon(t *testing.T) {
	t.Parallel()
	parsed, err := chron.Parse("0 12 * * *")
	assert.IsNil(t, err)

	next, ok := parsed.NextAfter(chron.Instant{Year: 2024, Month: 1, Day: 1, Hour: 8})
	assert.True(t, ok)
	assert.Equal(t, next, chron.Instant{Year: 2024, Month: 1, Day: 1, Hour: 12})

	// strictly after: a matching start instant is never returned
	next, ok = parsed.NextAfter(chron.Instant{Year: 2024, Month: 1, Day: 1, Hour: 12})
	assert.True(t, ok)
	assert.Equal(t, next, chron.Instant{Year: 2024, Month: 1, Day: 2, Hour: 12})
}

func TestNextAfter_EveryMinute(t *testing.T) {
	t.Parallel()
	parsed, err := chron.Parse("* * * * *")
	assert.IsNil(t, err)

	next, ok := parsed.NextAfter(chron.Instant{Year: 2024, Month: 1, Day: 1})
	assert.True(t, ok)
	assert.Equal(t, next, chron.Instant{Year: 2024, Month: 1, Day: 1, Minute: 1})

	// minute rollover at the end of a day
	next, ok = parsed.NextAfter(chron.Instant{Year: 2024, Month: 1, Day: 1, Hour: 23, Minute: 59, Second: 30})
	assert.True(t, ok)
	assert.Equal(t, next, chron.Instant{Year: 2024, Month: 1, Day: 2})
}

func TestNextAfter_MonthRollover(t *testing.T) {
	t.Parallel()
	parsed, err := chron.Parse("0 0 1 * *")
	assert.IsNil(t, err)

	next, ok := parsed.NextAfter(chron.Instant{Year: 2024, Month: 1, Day: 15, Hour: 10, Minute: 30})
	assert.True(t, ok)
	assert.Equal(t, next, chron.Instant{Year: 2024, Month: 2, Day: 1})
}

func TestNextAfter_YearRollover(t *testing.T) {
	t.Parallel()
	parsed, err := chron.Parse("0 0 1 1 *")
	assert.IsNil(t, err)

	next, ok := parsed.NextAfter(chron.Instant{Year: 2024, Month: 6, Day: 15})
	assert.True(t, ok)
	assert.Equal(t, next, chron.Instant{Year: 2025, Month: 1, Day: 1})
}

func TestNextAfter_LeapDay(t *testing.T) {
	t.Parallel()
	parsed, err := chron.Parse("0 0 29 2 *")
	assert.IsNil(t, err)

	next, ok := parsed.NextAfter(chron.Instant{Year: 2023, Month: 3, Day: 1})
	assert.True(t, ok)
	assert.Equal(t, next, chron.Instant{Year: 2024, Month: 2, Day: 29})

	// the next leap day from March 2024 sits at the edge of the horizon
	next, ok = parsed.NextAfter(chron.Instant{Year: 2024, Month: 3, Day: 1})
	assert.True(t, ok)
	assert.Equal(t, next, chron.Instant{Year: 2028, Month: 2, Day: 29})
}

func TestNextAfter_Weekday(t *testing.T) {
	t.Parallel()
	parsed, err := chron.Parse("0 9 * * 1")
	assert.IsNil(t, err)

	// 2024-01-02 is a Tuesday; the next Monday is 2024-01-08
	next, ok := parsed.NextAfter(chron.Instant{Year: 2024, Month: 1, Day: 2, Hour: 10})
	assert.True(t, ok)
	assert.Equal(t, next, chron.Instant{Year: 2024, Month: 1, Day: 8, Hour: 9})
}

func TestNextAfter_WithSeconds(t *testing.T) {
	t.Parallel()
	parsed, err := chron.ParseWithSeconds("*/15 * * * * *")
	assert.IsNil(t, err)

	next, ok := parsed.NextAfter(chron.Instant{Year: 2024, Month: 1, Day: 1})
	assert.True(t, ok)
	assert.Equal(t, next, chron.Instant{Year: 2024, Month: 1, Day: 1, Second: 15})

	next, ok = parsed.NextAfter(chron.Instant{Year: 2024, Month: 1, Day: 1, Second: 50})
	assert.True(t, ok)
	assert.Equal(t, next, chron.Instant{Year: 2024, Month: 1, Day: 1, Minute: 1})
}

func TestNextAfter_Unsatisfiable(t *testing.T) {
	t.Parallel()
	for _, expr := range []string{
		"0 0 31 2 *",    // February has no day 31
		"0 0 30 2 *",    // nor a day 30
		"70/15 * * * *", // step base outside the domain, empty value set
	} {
		parsed, err := chron.Parse(expr)
		assert.IsNil(t, err)
		_, ok := parsed.NextAfter(chron.Instant{Year: 2024, Month: 1, Day: 1})
		assert.False(t, ok)
	}
}

func TestNextAfter_SatisfiesMatches(t *testing.T) {
	t.Parallel()
	expressions := []string{
		"*/5 * * * *",
		"30 8 * * 1-5",
		"0 0 1,15 * *",
		"15 10 * Mar *",
		"@daily",
	}
	for _, expr := range expressions {
		parsed, err := chron.Parse(expr)
		assert.IsNil(t, err)
		instant := chron.Instant{Year: 2024, Month: 1, Day: 1, Hour: 8, Minute: 30, Second: 45}
		for i := 0; i < 25; i++ {
			next, ok := parsed.NextAfter(instant)
			assert.True(t, ok)
			assert.True(t, parsed.MatchesInstant(next))
			instant = next
		}
	}
}

// Cross-check the search against the cronexpr library on expressions
// both dialects interpret identically (day-of-month and day-of-week are
// never both restricted, since cronexpr combines them with OR).
func TestNextAfter_AgreesWithCronexpr(t *testing.T) {
	t.Parallel()
	expressions := []string{
		"*/15 * * * *",
		"30 8 * * *",
		"0 12 * * 1",
		"0 0 1 * *",
		"45 23 * 3 *",
		"0-10/2 6 * * 0",
	}
	start := time.Date(2024, 1, 1, 8, 30, 45, 0, time.UTC)
	for _, expr := range expressions {
		expr := expr
		t.Run(expr, func(t *testing.T) {
			t.Parallel()
			parsed, err := chron.Parse(expr)
			assert.IsNil(t, err)
			oracle := cronexpr.MustParse(expr)

			instant := toInstant(start)
			oracleTime := start
			for i := 0; i < 10; i++ {
				next, ok := parsed.NextAfter(instant)
				assert.True(t, ok)
				oracleTime = oracle.Next(oracleTime)
				assert.Equal(t, toTime(next), oracleTime)
				instant = next
			}
		})
	}
}

func toInstant(t time.Time) chron.Instant {
	return chron.Instant{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

func toTime(i chron.Instant) time.Time {
	return time.Date(i.Year, time.Month(i.Month), i.Day, i.Hour, i.Minute, i.Second, 0, time.UTC)
}
