// Command chron parses a cron expression and prints its upcoming
// occurrences, or vets a YAML crontab file. It owns the clock: the
// start instant is decomposed here and handed to the engine, which
// never reads time itself.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/arvich/go-chron/chron"
	"github.com/arvich/go-chron/crontab"
	"github.com/arvich/go-chron/logger"
)

func main() {
	var (
		seconds = pflag.BoolP("seconds", "s", false, "parse the extended 6-field form (second minute hour day month weekday)")
		count   = pflag.IntP("count", "n", 5, "number of occurrences to print")
		from    = pflag.String("from", "", "RFC 3339 start instant (default: now, UTC)")
		file    = pflag.StringP("file", "f", "", "vet a YAML crontab file instead of a single expression")
		verbose = pflag.BoolP("verbose", "v", false, "enable debug logging")
	)
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: chron [flags] <expression>\n       chron -f <crontab.yaml>\n\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	log := logger.NewSlogLogger(context.Background(), slog.New(
		slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(log, *seconds, *count, *from, *file, pflag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "chron:", err)
		os.Exit(1)
	}
}

func run(log logger.Logger, seconds bool, count int, from, file string, args []string) error {
	start, err := startInstant(from)
	if err != nil {
		return err
	}

	if file != "" {
		return vetFile(log, file, start)
	}

	if len(args) != 1 {
		return errors.New("expected exactly one expression argument")
	}
	parse := chron.Parse
	if seconds {
		parse = chron.ParseWithSeconds
	}
	expr, err := parse(args[0])
	if err != nil {
		return err
	}
	log.Debug("parsed expression", "expression", expr.String())
	printOccurrences(expr, start, count)
	return nil
}

// startInstant decomposes the start time into calendar components.
// The engine evaluates whatever calendar it is given; here that is UTC.
func startInstant(from string) (chron.Instant, error) {
	now := time.Now().UTC()
	if from != "" {
		parsed, err := time.Parse(time.RFC3339, from)
		if err != nil {
			return chron.Instant{}, fmt.Errorf("parse --from: %w", err)
		}
		now = parsed.UTC()
	}
	return chron.Instant{
		Year:   now.Year(),
		Month:  int(now.Month()),
		Day:    now.Day(),
		Hour:   now.Hour(),
		Minute: now.Minute(),
		Second: now.Second(),
	}, nil
}

func printOccurrences(expr *chron.Expression, start chron.Instant, count int) {
	current := start
	for i := 0; i < count; i++ {
		next, ok := expr.NextAfter(current)
		if !ok {
			fmt.Println("no further occurrences within the search horizon")
			return
		}
		fmt.Println(next)
		current = next
	}
}

func vetFile(log logger.Logger, path string, start chron.Instant) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	table, err := crontab.Load(f, crontab.WithLogger(log))
	if err != nil {
		return err
	}
	fmt.Printf("%s: %d schedules ok\n", path, table.Len())
	for _, name := range table.Names() {
		expr, _ := table.Get(name)
		next, ok := expr.NextAfter(start)
		if !ok {
			fmt.Printf("  %-20s %-24s never fires within the search horizon\n", name, expr.String())
			continue
		}
		fmt.Printf("  %-20s %-24s next %s\n", name, expr.String(), next)
	}
	return nil
}
