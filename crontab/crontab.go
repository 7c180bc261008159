// Package crontab loads named cron schedules from a YAML document and
// validates every schedule through the chron parser before any entry
// becomes visible to callers.
package crontab

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/arvich/go-chron/chron"
	"github.com/arvich/go-chron/logger"
)

// ErrInvalid is the sentinel all crontab structure errors unwrap to.
// Schedule syntax errors unwrap to chron.ErrParse instead.
var ErrInvalid = errors.New("invalid crontab")

// Entry is one named schedule in a crontab document.
type Entry struct {
	Name     string `yaml:"name"`
	Schedule string `yaml:"schedule"`
	// Seconds selects the extended 6-field form for this entry.
	Seconds bool   `yaml:"seconds,omitempty"`
	Comment string `yaml:"comment,omitempty"`
}

// Table is a validated set of named schedules. Once returned by Load or
// Parse it is immutable and safe for concurrent use.
type Table struct {
	entries []Entry
	parsed  map[string]*chron.Expression
}

// Option configures the loader.
type Option func(*loader)

// WithLogger sets the logger receiving a debug record per loaded entry.
func WithLogger(log logger.Logger) Option {
	return func(l *loader) {
		if log != nil {
			l.log = log
		}
	}
}

type loader struct {
	log logger.Logger
}

// Load reads a YAML crontab document from r. The first invalid entry
// aborts the load; no partial table is returned.
func Load(r io.Reader, opts ...Option) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read crontab: %w", err)
	}
	return Parse(data, opts...)
}

// Parse parses and validates a YAML crontab document.
func Parse(data []byte, opts ...Option) (*Table, error) {
	l := &loader{log: logger.NoOpLogger{}}
	for _, opt := range opts {
		opt(l)
	}

	var entries []Entry
	if err := yaml.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	table := &Table{
		entries: entries,
		parsed:  make(map[string]*chron.Expression, len(entries)),
	}
	for i, entry := range entries {
		if entry.Name == "" {
			return nil, fmt.Errorf("%w: entry %d has no name", ErrInvalid, i)
		}
		if _, ok := table.parsed[entry.Name]; ok {
			return nil, fmt.Errorf("%w: duplicate entry name %q", ErrInvalid, entry.Name)
		}
		if entry.Schedule == "" {
			return nil, fmt.Errorf("%w: entry %q has no schedule", ErrInvalid, entry.Name)
		}

		parse := chron.Parse
		if entry.Seconds {
			parse = chron.ParseWithSeconds
		}
		expr, err := parse(entry.Schedule)
		if err != nil {
			return nil, fmt.Errorf("entry %q: %w", entry.Name, err)
		}
		table.parsed[entry.Name] = expr
		l.log.Debug("loaded schedule", "name", entry.Name, "schedule", expr.String())
	}
	return table, nil
}

// Get returns the parsed expression for the named entry.
func (t *Table) Get(name string) (*chron.Expression, bool) {
	expr, ok := t.parsed[name]
	return expr, ok
}

// Names returns the entry names in document order.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.entries))
	for _, entry := range t.entries {
		names = append(names, entry.Name)
	}
	return names
}

// Entries returns a copy of the entries in document order.
func (t *Table) Entries() []Entry {
	entries := make([]Entry, len(t.entries))
	copy(entries, t.entries)
	return entries
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}
