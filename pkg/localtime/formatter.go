// Package localtime renders an instant as a full descriptive timestamp and
// a short time-of-day, optionally in an explicit IANA timezone.
package localtime

import (
	"strings"
	"time"
)

const (
	fullLayout     = dateStringLayout
	militaryLayout = "15:04"
	civilLayout    = "3:04 PM"
)

// DisplayConfig selects what to render and how
type DisplayConfig struct {
	EventTime       Instant
	EnableTimezone  bool   // render in TimeZone instead of the local zone
	TimeZone        string // IANA name, only consulted when EnableTimezone is set
	UseMilitaryTime bool   // 24-hour short form without AM/PM
}

// Result holds both renderings of one instant in one resolved zone
type Result struct {
	Full     string         `json:"full"`
	Short    string         `json:"short"`
	Location *time.Location `json:"-"`
	Named    bool           `json:"named"`
	Fallback bool           `json:"fallback"`
}

// Formatter renders instants. The zero value uses the host's local zone.
type Formatter struct {
	Local *time.Location
}

// Option configures a Formatter
type Option func(*Formatter)

// WithLocal injects the zone treated as "local", making output independent
// of host state.
func WithLocal(loc *time.Location) Option {
	return func(f *Formatter) {
		f.Local = loc
	}
}

// New creates a Formatter
func New(opts ...Option) *Formatter {
	f := &Formatter{}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format renders cfg using the host's local zone as the fallback
func Format(cfg DisplayConfig) Result {
	return (&Formatter{}).Format(cfg)
}

func (f *Formatter) local() *time.Location {
	if f == nil || f.Local == nil {
		return time.Local
	}
	return f.Local
}

// ResolveZone returns the zone cfg renders in. named reports whether an
// explicit IANA zone was used; fallback reports that one was requested but
// could not be resolved. Names match the database case-sensitively, so
// "utc" or "europe/paris" fall back.
func (f *Formatter) ResolveZone(cfg DisplayConfig) (loc *time.Location, named, fallback bool) {
	if !cfg.EnableTimezone {
		return f.local(), false, false
	}

	name := strings.TrimSpace(cfg.TimeZone)
	if name == "" {
		return f.local(), false, true
	}
	if name == "Local" {
		return f.local(), false, false
	}

	zone, err := time.LoadLocation(name)
	if err != nil {
		return f.local(), false, true
	}
	return zone, true, false
}

// Format renders cfg. It never fails: an unknown zone renders in the local
// zone with Fallback set.
func (f *Formatter) Format(cfg DisplayConfig) Result {
	loc, named, fallback := f.ResolveZone(cfg)
	t := cfg.EventTime.Time().In(loc)

	full := t.Format(fullLayout)
	if named {
		full += " (" + loc.String() + ")"
	}

	short := t.Format(civilLayout)
	if cfg.UseMilitaryTime {
		short = t.Format(militaryLayout)
	}

	return Result{
		Full:     full,
		Short:    short,
		Location: loc,
		Named:    named,
		Fallback: fallback,
	}
}
