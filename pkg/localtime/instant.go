package localtime

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Instant is a point in time as milliseconds since the Unix epoch (UTC)
type Instant int64

// dateStringLayout matches the JavaScript Date.toString form without the
// trailing zone comment, e.g. "Fri Jan 12 2018 20:15:13 GMT+0800"
const dateStringLayout = "Mon Jan 02 2006 15:04:05 GMT-0700"

// trailingComment strips a "(+08)" or "(Australia/Sydney)" suffix
var trailingComment = regexp.MustCompile(`\s*\([^)]*\)\s*$`)

// InstantOf converts a time.Time to an Instant, truncating to milliseconds
func InstantOf(t time.Time) Instant {
	return Instant(t.UnixMilli())
}

// Time returns the instant as a UTC time.Time
func (i Instant) Time() time.Time {
	return time.UnixMilli(int64(i)).UTC()
}

// ParseInstant parses epoch milliseconds, RFC 3339, or a Date.toString style
// string such as "Fri Jan 12 2018 20:15:13 GMT+0800 (+08)".
func ParseInstant(s string) (Instant, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty instant")
	}

	if ms, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Instant(ms), nil
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return InstantOf(t), nil
	}

	t, err := time.Parse(dateStringLayout, trailingComment.ReplaceAllString(s, ""))
	if err != nil {
		return 0, fmt.Errorf("invalid instant %q: expected epoch milliseconds, RFC 3339 or %q", s, dateStringLayout)
	}
	return InstantOf(t), nil
}
