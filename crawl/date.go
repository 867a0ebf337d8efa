package crawl

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/fwojciec/goose"
)

// ParsePublishDate parses a publish date in any common layout. Dates with a
// zone are converted to UTC; dates without one keep their wall clock.
// Failures, including inputs that overflow into a year outside 1-9999,
// return a *goose.DateParseError.
func ParsePublishDate(s string) (time.Time, error) {
	t, err := dateparse.ParseIn(strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, &goose.DateParseError{Value: s, Err: err}
	}
	t = t.UTC()
	if y := t.Year(); y < 1 || y > 9999 {
		return time.Time{}, &goose.DateParseError{Value: s, Err: fmt.Errorf("year %d out of range", y)}
	}
	return t, nil
}
