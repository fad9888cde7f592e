// Package timer parses the work timer log and renders activity reports.
//
// The log holds one line per tracked session:
//
//	[2024-03-04 09:12:44] = [01:30:00]
//
// Durations are summed per calendar date.
package timer

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"slices"
	"strconv"
	"time"
)

// DateLayout is the date format used in the log and in reports.
const DateLayout = "2006-01-02"

// ErrNoEntries is returned when a log contains no session lines.
var ErrNoEntries = errors.New("no timer entries")

var lineRe = regexp.MustCompile(`^\[(\d{4}-\d{2}-\d{2}) .*?\] = \[(\d{2}):(\d{2}):(\d{2})\]`)

// Log maps a date (DateLayout) to the seconds worked on it.
type Log map[string]int

// Day is the total for a single date.
type Day struct {
	Date    time.Time
	Seconds int
}

// Hours returns the day's total in hours.
func (d Day) Hours() float64 {
	return float64(d.Seconds) / 3600
}

// Parse reads a timer log. Lines that do not match are ignored.
func Parse(r io.Reader) (Log, error) {
	log := Log{}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		m := lineRe.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		if _, err := time.Parse(DateLayout, m[1]); err != nil {
			continue
		}
		h, _ := strconv.Atoi(m[2])
		mins, _ := strconv.Atoi(m[3])
		sec, _ := strconv.Atoi(m[4])
		log[m[1]] += h*3600 + mins*60 + sec
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read timer log: %w", err)
	}
	if len(log) == 0 {
		return nil, ErrNoEntries
	}
	return log, nil
}

// ParseFile parses the log at path.
func ParseFile(path string) (Log, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Days returns the per-date totals in chronological order.
func (l Log) Days() []Day {
	days := make([]Day, 0, len(l))
	for date, secs := range l {
		t, err := time.Parse(DateLayout, date)
		if err != nil {
			continue
		}
		days = append(days, Day{Date: t, Seconds: secs})
	}
	slices.SortFunc(days, func(a, b Day) int { return a.Date.Compare(b.Date) })
	return days
}

// Total returns the time worked across all dates.
func (l Log) Total() time.Duration {
	var secs int
	for _, s := range l {
		secs += s
	}
	return time.Duration(secs) * time.Second
}

// Busiest returns the day with the most time worked. Ties go to the
// earliest date.
func (l Log) Busiest() (Day, bool) {
	var best Day
	found := false
	for _, d := range l.Days() {
		if !found || d.Seconds > best.Seconds {
			best, found = d, true
		}
	}
	return best, found
}

// Last returns the most recent date in the log.
func (l Log) Last() (time.Time, bool) {
	days := l.Days()
	if len(days) == 0 {
		return time.Time{}, false
	}
	return days[len(days)-1].Date, true
}
