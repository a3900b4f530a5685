package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/rickb777/date/period"
)

var hoursRegExp = regexp.MustCompile(`(\d+)h`)
var minutesRegExp = regexp.MustCompile(`(\d+)m`)

// ParseCompactDuration reads durations in the compact "2h30m" form used by
// interval settings. Either token may be missing; anything unrecognized
// contributes zero. It never fails.
func ParseCompactDuration(s string) time.Duration {
	var hours, minutes int

	if m := hoursRegExp.FindStringSubmatch(s); m != nil {
		hours, _ = strconv.Atoi(m[1])
	}

	if m := minutesRegExp.FindStringSubmatch(s); m != nil {
		minutes, _ = strconv.Atoi(m[1])
	}

	return time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute
}

// RunDuration reports the elapsed time since startTime as fractional days,
// plus a human readable breakdown.
func RunDuration(startTime time.Time) (days float64, breakdown string) {
	elapsed := time.Since(startTime)
	return elapsed.Hours() / 24.0, DurationBreakdown(elapsed)
}

// DurationBreakdown renders d as "{Y}Y{M}M{D}D {H}H{m}m{s}s". The
// year/month split follows the period library's convention, which
// approximates calendar lengths. Good enough for uptime reporting, do not
// use it for calendar math.
func DurationBreakdown(d time.Duration) string {
	p, _ := period.NewOf(d)
	return fmt.Sprintf("%dY%dM%dD %dH%dm%ds",
		p.Years(), p.Months(), p.Days(),
		p.Hours(), p.Minutes(), p.Seconds())
}

const (
	millisPerSecond = int64(1000)
	millisPerMinute = 60 * millisPerSecond
	millisPerHour   = 60 * millisPerMinute
	millisPerDay    = 24 * millisPerHour
	millisPerMonth  = 30 * millisPerDay
	millisPerYear   = 365 * millisPerDay
)

// Breakdown is a millisecond count split into coarse units.
type Breakdown struct {
	Years   int64
	Months  int64
	Days    int64
	Hours   int64
	Minutes int64
	Seconds int64
}

// MillisBreakdown decomposes a millisecond count with fixed divisors,
// 1 year = 365 days and 1 month = 30 days. This is intentionally not
// calendar-accurate: the same input always yields the same output.
func MillisBreakdown(millis int64) Breakdown {
	var b Breakdown

	b.Years = millis / millisPerYear
	millis %= millisPerYear

	b.Months = millis / millisPerMonth
	millis %= millisPerMonth

	b.Days = millis / millisPerDay
	millis %= millisPerDay

	b.Hours = millis / millisPerHour
	millis %= millisPerHour

	b.Minutes = millis / millisPerMinute
	millis %= millisPerMinute

	b.Seconds = millis / millisPerSecond

	return b
}

// Millis reassembles the breakdown with the same fixed divisors that
// MillisBreakdown uses. Sub-second precision is lost.
func (b Breakdown) Millis() int64 {
	return b.Years*millisPerYear +
		b.Months*millisPerMonth +
		b.Days*millisPerDay +
		b.Hours*millisPerHour +
		b.Minutes*millisPerMinute +
		b.Seconds*millisPerSecond
}
