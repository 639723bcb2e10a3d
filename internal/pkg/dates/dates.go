package dates

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"voicefront/internal/pkg/clock"
	"voicefront/internal/pkg/errs"

	"github.com/araddon/dateparse"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var (
	ErrNoDate      = errs.New("no date provided")
	ErrUnknownDate = errs.New("could not understand date")
)

// Resolved is a single calendar day. Ranges are expressed as two values.
type Resolved struct {
	Year   int
	Month  time.Month
	Day    int
	Label  string // human form, e.g. "Saturday, February 15, 2025"
	Source string // original input, if resolved from text
}

func (r Resolved) ISO() string {
	return r.Time(time.UTC).Format("2006-01-02")
}

// Compact is the reservation engine's YYYYMMDD wire form.
func (r Resolved) Compact() string {
	return r.Time(time.UTC).Format("20060102")
}

func (r Resolved) Time(loc *time.Location) time.Time {
	return time.Date(r.Year, r.Month, r.Day, 0, 0, 0, 0, loc)
}

func (r Resolved) AddDays(n int) Resolved {
	return FromTime(r.Time(time.UTC).AddDate(0, 0, n), r.Source)
}

func (r Resolved) Before(other Resolved) bool {
	return r.Time(time.UTC).Before(other.Time(time.UTC))
}

func (r Resolved) Equal(other Resolved) bool {
	return r.Year == other.Year && r.Month == other.Month && r.Day == other.Day
}

func FromTime(t time.Time, source string) Resolved {
	return Resolved{
		Year:   t.Year(),
		Month:  t.Month(),
		Day:    t.Day(),
		Label:  t.Format("Monday, January 2, 2006"),
		Source: source,
	}
}

// Resolver turns free-text date expressions into calendar days, anchored to
// "today" in a fixed timezone.
type Resolver struct {
	clock clock.Clock
	loc   *time.Location
	w     *when.Parser
}

func NewResolver(clk clock.Clock, timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, errs.Wrap(err, "invalid timezone")
	}

	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	return &Resolver{clock: clk, loc: loc, w: w}, nil
}

func (r *Resolver) Location() *time.Location {
	return r.loc
}

func (r *Resolver) Today() Resolved {
	return FromTime(clock.Today(r.clock, r.loc), "today")
}

var ordinalDayRe = regexp.MustCompile(`^the\s+(\d{1,2})(?:st|nd|rd|th)?$`)

// ResolveDate resolves expressions like "tomorrow", "next saturday",
// "february 15", "the 20th", "2025-02-15". An unresolvable input is an error,
// never silently today.
func (r *Resolver) ResolveDate(input string) (Resolved, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Resolved{}, ErrNoDate
	}
	lower := strings.ToLower(trimmed)
	today := clock.Today(r.clock, r.loc)

	// "the 15th": next occurrence of that day-of-month on or after today.
	if m := ordinalDayRe.FindStringSubmatch(lower); m != nil {
		day, _ := strconv.Atoi(m[1])
		if day >= 1 && day <= 31 {
			return r.resolveOrdinalDay(day, today, trimmed)
		}
		return Resolved{}, errs.Mark(errs.Newf("day of month out of range: %q", trimmed), ErrUnknownDate)
	}

	if t, ok := r.resolveNatural(lower, today); ok {
		return r.finish(t, today, trimmed, lower)
	}

	// Last resort: literal formats ("2025-02-15", "2/15/2025", "Feb 15 2025").
	if t, err := dateparse.ParseIn(trimmed, r.loc); err == nil {
		return r.finish(t, today, trimmed, lower)
	}

	return Resolved{}, errs.Mark(errs.Newf("unparseable date: %q", trimmed), ErrUnknownDate)
}

func (r *Resolver) resolveNatural(lower string, today time.Time) (time.Time, bool) {
	res, err := r.w.Parse(lower, today)
	if err != nil || res == nil {
		return time.Time{}, false
	}
	// Reject partial matches like "kayak friday pizza" unless the remainder is
	// only ordinal suffix noise.
	matched := strings.TrimSpace(lower[:res.Index]) + strings.TrimSpace(lower[res.Index+len(res.Text):])
	if cleaned := strings.Trim(matched, " ,."); cleaned != "" && !isOrdinalNoise(cleaned) {
		return time.Time{}, false
	}
	return res.Time, true
}

func isOrdinalNoise(s string) bool {
	switch s {
	case "st", "nd", "rd", "th", "of", "on", "the":
		return true
	}
	return false
}

func (r *Resolver) resolveOrdinalDay(day int, today time.Time, source string) (Resolved, error) {
	candidate := time.Date(today.Year(), today.Month(), day, 0, 0, 0, 0, r.loc)
	if candidate.Day() != day {
		// e.g. "the 31st" in a 30-day month
		candidate = rollToMonthWithDay(today, day, r.loc)
	}
	if candidate.Before(today) {
		candidate = rollToMonthWithDay(candidate.AddDate(0, 1, 0), day, r.loc)
	}
	if candidate.Day() != day {
		return Resolved{}, errs.Mark(errs.Newf("no upcoming month has day %d", day), ErrUnknownDate)
	}
	return FromTime(candidate, source), nil
}

func rollToMonthWithDay(from time.Time, day int, loc *time.Location) time.Time {
	t := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, loc)
	for range 12 {
		candidate := time.Date(t.Year(), t.Month(), day, 0, 0, 0, 0, loc)
		if candidate.Day() == day {
			return candidate
		}
		t = t.AddDate(0, 1, 0)
	}
	return time.Date(from.Year(), from.Month(), day, 0, 0, 0, 0, loc)
}

var yearRe = regexp.MustCompile(`\b\d{4}\b`)

func (r *Resolver) finish(t time.Time, today time.Time, source, lower string) (Resolved, error) {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.loc)
	// "february 15" with no year means the next occurrence, not last year's.
	if day.Before(today) && !yearRe.MatchString(lower) && lower != "yesterday" {
		day = day.AddDate(1, 0, 0)
	}
	return FromTime(day, source), nil
}
