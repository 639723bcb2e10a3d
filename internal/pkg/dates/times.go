package dates

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"voicefront/internal/pkg/errs"
)

var (
	ErrUnknownTime     = errs.New("could not understand time of day")
	ErrUnknownDuration = errs.New("could not understand duration")
)

type TimeOfDay struct {
	Hour   int
	Minute int
}

func (t TimeOfDay) String() string {
	return time.Date(0, 1, 1, t.Hour, t.Minute, 0, 0, time.UTC).Format("3:04 PM")
}

var clockRe = regexp.MustCompile(`(?i)\b(\d{1,2})(?::(\d{2}))?\s*(am|pm|a\.m\.|p\.m\.)?\b`)

// ResolveTimeOfDay accepts 12-hour ("2pm", "2:30 pm") and 24-hour ("14:30")
// clock expressions. Vague phrases like "afternoon" are not clock times.
func ResolveTimeOfDay(input string) (TimeOfDay, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return TimeOfDay{}, ErrUnknownTime
	}
	if t, ok := casualTimes[strings.ToLower(trimmed)]; ok {
		return t, nil
	}

	m := clockRe.FindStringSubmatch(trimmed)
	if m == nil {
		return TimeOfDay{}, errs.Mark(errs.Newf("unparseable time: %q", trimmed), ErrUnknownTime)
	}

	hour, _ := strconv.Atoi(m[1])
	minute := 0
	if m[2] != "" {
		minute, _ = strconv.Atoi(m[2])
	}
	meridiem := strings.ToLower(strings.ReplaceAll(m[3], ".", ""))

	switch meridiem {
	case "pm":
		if hour < 12 {
			hour += 12
		}
	case "am":
		if hour == 12 {
			hour = 0
		}
	default:
		// Bare "2" with no meridiem and no minutes is ambiguous; bare "14:30" is not.
		if m[2] == "" && hour <= 12 {
			return TimeOfDay{}, errs.Mark(errs.Newf("ambiguous hour without am/pm: %q", trimmed), ErrUnknownTime)
		}
	}

	if hour > 23 || minute > 59 {
		return TimeOfDay{}, errs.Mark(errs.Newf("time out of range: %q", trimmed), ErrUnknownTime)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

var casualTimes = map[string]TimeOfDay{
	"noon":     {Hour: 12},
	"midday":   {Hour: 12},
	"midnight": {Hour: 0},
}

var durationPhrases = map[string]time.Duration{
	"half an hour":         30 * time.Minute,
	"half hour":            30 * time.Minute,
	"an hour":              time.Hour,
	"one hour":             time.Hour,
	"an hour and a half":   90 * time.Minute,
	"hour and a half":      90 * time.Minute,
	"one and a half hours": 90 * time.Minute,
	"ninety minutes":       90 * time.Minute,
}

var durationRe = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?)\s*(hours?|hrs?|minutes?|mins?)\b`)

// ResolveDuration accepts phrases like "90 minutes", "1.5 hours", and a few
// spoken forms ("half an hour").
func ResolveDuration(input string) (time.Duration, error) {
	lower := strings.ToLower(strings.TrimSpace(input))
	if lower == "" {
		return 0, ErrUnknownDuration
	}
	if d, ok := durationPhrases[lower]; ok {
		return d, nil
	}

	var total time.Duration
	for _, m := range durationRe.FindAllStringSubmatch(lower, -1) {
		n, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			continue
		}
		unit := time.Minute
		if strings.HasPrefix(m[2], "h") {
			unit = time.Hour
		}
		total += time.Duration(n * float64(unit))
	}
	if total <= 0 {
		return 0, errs.Mark(errs.Newf("unparseable duration: %q", lower), ErrUnknownDuration)
	}
	return total, nil
}

var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	"eleven": 11, "twelve": 12, "a": 1, "an": 1, "couple": 2,
	"a couple": 2, "a couple of": 2, "a few": 3,
}

var numberWordsByLength = func() []string {
	words := make([]string, 0, len(numberWords))
	for w := range numberWords {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool { return len(words[i]) > len(words[j]) })
	return words
}()

var digitsRe = regexp.MustCompile(`\d+`)

// ResolveQuantity parses a party size from digits or small number words.
// Zero means no quantity was recognised.
func ResolveQuantity(input string) int {
	lower := strings.ToLower(strings.TrimSpace(input))
	if lower == "" {
		return 0
	}
	if n, err := strconv.Atoi(lower); err == nil && n > 0 {
		return n
	}
	if n, ok := numberWords[lower]; ok {
		return n
	}
	// Longest phrase first so "a couple of" beats the bare article "a".
	for _, word := range numberWordsByLength {
		if strings.HasPrefix(lower, word+" ") {
			return numberWords[word]
		}
	}
	if m := digitsRe.FindString(lower); m != "" {
		if n, err := strconv.Atoi(m); err == nil && n > 0 {
			return n
		}
	}
	return 0
}
