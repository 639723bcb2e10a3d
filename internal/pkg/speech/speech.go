// Package speech formats values for text-to-speech playback. Everything here
// returns short, pronounceable strings rather than raw data.
package speech

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Phone returns a speakable reference to a phone number without reading the
// whole number back, e.g. "ending in 123". Empty input yields an empty string.
func Phone(raw, defaultRegion string) string {
	digits := Digits(raw, defaultRegion)
	if len(digits) < 3 {
		return ""
	}
	return fmt.Sprintf("ending in %s", digits[len(digits)-3:])
}

// Digits normalises a phone number to its significant digits. Falls back to
// stripping non-digits when the number cannot be parsed.
func Digits(raw, defaultRegion string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if num, err := phonenumbers.Parse(trimmed, defaultRegion); err == nil && phonenumbers.IsValidNumber(num) {
		return phonenumbers.GetNationalSignificantNumber(num)
	}
	var b strings.Builder
	for _, r := range trimmed {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FirstName returns the leading word of a full name, for friendly prompts.
func FirstName(fullName string) string {
	fields := strings.Fields(strings.TrimSpace(fullName))
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// SplitName divides a full name into first and last parts. A single word
// becomes the first name with an empty last name.
func SplitName(fullName string) (first, last string) {
	fields := strings.Fields(strings.TrimSpace(fullName))
	switch len(fields) {
	case 0:
		return "", ""
	case 1:
		return fields[0], ""
	default:
		return fields[0], strings.Join(fields[1:], " ")
	}
}

// JoinList renders items as spoken enumeration: "a, b, or c".
func JoinList(items []string, conjunction string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " " + conjunction + " " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", " + conjunction + " " + items[len(items)-1]
	}
}
