package date

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Resolve interprets a natural-language time reference against now and
// returns the absolute instant it names. The second return is false when
// the phrase is not a recognized time reference; callers must treat that
// as "leave the due date unset", not as a failure.
//
// A phrase is a day word ("tomorrow", "friday", "in 2 weeks", "20/04/26"),
// a clock time ("3pm", "at 2:30pm", "22:30"), or a day word combined with
// a clock time in either order ("friday at 2pm", "at 9am monday").
// Day-only phrases default to end of day so a fresh task is never
// immediately overdue. Time-only phrases land on today unless the instant
// has already passed, in which case they roll to tomorrow.
func Resolve(phrase string, now time.Time) (time.Time, bool) {
	s := strings.ToLower(strings.TrimSpace(phrase))
	if s == "" {
		return time.Time{}, false
	}

	if day, rest, ok := parseDay(s, now); ok {
		rest = strings.TrimSpace(rest)
		if rest == "" {
			return EndOfDay(day), true
		}
		if c, rest, ok := parseClock(rest, true); ok && strings.TrimSpace(rest) == "" {
			return withClock(day, c), true
		}
		return time.Time{}, false
	}

	if c, rest, ok := parseClock(s, true); ok {
		rest = strings.TrimSpace(rest)
		if rest == "" {
			at := withClock(StartOfDay(now), c)
			if !at.After(now) {
				at = at.AddDate(0, 0, 1)
			}
			return at, true
		}
		if day, rest, ok := parseDay(rest, now); ok && strings.TrimSpace(rest) == "" {
			return withClock(day, c), true
		}
	}

	return time.Time{}, false
}

// Match is a resolved time reference located inside free text.
type Match struct {
	Start, End int
	Time       time.Time
}

// Find scans free text for time reference phrases and returns the longest
// one that resolves. Candidate spans are located with a single ordered
// alternation so that a day combined with a clock time always beats either
// component alone.
func Find(text string, now time.Time) (Match, bool) {
	var best Match
	found := false
	for _, loc := range phraseRe.FindAllStringIndex(text, -1) {
		t, ok := Resolve(text[loc[0]:loc[1]], now)
		if !ok {
			continue
		}
		if !found || loc[1]-loc[0] > best.End-best.Start {
			best = Match{Start: loc[0], End: loc[1], Time: t}
			found = true
		}
	}
	return best, found
}

const (
	dayExpr = `(?:today|tod|tomorrow|tom|tmr` +
		`|(?:next\s+)?(?:monday|mon|tuesday|tue|wednesday|wed|thursday|thu|friday|fri|saturday|sat|sunday|sun)` +
		`|in\s+\d+\s*[a-z]*` +
		`|\d{1,2}/\d{1,2}/\d{2,4}` +
		`|\d{1,2}\s+(?:january|jan|february|feb|march|mar|april|apr|may|june|jun|july|jul|august|aug|september|sep|october|oct|november|nov|december|dec)(?:\s+\d{4})?)`
	timeExpr = `(?:\d{1,2}:\d{2}\s*(?:am|pm)?|\d{1,2}\s*(?:am|pm)|\d{1,2}h)`
)

var phraseRe = regexp.MustCompile(`(?i)\b(?:` +
	dayExpr + `(?:\s+(?:at\s+)?` + timeExpr + `)?` +
	`|(?:at\s+)?` + timeExpr + `(?:\s+` + dayExpr + `)?` +
	`|at\s+\d{1,2}` +
	`)\b`)

// StartOfDay returns midnight at the start of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns 23:59 on t's calendar day, the default time-of-day for
// date-only references.
func EndOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 0, 0, t.Location())
}

// parseDay consumes a day reference from the front of s and returns the
// target day at midnight plus the unconsumed remainder.
func parseDay(s string, now time.Time) (time.Time, string, bool) {
	tok, rest := cutToken(s)

	switch tok {
	case "today", "tod":
		return StartOfDay(now), rest, true
	case "tomorrow", "tom", "tmr":
		return StartOfDay(now).AddDate(0, 0, 1), rest, true
	case "next":
		if w, ok := parseWeekday(firstToken(rest)); ok {
			_, rest = cutToken(rest)
			return nextWeekday(now, w), rest, true
		}
		return time.Time{}, s, false
	}

	if w, ok := parseWeekday(tok); ok {
		return nextWeekday(now, w), rest, true
	}
	if day, rest, ok := parseOffset(s, now); ok {
		return day, rest, true
	}
	if day, rest, ok := parseAbsolute(s, now); ok {
		return day, rest, true
	}
	return time.Time{}, s, false
}

func parseWeekday(tok string) (time.Weekday, bool) {
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if tok == name || tok == name[:3] {
			return d, true
		}
	}
	return 0, false
}

// nextWeekday returns the next occurrence of w strictly after now, so a
// bare weekday named on its own day means next week, never today.
func nextWeekday(now time.Time, w time.Weekday) time.Time {
	days := int(w - now.Weekday())
	if days <= 0 {
		days += 7
	}
	return StartOfDay(now).AddDate(0, 0, days)
}

type unit struct {
	name string
	add  func(t time.Time, n int) time.Time
}

var units = []unit{
	{"days", func(t time.Time, n int) time.Time { return t.AddDate(0, 0, n) }},
	{"weeks", func(t time.Time, n int) time.Time { return t.AddDate(0, 0, 7*n) }},
	{"months", func(t time.Time, n int) time.Time { return t.AddDate(0, n, 0) }},
	{"years", func(t time.Time, n int) time.Time { return t.AddDate(n, 0, 0) }},
}

// parseOffset handles "in 2 weeks", "3 days", "2w" and friends. A bare
// count with no unit means days.
func parseOffset(s string, now time.Time) (time.Time, string, bool) {
	if tok, rest := cutToken(s); tok == "in" {
		s = rest
	}
	rest, n, ok := cutInt(s)
	if !ok {
		return time.Time{}, s, false
	}
	// digits running straight into punctuation ("20/04/21", "2:30")
	// are a date or clock form, not a day count
	if rest != "" && rest[0] != ' ' && !isLetter(rest[0]) {
		return time.Time{}, s, false
	}
	rest = strings.TrimLeft(rest, " ")
	word := leadingLetters(rest)
	if word == "" {
		return units[0].add(StartOfDay(now), n), rest, true
	}
	for _, u := range units {
		end := min(len(u.name), len(word))
		if u.name[:end] == word {
			return u.add(StartOfDay(now), n), rest[len(word):], true
		}
	}
	return time.Time{}, s, false
}

var absoluteFormats = []string{
	"_2/01/06",
	"_2/01/2006",
	"_2 Jan 2006",
	"_2 January 2006",
	"_2 Jan",
	"_2 January",
	"2006-01-02",
}

// parseAbsolute tries the fixed date formats against up to the first three
// tokens of s, longest first.
func parseAbsolute(s string, now time.Time) (time.Time, string, bool) {
	toks := strings.Fields(s)
	for n := min(3, len(toks)); n >= 1; n-- {
		head := capitalize(toks[:n])
		t, err := parseAnyFormat(head, absoluteFormats)
		if err != nil {
			continue
		}
		year := t.Year()
		if year == 0 {
			// day and month with no year: next occurrence from now
			year = now.Year()
			if md := time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, now.Location()); md.Before(StartOfDay(now)) {
				year++
			}
		}
		day := time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, now.Location())
		return day, strings.Join(toks[n:], " "), true
	}
	return time.Time{}, s, false
}

func parseAnyFormat(s string, formats []string) (time.Time, error) {
	var err error
	for _, f := range formats {
		var t time.Time
		t, err = time.Parse(f, s)
		if err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// capitalize rejoins tokens with month names title-cased, since phrases
// arrive lowercased and time.Parse matches names exactly.
func capitalize(tokens []string) string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		if t != "" && t[0] >= 'a' && t[0] <= 'z' {
			t = string(t[0]-'a'+'A') + t[1:]
		}
		out[i] = t
	}
	return strings.Join(out, " ")
}

type clock struct {
	h, m int
}

// parseClock consumes a clock time from the front of s. An "at" prefix is
// optional for full forms and required for a bare hour, which is
// disambiguated by policy: 1-7 mean PM, 8-11 mean AM, 12 is noon and
// 13-23 read as 24-hour.
func parseClock(s string, allowBare bool) (clock, string, bool) {
	hadAt := false
	if tok, rest := cutToken(s); tok == "at" {
		hadAt = true
		s = rest
	}

	rest, h, ok := cutInt(s)
	if !ok {
		return clock{}, s, false
	}

	m := 0
	hasMin := false
	if strings.HasPrefix(rest, ":") {
		r, mm, ok := cutInt(rest[1:])
		if !ok || len(rest[1:])-len(r) != 2 || mm > 59 {
			return clock{}, s, false
		}
		m, hasMin, rest = mm, true, r
	}

	trimmed := strings.TrimLeft(rest, " ")
	switch {
	case hasWord(trimmed, "pm"):
		if h < 1 || h > 12 {
			return clock{}, s, false
		}
		if h != 12 {
			h += 12
		}
		return clock{h, m}, trimmed[2:], true
	case hasWord(trimmed, "am"):
		if h < 1 || h > 12 {
			return clock{}, s, false
		}
		if h == 12 {
			h = 0
		}
		return clock{h, m}, trimmed[2:], true
	case !hasMin && hasWord(rest, "h"):
		if h > 23 {
			return clock{}, s, false
		}
		return clock{h, 0}, rest[1:], true
	case hasMin:
		if h > 23 {
			return clock{}, s, false
		}
		return clock{h, m}, rest, true
	case hadAt && allowBare:
		switch {
		case h >= 1 && h <= 7:
			h += 12
		case h > 23:
			return clock{}, s, false
		}
		return clock{h, 0}, rest, true
	}
	return clock{}, s, false
}

// hasWord reports whether s starts with the word prefix and the word
// ends there, so "pm" matches "pm monday" but not "pmx".
func hasWord(s, prefix string) bool {
	if !strings.HasPrefix(s, prefix) {
		return false
	}
	rest := s[len(prefix):]
	return rest == "" || !isLetter(rest[0])
}

func withClock(day time.Time, c clock) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), c.h, c.m, 0, 0, day.Location())
}

func cutToken(s string) (string, string) {
	s = strings.TrimLeft(s, " ")
	i := strings.IndexByte(s, ' ')
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i+1:]
}

func firstToken(s string) string {
	tok, _ := cutToken(s)
	return tok
}

func cutInt(s string) (string, int, bool) {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 0 {
		return s, 0, false
	}
	n, err := strconv.Atoi(s[:i])
	if err != nil {
		return s, 0, false
	}
	return s[i:], n, true
}

func leadingLetters(s string) string {
	i := 0
	for i < len(s) && isLetter(s[i]) {
		i++
	}
	return s[:i]
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
