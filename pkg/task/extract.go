package task

import (
	"regexp"
	"strings"
	"time"

	"github.com/taskpad/taskpad/pkg/task/date"
)

// Extraction is the structure read out of raw task text. Priority is left
// empty when the text carries no signal; callers apply the default.
type Extraction struct {
	Title    string
	Due      *time.Time
	Tags     []string
	Priority Priority
}

// rules run in order, each over the text left by the previous one. Tags
// go first so "#urgent" is consumed as a tag before the priority rule can
// read it as a keyword, and dates go last so they only see prose.
var rules = []func(text string, x *Extraction, now time.Time) string{
	extractTags,
	extractPriority,
	extractDue,
}

// Extract pulls tags, a priority and a time reference out of raw text,
// leaving the cleaned title. Running it again on a cleaned title with no
// remaining signals is a no-op.
func Extract(raw string, now time.Time) Extraction {
	var x Extraction
	text := raw
	for _, rule := range rules {
		text = rule(text, &x, now)
	}
	x.Title = strings.Join(strings.Fields(text), " ")
	return x
}

var tagRe = regexp.MustCompile(`#(\w+)`)

func extractTags(text string, x *Extraction, _ time.Time) string {
	seen := map[string]bool{}
	return tagRe.ReplaceAllStringFunc(text, func(m string) string {
		tag := strings.ToLower(m[1:])
		if !seen[tag] {
			seen[tag] = true
			x.Tags = append(x.Tags, tag)
		}
		return ""
	})
}

var (
	highLabelRe = regexp.MustCompile(`(?i)^\s*(?:urgent|asap|high)\s*[:!]\s*`)
	lowLabelRe  = regexp.MustCompile(`(?i)^\s*(?:maybe|low|someday)\s*[:!]\s*`)
	highWordRe  = regexp.MustCompile(`(?i)\b(?:urgent|asap|high)\b`)
	lowWordRe   = regexp.MustCompile(`(?i)\b(?:maybe|low|someday)\b`)
)

// extractPriority reads the first priority signal. Only a decorative
// leading label is removed from the text; a keyword inside normal
// sentence flow stays in the title so the title still reads as written.
func extractPriority(text string, x *Extraction, _ time.Time) string {
	if m := highLabelRe.FindString(text); m != "" {
		x.Priority = High
		return text[len(m):]
	}
	if m := lowLabelRe.FindString(text); m != "" {
		x.Priority = Low
		return text[len(m):]
	}
	if highWordRe.MatchString(text) {
		x.Priority = High
		return text
	}
	if lowWordRe.MatchString(text) {
		x.Priority = Low
		return text
	}
	return text
}

func extractDue(text string, x *Extraction, now time.Time) string {
	m, ok := date.Find(text, now)
	if !ok {
		return text
	}
	at := m.Time
	x.Due = &at
	return text[:m.Start] + text[m.End:]
}
