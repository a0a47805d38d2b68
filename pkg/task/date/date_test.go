package date

import (
	"testing"
	"time"

	"github.com/matryer/is"
)

// monday pins the clock to Monday 1 March 2021, 10:00.
var monday = time.Date(2021, time.March, 1, 10, 0, 0, 0, time.Local)

func on(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, time.Local)
}

func TestResolve(t *testing.T) {
	for _, tt := range []struct {
		phrase string
		want   time.Time
	}{
		{"today", on(2021, time.March, 1, 23, 59)},
		{"tod", on(2021, time.March, 1, 23, 59)},
		{"tomorrow", on(2021, time.March, 2, 23, 59)},
		{"Tomorrow", on(2021, time.March, 2, 23, 59)},
		{"tom", on(2021, time.March, 2, 23, 59)},
		{"tmr", on(2021, time.March, 2, 23, 59)},

		// bare weekday means the next occurrence, never today
		{"monday", on(2021, time.March, 8, 23, 59)},
		{"next monday", on(2021, time.March, 8, 23, 59)},
		{"fri", on(2021, time.March, 5, 23, 59)},
		{"Friday", on(2021, time.March, 5, 23, 59)},

		{"in 2 weeks", on(2021, time.March, 15, 23, 59)},
		{"in 1 day", on(2021, time.March, 2, 23, 59)},
		{"3 days", on(2021, time.March, 4, 23, 59)},
		{"2w", on(2021, time.March, 15, 23, 59)},
		{"7", on(2021, time.March, 8, 23, 59)},
		{"in 1 month", on(2021, time.April, 1, 23, 59)},
		{"in 1 year", on(2022, time.March, 1, 23, 59)},

		{"20/04/21", on(2021, time.April, 20, 23, 59)},
		{"20/04/2021", on(2021, time.April, 20, 23, 59)},
		{"2 Jan 2022", on(2022, time.January, 2, 23, 59)},
		{"2 January 2022", on(2022, time.January, 2, 23, 59)},
		{"2021-12-31", on(2021, time.December, 31, 23, 59)},
		{"17 march", on(2021, time.March, 17, 23, 59)},
		{"25 feb", on(2022, time.February, 25, 23, 59)},

		{"2:30pm", on(2021, time.March, 1, 14, 30)},
		{"12pm", on(2021, time.March, 1, 12, 0)},
		{"22:30", on(2021, time.March, 1, 22, 30)},
		{"15h", on(2021, time.March, 1, 15, 0)},
		{"at 3pm", on(2021, time.March, 1, 15, 0)},
		{"at 3", on(2021, time.March, 1, 15, 0)},
		{"at 12", on(2021, time.March, 1, 12, 0)},
		{"at 15", on(2021, time.March, 1, 15, 0)},

		// instants already past roll to tomorrow
		{"at 9am", on(2021, time.March, 2, 9, 0)},
		{"at 9", on(2021, time.March, 2, 9, 0)},
		{"9:00", on(2021, time.March, 2, 9, 0)},
		{"12am", on(2021, time.March, 2, 0, 0)},

		{"friday at 2pm", on(2021, time.March, 5, 14, 0)},
		{"friday 2pm", on(2021, time.March, 5, 14, 0)},
		{"2pm friday", on(2021, time.March, 5, 14, 0)},
		{"at 3pm tomorrow", on(2021, time.March, 2, 15, 0)},
		{"tomorrow at 9", on(2021, time.March, 2, 9, 0)},
		{"tomorrow 22:30", on(2021, time.March, 2, 22, 30)},
		{"next tue at 8am", on(2021, time.March, 2, 8, 0)},
	} {
		t.Run(tt.phrase, func(t *testing.T) {
			got, ok := Resolve(tt.phrase, monday)
			if !ok {
				t.Fatalf("Resolve(%q) not recognized", tt.phrase)
			}
			if !got.Equal(tt.want) {
				t.Fatalf("Resolve(%q) = %v, want %v", tt.phrase, got, tt.want)
			}
		})
	}
}

func TestResolveRejects(t *testing.T) {
	for _, phrase := range []string{
		"",
		"soon",
		"buy milk",
		"13pm",
		"0pm",
		"at 25",
		"24:00",
		"3:5pm",
		"in five days",
		"in 3 boxes",
		"32/01/21",
		"tomorrow maybe",
	} {
		t.Run(phrase, func(t *testing.T) {
			if got, ok := Resolve(phrase, monday); ok {
				t.Fatalf("Resolve(%q) = %v, want no match", phrase, got)
			}
		})
	}
}

func TestFind(t *testing.T) {
	t.Run("prefers day with time", func(t *testing.T) {
		is := is.New(t)
		text := "ship the release tomorrow at 5pm"
		m, ok := Find(text, monday)
		is.True(ok)
		is.Equal(text[m.Start:m.End], "tomorrow at 5pm")
		is.Equal(m.Time, on(2021, time.March, 2, 17, 0))
	})

	t.Run("time then day", func(t *testing.T) {
		is := is.New(t)
		text := "standup 9am tomorrow"
		m, ok := Find(text, monday)
		is.True(ok)
		is.Equal(text[m.Start:m.End], "9am tomorrow")
		is.Equal(m.Time, on(2021, time.March, 2, 9, 0))
	})

	t.Run("slash date", func(t *testing.T) {
		is := is.New(t)
		text := "pay rent 20/04/21"
		m, ok := Find(text, monday)
		is.True(ok)
		is.Equal(text[m.Start:m.End], "20/04/21")
		is.Equal(m.Time, on(2021, time.April, 20, 23, 59))
	})

	t.Run("ignores partial words", func(t *testing.T) {
		is := is.New(t)
		text := "todo list for monday"
		m, ok := Find(text, monday)
		is.True(ok)
		is.Equal(text[m.Start:m.End], "monday")
		is.Equal(m.Time, on(2021, time.March, 8, 23, 59))
	})

	t.Run("unresolvable spans are skipped", func(t *testing.T) {
		is := is.New(t)
		_, ok := Find("pack in 3 boxes", monday)
		is.True(!ok)
	})

	t.Run("no reference", func(t *testing.T) {
		is := is.New(t)
		_, ok := Find("sweep the garage", monday)
		is.True(!ok)
	})
}

func TestDayBounds(t *testing.T) {
	is := is.New(t)
	is.Equal(StartOfDay(monday), on(2021, time.March, 1, 0, 0))
	is.Equal(EndOfDay(monday), on(2021, time.March, 1, 23, 59))
}
