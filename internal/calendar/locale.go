package calendar

import (
	"fmt"
	"strings"
)

// Locale selects the language of the header and weekday row.
type Locale int

const (
	LocaleOther Locale = iota
	LocaleJA
)

var gregorianMonths = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var (
	gregorianWeekDays = []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"}
	japaneseWeekDays  = []string{"日", "月", "火", "水", "木", "金", "土"}
)

// Names holds the locale-specific text used to render one month.
type Names struct {
	WeekDays []string
	title    func(month, year int) string
}

// Title returns the unpadded header for month and year.
func (n Names) Title(month, year int) string {
	return n.title(month, year)
}

// Names resolves the name tables for l.
func (l Locale) Names() Names {
	if l == LocaleJA {
		return Names{
			WeekDays: japaneseWeekDays,
			title: func(month, year int) string {
				return fmt.Sprintf("%d月 %d", month, year)
			},
		}
	}
	return Names{
		WeekDays: gregorianWeekDays,
		title: func(month, year int) string {
			return fmt.Sprintf("%s %d", gregorianMonths[month-1], year)
		},
	}
}

func (l Locale) String() string {
	if l == LocaleJA {
		return "ja"
	}
	return "en"
}

// LocaleFromSignal maps a locale environment value such as "ja_JP.UTF-8".
func LocaleFromSignal(v string) Locale {
	if strings.HasPrefix(v, "ja") {
		return LocaleJA
	}
	return LocaleOther
}

// ParseLocale accepts the names printed by Locale.String.
func ParseLocale(s string) (Locale, error) {
	switch strings.ToLower(s) {
	case "ja":
		return LocaleJA, nil
	case "en":
		return LocaleOther, nil
	}
	return LocaleOther, fmt.Errorf("unknown locale %q (want ja or en)", s)
}
