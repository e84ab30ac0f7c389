// Package calendar lays out and renders one month in the style of cal(1).
package calendar

var gregorianMonthDays = []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// IsLeap reports whether year is a leap year in the proleptic Gregorian calendar.
func IsLeap(year int) bool {
	return (year%4 == 0 && year%100 != 0) || (year%400 == 0)
}

// DaysIn returns the number of days in month (1-12) of year.
func DaysIn(year, month int) int {
	if month == 2 && IsLeap(year) {
		return 29
	}
	return gregorianMonthDays[month-1]
}

// FirstWeekday returns the weekday of the 1st of the month, 0 = Sunday.
func FirstWeekday(year, month int) int {
	return weekday(daysFromCivil(year, month, 1))
}

// daysFromCivil counts days since 1970-01-01. Years are shifted to start in
// March so that the leap day is the last day of the computational year.
func daysFromCivil(y, m, d int) int {
	if m <= 2 {
		y--
	}
	era := floorDiv(y, 400)
	yoe := y - era*400
	mp := (m + 9) % 12
	doy := (153*mp+2)/5 + d - 1
	doe := yoe*365 + yoe/4 - yoe/100 + doy
	return era*146097 + doe - 719468
}

// 1970-01-01 was a Thursday.
func weekday(days int) int {
	w := (days + 4) % 7
	if w < 0 {
		w += 7
	}
	return w
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
