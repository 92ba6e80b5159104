package jd

import "time"

//daysBefore[m] is the number of days before month m+1 in a common year.
var daysBefore = [...]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334, 365}

//MonthLength returns the number of days in month, which must be in
//January..December.
func MonthLength(month time.Month, leap bool) int {
	if month == time.February && leap {
		return 29
	}
	return daysBefore[month] - daysBefore[month-1]
}

//MonthDayToOrdinal returns the 1-based day of year of a month and day.
//No validation is done on day.
func MonthDayToOrdinal(month time.Month, day int, leap bool) int {
	ordinal := daysBefore[month-1] + day
	if leap && month > time.February {
		ordinal++
	}
	return ordinal
}

//OrdinalToMonthDay splits a 1-based day of year into month and day.
//ordinal must be in 1..365, or 1..366 when leap.
func OrdinalToMonthDay(ordinal int, leap bool) (time.Month, int) {
	if leap {
		switch {
		case ordinal == 60:
			return time.February, 29
		case ordinal > 60:
			ordinal--
		}
	}
	//No month is longer than 31 days, so this guess is at most one short.
	m := (ordinal-1)/31 + 1
	if ordinal > daysBefore[m] {
		m++
	}
	return time.Month(m), ordinal - daysBefore[m-1]
}
