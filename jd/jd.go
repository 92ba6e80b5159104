//Package jd converts between Julian day numbers and proleptic Julian and
//Gregorian dates.
//
//A Julian day number (JDN) is an int32 count of days from January 1st, 4713 BC
//in the proleptic Julian calendar (year -4712, astronomical numbering).
//Converting a JDN to a date never fails. Converting a date to a JDN fails,
//by returning false, only when the day does not exist or falls outside int32.
package jd

import "time"

//J2YMD converts a Julian day number to a proleptic Gregorian year, month and day
//y, m, d := jd.J2YMD(2453738);
//y==2006 && m==time.January && d==2 //=> true
func J2YMD(jdn int32) (int32, time.Month, int) {
	y, o := ToGregorian(jdn)
	m, d := OrdinalToMonthDay(o, IsGregorianLeap(y))
	return y, m, d
}

//YMD2J converts a proleptic Gregorian year, month and day to a Julian day number
//jd.YMD2J(2006, time.January, 2) == 2453738, true //=> true
func YMD2J(year int32, month time.Month, day int) (int32, bool) {
	leap := IsGregorianLeap(year)
	if !validMonthDay(month, day, leap) {
		return 0, false
	}
	return FromGregorian(year, MonthDayToOrdinal(month, day, leap))
}

//JulianJ2YMD converts a Julian day number to a proleptic Julian year, month and day
//y, m, d := jd.JulianJ2YMD(0);
//y==-4712 && m==time.January && d==1 //=> true
func JulianJ2YMD(jdn int32) (int32, time.Month, int) {
	y, o := ToJulian(jdn)
	m, d := OrdinalToMonthDay(o, IsJulianLeap(y))
	return y, m, d
}

//JulianYMD2J converts a proleptic Julian year, month and day to a Julian day number
func JulianYMD2J(year int32, month time.Month, day int) (int32, bool) {
	leap := IsJulianLeap(year)
	if !validMonthDay(month, day, leap) {
		return 0, false
	}
	return FromJulian(year, MonthDayToOrdinal(month, day, leap))
}

func validMonthDay(month time.Month, day int, leap bool) bool {
	return month >= time.January && month <= time.December &&
		day >= 1 && day <= MonthLength(month, leap)
}
