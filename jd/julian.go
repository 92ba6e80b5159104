package jd

//JDN 0 is January 1st of this proleptic Julian year.
const julianEpochYear = -4712

//Inclusive (year, ordinal) limits of FromJulian, from ToJulian(math.MinInt32)
//and ToJulian(math.MaxInt32).
const (
	JulianMinYear    = -5884202
	JulianMinOrdinal = 75
	JulianMaxYear    = 5874777
	JulianMaxOrdinal = 290
)

//IsJulianLeap reports whether year has 366 days under the Julian rule.
func IsJulianLeap(year int32) bool {
	return year%4 == 0
}

//JulianYearLength returns the number of days in a proleptic Julian year.
func JulianYearLength(year int32) int {
	if IsJulianLeap(year) {
		return daysPerYear + 1
	}
	return daysPerYear
}

//ToJulian converts a Julian day number to a proleptic Julian year and 1-based
//day of year. It is defined for every int32.
func ToJulian(jdn int32) (year int32, ordinal int) {
	y, o := decompose(int64(jdn))
	return int32(y + julianEpochYear), o
}

//FromJulian converts a proleptic Julian year and day of year to a Julian day
//number. It reports false if ordinal is not a day of year or the result does
//not fit in an int32.
func FromJulian(year int32, ordinal int) (int32, bool) {
	if ordinal < 1 || ordinal > JulianYearLength(year) {
		return 0, false
	}
	if yearOrdinalBefore(int64(year), ordinal, JulianMinYear, JulianMinOrdinal) ||
		yearOrdinalBefore(JulianMaxYear, JulianMaxOrdinal, int64(year), ordinal) {
		return 0, false
	}
	return int32(compose(int64(year)-julianEpochYear, ordinal)), true
}
