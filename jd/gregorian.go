package jd

const (
	daysPerCentury     = 100*daysPerYear + 24
	daysPerQuadCentury = 4*daysPerCentury + 1
)

//Two January 1sts of 400-aligned Gregorian years. ToGregorian counts from the
//one nearer to its input so intermediate values stay small. Both give the same
//answer for every input.
const (
	negAnchorYear   = -4800
	negAnchorJDN    = -32104
	posAnchorYear   = 2000
	posAnchorJDN    = 2451545
	anchorThreshold = (negAnchorJDN + posAnchorJDN) / 2
)

//Inclusive (year, ordinal) limits of FromGregorian, from
//ToGregorian(math.MinInt32) and ToGregorian(math.MaxInt32).
const (
	GregorianMinYear    = -5884323
	GregorianMinOrdinal = 135
	GregorianMaxYear    = 5874898
	GregorianMaxOrdinal = 154
)

//IsGregorianLeap reports whether year has 366 days under the Gregorian rule.
func IsGregorianLeap(year int32) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

//GregorianYearLength returns the number of days in a proleptic Gregorian year.
func GregorianYearLength(year int32) int {
	if IsGregorianLeap(year) {
		return daysPerYear + 1
	}
	return daysPerYear
}

//ToGregorian converts a Julian day number to a proleptic Gregorian year and
//1-based day of year. It is defined for every int32.
func ToGregorian(jdn int32) (year int32, ordinal int) {
	if int64(jdn) < anchorThreshold {
		return gregorianFromAnchor(int64(jdn), negAnchorYear, negAnchorJDN)
	}
	return gregorianFromAnchor(int64(jdn), posAnchorYear, posAnchorJDN)
}

func gregorianFromAnchor(jdn, anchorYear, anchorJDN int64) (int32, int) {
	y, o := gregorianCycle(jdn - anchorJDN)
	return int32(anchorYear + y), o
}

//gregorianCycle is decompose for a 400-year cycle starting on January 1st of a
//leap centennial year.
func gregorianCycle(days int64) (years int64, ordinal int) {
	cycles, rem := floorDivMod(days, daysPerQuadCentury)
	//Give each of the three common centennial years a virtual 366th day, so the
	//cycle looks like 100 plain 4-year cycles. Truncated division on purpose:
	//the first year of the cycle gets no correction.
	if pastFirstYear := rem - (daysPerYear + 1); pastFirstYear > 0 {
		rem += pastFirstYear / daysPerCentury
	}
	y, o := decompose(rem)
	return cycles*400 + y, o
}

//FromGregorian converts a proleptic Gregorian year and day of year to a Julian
//day number. It reports false if ordinal is not a day of year or the result
//does not fit in an int32.
func FromGregorian(year int32, ordinal int) (int32, bool) {
	if ordinal < 1 || ordinal > GregorianYearLength(year) {
		return 0, false
	}
	if yearOrdinalBefore(int64(year), ordinal, GregorianMinYear, GregorianMinOrdinal) ||
		yearOrdinalBefore(GregorianMaxYear, GregorianMaxOrdinal, int64(year), ordinal) {
		return 0, false
	}
	y := int64(year) - posAnchorYear
	return int32(posAnchorJDN + compose(y, ordinal) - commonCentennials(y)), true
}

//commonCentennials counts the non-leap centennial years in [0, years) of a
//calendar whose year 0 is a leap centennial. Negative for negative years.
func commonCentennials(years int64) int64 {
	centuries, _ := floorDivMod(years-1, 100)
	quadCenturies, _ := floorDivMod(years-1, 400)
	return centuries - quadCenturies
}
