package jd

import "fmt"

//Day counts of the idealized "every 4th year is leap" cycle.
//The leap year is the first year of each cycle.
const (
	daysPerYear = 365
	daysPerQuad = 4*daysPerYear + 1
)

//Inclusive (years, ordinal) limits of Compose. Anything past them would not
//fit in an int32 day offset. Derived from Decompose(math.MinInt32) and
//Decompose(math.MaxInt32).
const (
	composeMinYear    = -5879490
	composeMinOrdinal = 75
	composeMaxYear    = 5879489
	composeMaxOrdinal = 290
)

//floorDivMod is Euclidean division for a positive divisor: r is always in [0, b).
func floorDivMod(a, b int64) (q, r int64) {
	q, r = a/b, a%b
	if r < 0 {
		q--
		r += b
	}
	return q, r
}

//Decompose splits a day offset into whole years and a 1-based day of year,
//counting from the start of a year that begins a 4-year cycle whose first year
//has 366 days and whose other three have 365.
//
//Every int32 offset is accepted, including math.MinInt32 and math.MaxInt32.
func Decompose(days int32) (years int32, ordinal int) {
	y, o := decompose(int64(days))
	return int32(y), o
}

func decompose(days int64) (years int64, ordinal int) {
	quads, rem := floorDivMod(days, daysPerQuad)
	//Pad every 365-day year with a virtual 366th day so one division by 366
	//finishes the split. The virtual days are never the result.
	if rem > daysPerYear {
		rem += (rem - (daysPerYear + 1)) / daysPerYear
	}
	return quads*4 + rem/(daysPerYear+1), int(rem%(daysPerYear+1)) + 1
}

//Compose is the inverse of Decompose. It reports false when the result does
//not fit in an int32 or when ordinal is past the length of the year: 366 for
//the first year of a cycle, 365 for the other three.
//
//The ordinal must be at least 1. Passing 0 or less is a bug in the caller and
//panics in builds tagged jddebug.
func Compose(years int32, ordinal int) (int32, bool) {
	if ordinal > daysPerYear+1 {
		return 0, false
	}
	if _, y := floorDivMod(int64(years), 4); y != 0 && ordinal > daysPerYear {
		return 0, false
	}
	if yearOrdinalBefore(int64(years), ordinal, composeMinYear, composeMinOrdinal) ||
		yearOrdinalBefore(composeMaxYear, composeMaxOrdinal, int64(years), ordinal) {
		return 0, false
	}
	return int32(compose(int64(years), ordinal)), true
}

func compose(years int64, ordinal int) int64 {
	if debug && ordinal < 1 {
		panic(fmt.Sprintf("jd: compose called with ordinal %d", ordinal))
	}
	quads, y := floorDivMod(years, 4)
	days := quads*daysPerQuad + y*daysPerYear + int64(ordinal) - 1
	if y > 0 {
		days++
	}
	return days
}

//yearOrdinalBefore orders (year, ordinal) pairs lexicographically.
func yearOrdinalBefore(y1 int64, o1 int, y2 int64, o2 int) bool {
	if y1 != y2 {
		return y1 < y2
	}
	return o1 < o2
}
