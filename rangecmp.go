package calendar

import (
	"cmp"
	"time"
)

//RangeOrdering is where a value lies relative to a closed range [lower, upper].
type RangeOrdering int

const (
	RangeLess    RangeOrdering = iota //before lower
	RangeEqLower                      //equal to lower, lower < upper
	RangeBetween                      //strictly inside
	RangeEqBoth                       //equal to lower and upper
	RangeEqUpper                      //equal to upper, lower < upper
	RangeGreater                      //after upper
)

var rangeOrderingNames = [...]string{"Less", "EqLower", "Between", "EqBoth", "EqUpper", "Greater"}

func (o RangeOrdering) String() string {
	if o < RangeLess || o > RangeGreater {
		return "RangeOrdering(?)"
	}
	return rangeOrderingNames[o]
}

//CompareRange classifies value against [lower, upper]. lower must not be
//greater than upper. When they are equal RangeBetween cannot occur and both
//endpoints report RangeEqBoth.
func CompareRange[T cmp.Ordered](value, lower, upper T) RangeOrdering {
	switch {
	case value < lower:
		return RangeLess
	case value == lower && value == upper:
		return RangeEqBoth
	case value == lower:
		return RangeEqLower
	case value < upper:
		return RangeBetween
	case value == upper:
		return RangeEqUpper
	default:
		return RangeGreater
	}
}

//YearMonth is a month of a particular year.
type YearMonth struct {
	Year  int32
	Month time.Month
}

//Compare orders year months by year, then month.
func (ym YearMonth) Compare(other YearMonth) int {
	if c := cmp.Compare(ym.Year, other.Year); c != 0 {
		return c
	}
	return cmp.Compare(ym.Month, other.Month)
}

//CompareYearMonthRange is CompareRange for year months. The month is only
//looked at when the year ties with an endpoint.
func CompareYearMonthRange(value, lower, upper YearMonth) RangeOrdering {
	switch CompareRange(value.Year, lower.Year, upper.Year) {
	case RangeLess:
		return RangeLess
	case RangeGreater:
		return RangeGreater
	case RangeBetween:
		return RangeBetween
	case RangeEqBoth:
		return CompareRange(value.Month, lower.Month, upper.Month)
	case RangeEqLower:
		switch cmp.Compare(value.Month, lower.Month) {
		case -1:
			return RangeLess
		case 0:
			return RangeEqLower
		default:
			return RangeBetween
		}
	default: //RangeEqUpper
		switch cmp.Compare(value.Month, upper.Month) {
		case -1:
			return RangeBetween
		case 0:
			return RangeEqUpper
		default:
			return RangeGreater
		}
	}
}
