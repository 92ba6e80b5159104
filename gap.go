package calendar

import (
	"fmt"
	"math"
	"time"
)

//GapKind classifies how far apart the two sides of a reform are, by year and
//month only.
type GapKind int

const (
	IntraMonth GapKind = iota //both dates in one month
	CrossMonth                //different months of one year
	CrossYear                 //consecutive years
	MultiYear                 //at least one whole year skipped
)

func (k GapKind) String() string {
	switch k {
	case IntraMonth:
		return "IntraMonth"
	case CrossMonth:
		return "CrossMonth"
	case CrossYear:
		return "CrossYear"
	case MultiYear:
		return "MultiYear"
	}
	return fmt.Sprintf("GapKind(%d)", int(k))
}

//GapKindFor classifies a reform from the year and month of its last Julian
//date and its first Gregorian date. The post-reform month must not come
//before the pre-reform month.
func GapKindFor(preYear int32, preMonth time.Month, postYear int32, postMonth time.Month) GapKind {
	switch {
	case preYear == postYear && preMonth == postMonth:
		return IntraMonth
	case preYear == postYear:
		return CrossMonth
	case int64(preYear)+1 == int64(postYear):
		return CrossYear
	default:
		return MultiYear
	}
}

//ReformGap describes the dates skipped by a reforming calendar.
type ReformGap struct {
	//PreReform is the last Julian date, at reformation-1.
	PreReform CivilDate
	//PostReform is the first Gregorian date, at reformation. Its Ordinal is
	//the Gregorian day of year.
	PostReform CivilDate
	Kind       GapKind
	//OrdinalGapStart is the day of year the reforming calendar gives to
	//PostReform: 1 unless the reform happened within a single year.
	OrdinalGapStart int
	//OrdinalGap is added to a reforming day of year at or after
	//OrdinalGapStart in PostReform's year to get the Gregorian day of year.
	//It is -1 for a reform late in the year 200, whose Julian part kept a
	//February 29th that the Gregorian rule drops.
	OrdinalGap int
}

func newReformGap(reformation int32) (ReformGap, error) {
	if reformation == math.MinInt32 {
		return ReformGap{}, fmt.Errorf("%w: %d", ErrInvalidReformation, reformation)
	}
	pre := julianCivil(reformation - 1)
	post := gregorianCivil(reformation)
	if !pre.before(post) {
		return ReformGap{}, fmt.Errorf("%w: %d (Julian %s, Gregorian %s)", ErrInvalidReformation, reformation, pre, post)
	}
	g := ReformGap{
		PreReform:       pre,
		PostReform:      post,
		Kind:            GapKindFor(pre.Year, pre.Month, post.Year, post.Month),
		OrdinalGapStart: 1,
	}
	if pre.Year == post.Year {
		g.OrdinalGapStart = pre.Ordinal + 1
	}
	g.OrdinalGap = post.Ordinal - g.OrdinalGapStart
	return g, nil
}

//CompareYear locates year relative to the years of PreReform and PostReform.
func (g ReformGap) CompareYear(year int32) RangeOrdering {
	return CompareRange(year, g.PreReform.Year, g.PostReform.Year)
}

//CompareYearMonth locates a month relative to the months of PreReform and
//PostReform. RangeLess months are wholly Julian, RangeGreater months wholly
//Gregorian and RangeBetween months never happened. RangeEqBoth only occurs
//for an IntraMonth gap.
func (g ReformGap) CompareYearMonth(year int32, month time.Month) RangeOrdering {
	return CompareYearMonthRange(YearMonth{Year: year, Month: month}, g.PreReform.YearMonth(), g.PostReform.YearMonth())
}
