package calendar

import (
	"fmt"
	"time"

	"github.com/SebastiaanKlippert/go-calendar/jd"
)

//ShapeKind tells which fields of a MonthShape are meaningful.
type ShapeKind int

const (
	ShapeNormal   ShapeKind = iota //days 1..MaxDay
	ShapeHeadless                  //days MinDay..MaxDay
	ShapeTailless                  //days 1..MaxDay of a month that would have run to NaturalMaxDay
	ShapeGapped                    //days 1..GapStart and GapEnd..MaxDay
)

func (k ShapeKind) String() string {
	switch k {
	case ShapeNormal:
		return "Normal"
	case ShapeHeadless:
		return "Headless"
	case ShapeTailless:
		return "Tailless"
	case ShapeGapped:
		return "Gapped"
	}
	return fmt.Sprintf("ShapeKind(%d)", int(k))
}

//MonthShape is the set of valid days of one month in one calendar.
type MonthShape struct {
	Kind ShapeKind
	//MinDay is the first valid day. It is 1 unless Kind is ShapeHeadless.
	MinDay int
	//MaxDay is the last valid day.
	MaxDay int
	//NaturalMaxDay is the length the month would have had without the reform.
	//Equal to MaxDay unless Kind is ShapeTailless.
	NaturalMaxDay int
	//GapStart and GapEnd are the valid days either side of the hole in a
	//ShapeGapped month. Both are zero for other kinds.
	GapStart int
	GapEnd   int
}

//NormalShape is a month with days 1..maxDay.
func NormalShape(maxDay int) MonthShape {
	return MonthShape{Kind: ShapeNormal, MinDay: 1, MaxDay: maxDay, NaturalMaxDay: maxDay}
}

//HeadlessShape is a month whose first valid day is minDay.
func HeadlessShape(minDay, maxDay int) MonthShape {
	return MonthShape{Kind: ShapeHeadless, MinDay: minDay, MaxDay: maxDay, NaturalMaxDay: maxDay}
}

//TaillessShape is a month cut short after maxDay.
func TaillessShape(maxDay, naturalMaxDay int) MonthShape {
	return MonthShape{Kind: ShapeTailless, MinDay: 1, MaxDay: maxDay, NaturalMaxDay: naturalMaxDay}
}

//GappedShape is a month missing the days between gapStart and gapEnd.
func GappedShape(gapStart, gapEnd, maxDay int) MonthShape {
	return MonthShape{Kind: ShapeGapped, MinDay: 1, MaxDay: maxDay, NaturalMaxDay: maxDay, GapStart: gapStart, GapEnd: gapEnd}
}

type dayStatus int

const (
	dayValid dayStatus = iota
	dayOutOfRange
	daySkipped
)

//status tells apart days the month never has from days a reform removed.
func (s MonthShape) status(day int) dayStatus {
	if day < 1 || day > s.NaturalMaxDay {
		return dayOutOfRange
	}
	switch s.Kind {
	case ShapeHeadless:
		if day < s.MinDay {
			return daySkipped
		}
	case ShapeTailless:
		if day > s.MaxDay {
			return daySkipped
		}
	case ShapeGapped:
		if day > s.GapStart && day < s.GapEnd {
			return daySkipped
		}
	}
	return dayValid
}

//Contains reports whether day is a valid day of the month.
func (s MonthShape) Contains(day int) bool {
	return s.status(day) == dayValid
}

//Len returns the number of valid days.
func (s MonthShape) Len() int {
	switch s.Kind {
	case ShapeHeadless:
		return s.MaxDay - s.MinDay + 1
	case ShapeGapped:
		return s.MaxDay - (s.GapEnd - s.GapStart - 1)
	}
	return s.MaxDay
}

//Days lists the valid days in increasing order.
func (s MonthShape) Days() []int {
	days := make([]int, 0, s.Len())
	for d := s.MinDay; d <= s.MaxDay; d++ {
		if s.status(d) == dayValid {
			days = append(days, d)
		}
	}
	return days
}

//DayOrdinal returns the position of day among the valid days of the month,
//counting from 1. It reports false when day is not a valid day.
func (s MonthShape) DayOrdinal(day int) (int, bool) {
	if s.status(day) != dayValid {
		return 0, false
	}
	switch s.Kind {
	case ShapeHeadless:
		return day - s.MinDay + 1, true
	case ShapeGapped:
		if day >= s.GapEnd {
			return day - (s.GapEnd - s.GapStart - 1), true
		}
	}
	return day, true
}

//NthDay is the inverse of DayOrdinal: the day of month of the n-th valid day.
func (s MonthShape) NthDay(n int) (int, bool) {
	if n < 1 || n > s.Len() {
		return 0, false
	}
	switch s.Kind {
	case ShapeHeadless:
		return s.MinDay + n - 1, true
	case ShapeGapped:
		if n > s.GapStart {
			return n + (s.GapEnd - s.GapStart - 1), true
		}
	}
	return n, true
}

func (s MonthShape) String() string {
	switch s.Kind {
	case ShapeHeadless:
		return fmt.Sprintf("Headless{min_day: %d, max_day: %d}", s.MinDay, s.MaxDay)
	case ShapeTailless:
		return fmt.Sprintf("Tailless{max_day: %d, natural_max_day: %d}", s.MaxDay, s.NaturalMaxDay)
	case ShapeGapped:
		return fmt.Sprintf("Gapped{gap_start: %d, gap_end: %d, max_day: %d}", s.GapStart, s.GapEnd, s.MaxDay)
	}
	return fmt.Sprintf("Normal{max_day: %d}", s.MaxDay)
}

//MonthShape returns the valid days of a month. It fails with a FieldError for
//a month outside January..December and with a SkippedDateError for a month
//that a reform skipped entirely.
func (c Calendar) MonthShape(year int32, month time.Month) (MonthShape, error) {
	if month < time.January || month > time.December {
		return MonthShape{}, &FieldError{Field: FieldMonth, Value: int(month)}
	}
	julianLen := jd.MonthLength(month, jd.IsJulianLeap(year))
	gregorianLen := jd.MonthLength(month, jd.IsGregorianLeap(year))
	switch c.kind {
	case KindJulian:
		return NormalShape(julianLen), nil
	case KindGregorian:
		return NormalShape(gregorianLen), nil
	}

	pre, post := c.gap.PreReform, c.gap.PostReform
	switch c.gap.CompareYearMonth(year, month) {
	case RangeLess:
		return NormalShape(julianLen), nil
	case RangeGreater:
		return NormalShape(gregorianLen), nil
	case RangeBetween:
		return MonthShape{}, &SkippedDateError{Year: year, Month: month}
	case RangeEqLower:
		if pre.Day == julianLen {
			return NormalShape(julianLen), nil
		}
		return TaillessShape(pre.Day, julianLen), nil
	case RangeEqUpper:
		if post.Day == 1 {
			return NormalShape(gregorianLen), nil
		}
		return HeadlessShape(post.Day, gregorianLen), nil
	default: //RangeEqBoth
		if post.Day == pre.Day+1 {
			return NormalShape(gregorianLen), nil
		}
		return GappedShape(pre.Day, post.Day, gregorianLen), nil
	}
}
