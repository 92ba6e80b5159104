package calendar

import (
	"cmp"
	"math"
	"time"
)

//Date is a day named in a particular calendar. It carries the day's Julian day
//number and its year, day of year, month and day of month in that calendar.
//The zero Date is not a valid day; see IsZero.
type Date struct {
	cal       Calendar
	jdn       int32
	civil     CivilDate
	gregorian bool
}

func (d Date) Calendar() Calendar { return d.cal }
func (d Date) JDN() int32         { return d.jdn }
func (d Date) Year() int32        { return d.civil.Year }
func (d Date) Ordinal() int       { return d.civil.Ordinal }
func (d Date) Month() time.Month  { return d.civil.Month }
func (d Date) Day() int           { return d.civil.Day }
func (d Date) Civil() CivilDate   { return d.civil }

//DayOrdinal returns the number of days of the month that occurred up to and
//including d. It differs from Day only in a month shortened by a reform:
//1582-10-15 in the Gregorian reform is the 5th day of its month.
func (d Date) DayOrdinal() int {
	if d.IsZero() {
		return 0
	}
	shape, err := d.cal.MonthShape(d.civil.Year, d.civil.Month)
	if err != nil {
		return 0
	}
	n, _ := shape.DayOrdinal(d.civil.Day)
	return n
}

//IsGregorian reports whether the day is reckoned by the Gregorian rule.
func (d Date) IsGregorian() bool {
	return d.gregorian
}

//IsZero reports whether d is the zero Date, which no conversion returns.
func (d Date) IsZero() bool {
	return d.civil.Ordinal == 0
}

//AddDays returns the date n days later in the same calendar. It fails with
//ErrJDNRange when the result leaves the int32 range.
func (d Date) AddDays(n int32) (Date, error) {
	sum := int64(d.jdn) + int64(n)
	if sum < math.MinInt32 || sum > math.MaxInt32 {
		return Date{}, ErrJDNRange
	}
	return d.cal.AtJDN(int32(sum)), nil
}

//In returns the same day named in calendar c.
func (d Date) In(c Calendar) Date {
	return c.AtJDN(d.jdn)
}

//Compare orders dates by Julian day number regardless of calendar.
func (d Date) Compare(other Date) int {
	return cmp.Compare(d.jdn, other.jdn)
}

//Equal reports whether d and other are the same day in the same calendar.
func (d Date) Equal(other Date) bool {
	return d.jdn == other.jdn && d.cal.Equal(other.cal)
}

//String formats the date as YYYY-MM-DD.
func (d Date) String() string {
	return d.civil.String()
}

//MarshalText formats the date as String does. The zero Date marshals as an
//empty string.
func (d Date) MarshalText() ([]byte, error) {
	if d.IsZero() {
		return []byte{}, nil
	}
	return []byte(d.String()), nil
}
