//Package calendar converts between Julian day numbers and calendar dates in the
//proleptic Julian calendar, the proleptic Gregorian calendar, and reforming
//calendars that switch from the first to the second at a chosen day.
//
//	cal := calendar.MustReforming(calendar.ReformGregory)
//	d := cal.AtJDN(2299161)
//	d.String() == "1582-10-15" //=> true
//	_, err := cal.AtYMD(1582, time.October, 10)
//	errors.Is(err, calendar.ErrSkippedDate) //=> true
//
//All values are immutable and safe for concurrent use. Building a reforming
//calendar does the work of two date conversions, so build each one once and
//reuse it.
package calendar

import (
	"cmp"
	"errors"
	"fmt"
	"time"

	"github.com/SebastiaanKlippert/go-calendar/jd"
)

//Kind is the variant of a Calendar. Kinds sort Julian < Reforming < Gregorian.
type Kind int

const (
	KindJulian Kind = iota
	KindReforming
	KindGregorian
)

func (k Kind) String() string {
	switch k {
	case KindJulian:
		return "julian"
	case KindReforming:
		return "reforming"
	case KindGregorian:
		return "gregorian"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

//Calendar is a set of rules for naming days. The zero Calendar is Julian.
//
//Compare calendars with Equal or Key, not ==.
type Calendar struct {
	kind        Kind
	reformation int32
	//gap is derived from reformation once, in Reforming, and takes no part
	//in identity or ordering.
	gap ReformGap
}

var (
	Julian    = Calendar{kind: KindJulian}
	Gregorian = Calendar{kind: KindGregorian}
)

//Reforming returns a calendar that is Julian before the Julian day number
//reformation and Gregorian from it on. It fails with ErrInvalidReformation
//when the first Gregorian date would not come after the last Julian one,
//which is the case for reformations before March 200.
func Reforming(reformation int32) (Calendar, error) {
	gap, err := newReformGap(reformation)
	if err != nil {
		return Calendar{}, err
	}
	return Calendar{kind: KindReforming, reformation: reformation, gap: gap}, nil
}

//MustReforming is Reforming for known good reformations. It panics on error.
func MustReforming(reformation int32) Calendar {
	c, err := Reforming(reformation)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Calendar) Kind() Kind {
	return c.kind
}

//Reformation returns the first Gregorian Julian day number of a reforming
//calendar.
func (c Calendar) Reformation() (int32, bool) {
	return c.reformation, c.kind == KindReforming
}

//Gap returns the reform gap of a reforming calendar.
func (c Calendar) Gap() (ReformGap, bool) {
	return c.gap, c.kind == KindReforming
}

//Key is the identity of a Calendar, usable as a map key.
type Key struct {
	Kind        Kind
	Reformation int32
}

func (c Calendar) Key() Key {
	if c.kind != KindReforming {
		return Key{Kind: c.kind}
	}
	return Key{Kind: c.kind, Reformation: c.reformation}
}

func (c Calendar) Equal(other Calendar) bool {
	return c.Key() == other.Key()
}

//Compare returns -1, 0 or 1. Julian sorts first, Gregorian last, and reforming
//calendars by reformation in between.
func (c Calendar) Compare(other Calendar) int {
	a, b := c.Key(), other.Key()
	if r := cmp.Compare(a.Kind, b.Kind); r != 0 {
		return r
	}
	return cmp.Compare(a.Reformation, b.Reformation)
}

func (c Calendar) String() string {
	if c.kind == KindReforming {
		return fmt.Sprintf("reforming(%d)", c.reformation)
	}
	return c.kind.String()
}

//AtJDN returns the date of a Julian day number. Every int32 is a day in every
//calendar.
func (c Calendar) AtJDN(jdn int32) Date {
	if c.kind == KindJulian || (c.kind == KindReforming && jdn < c.reformation) {
		return Date{cal: c, jdn: jdn, civil: julianCivil(jdn)}
	}
	civil := gregorianCivil(jdn)
	if c.kind == KindReforming && civil.Year == c.gap.PostReform.Year {
		civil.Ordinal -= c.gap.OrdinalGap
	}
	return Date{cal: c, jdn: jdn, civil: civil, gregorian: true}
}

//AtYMD returns the date with the given year, month and day. The error is a
//*FieldError for a month or day that does not exist in that month, a
//*SkippedDateError for a day lost to a reform, or wraps ErrJDNRange.
func (c Calendar) AtYMD(year int32, month time.Month, day int) (Date, error) {
	shape, err := c.MonthShape(year, month)
	var skipped *SkippedDateError
	if errors.As(err, &skipped) {
		//The whole month is gone; still name the day asked for.
		if day < 1 || day > max(jd.MonthLength(month, jd.IsJulianLeap(year)), jd.MonthLength(month, jd.IsGregorianLeap(year))) {
			return Date{}, &FieldError{Field: FieldDay, Value: day}
		}
		return Date{}, &SkippedDateError{Year: year, Month: month, Day: day}
	}
	if err != nil {
		return Date{}, err
	}
	switch shape.status(day) {
	case dayOutOfRange:
		return Date{}, &FieldError{Field: FieldDay, Value: day}
	case daySkipped:
		return Date{}, &SkippedDateError{Year: year, Month: month, Day: day}
	}

	var (
		jdn int32
		ok  bool
	)
	if c.reckonsGregorian(CivilDate{Year: year, Month: month, Day: day}) {
		jdn, ok = jd.YMD2J(year, month, day)
	} else {
		jdn, ok = jd.JulianYMD2J(year, month, day)
	}
	if !ok {
		return Date{}, fmt.Errorf("%s: %w", CivilDate{Year: year, Month: month, Day: day}, ErrJDNRange)
	}
	return c.AtJDN(jdn), nil
}

//reckonsGregorian reports whether a valid date of c follows the Gregorian rule.
func (c Calendar) reckonsGregorian(d CivilDate) bool {
	switch c.kind {
	case KindJulian:
		return false
	case KindGregorian:
		return true
	}
	return c.gap.PreReform.before(d)
}

//AtOrdinal returns the date with the given year and 1-based day of year. In a
//year holding a reform the days that did occur are numbered consecutively.
func (c Calendar) AtOrdinal(year int32, ordinal int) (Date, error) {
	length, err := c.DaysInYear(year)
	if err != nil {
		return Date{}, err
	}
	if ordinal < 1 || ordinal > length {
		return Date{}, &FieldError{Field: FieldOrdinal, Value: ordinal}
	}

	var (
		jdn int32
		ok  bool
	)
	switch {
	case c.kind == KindJulian:
		jdn, ok = jd.FromJulian(year, ordinal)
	case c.kind == KindGregorian || year > c.gap.PostReform.Year:
		jdn, ok = jd.FromGregorian(year, ordinal)
	case year == c.gap.PostReform.Year && ordinal >= c.gap.OrdinalGapStart:
		jdn, ok = jd.FromGregorian(year, ordinal+c.gap.OrdinalGap)
	default:
		jdn, ok = jd.FromJulian(year, ordinal)
	}
	if !ok {
		return Date{}, fmt.Errorf("year %d day %d: %w", year, ordinal, ErrJDNRange)
	}
	return c.AtJDN(jdn), nil
}

//DaysInYear returns the number of days in year, which is less than 365 for a
//year cut short by a reform. It fails with a *SkippedDateError for a year
//that was skipped entirely.
func (c Calendar) DaysInYear(year int32) (int, error) {
	switch c.kind {
	case KindJulian:
		return jd.JulianYearLength(year), nil
	case KindGregorian:
		return jd.GregorianYearLength(year), nil
	}
	switch c.gap.CompareYear(year) {
	case RangeLess:
		return jd.JulianYearLength(year), nil
	case RangeGreater:
		return jd.GregorianYearLength(year), nil
	case RangeBetween:
		return 0, &SkippedDateError{Year: year}
	case RangeEqLower:
		return c.gap.PreReform.Ordinal, nil
	default: //RangeEqUpper, RangeEqBoth
		return jd.GregorianYearLength(year) - c.gap.OrdinalGap, nil
	}
}

//DaysInMonth returns the number of valid days in a month.
func (c Calendar) DaysInMonth(year int32, month time.Month) (int, error) {
	shape, err := c.MonthShape(year, month)
	if err != nil {
		return 0, err
	}
	return shape.Len(), nil
}
