package calendar

import (
	"fmt"
	"time"

	"github.com/SebastiaanKlippert/go-calendar/jd"
)

//CivilDate is one day of one calendar's year, both as a day of year and as a
//month and day.
type CivilDate struct {
	Year    int32
	Ordinal int
	Month   time.Month
	Day     int
}

//YearMonth returns the year and month of d.
func (d CivilDate) YearMonth() YearMonth {
	return YearMonth{Year: d.Year, Month: d.Month}
}

//String formats d as YYYY-MM-DD with an astronomical (signed) year.
func (d CivilDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

//before orders by year, month and day. Ordinals are not comparable across
//calendars so they are ignored.
func (d CivilDate) before(other CivilDate) bool {
	switch {
	case d.Year != other.Year:
		return d.Year < other.Year
	case d.Month != other.Month:
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

func julianCivil(jdn int32) CivilDate {
	y, o := jd.ToJulian(jdn)
	m, d := jd.OrdinalToMonthDay(o, jd.IsJulianLeap(y))
	return CivilDate{Year: y, Ordinal: o, Month: m, Day: d}
}

func gregorianCivil(jdn int32) CivilDate {
	y, o := jd.ToGregorian(jdn)
	m, d := jd.OrdinalToMonthDay(o, jd.IsGregorianLeap(y))
	return CivilDate{Year: y, Ordinal: o, Month: m, Day: d}
}
