package calendar

import (
	"fmt"
	"time"
)

var (
	//ErrOutOfRange is wrapped by FieldError.
	ErrOutOfRange = fmt.Errorf("value out of range")

	//ErrSkippedDate is wrapped by SkippedDateError.
	ErrSkippedDate = fmt.Errorf("date skipped by calendar reform")

	//ErrJDNRange is returned when a date has no int32 Julian day number.
	ErrJDNRange = fmt.Errorf("date outside the representable JDN range")

	//ErrInvalidReformation is returned by Reforming.
	ErrInvalidReformation = fmt.Errorf("reformation would repeat Julian calendar dates")
)

//Field names the part of a date that was rejected.
type Field int

const (
	FieldMonth Field = iota
	FieldDay
	FieldOrdinal
)

func (f Field) String() string {
	switch f {
	case FieldMonth:
		return "month"
	case FieldDay:
		return "day"
	case FieldOrdinal:
		return "ordinal"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

//FieldError reports a month, day or day of year that is outside the range the
//calendar allows for it.
type FieldError struct {
	Field Field
	Value int
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid %s %d: %s", e.Field, e.Value, ErrOutOfRange)
}

func (e *FieldError) Unwrap() error {
	return ErrOutOfRange
}

//SkippedDateError reports a date that would be valid in one of the two
//calendars but never occurred in a reforming calendar. Month and Day are zero
//when a whole month or year was skipped.
type SkippedDateError struct {
	Year  int32
	Month time.Month
	Day   int
}

func (e *SkippedDateError) Error() string {
	switch {
	case e.Month == 0:
		return fmt.Sprintf("year %d: %s", e.Year, ErrSkippedDate)
	case e.Day == 0:
		return fmt.Sprintf("%d-%02d: %s", e.Year, int(e.Month), ErrSkippedDate)
	}
	return fmt.Sprintf("%d-%02d-%02d: %s", e.Year, int(e.Month), e.Day, ErrSkippedDate)
}

func (e *SkippedDateError) Unwrap() error {
	return ErrSkippedDate
}
