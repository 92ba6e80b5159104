package dbf

import (
	"strings"

	calendar "github.com/SebastiaanKlippert/go-calendar"
)

// This file contains some helper casting functions for the interface values returned from the field methods.

// ToString always returns a string
func ToString(in interface{}) string {
	if str, ok := in.(string); ok {
		return str
	}
	return ""
}

// ToTrimmedString always returns a string with spaces trimmed
func ToTrimmedString(in interface{}) string {
	if str, ok := in.(string); ok {
		return strings.TrimSpace(str)
	}
	return ""
}

// ToInt64 always returns an int64
func ToInt64(in interface{}) int64 {
	if i, ok := in.(int64); ok {
		return i
	}
	return 0
}

// ToFloat64 always returns a float64
func ToFloat64(in interface{}) float64 {
	if f, ok := in.(float64); ok {
		return f
	}
	return 0.0
}

// ToDate always returns a calendar.Date, the zero Date if in is not a D field value
func ToDate(in interface{}) calendar.Date {
	if d, ok := in.(calendar.Date); ok {
		return d
	}
	return calendar.Date{}
}

// ToDateTime always returns a DateTime
func ToDateTime(in interface{}) DateTime {
	if dt, ok := in.(DateTime); ok {
		return dt
	}
	return DateTime{}
}

// ToInt32 always returns an int32
func ToInt32(in interface{}) int32 {
	if i, ok := in.(int32); ok {
		return i
	}
	return 0
}

// ToBool always returns a boolean
func ToBool(in interface{}) bool {
	if b, ok := in.(bool); ok {
		return b
	}
	return false
}
