package dbf

import (
	"testing"

	calendar "github.com/SebastiaanKlippert/go-calendar"
)

func TestToFloat64(t *testing.T) {
	if ToFloat64(123.456) != float64(123.456) {
		t.Errorf("Want %f, have %f", float64(123.456), ToFloat64(123.456))
	}
	if ToFloat64("123.456") != float64(0) {
		t.Errorf("Want %f, have %f", 0.0, ToFloat64(123.456))
	}
}

func TestToInt64(t *testing.T) {
	if ToInt64(int64(123456)) != int64(123456) {
		t.Errorf("Want %d, have %d", int64(123456), ToInt64(123456))
	}
	if ToInt64("123.456") != int64(0) {
		t.Errorf("Want %d, have %d", 0, ToInt64(123456))
	}
}

func TestToString(t *testing.T) {
	if ToString("Hêllo!") != "Hêllo!" {
		t.Errorf("Want %q, have %q", "Hêllo!", ToString("Hêllo!"))
	}
	if ToString(123.456) != "" {
		t.Errorf("Want %q, have %q", "", ToString(123.456))
	}
}

func TestToTrimmedString(t *testing.T) {
	if ToTrimmedString("Hêllo!      ") != "Hêllo!" {
		t.Errorf("Want %q, have %q", "Hêllo!", ToTrimmedString("Hêllo!    "))
	}
	if ToTrimmedString(123.456) != "" {
		t.Errorf("Want %q, have %q", "", ToTrimmedString(123.456))
	}
}

func TestToDate(t *testing.T) {
	d := calendar.Gregorian.AtJDN(2457057)
	if ToDate(d).Equal(d) == false {
		t.Errorf("Want %v, have %v", d, ToDate(d))
	}
	if ToDate("20150203").IsZero() == false {
		t.Errorf("Want zero date, have %v", ToDate("20150203"))
	}
}

func TestToDateTime(t *testing.T) {
	dt := DateTime{Date: calendar.Julian.AtJDN(2457057), Millis: 1000}
	if ToDateTime(dt) != dt {
		t.Errorf("Want %v, have %v", dt, ToDateTime(dt))
	}
	if ToDateTime(dt.Date).IsZero() == false {
		t.Errorf("Want zero datetime, have %v", ToDateTime(dt.Date))
	}
}

func TestToInt32(t *testing.T) {
	if ToInt32(int32(-600)) != -600 {
		t.Errorf("Want %d, have %d", -600, ToInt32(int32(-600)))
	}
	if ToInt32(int64(5)) != 0 {
		t.Errorf("Want %d, have %d", 0, ToInt32(int64(5)))
	}
}

func TestToBool(t *testing.T) {
	if ToBool(true) == false {
		t.Error("Want true")
	}
	if ToBool(33) != false {
		t.Error("Want false")
	}
}
