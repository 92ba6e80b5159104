package jd

import (
	"fmt"
	"testing"
	"time"

	cjd "github.com/carlosjhr64/jd"
)

func ymd(y int32, m time.Month, d int) string {
	return fmt.Sprintf("%04d-%02d-%02d", y, m, d)
}

func TestJ2YMD(t *testing.T) {
	cases := []struct {
		jdate int32
		want  string
	}{
		{2453738, "2006-01-02"},
		{2460131, "2023-07-05"},
		{2440588, "1970-01-01"},
		{2451544, "1999-12-31"},
		{2487763, "2099-02-28"},
		{2299161, "1582-10-15"},
		{0, "-4713-11-24"},
	}
	for _, c := range cases {
		y, m, d := J2YMD(c.jdate)
		if ymd(y, m, d) != c.want {
			t.Errorf("Julian date %d: want %s, have %s", c.jdate, c.want, ymd(y, m, d))
		}
		back, ok := YMD2J(y, m, d)
		if !ok || back != c.jdate {
			t.Errorf("YMD2J(%s): want %d, have %d (%v)", c.want, c.jdate, back, ok)
		}
	}
}

func TestJulianJ2YMD(t *testing.T) {
	cases := []struct {
		jdate int32
		want  string
	}{
		{0, "-4712-01-01"},
		{2299160, "1582-10-04"},
		{2361221, "1752-09-02"},
		{2421638, "1918-01-31"},
		{2451545, "1999-12-19"},
	}
	for _, c := range cases {
		y, m, d := JulianJ2YMD(c.jdate)
		if ymd(y, m, d) != c.want {
			t.Errorf("Julian date %d: want %s, have %s", c.jdate, c.want, ymd(y, m, d))
		}
		back, ok := JulianYMD2J(y, m, d)
		if !ok || back != c.jdate {
			t.Errorf("JulianYMD2J(%s): want %d, have %d (%v)", c.want, c.jdate, back, ok)
		}
	}
}

func TestYMD2JInvalid(t *testing.T) {
	cases := []struct {
		y int32
		m time.Month
		d int
	}{
		{1900, time.February, 29},
		{2023, time.April, 31},
		{2023, time.Month(13), 1},
		{2023, time.Month(0), 1},
		{2023, time.January, 0},
	}
	for _, c := range cases {
		if _, ok := YMD2J(c.y, c.m, c.d); ok {
			t.Errorf("YMD2J(%s): want failure", ymd(c.y, c.m, c.d))
		}
	}
	if _, ok := JulianYMD2J(1900, time.February, 29); !ok {
		t.Error("1900-02-29 exists in the Julian calendar")
	}
}

//The Fliegel-Van Flandern formulas only hold for non-negative day numbers
//(and years after -4700 for the inverse), which covers everything in use.
func TestAgainstFliegelVanFlandern(t *testing.T) {
	for n := int32(0); n < 2816788; n += 7 {
		y, m, d := J2YMD(n)
		wy, wm, wd := cjd.J2YMD(int(n))
		if int(y) != wy || int(m) != wm || d != wd {
			t.Fatalf("JDN %d: want %04d-%02d-%02d, have %s", n, wy, wm, wd, ymd(y, m, d))
		}
		if n > 5000 {
			if want := cjd.YMD2J(int(y), int(m), d); want != int(n) {
				t.Fatalf("%s: want JDN %d, have %d", ymd(y, m, d), want, n)
			}
		}
	}
}
