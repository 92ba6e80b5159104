package calendar

import (
	"sort"
	"strings"
)

//Julian day numbers of some historical first Gregorian days.
const (
	ReformGregory int32 = 2299161 //1582-10-15, Papal States, Spain, Portugal, Poland
	ReformFrance  int32 = 2299227 //1582-12-20
	ReformBritain int32 = 2361222 //1752-09-14, Great Britain and its colonies
	ReformSweden  int32 = 2361390 //1753-03-01
	ReformRussia  int32 = 2421639 //1918-02-14
	ReformGreece  int32 = 2423480 //1923-03-01
)

var reformationNames = map[string]int32{
	"gregory":  ReformGregory,
	"italy":    ReformGregory,
	"spain":    ReformGregory,
	"portugal": ReformGregory,
	"poland":   ReformGregory,
	"france":   ReformFrance,
	"britain":  ReformBritain,
	"england":  ReformBritain,
	"usa":      ReformBritain,
	"sweden":   ReformSweden,
	"russia":   ReformRussia,
	"greece":   ReformGreece,
}

//LookupReformation returns the reformation known by name, case-insensitively.
func LookupReformation(name string) (int32, bool) {
	r, ok := reformationNames[strings.ToLower(strings.TrimSpace(name))]
	return r, ok
}

//ReformationNames returns the names accepted by LookupReformation, sorted.
func ReformationNames() []string {
	names := make([]string, 0, len(reformationNames))
	for name := range reformationNames {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
