package server

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	calendar "github.com/SebastiaanKlippert/go-calendar"
	"github.com/SebastiaanKlippert/go-calendar/internal/config"
)

// DateResponse is one day in one calendar.
type DateResponse struct {
	Calendar   string `json:"calendar" toml:"calendar"`
	JDN        int32  `json:"jdn" toml:"jdn"`
	Date       string `json:"date" toml:"date"`
	Year       int32  `json:"year" toml:"year"`
	Ordinal    int    `json:"ordinal" toml:"ordinal"`
	Month      int    `json:"month" toml:"month"`
	Day        int    `json:"day" toml:"day"`
	DayOrdinal int    `json:"day_ordinal" toml:"day_ordinal"`
	Gregorian  bool   `json:"gregorian" toml:"gregorian"`
}

// MonthResponse lists the valid days of a month.
type MonthResponse struct {
	Calendar      string `json:"calendar" toml:"calendar"`
	Year          int32  `json:"year" toml:"year"`
	Month         int    `json:"month" toml:"month"`
	Kind          string `json:"kind" toml:"kind"`
	MinDay        int    `json:"min_day" toml:"min_day"`
	MaxDay        int    `json:"max_day" toml:"max_day"`
	NaturalMaxDay int    `json:"natural_max_day" toml:"natural_max_day"`
	GapStart      int    `json:"gap_start,omitempty" toml:"gap_start,omitempty"`
	GapEnd        int    `json:"gap_end,omitempty" toml:"gap_end,omitempty"`
	Days          []int  `json:"days" toml:"days"`
}

// YearResponse is the length of a year.
type YearResponse struct {
	Calendar string `json:"calendar" toml:"calendar"`
	Year     int32  `json:"year" toml:"year"`
	Days     int    `json:"days" toml:"days"`
}

// CivilResponse is a date without its calendar.
type CivilResponse struct {
	Date    string `json:"date" toml:"date"`
	Year    int32  `json:"year" toml:"year"`
	Ordinal int    `json:"ordinal" toml:"ordinal"`
	Month   int    `json:"month" toml:"month"`
	Day     int    `json:"day" toml:"day"`
}

// GapResponse describes the days a reform skipped.
type GapResponse struct {
	Calendar        string        `json:"calendar" toml:"calendar"`
	Reformation     int32         `json:"reformation" toml:"reformation"`
	Kind            string        `json:"kind" toml:"kind"`
	PreReform       CivilResponse `json:"pre_reform" toml:"pre_reform"`
	PostReform      CivilResponse `json:"post_reform" toml:"post_reform"`
	OrdinalGapStart int           `json:"ordinal_gap_start" toml:"ordinal_gap_start"`
	OrdinalGap      int           `json:"ordinal_gap" toml:"ordinal_gap"`
}

func NewDateResponse(d calendar.Date) DateResponse {
	return DateResponse{
		Calendar:   d.Calendar().String(),
		JDN:        d.JDN(),
		Date:       d.String(),
		Year:       d.Year(),
		Ordinal:    d.Ordinal(),
		Month:      int(d.Month()),
		Day:        d.Day(),
		DayOrdinal: d.DayOrdinal(),
		Gregorian:  d.IsGregorian(),
	}
}

func NewMonthResponse(c calendar.Calendar, year int32, month time.Month, shape calendar.MonthShape) MonthResponse {
	return MonthResponse{
		Calendar:      c.String(),
		Year:          year,
		Month:         int(month),
		Kind:          shape.Kind.String(),
		MinDay:        shape.MinDay,
		MaxDay:        shape.MaxDay,
		NaturalMaxDay: shape.NaturalMaxDay,
		GapStart:      shape.GapStart,
		GapEnd:        shape.GapEnd,
		Days:          shape.Days(),
	}
}

func NewCivilResponse(d calendar.CivilDate) CivilResponse {
	return CivilResponse{Date: d.String(), Year: d.Year, Ordinal: d.Ordinal, Month: int(d.Month), Day: d.Day}
}

func NewGapResponse(c calendar.Calendar, gap calendar.ReformGap) GapResponse {
	r, _ := c.Reformation()
	return GapResponse{
		Calendar:        c.String(),
		Reformation:     r,
		Kind:            gap.Kind.String(),
		PreReform:       NewCivilResponse(gap.PreReform),
		PostReform:      NewCivilResponse(gap.PostReform),
		OrdinalGapStart: gap.OrdinalGapStart,
		OrdinalGap:      gap.OrdinalGap,
	}
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// requestCalendar reads the calendar and reformation query parameters.
// A reformation alone selects a reforming calendar; neither selects the
// server's default. A reforming calendar without a reformation uses the
// server's reformation, or the Gregorian reform when the server has none.
func (s *Server) requestCalendar(c echo.Context) (calendar.Calendar, error) {
	kind, reformation := c.QueryParam("calendar"), c.QueryParam("reformation")
	if kind == "" && reformation == "" {
		return s.calendar, nil
	}
	if reformation == "" {
		r, ok := s.calendar.Reformation()
		if !ok {
			r = calendar.ReformGregory
		}
		reformation = strconv.FormatInt(int64(r), 10)
	}
	cal, err := config.ParseCalendar(kind, reformation)
	if err != nil {
		return calendar.Calendar{}, fromCalendarError(err)
	}
	return cal, nil
}

func int32Param(c echo.Context, name string) (int32, error) {
	n, err := strconv.ParseInt(c.Param(name), 10, 32)
	if err != nil {
		return 0, newBadRequest(fmt.Sprintf("%s must be a 32-bit integer, have %q", name, c.Param(name)))
	}
	return int32(n), nil
}

func intParam(c echo.Context, name string) (int, error) {
	n, err := strconv.Atoi(c.Param(name))
	if err != nil {
		return 0, newBadRequest(fmt.Sprintf("%s must be an integer, have %q", name, c.Param(name)))
	}
	return n, nil
}

func (s *Server) atJDN(c echo.Context) error {
	cal, err := s.requestCalendar(c)
	if err != nil {
		return err
	}
	jdn, err := int32Param(c, "jdn")
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, NewDateResponse(cal.AtJDN(jdn)))
}

func (s *Server) atYMD(c echo.Context) error {
	cal, err := s.requestCalendar(c)
	if err != nil {
		return err
	}
	year, err := int32Param(c, "year")
	if err != nil {
		return err
	}
	month, err := intParam(c, "month")
	if err != nil {
		return err
	}
	day, err := intParam(c, "day")
	if err != nil {
		return err
	}
	d, err := cal.AtYMD(year, time.Month(month), day)
	if err != nil {
		return fromCalendarError(err)
	}
	return c.JSON(http.StatusOK, NewDateResponse(d))
}

func (s *Server) atOrdinal(c echo.Context) error {
	cal, err := s.requestCalendar(c)
	if err != nil {
		return err
	}
	year, err := int32Param(c, "year")
	if err != nil {
		return err
	}
	ordinal, err := intParam(c, "ordinal")
	if err != nil {
		return err
	}
	d, err := cal.AtOrdinal(year, ordinal)
	if err != nil {
		return fromCalendarError(err)
	}
	return c.JSON(http.StatusOK, NewDateResponse(d))
}

func (s *Server) monthShape(c echo.Context) error {
	cal, err := s.requestCalendar(c)
	if err != nil {
		return err
	}
	year, err := int32Param(c, "year")
	if err != nil {
		return err
	}
	month, err := intParam(c, "month")
	if err != nil {
		return err
	}
	shape, err := cal.MonthShape(year, time.Month(month))
	if err != nil {
		return fromCalendarError(err)
	}
	return c.JSON(http.StatusOK, NewMonthResponse(cal, year, time.Month(month), shape))
}

func (s *Server) year(c echo.Context) error {
	cal, err := s.requestCalendar(c)
	if err != nil {
		return err
	}
	year, err := int32Param(c, "year")
	if err != nil {
		return err
	}
	days, err := cal.DaysInYear(year)
	if err != nil {
		return fromCalendarError(err)
	}
	return c.JSON(http.StatusOK, YearResponse{Calendar: cal.String(), Year: year, Days: days})
}

func (s *Server) gap(c echo.Context) error {
	cal, err := s.requestCalendar(c)
	if err != nil {
		return err
	}
	gap, ok := cal.Gap()
	if !ok {
		return newBadRequest(fmt.Sprintf("calendar %s has no reform gap", cal))
	}
	return c.JSON(http.StatusOK, NewGapResponse(cal, gap))
}
