package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	calendar "github.com/SebastiaanKlippert/go-calendar"
	"github.com/SebastiaanKlippert/go-calendar/internal/server"
)

func parseInt32(name, s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%s must be a 32-bit integer, have %q", name, s)
	}
	return int32(n), nil
}

func parseInt(name, s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, have %q", name, s)
	}
	return n, nil
}

func (a *app) printDate(cmd *cobra.Command, d calendar.Date) error {
	return a.render(cmd, server.NewDateResponse(d), func(p *printer) {
		reckoning := "julian"
		if d.IsGregorian() {
			reckoning = "gregorian"
		}
		p.printf("%s  jdn %d  day %d  %s\n", d, d.JDN(), d.Ordinal(), reckoning)
	})
}

func (a *app) jdnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "jdn <jdn>",
		Short: "Show the date of a Julian day number",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jdn, err := parseInt32("jdn", args[0])
			if err != nil {
				return err
			}
			return a.printDate(cmd, a.cal.AtJDN(jdn))
		},
	}
}

func (a *app) dateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "date <year> <month> <day>",
		Short: "Show the Julian day number of a date",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseInt32("year", args[0])
			if err != nil {
				return err
			}
			month, err := parseInt("month", args[1])
			if err != nil {
				return err
			}
			day, err := parseInt("day", args[2])
			if err != nil {
				return err
			}
			d, err := a.cal.AtYMD(year, time.Month(month), day)
			if err != nil {
				return err
			}
			return a.printDate(cmd, d)
		},
	}
}

func (a *app) ordinalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ordinal <year> <day-of-year>",
		Short: "Show the date of a day of the year",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseInt32("year", args[0])
			if err != nil {
				return err
			}
			ordinal, err := parseInt("day-of-year", args[1])
			if err != nil {
				return err
			}
			d, err := a.cal.AtOrdinal(year, ordinal)
			if err != nil {
				return err
			}
			return a.printDate(cmd, d)
		},
	}
}

func (a *app) monthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "month <year> <month>",
		Short: "Show the valid days of a month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseInt32("year", args[0])
			if err != nil {
				return err
			}
			month, err := parseInt("month", args[1])
			if err != nil {
				return err
			}
			shape, err := a.cal.MonthShape(year, time.Month(month))
			if err != nil {
				return err
			}
			return a.render(cmd, server.NewMonthResponse(a.cal, year, time.Month(month), shape), func(p *printer) {
				p.printf("%d-%02d %s\n", year, month, shape)
				for i, day := range shape.Days() {
					if i > 0 {
						p.printf(" ")
					}
					p.printf("%d", day)
				}
				p.printf("\n")
			})
		},
	}
}

func (a *app) yearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "year <year>",
		Short: "Show the number of days in a year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseInt32("year", args[0])
			if err != nil {
				return err
			}
			days, err := a.cal.DaysInYear(year)
			if err != nil {
				return err
			}
			resp := server.YearResponse{Calendar: a.cal.String(), Year: year, Days: days}
			return a.render(cmd, resp, func(p *printer) {
				p.printf("%d  %d days\n", year, days)
			})
		},
	}
}

func (a *app) gapCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gap",
		Short: "Describe the days skipped by the reform of a reforming calendar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gap, ok := a.cal.Gap()
			if !ok {
				return fmt.Errorf("calendar %s has no reform gap", a.cal)
			}
			return a.render(cmd, server.NewGapResponse(a.cal, gap), func(p *printer) {
				p.printf("%s  %s\n", a.cal, gap.Kind)
				p.printf("last julian     %s  day %d\n", gap.PreReform, gap.PreReform.Ordinal)
				p.printf("first gregorian %s  day %d\n", gap.PostReform, gap.OrdinalGapStart)
				p.printf("days of year skipped %d\n", gap.OrdinalGap)
			})
		},
	}
}

// ReformationResponse is one named reformation.
type ReformationResponse struct {
	Name        string `json:"name" toml:"name"`
	Reformation int32  `json:"reformation" toml:"reformation"`
	Date        string `json:"date" toml:"date"`
}

func (a *app) reformationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reformations",
		Short: "List the reformation names accepted by --reformation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var list []ReformationResponse
			for _, name := range calendar.ReformationNames() {
				r, _ := calendar.LookupReformation(name)
				list = append(list, ReformationResponse{Name: name, Reformation: r, Date: calendar.Gregorian.AtJDN(r).String()})
			}
			out := struct {
				Reformations []ReformationResponse `json:"reformations" toml:"reformations"`
			}{list}
			return a.render(cmd, out, func(p *printer) {
				for _, r := range list {
					p.printf("%-10s %d  %s\n", r.Name, r.Reformation, r.Date)
				}
			})
		},
	}
}
