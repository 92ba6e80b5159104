package cli

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	calendar "github.com/SebastiaanKlippert/go-calendar"
	"github.com/SebastiaanKlippert/go-calendar/dbf"
)

func (a *app) dbfCmd() *cobra.Command {
	var withDeleted bool
	cmd := &cobra.Command{
		Use:   "dbf <file>",
		Short: "Dump a FoxPro table with its dates in the configured calendar",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := dbf.OpenFile(args[0], nil)
			if err != nil {
				return err
			}
			defer table.Close()
			table.SetCalendar(a.cal)

			names := table.FieldNames()
			records := []map[string]any{}
			for i := uint32(0); i < table.NumRecords(); i++ {
				rec, err := table.RecordAt(i)
				if err != nil {
					return fmt.Errorf("record %d: %w", i, err)
				}
				if rec.Deleted && !withDeleted {
					continue
				}
				row := make(map[string]any, len(names))
				for pos, val := range rec.FieldSlice() {
					row[names[pos]] = fieldText(val)
				}
				records = append(records, row)
			}
			a.logger.Debug("table read",
				"file", args[0],
				"records", table.NumRecords(),
				"shown", len(records),
			)

			out := struct {
				Records []map[string]any `json:"records" toml:"records"`
			}{records}
			return a.render(cmd, out, func(p *printer) {
				for _, row := range records {
					fields := make([]string, len(names))
					for i, name := range names {
						fields[i] = fmt.Sprintf("%s=%v", name, row[name])
					}
					p.printf("%s\n", strings.Join(fields, " "))
				}
			})
		},
	}
	cmd.Flags().BoolVar(&withDeleted, "deleted", false, "include deleted records")
	return cmd
}

// fieldText turns the field values that have no natural json or toml form
// into strings.
func fieldText(val any) any {
	switch v := val.(type) {
	case string:
		return strings.TrimSpace(v)
	case calendar.Date:
		if v.IsZero() {
			return ""
		}
		return v.String()
	case dbf.DateTime:
		if v.IsZero() {
			return ""
		}
		return v.String()
	case []byte:
		return base64.StdEncoding.EncodeToString(v)
	}
	return val
}
