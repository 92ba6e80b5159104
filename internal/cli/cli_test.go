package cli

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	calendar "github.com/SebastiaanKlippert/go-calendar"
	"github.com/SebastiaanKlippert/go-calendar/dbf"
	"github.com/SebastiaanKlippert/go-calendar/internal/config"
	"github.com/SebastiaanKlippert/go-calendar/internal/server"
)

// run executes jdconv with a config file of its own so that files in the
// working or home directory do not leak into the test.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "jdconv.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("calendar: reforming\nreformation: gregory\n"), 0o644))
	return runWithConfig(t, cfg, args...)
}

func runWithConfig(t *testing.T, cfg string, args ...string) (string, error) {
	t.Helper()
	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	root := NewRootCmd()
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetArgs(append(args, "--config", cfg))
	err := root.Execute()
	return out.String(), err
}

func TestJDN(t *testing.T) {
	out, err := run(t, "jdn", "2299161")
	require.NoError(t, err)
	assert.Equal(t, "1582-10-15  jdn 2299161  day 278  gregorian\n", out)

	out, err = run(t, "jdn", "0", "--calendar", "julian")
	require.NoError(t, err)
	assert.Equal(t, "-4712-01-01  jdn 0  day 1  julian\n", out)

	_, err = run(t, "jdn", "x")
	assert.ErrorContains(t, err, "jdn must be a 32-bit integer")
}

func TestDateJSON(t *testing.T) {
	out, err := run(t, "date", "1752", "9", "14", "--reformation", "britain", "-o", "json")
	require.NoError(t, err)

	var got server.DateResponse
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, calendar.ReformBritain, got.JDN)
	assert.Equal(t, 247, got.Ordinal)
	assert.Equal(t, 3, got.DayOrdinal)
	assert.True(t, got.Gregorian)
	assert.Equal(t, "reforming(2361222)", got.Calendar)
}

func TestDateErrors(t *testing.T) {
	_, err := run(t, "date", "1582", "10", "10")
	assert.ErrorIs(t, err, calendar.ErrSkippedDate)

	_, err = run(t, "date", "1900", "2", "29", "--calendar", "gregorian")
	assert.ErrorIs(t, err, calendar.ErrOutOfRange)

	_, err = run(t, "date", "1900", "2")
	assert.Error(t, err)
}

func TestOrdinal(t *testing.T) {
	out, err := run(t, "ordinal", "1582", "278")
	require.NoError(t, err)
	assert.Equal(t, "1582-10-15  jdn 2299161  day 278  gregorian\n", out)
}

func TestMonth(t *testing.T) {
	out, err := run(t, "month", "1582", "10")
	require.NoError(t, err)
	assert.Equal(t, "1582-10 Gapped{gap_start: 4, gap_end: 15, max_day: 31}\n"+
		"1 2 3 4 15 16 17 18 19 20 21 22 23 24 25 26 27 28 29 30 31\n", out)
}

func TestYear(t *testing.T) {
	out, err := run(t, "year", "1582")
	require.NoError(t, err)
	assert.Equal(t, "1582  355 days\n", out)
}

func TestGapTOML(t *testing.T) {
	out, err := run(t, "gap", "--reformation", "russia", "--output", "toml")
	require.NoError(t, err)

	var got server.GapResponse
	require.NoError(t, toml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "CrossMonth", got.Kind)
	assert.Equal(t, "1918-01-31", got.PreReform.Date)
	assert.Equal(t, "1918-02-14", got.PostReform.Date)
	assert.Equal(t, 32, got.OrdinalGapStart)
	assert.Equal(t, 13, got.OrdinalGap)

	_, err = run(t, "gap", "--calendar", "julian")
	assert.ErrorContains(t, err, "has no reform gap")
}

func TestReformations(t *testing.T) {
	out, err := run(t, "reformations", "-o", "json")
	require.NoError(t, err)

	var got struct {
		Reformations []ReformationResponse `json:"reformations"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Contains(t, got.Reformations, ReformationResponse{Name: "britain", Reformation: 2361222, Date: "1752-09-14"})
	assert.Len(t, got.Reformations, len(calendar.ReformationNames()))
}

func TestInvalidConfig(t *testing.T) {
	_, err := run(t, "jdn", "1", "-o", "xml")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = run(t, "jdn", "1", "--reformation", "atlantis")
	assert.ErrorIs(t, err, config.ErrInvalid)

	_, err = runWithConfig(t, filepath.Join(t.TempDir(), "missing.yaml"), "jdn", "1")
	assert.ErrorContains(t, err, "reading config")
}

func TestVerboseLogsToStderr(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "jdconv.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("calendar: julian\n"), 0o644))

	out, errOut := new(bytes.Buffer), new(bytes.Buffer)
	root := NewRootCmd()
	root.SetOut(out)
	root.SetErr(errOut)
	root.SetArgs([]string{"jdn", "0", "--config", cfg, "-v"})
	require.NoError(t, root.Execute())

	assert.Equal(t, "-4712-01-01  jdn 0  day 1  julian\n", out.String())
	assert.Contains(t, errOut.String(), "configuration loaded")
	assert.Contains(t, errOut.String(), "calendar=julian")
}

// writeTable writes a two record table without memo fields, the second
// record deleted.
func writeTable(t *testing.T) string {
	t.Helper()
	type field struct {
		name   string
		typ    byte
		length uint8
	}
	fields := []field{{"NAME", 'C', 6}, {"BORN", 'D', 8}, {"STAMP", 'T', 8}}
	stamp := func(jdn, millis uint32) []byte {
		b := make([]byte, 8)
		binary.LittleEndian.PutUint32(b, jdn)
		binary.LittleEndian.PutUint32(b[4:], millis)
		return b
	}
	records := [][][]byte{
		{[]byte(" "), []byte("Alice "), []byte("15821004"), stamp(2299161, 3600000)},
		{[]byte("*"), []byte("Bob   "), []byte("17520910"), make([]byte, 8)},
	}

	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, dbf.DBFHeader{
		FileVersion: 0x30,
		ModYear:     24,
		ModMonth:    1,
		ModDay:      1,
		NumRec:      uint32(len(records)),
		FirstRec:    uint16(296 + 32*len(fields)),
		RecLen:      1 + 6 + 8 + 8,
	})
	buf.Write(make([]byte, 2))
	pos := uint32(1)
	for _, f := range fields {
		fh := dbf.FieldHeader{Type: f.typ, Pos: pos, Len: f.length}
		copy(fh.Name[:], f.name)
		binary.Write(buf, binary.LittleEndian, fh)
		pos += uint32(f.length)
	}
	buf.WriteByte(0x0D)
	buf.Write(make([]byte, 263))
	for _, rec := range records {
		for _, b := range rec {
			buf.Write(b)
		}
	}

	path := filepath.Join(t.TempDir(), "people.dbf")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestDBF(t *testing.T) {
	path := writeTable(t)

	out, err := run(t, "dbf", path)
	require.NoError(t, err)
	assert.Equal(t, "NAME=Alice BORN=1582-10-04 STAMP=1582-10-15 01:00:00.000\n", out)

	out, err = run(t, "dbf", path, "--calendar", "julian", "--deleted")
	require.NoError(t, err)
	assert.Equal(t, "NAME=Alice BORN=1582-10-04 STAMP=1582-10-05 01:00:00.000\n"+
		"NAME=Bob BORN=1752-09-10 STAMP=\n", out)

	out, err = run(t, "dbf", path, "-o", "json")
	require.NoError(t, err)
	var got struct {
		Records []map[string]any `json:"records"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Records, 1)
	assert.Equal(t, "1582-10-04", got.Records[0]["BORN"])

	_, err = run(t, "dbf", path, "--reformation", "britain", "--deleted")
	assert.ErrorIs(t, err, calendar.ErrSkippedDate)
}
