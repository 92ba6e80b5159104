//package dbf provides code for reading data from FoxPro DBF/FPT files.
//Date (D) and DateTime (T) fields are named in a configurable calendar, see SetCalendar.
package dbf

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	calendar "github.com/SebastiaanKlippert/go-calendar"
)

var (
	ErrEOF          = fmt.Errorf("EOF")                   //Returned when on end of DBF file (after the last record)
	ErrBOF          = fmt.Errorf("BOF")                   //Returned when the record pointer is attempted to be moved before the first record
	ErrIncomplete   = fmt.Errorf("Incomplete read")       //Returned when the read of a record or field did not complete
	ErrInvalidField = fmt.Errorf("Invalid field pos")     //Returned when an invalid fieldpos is used (<0 or >=NumFields)
	ErrNoFPTFile    = fmt.Errorf("No FPT file")           //Returned when there should be an FPT file but it is not found on disc
	ErrNoFile       = fmt.Errorf("Not opened from a file") //Returned by Stat and StatFPT for streams
)

//The main DBF struct provides all methods for reading files and embeds the file handlers.
//The DBF can be backed by files on disk (OpenFile) or any io.ReadSeeker (OpenStream).
//A DBF keeps a record pointer and is not safe for concurrent use.
type DBF struct {
	header    *DBFHeader
	r         io.ReadSeeker
	fptheader *FPTHeader
	fptr      io.ReadSeeker //only set when the table has memo fields

	closers []io.Closer //file handles opened by OpenFile

	dec Decoder
	cal calendar.Calendar

	fields []FieldHeader

	recpointer uint32 //internal record pointer, can be moved using Skip() and GoTo()
}

//The caller is responsible for calling Close to close the file handle(s)!
//Closing a DBF opened with OpenStream is a no-op.
func (dbf *DBF) Close() error {
	var errs []error
	for _, c := range dbf.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	dbf.closers = nil
	if len(errs) > 0 {
		return fmt.Errorf("Error closing DBF: %w", errors.Join(errs...))
	}
	return nil
}

//SetCalendar sets the calendar used to name D and T field values.
//The default is the proleptic Gregorian calendar FoxPro itself uses.
func (dbf *DBF) SetCalendar(c calendar.Calendar) {
	dbf.cal = c
}

//Calendar returns the calendar D and T fields are named in
func (dbf *DBF) Calendar() calendar.Calendar {
	return dbf.cal
}

//Returns the DBF Header struct for inspecting
func (dbf *DBF) Header() *DBFHeader {
	return dbf.header
}

type statter interface {
	Stat() (os.FileInfo, error)
}

//os FileInfo for DBF file
func (dbf *DBF) Stat() (os.FileInfo, error) {
	if s, ok := dbf.r.(statter); ok {
		return s.Stat()
	}
	return nil, ErrNoFile
}

//os FileInfo for FPT file
func (dbf *DBF) StatFPT() (os.FileInfo, error) {
	if dbf.fptr == nil {
		return nil, ErrNoFPTFile
	}
	if s, ok := dbf.fptr.(statter); ok {
		return s.Stat()
	}
	return nil, ErrNoFile
}

//Returns the number of records
func (dbf *DBF) NumRecords() uint32 {
	return dbf.header.NumRec
}

//Returns all the FieldHeaders
func (dbf *DBF) Fields() []FieldHeader {
	return dbf.fields
}

//Returns the number of fields
func (dbf *DBF) NumFields() uint16 {
	return uint16(len(dbf.fields))
}

//Returnes a slice of all the fieldnames
func (dbf *DBF) FieldNames() []string {
	names := make([]string, len(dbf.fields))
	for i := range dbf.fields {
		names[i] = dbf.fields[i].FieldName()
	}
	return names
}

//Returns the zero-based field position of a fieldname
//or -1 if not found.
func (dbf *DBF) FieldPos(fieldname string) int {
	for i := range dbf.fields {
		if dbf.fields[i].FieldName() == fieldname {
			return i
		}
	}
	return -1
}

//Sets internal record pointer to record recno (zero based).
//Returns ErrEOF if at EOF and positions the pointer at lastRec+1.
func (dbf *DBF) GoTo(recno uint32) error {
	if recno >= dbf.header.NumRec {
		dbf.recpointer = dbf.header.NumRec
		return ErrEOF
	}
	dbf.recpointer = recno
	return nil
}

//Adds offset to the internal record pointer.
//Returns ErrEOF if at EOF and positions the pointer at lastRec+1.
//Returns ErrBOF is recpointer would be become negative and positions the pointer at 0.
//Does not skip deleted records.
func (dbf *DBF) Skip(offset int64) error {
	newval := int64(dbf.recpointer) + offset
	if newval >= int64(dbf.header.NumRec) {
		dbf.recpointer = dbf.header.NumRec
		return ErrEOF
	}
	if newval < 0 {
		dbf.recpointer = 0
		return ErrBOF
	}
	dbf.recpointer = uint32(newval)
	return nil
}

//Returns if the record the internal record pointer is pointing to is deleted
func (dbf *DBF) Deleted() (bool, error) {
	if dbf.recpointer >= dbf.header.NumRec {
		return false, ErrEOF
	}
	buf := make([]byte, 1)
	if err := dbf.readAt(dbf.r, buf, dbf.recordOffset(dbf.recpointer)); err != nil {
		return false, err
	}
	return buf[0] == 0x2A, nil
}

//Reads the complete record the internal record pointer is pointing to
func (dbf *DBF) Record() (*Record, error) {
	return dbf.RecordAt(dbf.recpointer)
}

//Reads the complete record number nrec
func (dbf *DBF) RecordAt(nrec uint32) (*Record, error) {
	data, err := dbf.readRecord(nrec)
	if err != nil {
		return nil, err
	}
	return dbf.bytesToRecord(data)
}

//Reads field fieldpos at the record number the internal pointer is pointing to
func (dbf *DBF) Field(fieldpos int) (interface{}, error) {
	data, err := dbf.readField(dbf.recpointer, fieldpos)
	if err != nil {
		return nil, err
	}
	//fieldpos is valid or readField would have returned an error
	return dbf.fieldDataToValue(data, fieldpos)
}

//Returns a map of fieldnames and values of record nrec.
//When trimspaces is true C field values are trimmed.
func (dbf *DBF) RecordToMap(nrec uint32, trimspaces bool) (map[string]interface{}, error) {
	rec, err := dbf.RecordAt(nrec)
	if err != nil {
		return nil, err
	}
	out := make(map[string]interface{}, len(dbf.fields))
	for i, val := range rec.data {
		if s, ok := val.(string); ok && trimspaces {
			val = strings.TrimSpace(s)
		}
		out[dbf.fields[i].FieldName()] = val
	}
	return out, nil
}

//Returns record nrec as a JSON object, D and T fields are written as text in the reader's calendar.
//When nrec is 0 the record the internal pointer is pointing to is used.
func (dbf *DBF) RecordToJSON(nrec uint32, trimspaces bool) ([]byte, error) {
	if nrec == 0 {
		nrec = dbf.recpointer
	}
	m, err := dbf.RecordToMap(nrec, trimspaces)
	if err != nil {
		return nil, err
	}
	return json.Marshal(m)
}

//Returns if the internal recordpointer is at EoF
func (dbf *DBF) EOF() bool {
	return dbf.recpointer >= dbf.header.NumRec
}

//Returns if the internal recordpointer is at BoF (first record)
func (dbf *DBF) BOF() bool {
	return dbf.recpointer == 0
}

func (dbf *DBF) recordOffset(recordpos uint32) int64 {
	return int64(dbf.header.FirstRec) + int64(recordpos)*int64(dbf.header.RecLen)
}

//Reads len(buf) bytes at pos, a short read is reported as ErrIncomplete
func (dbf *DBF) readAt(r io.ReadSeeker, buf []byte, pos int64) error {
	if _, err := r.Seek(pos, io.SeekStart); err != nil {
		return err
	}
	_, err := io.ReadFull(r, buf)
	if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
		return ErrIncomplete
	}
	return err
}

//Reads raw field data of one field at fieldpos at recordpos
func (dbf *DBF) readField(recordpos uint32, fieldpos int) ([]byte, error) {
	if recordpos >= dbf.header.NumRec {
		return nil, ErrEOF
	}
	if fieldpos < 0 || fieldpos >= len(dbf.fields) {
		return nil, ErrInvalidField
	}
	buf := make([]byte, dbf.fields[fieldpos].Len)
	pos := dbf.recordOffset(recordpos) + int64(dbf.fields[fieldpos].Pos)
	if err := dbf.readAt(dbf.r, buf, pos); err != nil {
		return buf, err
	}
	return buf, nil
}

//Reads raw record data of one record at recordpos
func (dbf *DBF) readRecord(recordpos uint32) ([]byte, error) {
	if recordpos >= dbf.header.NumRec {
		return nil, ErrEOF
	}
	buf := make([]byte, dbf.header.RecLen)
	if err := dbf.readAt(dbf.r, buf, dbf.recordOffset(recordpos)); err != nil {
		return buf, err
	}
	return buf, nil
}

//Converts raw recorddata to a Record struct.
//If the data points to a memo (FPT) file this file is also read.
func (dbf *DBF) bytesToRecord(data []byte) (*Record, error) {

	rec := new(Record)

	//a record should start with te delete flag, a space (0x20) or * (0x2A)
	rec.Deleted = data[0] == 0x2A
	if !rec.Deleted && data[0] != 0x20 {
		return nil, fmt.Errorf("Invalid record data, no delete flag found at beginning of record")
	}

	rec.data = make([]interface{}, dbf.NumFields())

	for i := range rec.data {
		fieldinfo := dbf.fields[i]
		start := int(fieldinfo.Pos)
		end := start + int(fieldinfo.Len)
		if end > len(data) {
			return rec, ErrIncomplete
		}
		val, err := dbf.fieldDataToValue(data[start:end], i)
		if err != nil {
			return rec, fmt.Errorf("field %s: %w", fieldinfo.FieldName(), err)
		}
		rec.data[i] = val
	}

	return rec, nil
}

//Convert raw field data to the correct type for field fieldpos.
//For C and M fields a charset conversion is done using the Decoder.
//For M fields the data is read from the FPT file.
//D fields are returned as calendar.Date and T fields as DateTime, both named in the reader's calendar.
func (dbf *DBF) fieldDataToValue(raw []byte, fieldpos int) (interface{}, error) {
	//Not all fieldtypes have been implemented because we don't use them in our DBFs
	//Extend this function if needed
	if fieldpos < 0 || fieldpos >= len(dbf.fields) {
		return nil, ErrInvalidField
	}

	switch dbf.fields[fieldpos].FieldType() {
	default:
		return nil, fmt.Errorf("Unsupported fieldtype: %s", dbf.fields[fieldpos].FieldType())
	case "M":
		//M values contain the adress in the FPT file from where to read data
		memo, isText, err := dbf.readFPT(raw)
		if err != nil {
			return "", err
		}
		if isText {
			text, err := dbf.dec.Decode(memo)
			if err != nil {
				return "", err
			}
			return string(text), nil
		}
		return memo, nil
	case "C":
		//C values are stored as strings, the returned string is not trimmed
		text, err := dbf.dec.Decode(raw)
		if err != nil {
			return "", err
		}
		return string(text), nil
	case "I":
		//I values are stored as numeric values
		return int32(binary.LittleEndian.Uint32(raw)), nil
	case "B":
		//B (double) values are stored as numeric values
		return math.Float64frombits(binary.LittleEndian.Uint64(raw)), nil
	case "Y":
		//Y (currency) values are stored as int64 with 4 implied decimals
		return float64(int64(binary.LittleEndian.Uint64(raw))) / 10000, nil
	case "N":
		//N values are stored as string values
		if dbf.fields[fieldpos].Decimals == 0 {
			return strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 64)
		}
		fallthrough //same as "F"
	case "F":
		//F values are stored as string values
		return strconv.ParseFloat(strings.TrimSpace(string(raw)), 64)
	case "D":
		//D values are stored as string in format YYYYMMDD
		return dbf.parseDate(raw)
	case "T":
		//T values are stored as two int32, the Julian day number and milliseconds since midnight
		return dbf.parseDateTime(raw)
	case "L":
		//L values are stored as strings T or F (Y or N), the rest is false...
		return raw[0] == 'T' || raw[0] == 'Y', nil
	case "V":
		//V values just return the raw value
		return raw, nil
	}
}

//Parses a YYYYMMDD D field, a blank field is the zero calendar.Date
func (dbf *DBF) parseDate(raw []byte) (calendar.Date, error) {
	s := string(raw)
	if strings.TrimSpace(s) == "" {
		return calendar.Date{}, nil
	}
	if len(s) != 8 {
		return calendar.Date{}, fmt.Errorf("Invalid date %q", s)
	}
	year, err := strconv.ParseInt(strings.TrimSpace(s[:4]), 10, 32)
	if err != nil {
		return calendar.Date{}, fmt.Errorf("Invalid date %q: %w", s, err)
	}
	month, err := strconv.Atoi(s[4:6])
	if err != nil {
		return calendar.Date{}, fmt.Errorf("Invalid date %q: %w", s, err)
	}
	day, err := strconv.Atoi(s[6:])
	if err != nil {
		return calendar.Date{}, fmt.Errorf("Invalid date %q: %w", s, err)
	}
	d, err := dbf.cal.AtYMD(int32(year), time.Month(month), day)
	if err != nil {
		return calendar.Date{}, fmt.Errorf("Invalid date %q: %w", s, err)
	}
	return d, nil
}

//Parses a T field, a field of all zeros or spaces is the zero DateTime
func (dbf *DBF) parseDateTime(raw []byte) (DateTime, error) {
	if len(raw) != 8 {
		return DateTime{}, fmt.Errorf("Invalid datetime length %d", len(raw))
	}
	if len(bytes.Trim(raw, "\x00 ")) == 0 {
		return DateTime{}, nil
	}
	jdn := int32(binary.LittleEndian.Uint32(raw[:4]))
	millis := int32(binary.LittleEndian.Uint32(raw[4:]))
	return DateTime{Date: dbf.cal.AtJDN(jdn), Millis: millis}, nil
}

//Reads one or more blocks from the FPT file, called for each memo field.
//The returnvalue is the raw data and true if the data read is text (false is RAW binary data).
//Block 0 is an empty memo.
func (dbf *DBF) readFPT(blockdata []byte) ([]byte, bool, error) {

	if dbf.fptr == nil {
		return nil, false, ErrNoFPTFile
	}

	//Determine the block number
	block := binary.LittleEndian.Uint32(blockdata)
	if block == 0 {
		return []byte{}, true, nil
	}
	//The position in the file is blocknumber*blocksize
	pos := int64(dbf.fptheader.BlockSize) * int64(block)

	//Read the memo block header, instead of reading into a struct using binary.Read we just read the two
	//uints in one buffer and then convert, this saves seconds for large DBF files with many memo fields
	//as it avoids using the reflection in binary.Read
	hbuf := make([]byte, 8)
	if err := dbf.readAt(dbf.fptr, hbuf, pos); err != nil {
		return nil, false, err
	}
	sign := binary.BigEndian.Uint32(hbuf[:4])
	leng := binary.BigEndian.Uint32(hbuf[4:])

	if leng == 0 {
		//No data according to block header? Not sure if this should be an error instead
		return []byte{}, sign == 1, nil
	}
	//Now read the actual data
	buf := make([]byte, leng)
	if err := dbf.readAt(dbf.fptr, buf, pos+8); err != nil {
		return buf, sign == 1, err
	}
	return buf, sign == 1, nil
}

//DateTime is the value of a T field. Millis is passed through as stored.
type DateTime struct {
	Date   calendar.Date
	Millis int32 //Milliseconds since midnight
}

//Returns if dt is the zero DateTime, as read from a blank T field
func (dt DateTime) IsZero() bool {
	return dt.Date.IsZero() && dt.Millis == 0
}

//Formats as YYYY-MM-DD hh:mm:ss.mmm
func (dt DateTime) String() string {
	ms := int(dt.Millis)
	return fmt.Sprintf("%s %02d:%02d:%02d.%03d", dt.Date, ms/3600000, ms/60000%60, ms/1000%60, ms%1000)
}

//A blank DateTime marshals to an empty string
func (dt DateTime) MarshalText() ([]byte, error) {
	if dt.IsZero() {
		return []byte{}, nil
	}
	return []byte(dt.String()), nil
}

//Header info from https://msdn.microsoft.com/en-us/library/st4a0s68%28VS.80%29.aspx
type DBFHeader struct {
	FileVersion byte     //File type flag
	ModYear     uint8    //Last update year (0-99)
	ModMonth    uint8    //Last update month
	ModDay      uint8    //Last update day
	NumRec      uint32   //Number of records in file
	FirstRec    uint16   //Position of first data record
	RecLen      uint16   //Length of one data record, including delete flag
	Reserved    [16]byte //Reserved
	TableFlags  byte     //Table flags
	CodePage    byte     //Code page mark
}

//Parses the ModYear, ModMonth and ModDay to a Gregorian calendar.Date.
//Note: The Date is stored in 2 digits, 15 is 2015, we assume here that all files
//were modified after the year 2000 and always add 2000.
func (h *DBFHeader) Modified() (calendar.Date, error) {
	return calendar.Gregorian.AtYMD(2000+int32(h.ModYear), time.Month(h.ModMonth), int(h.ModDay))
}

//Returns the calculated number of fields from the header info alone (without the need to read the fieldinfo from the header).
//This is the fastest way to determine the number of records in the file.
//Note: when OpenFile is used the fields have already been parsed so it is better to call DBF.NumFields in that case.
func (h *DBFHeader) NumFields() uint16 {
	return uint16((h.FirstRec - 296) / 32)
}

//Returns the calculated filesize based on the header info
func (h *DBFHeader) FileSize() int64 {
	return 296 + int64(h.NumFields())*32 + int64(h.NumRec)*int64(h.RecLen)
}

//Field subrecord structure from header.
//Header info from https://msdn.microsoft.com/en-us/library/st4a0s68%28VS.80%29.aspx
type FieldHeader struct {
	Name     [11]byte //Field name with a maximum of 10 characters. If less than 10, it is padded with null characters (0x00).
	Type     byte     //Field type
	Pos      uint32   //Displacement of field in record
	Len      uint8    //Length of field (in bytes)
	Decimals uint8    //Number of decimal places
	Flags    byte     //Field flags
	Next     uint32   //Value of autoincrement Next value
	Step     uint8    //Value of autoincrement Step value
	Reserved [8]byte  //Reserved
}

//Fieldname as a trimmed string (max length 10)
func (f *FieldHeader) FieldName() string {
	return string(bytes.TrimRight(f.Name[:], "\x00"))
}

//Fieldtype as string (length 1)
func (f *FieldHeader) FieldType() string {
	return string(f.Type)
}

//Record data
type Record struct {
	Deleted bool
	data    []interface{}
}

//Get fieldvalue by field pos (index)
func (r *Record) Field(pos int) (interface{}, error) {
	if pos < 0 || pos >= len(r.data) {
		return 0, ErrInvalidField
	}
	return r.data[pos], nil
}

//Get all fields as a slice
func (r *Record) FieldSlice() []interface{} {
	return r.data
}

//Opens a DBF file (and FPT if needed) from disk.
//After a successful call to this method (no error is returned) the caller
//should call DBF.Close() to close the embedded file handle(s).
//A nil Decoder selects one from the code page mark in the header.
func OpenFile(filename string, dec Decoder) (*DBF, error) {

	filename = filepath.Clean(filename)

	dbffile, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	dbf, err := prepareDBF(dbffile, dec)
	if err != nil {
		dbffile.Close()
		return nil, err
	}
	dbf.closers = append(dbf.closers, dbffile)

	//Check if there is an FPT according to the header
	//If there is we will try to open it in the same dir (using the same filename and case)
	//If the FPT file does not exist an error is returned
	if dbf.hasMemo() {
		ext := filepath.Ext(filename)
		fptext := ".fpt"
		if strings.ToUpper(ext) == ext {
			fptext = ".FPT"
		}
		fptfile, err := os.Open(strings.TrimSuffix(filename, ext) + fptext)
		if err != nil {
			dbf.Close()
			return nil, fmt.Errorf("%w: %w", ErrNoFPTFile, err)
		}
		dbf.closers = append(dbf.closers, fptfile)
		if err := dbf.prepareFPT(fptfile); err != nil {
			dbf.Close()
			return nil, err
		}
	}

	return dbf, nil
}

//Opens a DBF from a stream, fpt may be nil when the table has no memo fields.
//A nil Decoder selects one from the code page mark in the header.
func OpenStream(dbfr, fptr io.ReadSeeker, dec Decoder) (*DBF, error) {
	dbf, err := prepareDBF(dbfr, dec)
	if err != nil {
		return nil, err
	}
	if dbf.hasMemo() {
		if fptr == nil {
			return nil, ErrNoFPTFile
		}
		if err := dbf.prepareFPT(fptr); err != nil {
			return nil, err
		}
	}
	return dbf, nil
}

func prepareDBF(r io.ReadSeeker, dec Decoder) (*DBF, error) {
	header, err := readDBFHeader(r)
	if err != nil {
		return nil, err
	}

	//Check if the fileversion flag is expected, expand validFileVersion if needed
	if err := validFileVersion(header.FileVersion); err != nil {
		return nil, err
	}

	//Read fieldinfo
	fields, err := readHeaderFields(r)
	if err != nil {
		return nil, err
	}

	if dec == nil {
		dec = DecoderForCodePage(header.CodePage)
	}

	return &DBF{
		header: header,
		r:      r,
		dec:    dec,
		cal:    calendar.Gregorian,
		fields: fields,
	}, nil
}

func (dbf *DBF) hasMemo() bool {
	return dbf.header.TableFlags&0x02 != 0
}

func (dbf *DBF) prepareFPT(r io.ReadSeeker) error {
	fptheader, err := readFPTHeader(r)
	if err != nil {
		return err
	}
	if fptheader.BlockSize == 0 {
		return fmt.Errorf("Invalid FPT block size 0")
	}
	dbf.fptr = r
	dbf.fptheader = fptheader
	return nil
}

func readDBFHeader(r io.ReadSeeker) (*DBFHeader, error) {
	h := new(DBFHeader)
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	//Integers in table files are stored with the least significant byte first.
	err := binary.Read(r, binary.LittleEndian, h)
	if err != nil {
		return nil, err
	}
	return h, nil
}

func validFileVersion(version byte) error {
	switch version {
	default:
		return fmt.Errorf("Untested DBF file version: %d (%x hex)", version, version)
	case 0x30, 0x31, 0x32:
		return nil
	}
}

//Reads fieldinfo from DBF header, starting at pos 32.
//Reads fields until it finds the Header record terminator (0x0D).
func readHeaderFields(r io.ReadSeeker) ([]FieldHeader, error) {
	fields := []FieldHeader{}

	offset := int64(32)
	b := make([]byte, 1)
	for {
		//Check if we are at 0x0D by reading one byte ahead
		if _, err := r.Seek(offset, io.SeekStart); err != nil {
			return nil, err
		}
		if _, err := io.ReadFull(r, b); err != nil {
			return nil, err
		}
		if b[0] == 0x0D {
			break
		}
		//Position back one byte and read the field
		if _, err := r.Seek(-1, io.SeekCurrent); err != nil {
			return nil, err
		}
		field := FieldHeader{}
		err := binary.Read(r, binary.LittleEndian, &field)
		if err != nil {
			return nil, err
		}
		fields = append(fields, field)

		offset += 32
	}
	return fields, nil
}

//Memo header. Header info from https://msdn.microsoft.com/en-US/library/8599s21w%28v=vs.80%29.aspx
type FPTHeader struct {
	NextFree  uint32  //Location of next free block
	Unused    [2]byte //Unused
	BlockSize uint16  //Block size (bytes per block)
}

func readFPTHeader(r io.ReadSeeker) (*FPTHeader, error) {
	h := new(FPTHeader)
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	//Integers in memo files are stored with the most significant byte first
	err := binary.Read(r, binary.BigEndian, h)
	if err != nil {
		return nil, err
	}
	return h, nil
}
