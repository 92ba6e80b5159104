package dbf

import (
	"bytes"
	"encoding/binary"
	"math"
)

//Builds the test table in memory, the same bytes are used from disk and as a stream

type fixtureField struct {
	name     string
	typ      byte
	length   uint8
	decimals uint8
}

var fixtureFields = []fixtureField{
	{"ID", 'I', 4, 0},
	{"NAME", 'C', 10, 0},
	{"BORN", 'D', 8, 0},
	{"STAMP", 'T', 8, 0},
	{"AMOUNT", 'N', 10, 2},
	{"COUNT", 'N', 5, 0},
	{"ACTIVE", 'L', 1, 0},
	{"NOTES", 'M', 4, 0},
	{"RATE", 'B', 8, 0},
}

const fixtureBlockSize = 64

func le32(v int32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, uint32(v))
	return b
}

func float64Bytes(f float64) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, math.Float64bits(f))
	return b
}

func datetimeBytes(jdn, millis int32) []byte {
	return append(le32(jdn), le32(millis)...)
}

func padded(s []byte, n int) []byte {
	return append(s, bytes.Repeat([]byte(" "), n-len(s))...)
}

//One slice of raw field values per record, the first byte is the delete flag
var fixtureRecords = [][][]byte{
	{
		[]byte(" "),
		le32(1),
		padded([]byte{0xC4, 0xF5, 'n', 'e'}, 10),
		[]byte("15821004"),
		datetimeBytes(2299161, 45296789),
		[]byte("   1234.50"),
		[]byte("   42"),
		[]byte("T"),
		le32(8),
		float64Bytes(0.25),
	},
	{
		[]byte("*"),
		le32(2),
		padded([]byte("Bob"), 10),
		[]byte("17520910"),
		make([]byte, 8),
		[]byte("      0.00"),
		[]byte("    0"),
		[]byte("F"),
		le32(0),
		float64Bytes(0),
	},
	{
		[]byte(" "),
		le32(3),
		padded([]byte("Eve"), 10),
		[]byte("        "),
		datetimeBytes(2361222, 0),
		[]byte("     -1.25"),
		[]byte("   -7"),
		[]byte("N"),
		le32(9),
		float64Bytes(-2.5),
	},
}

func buildFixtureDBF() []byte {
	reclen := uint16(1)
	for _, f := range fixtureFields {
		reclen += uint16(f.length)
	}
	header := DBFHeader{
		FileVersion: 0x30,
		ModYear:     24,
		ModMonth:    2,
		ModDay:      29,
		NumRec:      uint32(len(fixtureRecords)),
		FirstRec:    uint16(296 + 32*len(fixtureFields)),
		RecLen:      reclen,
		TableFlags:  0x02,
		CodePage:    0xC8,
	}

	buf := new(bytes.Buffer)
	binary.Write(buf, binary.LittleEndian, header)
	buf.Write(make([]byte, 2))

	pos := uint32(1)
	for _, f := range fixtureFields {
		fh := FieldHeader{Type: f.typ, Pos: pos, Len: f.length, Decimals: f.decimals}
		copy(fh.Name[:], f.name)
		if f.name == "ID" {
			fh.Next, fh.Step = 4, 1
		}
		binary.Write(buf, binary.LittleEndian, fh)
		pos += uint32(f.length)
	}
	buf.WriteByte(0x0D)
	buf.Write(make([]byte, 263)) //backlink

	for _, rec := range fixtureRecords {
		for _, field := range rec {
			buf.Write(field)
		}
	}
	return buf.Bytes()
}

func buildFixtureFPT() []byte {
	buf := new(bytes.Buffer)
	binary.Write(buf, binary.BigEndian, FPTHeader{NextFree: 10, BlockSize: fixtureBlockSize})
	buf.Write(make([]byte, 512-buf.Len()))

	writeBlock := func(sign uint32, data []byte) {
		binary.Write(buf, binary.BigEndian, sign)
		binary.Write(buf, binary.BigEndian, uint32(len(data)))
		buf.Write(data)
		buf.Write(make([]byte, fixtureBlockSize-8-len(data)))
	}
	writeBlock(1, []byte("T\xEBsting memo")) //block 8, Windows-1250 text
	writeBlock(0, []byte{1, 2, 3, 4})        //block 9, binary
	return buf.Bytes()
}
