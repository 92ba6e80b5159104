package dbf

import (
	"bytes"
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

//The charset decoding is all done in this file so you could use a different decoder

//Decoder interface as passed to OpenFile and OpenStream
type Decoder interface {
	Decode(in []byte) ([]byte, error)
}

//CharmapDecoder translates single byte code page data to UTF8.
//Input that already is valid UTF8 is returned as is.
type CharmapDecoder struct {
	Charmap encoding.Encoding
}

func (d *CharmapDecoder) Decode(in []byte) ([]byte, error) {
	if utf8.Valid(in) {
		return in, nil
	}
	r := transform.NewReader(bytes.NewReader(in), d.Charmap.NewDecoder())
	return io.ReadAll(r)
}

//This decoder translates a Windows-1250 DBF to UTF8
type Win1250Decoder struct{}

func (d *Win1250Decoder) Decode(in []byte) ([]byte, error) {
	return (&CharmapDecoder{Charmap: charmap.Windows1250}).Decode(in)
}

//This decoder assumes your DBF is in UTF8 so it does nothing
type UTF8Decoder struct{}

func (d *UTF8Decoder) Decode(in []byte) ([]byte, error) {
	return in, nil
}

//Code page marks from the DBF header, see
//https://msdn.microsoft.com/en-us/library/8t45x02s%28v=vs.80%29.aspx
var codePages = map[byte]encoding.Encoding{
	0x01: charmap.CodePage437,
	0x02: charmap.CodePage850,
	0x03: charmap.Windows1252,
	0x64: charmap.CodePage852,
	0x65: charmap.CodePage866,
	0x7D: charmap.Windows1255,
	0x7E: charmap.Windows1256,
	0xC8: charmap.Windows1250,
	0xC9: charmap.Windows1251,
	0xCA: charmap.Windows1254,
	0xCB: charmap.Windows1253,
}

//DecoderForCodePage returns the decoder for a code page mark as found in DBFHeader.CodePage.
//Unknown marks (including 0, no code page) return a UTF8Decoder.
func DecoderForCodePage(mark byte) Decoder {
	if cm, ok := codePages[mark]; ok {
		return &CharmapDecoder{Charmap: cm}
	}
	return new(UTF8Decoder)
}
