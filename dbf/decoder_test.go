package dbf

import (
	"bytes"
	"testing"
)

func TestUTF8Decoder_Decode(t *testing.T) {
	dec := new(UTF8Decoder)
	in := []byte("Tésting ㇹ Д")
	b, err := dec.Decode(in)
	if err != nil {
		t.Fatalf("error in decode: %s", err)
	}
	if bytes.Equal(in, b) == false {
		t.Errorf("Want %s, have %s", string(in), string(b))
	}
}

func TestWin1250Decoder_Decode(t *testing.T) {
	dec := new(Win1250Decoder)
	in := []byte{0xC4, 0xF5}
	b, err := dec.Decode(in)
	if err != nil {
		t.Fatalf("error in decode: %s", err)
	}
	want := "Äő"
	if string(b) != want {
		t.Errorf("Want %s, have %s", want, string(b))
	}
}

func TestDecoderForCodePage(t *testing.T) {
	tests := []struct {
		mark byte
		in   []byte
		want string
	}{
		{0x03, []byte{0x45, 0x72, 0x77, 0xE4, 0x68, 0x6E, 0x74}, "Erwähnt"},
		{0xC8, []byte{0xC4, 0xF5}, "Äő"},
		{0xC9, []byte{0xC4}, "Д"},
		{0x00, []byte("plain"), "plain"},
	}
	for _, tt := range tests {
		b, err := DecoderForCodePage(tt.mark).Decode(tt.in)
		if err != nil {
			t.Fatalf("code page %x: %s", tt.mark, err)
		}
		if string(b) != tt.want {
			t.Errorf("Code page %x: want %q, have %q", tt.mark, tt.want, string(b))
		}
	}
}
