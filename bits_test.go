package huffman

import (
	"bytes"
	"testing"
)

func TestNewBitString(t *testing.T) {
	bs, err := NewBitString([]byte{0x4a}, 7)
	if err != nil {
		t.Fatalf("NewBitString failed: %v", err)
	}
	if bs.Len() != 7 {
		t.Errorf("expected Len 7, got %d", bs.Len())
	}
	if expect, actual := `"0100101"`, bs.String(); expect != actual {
		t.Errorf("wrong bits:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}

func TestNewBitStringInvalid(t *testing.T) {
	testData := [...]struct {
		name  string
		data  []byte
		nbits int
	}{
		{"negative count", []byte{0x00}, -1},
		{"too few bytes", []byte{0x00}, 9},
		{"too many bytes", []byte{0x00, 0x00}, 8},
	}
	for _, row := range testData {
		t.Run(row.name, func(t *testing.T) {
			if bs, err := NewBitString(row.data, row.nbits); err == nil {
				t.Errorf("expected error, got %s", bs)
			}
		})
	}
}

func TestBitStringBytesCopy(t *testing.T) {
	bs, err := NewBitString([]byte{0xff}, 8)
	if err != nil {
		t.Fatalf("NewBitString failed: %v", err)
	}

	data := bs.Bytes()
	data[0] = 0x00
	if again := bs.Bytes(); !bytes.Equal(again, []byte{0xff}) {
		t.Errorf("Bytes did not return a copy: got %#v", again)
	}
}

func TestBitAppender(t *testing.T) {
	ba := newBitAppender()
	for _, s := range []string{"0", "100", "101"} {
		hc, err := ParseCode(s)
		if err != nil {
			t.Fatalf("ParseCode failed: %v", err)
		}
		if err := ba.appendCode(hc); err != nil {
			t.Fatalf("appendCode failed: %v", err)
		}
	}

	bs := ba.BitString()
	if bs.Len() != 7 {
		t.Errorf("expected Len 7, got %d", bs.Len())
	}
	if expect, actual := `"0100101"`, bs.String(); expect != actual {
		t.Errorf("wrong bits:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
	if data := bs.Bytes(); !bytes.Equal(data, []byte{0x4a}) {
		t.Errorf("expected packed bytes [0x4a], got %#v", data)
	}
}

func TestBitAppenderEmpty(t *testing.T) {
	bs := newBitAppender().BitString()
	if bs.Len() != 0 {
		t.Errorf("expected Len 0, got %d", bs.Len())
	}
	if len(bs.Bytes()) != 0 {
		t.Errorf("expected no bytes, got %#v", bs.Bytes())
	}
	if expect, actual := `""`, bs.String(); expect != actual {
		t.Errorf("wrong bits:\n\texpect: %s\n\tactual: %s", expect, actual)
	}
}
