package huffman

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/icza/bitio"
)

// BitString is an immutable sequence of bits, packed most-significant-first
// into bytes.  Any unused bits of the final byte are zero.
type BitString struct {
	data []byte
	size int
}

// NewBitString wraps previously packed bits.  The data must be exactly long
// enough to hold nbits bits.
func NewBitString(data []byte, nbits int) (BitString, error) {
	if nbits < 0 || (nbits+7)/8 != len(data) {
		return BitString{}, fmt.Errorf("bit count %d does not fit %d bytes", nbits, len(data))
	}
	owned := make([]byte, len(data))
	copy(owned, data)
	return BitString{data: owned, size: nbits}, nil
}

// Len returns the number of bits.
func (bs BitString) Len() int {
	return bs.size
}

// Bytes returns a copy of the packed bits, zero-padded to a byte boundary.
func (bs BitString) Bytes() []byte {
	out := make([]byte, len(bs.data))
	copy(out, bs.data)
	return out
}

// String returns the individual bits as a quoted string of '0' and '1'
// digits.
func (bs BitString) String() string {
	var sb strings.Builder
	r := bs.reader()
	for i := 0; i < bs.size; i++ {
		// Reading from an in-memory buffer cannot fail.
		bit, _ := r.ReadBool()
		if bit {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return strconv.Quote(sb.String())
}

func (bs BitString) reader() *bitio.Reader {
	return bitio.NewReader(bytes.NewReader(bs.data))
}

var _ fmt.Stringer = BitString{}

// bitAppender accumulates codes into a BitString.
type bitAppender struct {
	buf  bytes.Buffer
	w    *bitio.Writer
	size int
}

func newBitAppender() *bitAppender {
	ba := new(bitAppender)
	ba.w = bitio.NewWriter(&ba.buf)
	return ba
}

func (ba *bitAppender) appendCode(hc Code) error {
	if err := ba.w.WriteBits(hc.Bits, hc.Size); err != nil {
		return err
	}
	ba.size += int(hc.Size)
	return nil
}

// BitString flushes any pending partial byte and returns the accumulated
// bits.  The appender must not be used afterward.
func (ba *bitAppender) BitString() BitString {
	// Close pads the final byte with zeros; it cannot fail on a
	// bytes.Buffer.
	_ = ba.w.Close()
	return BitString{data: ba.buf.Bytes(), size: ba.size}
}
