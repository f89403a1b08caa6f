package huffman

import (
	"fmt"
	"strconv"

	"github.com/chronos-tachyon/assert"
)

// maxCodeSize bounds the bit length of a single code.  A Huffman tree deeper
// than this would require more input symbols than can exist in memory.
const maxCodeSize = 63

// Code represents the sequence of bits assigned to one symbol.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The first bit of the code
	// is the most significant of the low Size bits.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// ParseCode parses a string of '0' and '1' digits into a Code.  It is the
// inverse of the unquoted form produced by String.
func ParseCode(s string) (Code, error) {
	if len(s) == 0 || len(s) > maxCodeSize {
		return Code{}, fmt.Errorf("invalid code length %d", len(s))
	}
	var hc Code
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			hc = hc.appendBit(0)
		case '1':
			hc = hc.appendBit(1)
		default:
			return Code{}, fmt.Errorf("invalid bit %q in code %q", s[i], s)
		}
	}
	return hc, nil
}

// appendBit returns the code extended by one trailing bit.
func (hc Code) appendBit(bit uint64) Code {
	assert.Assertf(hc.Size < maxCodeSize, "code size %d >= maxCodeSize %d", hc.Size, maxCodeSize)
	return Code{Size: hc.Size + 1, Bits: (hc.Bits << 1) | bit}
}

// String returns the quoted string representation of this Code.
func (hc Code) String() string {
	return strconv.Quote(hc.bitString())
}

// bitString returns the bare digits of the code, without quotes.
func (hc Code) bitString() string {
	if hc.Size == 0 {
		return ""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return fmt.Sprintf(format, hc.Bits)
}

var _ fmt.Stringer = Code{}
