package huffman

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when there are no symbols to encode.
	ErrEmptyInput = errors.New("huffman: empty input")

	// ErrMissingCode is returned when an input symbol has no entry in the
	// code table.  It indicates a table that was not derived from the same
	// input, not a malformed user input.
	ErrMissingCode = errors.New("huffman: no code for symbol")

	// ErrMalformedInput is returned when an encoded bit sequence cannot be
	// fully consumed into valid codes.
	ErrMalformedInput = errors.New("huffman: malformed encoded input")

	// ErrInvalidTable is returned when a code table is empty, holds an
	// empty code, or its codes are not prefix-free.
	ErrInvalidTable = errors.New("huffman: invalid code table")
)

// Encoding is the result of encoding one text: the code table derived from
// the text's symbol frequencies, and the text's bits under that table.
type Encoding struct {
	Table CodeTable
	Bits  BitString
}

// Encode builds an optimal prefix-free code for the symbols of text and
// returns the code table together with the encoded bit sequence.  It returns
// ErrEmptyInput if text holds no symbols.
//
// Encode is a pure function of its input: concurrent calls share no state.
func Encode(text string) (Encoding, error) {
	fm := CountFrequencies(text)

	root, err := buildTree(fm)
	if err != nil {
		return Encoding{}, err
	}

	table := buildTable(root)

	bits, err := EncodeWith(text, table)
	if err != nil {
		return Encoding{}, err
	}

	return Encoding{Table: table, Bits: bits}, nil
}

// EncodeWith encodes text under a previously built table by concatenating,
// in input order, the code of each symbol.  It returns ErrMissingCode if any
// symbol of text is absent from the table.
func EncodeWith(text string, table CodeTable) (BitString, error) {
	ba := newBitAppender()
	for _, r := range text {
		hc, found := table[Symbol(r)]
		if !found {
			return BitString{}, fmt.Errorf("%w: %q", ErrMissingCode, r)
		}
		if err := ba.appendCode(hc); err != nil {
			return BitString{}, err
		}
	}
	return ba.BitString(), nil
}
