package huffman

import (
	"fmt"
	"strings"
)

// trieNode mirrors the shape of the Huffman tree that produced a code table.
// Nodes on the interior of a code path carry InvalidSymbol.
type trieNode struct {
	zero *trieNode
	one  *trieNode
	sym  Symbol
}

// Decode reverses Encode: it walks the encoded bits through the tree
// described by table, emitting a symbol each time a leaf is reached, until
// the bits are exhausted.
//
// It returns ErrInvalidTable if the table's codes are not prefix-free, and
// ErrMalformedInput if the bits do not resolve into a whole number of codes.
func Decode(table CodeTable, bits BitString) (string, error) {
	root, err := buildTrie(table)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	r := bits.reader()
	cur := root
	for i := 0; i < bits.Len(); i++ {
		bit, err := r.ReadBool()
		if err != nil {
			return "", err
		}

		if bit {
			cur = cur.one
		} else {
			cur = cur.zero
		}
		if cur == nil {
			return "", fmt.Errorf("%w: no code matches at bit %d", ErrMalformedInput, i)
		}

		if cur.sym != InvalidSymbol {
			sb.WriteRune(rune(cur.sym))
			cur = root
		}
	}

	if cur != root {
		return "", fmt.Errorf("%w: trailing bits do not resolve to a symbol", ErrMalformedInput)
	}
	return sb.String(), nil
}

// buildTrie reconstructs the code tree from a table, validating that the
// table is non-empty and that no code is a prefix of another.
func buildTrie(table CodeTable) (*trieNode, error) {
	if len(table) == 0 {
		return nil, fmt.Errorf("%w: no entries", ErrInvalidTable)
	}

	root := &trieNode{sym: InvalidSymbol}
	for _, sym := range table.sortedSymbols() {
		hc := table[sym]
		if hc.Size == 0 {
			return nil, fmt.Errorf("%w: empty code for %q", ErrInvalidTable, sym)
		}

		cur := root
		for i := hc.Size; i > 0; i-- {
			if cur.sym != InvalidSymbol {
				return nil, fmt.Errorf("%w: code of %q is a prefix of code %s of %q", ErrInvalidTable, cur.sym, hc, sym)
			}

			var next **trieNode
			if (hc.Bits>>(i-1))&1 != 0 {
				next = &cur.one
			} else {
				next = &cur.zero
			}
			if *next == nil {
				*next = &trieNode{sym: InvalidSymbol}
			}
			cur = *next
		}

		if cur.sym != InvalidSymbol {
			return nil, fmt.Errorf("%w: duplicate code %s for %q and %q", ErrInvalidTable, hc, cur.sym, sym)
		}
		if cur.zero != nil || cur.one != nil {
			return nil, fmt.Errorf("%w: code %s of %q is a prefix of another code", ErrInvalidTable, hc, sym)
		}
		cur.sym = sym
	}

	return root, nil
}
