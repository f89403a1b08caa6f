package huffman

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// CodeTable maps every symbol of an input alphabet to its code.  The codes
// are prefix-free by construction: each one is the path from the tree root to
// a distinct leaf.
type CodeTable map[Symbol]Code

// buildTable walks the tree depth-first with an explicit stack, labeling left
// edges 0 and right edges 1, and records the accumulated path at each leaf.
// The walk consumes the tree: child pointers are cleared as nodes are
// visited, so no node outlives it.
//
// A tree that is a single leaf gets the one-bit code "0", because an empty
// code could not be recognized on decode.
func buildTable(root *node) CodeTable {
	table := make(CodeTable)

	if root.isLeaf() {
		table[root.sym] = MakeCode(1, 0)
		return table
	}

	type stackItem struct {
		n  *node
		hc Code
	}

	stack := []stackItem{{root, Code{}}}
	for len(stack) > 0 {
		last := len(stack) - 1
		item := stack[last]
		stack[last] = stackItem{}
		stack = stack[:last]

		n := item.n
		if n.isLeaf() {
			table[n.sym] = item.hc
			continue
		}

		left, right := n.left, n.right
		n.left, n.right = nil, nil
		stack = append(stack, stackItem{right, item.hc.appendBit(1)})
		stack = append(stack, stackItem{left, item.hc.appendBit(0)})
	}

	return table
}

// MinSize is the bit length of the shortest code in the table.
func (table CodeTable) MinSize() byte {
	var minSize byte
	for _, hc := range table {
		if minSize == 0 || hc.Size < minSize {
			minSize = hc.Size
		}
	}
	return minSize
}

// MaxSize is the bit length of the longest code in the table.
func (table CodeTable) MaxSize() byte {
	var maxSize byte
	for _, hc := range table {
		if hc.Size > maxSize {
			maxSize = hc.Size
		}
	}
	return maxSize
}

// Dump writes a programmer-readable debugging dump of the table to the given
// writer, sorted by symbol.
func (table CodeTable) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("CodeTable{\n")
	for _, sym := range table.sortedSymbols() {
		fmt.Fprintf(&buf, "\tCode(%q) = %s\n", sym, table[sym])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// MarshalJSON encodes the table as a JSON object mapping each symbol, as a
// one-rune string, to its code's bit string.
func (table CodeTable) MarshalJSON() ([]byte, error) {
	out := make(map[string]string, len(table))
	for sym, hc := range table {
		out[string(rune(sym))] = hc.bitString()
	}
	return json.Marshal(out)
}

// UnmarshalJSON reconstructs a table from the representation produced by
// MarshalJSON.
func (table *CodeTable) UnmarshalJSON(raw []byte) error {
	var in map[string]string
	if err := json.Unmarshal(raw, &in); err != nil {
		return err
	}
	out := make(CodeTable, len(in))
	for key, value := range in {
		runes := []rune(key)
		if len(runes) != 1 {
			return fmt.Errorf("invalid symbol key %q", key)
		}
		hc, err := ParseCode(value)
		if err != nil {
			return err
		}
		out[Symbol(runes[0])] = hc
	}
	*table = out
	return nil
}

func (table CodeTable) sortedSymbols() bySymbol {
	symbols := make(bySymbol, 0, len(table))
	for sym := range table {
		symbols = append(symbols, sym)
	}
	symbols.Sort()
	return symbols
}

var (
	_ json.Marshaler   = CodeTable(nil)
	_ json.Unmarshaler = (*CodeTable)(nil)
)
