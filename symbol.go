package huffman

// Symbol represents one symbol of an input text, i.e. one rune.  Negative
// symbols are not valid.
type Symbol int32

// InvalidSymbol marks nodes that do not carry a symbol.
const InvalidSymbol = Symbol(-1)
