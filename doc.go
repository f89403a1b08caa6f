// Package huffman implements Huffman coding over the runes of a text.  It
// counts symbol frequencies, builds the optimal prefix-free code by greedy
// tree construction, and encodes the text into a packed bit sequence.  The
// code table travels with the encoded bits, so the same package can decode
// the bits back into the original text.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
package huffman
