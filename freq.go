package huffman

// FrequencyMap records the number of occurrences of every distinct symbol in
// an input text.
type FrequencyMap map[Symbol]uint32

// CountFrequencies scans text and returns its FrequencyMap.  An empty text
// yields an empty map.
func CountFrequencies(text string) FrequencyMap {
	fm := make(FrequencyMap)
	for _, r := range text {
		fm[Symbol(r)]++
	}
	return fm
}

// Total returns the sum of all counts, which equals the number of runes in
// the counted text.
func (fm FrequencyMap) Total() uint64 {
	var total uint64
	for _, freq := range fm {
		total += uint64(freq)
	}
	return total
}
