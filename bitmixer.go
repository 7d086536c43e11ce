package automaton

// Final avalanche step of the 32-bit MurmurHash3.
func mix32(v int) int {
	k := uint32(v)
	k = (k ^ (k >> 16)) * 0x85ebca6b
	k = (k ^ (k >> 13)) * 0xc2b2ae35
	return int(k ^ (k >> 16))
}

// hashSetOf hashes an unordered set of state numbers. It is the sum of the mixed members plus
// the cardinality, so equal sets hash equally regardless of how they are stored.
func hashSetOf(values []int) uint64 {
	h := uint64(len(values))
	for _, v := range values {
		h += uint64(uint32(mix32(v)))
	}
	return h
}

// hashSequence hashes an ordered sequence of ints.
func hashSequence(values []int) uint64 {
	h := uint64(len(values))
	for _, v := range values {
		h = h*31 + uint64(uint32(mix32(v)))
	}
	return h
}
