package kyber

// montgomeryReduce maps a in (-q*2^15, q*2^15) to a*2^-16 mod q in
// (-q, q). All NTT-domain products go through here.
func montgomeryReduce(a int32) int16 {
	// The multiply below must not be narrowed before the subtraction:
	// qInv does not fit a signed 16-bit value, so the low half of a*qInv
	// is extracted by the explicit int16 conversion.
	u := int16(a * int32(qInv))
	t := a - int32(u)*Q
	return int16(t >> 16)
}

// barrettReduce maps a to a representative congruent to a mod q in
// [0, q]. The quotient estimate v = round(2^26 / q) is exact for the
// full int16 range.
func barrettReduce(a int16) int16 {
	const v = int16(((uint32(1) << 26) + Q/2) / Q)
	t := int16(int32(v) * int32(a) >> 26)
	return a - t*Q
}

// csubq conditionally subtracts q from a without branching, returning a
// canonical representative in [0, q) for inputs in [0, 2q). It runs on
// secret-derived coefficients and must stay branch-free.
func csubq(a int16) int16 {
	a -= Q
	a += (a >> 15) & Q
	return a
}

// caddq conditionally adds q to a negative coefficient without branching.
func caddq(a int16) int16 {
	return a + (a>>15)&Q
}
