package kyber

// Poly is a degree-255 polynomial over Z_q. Coefficients are kept in a
// signed range between reductions; reduce/csubQ bring them back to a
// canonical representative before packing or compression. The zero value
// is the zero polynomial.
type Poly [N]int16

// add sets p = a + b without reduction; ranges grow and the caller reduces
// when it matters.
func (p *Poly) add(a, b *Poly) {
	for i := 0; i < N; i++ {
		p[i] = a[i] + b[i]
	}
}

// sub sets p = a - b without reduction.
func (p *Poly) sub(a, b *Poly) {
	for i := 0; i < N; i++ {
		p[i] = a[i] - b[i]
	}
}

// reduce applies Barrett reduction to every coefficient.
func (p *Poly) reduce() {
	for i := 0; i < N; i++ {
		p[i] = barrettReduce(p[i])
	}
}

// csubQ maps every coefficient from [0, 2q) to the canonical [0, q),
// branch-free.
func (p *Poly) csubQ() {
	for i := 0; i < N; i++ {
		p[i] = csubq(p[i])
	}
}

// cAddQ adds q to every negative coefficient, branch-free. Used where the
// next consumer needs non-negative representatives of secret-derived data.
func (p *Poly) cAddQ() {
	for i := 0; i < N; i++ {
		p[i] = caddq(p[i])
	}
}

// toMont multiplies every coefficient by 2^16 mod q, moving the polynomial
// into the Montgomery domain.
func (p *Poly) toMont() {
	const f = int16((uint64(1) << 32) % Q)
	for i := 0; i < N; i++ {
		p[i] = montgomeryReduce(int32(p[i]) * int32(f))
	}
}

// fromMsg maps each bit of a 32-byte message to a coefficient of 0 or
// round(q/2). The mask trick keeps the mapping free of secret-dependent
// branches.
func (p *Poly) fromMsg(msg []byte) {
	for i := 0; i < N/8; i++ {
		for j := 0; j < 8; j++ {
			mask := -int16((msg[i] >> j) & 1)
			p[8*i+j] = mask & ((Q + 1) / 2)
		}
	}
}

// toMsg recovers the 32-byte message by rounding each coefficient to the
// nearer of 0 and q/2. The threshold test t = round(2c/q) mod 2 is computed
// arithmetically; coefficients here derive from the secret key, so no
// comparisons are allowed.
func (p *Poly) toMsg(msg []byte) {
	p.csubQ()
	for i := 0; i < N/8; i++ {
		msg[i] = 0
		for j := 0; j < 8; j++ {
			t := ((uint32(p[8*i+j]) << 1) + Q/2) / Q & 1
			msg[i] |= byte(t << j)
		}
	}
}

// wipe zeroizes the polynomial.
func (p *Poly) wipe() {
	for i := range p {
		p[i] = 0
	}
}
