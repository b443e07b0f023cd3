package kyber

// load32 reads 4 little-endian bytes into a uint32.
func load32(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

// load24 reads 3 little-endian bytes into a uint32.
func load24(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
}

// cbd fills p with coefficients drawn from the centered binomial
// distribution with parameter eta, consuming eta*64 bytes of PRF output.
// Each coefficient is the difference of two eta-bit popcounts, so it lies
// in [-eta, eta].
func (p *Poly) cbd(buf []byte, eta int) error {
	switch eta {
	case 2:
		for i := 0; i < N/8; i++ {
			t := load32(buf[4*i:])
			d := t & 0x55555555
			d += (t >> 1) & 0x55555555
			for j := 0; j < 8; j++ {
				a := int16((d >> (4*j + 0)) & 0x3)
				b := int16((d >> (4*j + 2)) & 0x3)
				p[8*i+j] = a - b
			}
		}
	case 3:
		for i := 0; i < N/4; i++ {
			t := load24(buf[3*i:])
			d := t & 0x00249249
			d += (t >> 1) & 0x00249249
			d += (t >> 2) & 0x00249249
			for j := 0; j < 4; j++ {
				a := int16((d >> (6*j + 0)) & 0x7)
				b := int16((d >> (6*j + 3)) & 0x7)
				p[4*i+j] = a - b
			}
		}
	default:
		return ErrInternal
	}
	return nil
}

// getNoise samples one CBD(eta) polynomial from PRF(seed, nonce).
func (p *Poly) getNoise(seed []byte, nonce byte, eta int) error {
	buf := make([]byte, eta*N/4)
	prf(buf, seed, nonce)
	err := p.cbd(buf, eta)
	wipe(buf)
	return err
}
