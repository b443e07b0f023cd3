package kyber

// compress maps a canonical coefficient in [0, q) to its nearest d-bit
// approximation, round(x * 2^d / q) mod 2^d, in integer arithmetic. The
// rounding constant q/2 belongs to the compression direction only.
func compress(x uint32, d uint) uint32 {
	return (x<<d + Q/2) / Q & (1<<d - 1)
}

// decompress maps a d-bit value back to [0, q), round(c * q / 2^d). The
// rounding constant 2^(d-1) is derived from the decompression direction and
// is never the compression constant for the same or any other width.
func decompress(c uint32, d uint) int16 {
	return int16((c*Q + 1<<(d-1)) >> d)
}

// packPoly encodes p losslessly at 12 bits per coefficient into 384 bytes.
func packPoly(out []byte, p *Poly) {
	p.csubQ()
	for i := 0; i < N/2; i++ {
		t0 := uint16(p[2*i])
		t1 := uint16(p[2*i+1])
		out[3*i] = byte(t0)
		out[3*i+1] = byte(t0>>8) | byte(t1<<4)
		out[3*i+2] = byte(t1 >> 4)
	}
}

// unpackPoly decodes a 384-byte losslessly packed polynomial.
func unpackPoly(p *Poly, in []byte) {
	for i := 0; i < N/2; i++ {
		p[2*i] = int16((uint16(in[3*i]) | uint16(in[3*i+1])<<8) & 0xFFF)
		p[2*i+1] = int16((uint16(in[3*i+1])>>4 | uint16(in[3*i+2])<<4) & 0xFFF)
	}
}

// packVec encodes a K-element vector losslessly, 384 bytes per polynomial.
func packVec(out []byte, v PolyVec) {
	for i := range v {
		packPoly(out[i*PolyBytes:], &v[i])
	}
}

// unpackVec decodes a losslessly packed K-element vector.
func unpackVec(v PolyVec, in []byte) {
	for i := range v {
		unpackPoly(&v[i], in[i*PolyBytes:])
	}
}

// compressPoly bit-packs p at d bits per coefficient, d in {4, 5}.
func compressPoly(out []byte, p *Poly, d uint) {
	p.csubQ()
	switch d {
	case 4:
		for i := 0; i < N/2; i++ {
			c0 := compress(uint32(p[2*i]), 4)
			c1 := compress(uint32(p[2*i+1]), 4)
			out[i] = byte(c0) | byte(c1)<<4
		}
	case 5:
		var t [8]byte
		for i := 0; i < N/8; i++ {
			for j := 0; j < 8; j++ {
				t[j] = byte(compress(uint32(p[8*i+j]), 5))
			}
			out[5*i+0] = t[0] | t[1]<<5
			out[5*i+1] = t[1]>>3 | t[2]<<2 | t[3]<<7
			out[5*i+2] = t[3]>>1 | t[4]<<4
			out[5*i+3] = t[4]>>4 | t[5]<<1 | t[6]<<6
			out[5*i+4] = t[6]>>2 | t[7]<<3
		}
	}
}

// decompressPoly inverts compressPoly for d in {4, 5}.
func decompressPoly(p *Poly, in []byte, d uint) {
	switch d {
	case 4:
		for i := 0; i < N/2; i++ {
			p[2*i] = decompress(uint32(in[i]&0xF), 4)
			p[2*i+1] = decompress(uint32(in[i]>>4), 4)
		}
	case 5:
		var t [8]byte
		for i := 0; i < N/8; i++ {
			t[0] = in[5*i+0]
			t[1] = in[5*i+0]>>5 | in[5*i+1]<<3
			t[2] = in[5*i+1] >> 2
			t[3] = in[5*i+1]>>7 | in[5*i+2]<<1
			t[4] = in[5*i+2]>>4 | in[5*i+3]<<4
			t[5] = in[5*i+3] >> 1
			t[6] = in[5*i+3]>>6 | in[5*i+4]<<2
			t[7] = in[5*i+4] >> 3
			for j := 0; j < 8; j++ {
				p[8*i+j] = decompress(uint32(t[j]&0x1F), 5)
			}
		}
	}
}

// compressVec bit-packs the vector at d bits per coefficient, d in {10, 11}.
func compressVec(out []byte, v PolyVec, d uint) {
	v.csubQ()
	switch d {
	case 10:
		var t [4]uint16
		idx := 0
		for i := range v {
			for j := 0; j < N/4; j++ {
				for k := 0; k < 4; k++ {
					t[k] = uint16(compress(uint32(v[i][4*j+k]), 10))
				}
				out[idx+0] = byte(t[0])
				out[idx+1] = byte(t[0]>>8) | byte(t[1]<<2)
				out[idx+2] = byte(t[1]>>6) | byte(t[2]<<4)
				out[idx+3] = byte(t[2]>>4) | byte(t[3]<<6)
				out[idx+4] = byte(t[3] >> 2)
				idx += 5
			}
		}
	case 11:
		var t [8]uint16
		idx := 0
		for i := range v {
			for j := 0; j < N/8; j++ {
				for k := 0; k < 8; k++ {
					t[k] = uint16(compress(uint32(v[i][8*j+k]), 11))
				}
				out[idx+0] = byte(t[0])
				out[idx+1] = byte(t[0]>>8) | byte(t[1]<<3)
				out[idx+2] = byte(t[1]>>5) | byte(t[2]<<6)
				out[idx+3] = byte(t[2] >> 2)
				out[idx+4] = byte(t[2]>>10) | byte(t[3]<<1)
				out[idx+5] = byte(t[3]>>7) | byte(t[4]<<4)
				out[idx+6] = byte(t[4]>>4) | byte(t[5]<<7)
				out[idx+7] = byte(t[5] >> 1)
				out[idx+8] = byte(t[5]>>9) | byte(t[6]<<2)
				out[idx+9] = byte(t[6]>>6) | byte(t[7]<<5)
				out[idx+10] = byte(t[7] >> 3)
				idx += 11
			}
		}
	}
}

// decompressVec inverts compressVec for d in {10, 11}.
func decompressVec(v PolyVec, in []byte, d uint) {
	switch d {
	case 10:
		var t [4]uint16
		idx := 0
		for i := range v {
			for j := 0; j < N/4; j++ {
				t[0] = uint16(in[idx+0]) | uint16(in[idx+1])<<8
				t[1] = uint16(in[idx+1])>>2 | uint16(in[idx+2])<<6
				t[2] = uint16(in[idx+2])>>4 | uint16(in[idx+3])<<4
				t[3] = uint16(in[idx+3])>>6 | uint16(in[idx+4])<<2
				idx += 5
				for k := 0; k < 4; k++ {
					v[i][4*j+k] = decompress(uint32(t[k]&0x3FF), 10)
				}
			}
		}
	case 11:
		var t [8]uint16
		idx := 0
		for i := range v {
			for j := 0; j < N/8; j++ {
				t[0] = uint16(in[idx+0]) | uint16(in[idx+1])<<8
				t[1] = uint16(in[idx+1])>>3 | uint16(in[idx+2])<<5
				t[2] = uint16(in[idx+2])>>6 | uint16(in[idx+3])<<2 | uint16(in[idx+4])<<10
				t[3] = uint16(in[idx+4])>>1 | uint16(in[idx+5])<<7
				t[4] = uint16(in[idx+5])>>4 | uint16(in[idx+6])<<4
				t[5] = uint16(in[idx+6])>>7 | uint16(in[idx+7])<<1 | uint16(in[idx+8])<<9
				t[6] = uint16(in[idx+8])>>2 | uint16(in[idx+9])<<6
				t[7] = uint16(in[idx+9])>>5 | uint16(in[idx+10])<<3
				idx += 11
				for k := 0; k < 8; k++ {
					v[i][8*j+k] = decompress(uint32(t[k]&0x7FF), 11)
				}
			}
		}
	}
}
