package kyber

// PolyVec is a vector of K polynomials. K is carried by the ParameterSet
// that allocated the vector; the fixed length is part of the security
// contract, so vectors are never resized after creation.
type PolyVec []Poly

// newPolyVec allocates a zero vector of K polynomials.
func (ps *ParameterSet) newPolyVec() PolyVec {
	return make(PolyVec, ps.K)
}

// add sets v = a + b element-wise.
func (v PolyVec) add(a, b PolyVec) {
	for i := range v {
		v[i].add(&a[i], &b[i])
	}
}

// reduce Barrett-reduces every polynomial.
func (v PolyVec) reduce() {
	for i := range v {
		v[i].reduce()
	}
}

// csubQ canonicalizes every polynomial to [0, q).
func (v PolyVec) csubQ() {
	for i := range v {
		v[i].csubQ()
	}
}

// ntt transforms every polynomial to the NTT domain.
func (v PolyVec) ntt() {
	for i := range v {
		v[i].ntt()
	}
}

// invNTT transforms every polynomial back to the coefficient domain.
func (v PolyVec) invNTT() {
	for i := range v {
		v[i].invNTT()
	}
}

// wipe zeroizes every polynomial. Secret and error vectors go through here
// on every exit path of the KEM operations.
func (v PolyVec) wipe() {
	for i := range v {
		v[i].wipe()
	}
}

// innerProduct computes sum_i a[i]*b[i] in the NTT domain, Barrett-reduced.
// The result carries the Montgomery factor introduced by basemul.
func innerProduct(p *Poly, a, b PolyVec) {
	var t Poly
	p.mulNTT(&a[0], &b[0])
	for i := 1; i < len(a); i++ {
		t.mulNTT(&a[i], &b[i])
		p.add(p, &t)
	}
	p.reduce()
	t.wipe()
}

// Mat is a K×K matrix of polynomials in the NTT domain, row-major.
type Mat []PolyVec

// newMat allocates a zero K×K matrix.
func (ps *ParameterSet) newMat() Mat {
	m := make(Mat, ps.K)
	for i := range m {
		m[i] = ps.newPolyVec()
	}
	return m
}
