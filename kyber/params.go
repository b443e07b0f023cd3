package kyber

// Ring constants shared by every parameter set.
const (
	// N is the polynomial degree.
	N = 256
	// Q is the ring modulus.
	Q = 3329

	// SymBytes is the size of seeds and hash outputs.
	SymBytes = 32
	// SharedSecretSize is the size of the KEM shared secret.
	SharedSecretSize = 32
	// PolyBytes is the size of a losslessly packed polynomial (12 bits per coefficient).
	PolyBytes = 384

	qInv = 62209 // q^-1 mod 2^16
)

// ParameterSet holds the per-security-level constants of one Kyber variant
// together with its derived byte sizes. Values are fixed at package init;
// callers must treat a ParameterSet as immutable.
type ParameterSet struct {
	Name string
	K    int // module dimension
	Eta1 int // CBD parameter for secret/error vectors
	Eta2 int // CBD parameter for encapsulation noise
	DU   int // bits per coefficient compressing u
	DV   int // bits per coefficient compressing v

	PublicKeySize  int
	SecretKeySize  int
	CiphertextSize int
}

func newParameterSet(name string, k, eta1, du, dv int) *ParameterSet {
	ps := &ParameterSet{
		Name: name,
		K:    k,
		Eta1: eta1,
		Eta2: 2,
		DU:   du,
		DV:   dv,
	}
	ps.PublicKeySize = k*PolyBytes + SymBytes
	ps.SecretKeySize = k*PolyBytes + ps.PublicKeySize + 2*SymBytes
	ps.CiphertextSize = k*du*N/8 + dv*N/8
	return ps
}

// The three standardized parameter sets. K=2/3/4 correspond to NIST security
// levels 1/3/5. Byte sizes: 800/1632/768, 1184/2400/1088, 1568/3168/1568.
var (
	Kyber512  = newParameterSet("Kyber512", 2, 3, 10, 4)
	Kyber768  = newParameterSet("Kyber768", 3, 2, 10, 4)
	Kyber1024 = newParameterSet("Kyber1024", 4, 2, 11, 5)
)

// ParameterSets lists the supported variants in increasing security order.
var ParameterSets = []*ParameterSet{Kyber512, Kyber768, Kyber1024}

// ByName returns the parameter set with the given name, or nil.
func ByName(name string) *ParameterSet {
	for _, ps := range ParameterSets {
		if ps.Name == name {
			return ps
		}
	}
	return nil
}

// polyVecBytes is the packed size of a K-element polynomial vector.
func (ps *ParameterSet) polyVecBytes() int { return ps.K * PolyBytes }

// polyVecCompressedBytes is the compressed size of the ciphertext vector u.
func (ps *ParameterSet) polyVecCompressedBytes() int { return ps.K * ps.DU * N / 8 }

// polyCompressedBytes is the compressed size of the ciphertext polynomial v.
func (ps *ParameterSet) polyCompressedBytes() int { return ps.DV * N / 8 }
