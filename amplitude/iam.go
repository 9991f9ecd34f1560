package amplitude

// IAM is the inverse-amplitude-method resummation of ChptLO and ChptNLO,
// unitary on the first Riemann sheet by construction.
func IAM(mass float64, s complex128, pionDecay, lDiff float64) complex128 {
	lo := ChptLO(mass, s, pionDecay)
	nlo := ChptNLO(mass, s, pionDecay, lDiff)
	return lo * lo / (lo - nlo)
}
