package verification

// PassedCount counts the four MFA factors. FaceIdentity is folded into the
// photo factor and carries no extra weight here.
func (f Factors) PassedCount() int {
	count := 0
	for _, ok := range []bool{f.Location, f.Token, f.Network, f.Photo} {
		if ok {
			count++
		}
	}
	return count
}

// Decide renders the binary MFA determination. verified is a pure function of
// the factor flags: passed count vs the required minimum, nothing else.
func Decide(f Factors, requiredFactorCount int) bool {
	return f.PassedCount() >= requiredFactorCount
}
