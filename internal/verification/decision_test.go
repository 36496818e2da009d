package verification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide_CountAgainstRequiredMinimum(t *testing.T) {
	cases := []struct {
		name     string
		factors  Factors
		required int
		verified bool
	}{
		{"none of four", Factors{}, 2, false},
		{"one of four", Factors{Location: true}, 2, false},
		{"two of four", Factors{Location: true, Token: true}, 2, true},
		{"three of four", Factors{Location: true, Token: true, Photo: true}, 2, true},
		{"all four", Factors{Location: true, Token: true, Network: true, Photo: true}, 2, true},
		{"required three, only two", Factors{Location: true, Network: true}, 3, false},
		{"required one", Factors{Photo: true}, 1, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.verified, Decide(tc.factors, tc.required))
		})
	}
}

func TestDecide_FaceIdentityCarriesNoExtraWeight(t *testing.T) {
	withFace := Factors{Photo: true, FaceIdentity: true}
	withoutFace := Factors{Photo: true}

	assert.Equal(t, withoutFace.PassedCount(), withFace.PassedCount())
	assert.Equal(t, 1, withFace.PassedCount())
}

func TestDecide_ExhaustiveFactorCombinations(t *testing.T) {
	// verified == (count(true factors) >= required), tanpa pengaruh lain
	for mask := 0; mask < 16; mask++ {
		f := Factors{
			Location: mask&1 != 0,
			Token:    mask&2 != 0,
			Network:  mask&4 != 0,
			Photo:    mask&8 != 0,
		}
		expected := 0
		for _, b := range []bool{f.Location, f.Token, f.Network, f.Photo} {
			if b {
				expected++
			}
		}
		assert.Equal(t, expected, f.PassedCount())
		for required := 0; required <= 4; required++ {
			assert.Equal(t, expected >= required, Decide(f, required))
		}
	}
}
