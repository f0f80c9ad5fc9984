package sizing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFooting_PressureGoverns(t *testing.T) {
	// Small eccentricity: the allowable pressure, not the middle third,
	// decides the length.
	res, err := Footing(FootingSizeInput{PKN: 500, MKN: 50, BM: 2, AllowKNM2: 150})
	require.NoError(t, err)

	assert.Greater(t, res.RequiredDM, res.MiddleThirdDM)
	assert.LessOrEqual(t, res.QmaxKNM2, 150.0+1e-9)
	// At the selected length the resultant sits on the middle-third edge
	// or inside it, so the base stays in full contact.
	assert.Contains(t, []string{"Case A", "Case B"}, res.Case)
}

func TestFooting_MiddleThirdGoverns(t *testing.T) {
	// Large moment against a generous allowable pressure: D = 6e floors
	// the result.
	res, err := Footing(FootingSizeInput{PKN: 100, MKN: 80, BM: 2, AllowKNM2: 1000})
	require.NoError(t, err)

	assert.InDelta(t, 6.0*80.0/100.0, res.MiddleThirdDM, 1e-12)
	assert.Equal(t, res.MiddleThirdDM, res.RequiredDM)
	assert.LessOrEqual(t, res.QmaxKNM2, 1000.0+1e-9)
}

func TestFooting_InvalidInput(t *testing.T) {
	_, err := Footing(FootingSizeInput{PKN: 0, MKN: 50, BM: 2, AllowKNM2: 150})
	assert.Error(t, err)

	_, err = Footing(FootingSizeInput{PKN: 500, MKN: 50, BM: 2, AllowKNM2: -1})
	assert.Error(t, err)
}
