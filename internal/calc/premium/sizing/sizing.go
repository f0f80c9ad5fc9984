package sizing

import (
	"fmt"
	"math"

	footing "Bearing/internal/calc/footing"
)

type FootingSizeInput struct {
	PKN       float64 `json:"p_kn"`
	MKN       float64 `json:"m_knm"`
	BM        float64 `json:"b_m"`
	AllowKNM2 float64 `json:"allow_kn_m2"`
}

type FootingSizeResult struct {
	RequiredDM    float64 `json:"required_d_m"`
	MiddleThirdDM float64 `json:"middle_third_d_m"`
	QmaxKNM2      float64 `json:"qmax_kn_m2"`
	Case          string  `json:"case"`
	Notes         string  `json:"notes"`
}

// Footing selects the footing length D so the maximum edge pressure stays
// within the allowable bearing pressure while the resultant remains inside
// the middle third of the base.
//
// With e = M/P and full contact, qmax = P/(B*D) + 6M/(B*D^2) <= q_all gives
// the quadratic q_all*B*D^2 - P*D - 6M >= 0, solved for its positive root.
// The middle-third rule adds the floor D >= 6e.
func Footing(in FootingSizeInput) (FootingSizeResult, error) {
	if in.PKN <= 0 || in.MKN <= 0 || in.BM <= 0 || in.AllowKNM2 <= 0 {
		return FootingSizeResult{}, fmt.Errorf("invalid input")
	}

	e := in.MKN / in.PKN
	dMiddleThird := 6.0 * e
	dPressure := (in.PKN + math.Sqrt(in.PKN*in.PKN+24.0*in.AllowKNM2*in.BM*in.MKN)) /
		(2.0 * in.AllowKNM2 * in.BM)

	d := math.Max(dPressure, dMiddleThird)

	res, err := footing.Calculate(footing.Input{
		PKN: in.PKN,
		MKN: in.MKN,
		BM:  in.BM,
		DM:  d,
		EM:  e,
	})
	if err != nil {
		return FootingSizeResult{}, err
	}

	return FootingSizeResult{
		RequiredDM:    d,
		MiddleThirdDM: dMiddleThird,
		QmaxKNM2:      res.QmaxKNM2,
		Case:          string(res.Case),
		Notes:         "Length selected for allowable pressure and the middle-third rule.",
	}, nil
}
