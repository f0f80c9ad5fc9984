package footing

import (
	"fmt"
	"math"
)

// Case identifies which pressure distribution governs the footing base.
type Case string

const (
	CaseFullContact Case = "Case A" // e < ek, whole base in compression
	CaseBoundary    Case = "Case B" // e == ek, pressure reaches zero at the far edge
	CasePartial     Case = "Case C" // e > ek, one edge lifts off
)

type Input struct {
	PKN float64 `json:"p_kn"`  // axial load
	MKN float64 `json:"m_knm"` // moment
	BM  float64 `json:"b_m"`   // footing width
	DM  float64 `json:"d_m"`   // footing length (bending direction)
	EM  float64 `json:"e_m"`   // load eccentricity
}

type Result struct {
	QmaxKNM2 float64 `json:"qmax_kn_m2"`
	EkM      float64 `json:"ek_m"`
	Case     Case    `json:"case"`
	Notes    string  `json:"notes"`
}

// Calculate returns the maximum soil bearing pressure under an eccentrically
// loaded isolated pad footing. Pure function, no clamping of the result.
func Calculate(in Input) (Result, error) {
	if err := validate(in); err != nil {
		return Result{}, err
	}

	ek := criticalEccentricity(in)

	var qmax float64
	var c Case
	switch {
	case in.EM < ek:
		qmax = in.PKN/(in.BM*in.DM) + 6.0*in.MKN/(in.BM*in.DM*in.DM)
		c = CaseFullContact
	case in.EM == ek:
		// Same expression as Case A: at the boundary the minimum edge
		// pressure is exactly zero and the trapezoid degenerates to a
		// triangle over the full base.
		qmax = in.PKN/(in.BM*in.DM) + 6.0*in.MKN/(in.BM*in.DM*in.DM)
		c = CaseBoundary
	default:
		qmax = in.PKN / (1.5 * in.BM * (in.DM/2.0 - in.EM))
		c = CasePartial
	}

	return Result{
		QmaxKNM2: qmax,
		EkM:      ek,
		Case:     c,
		Notes:    notes(c),
	}, nil
}

// criticalEccentricity is M/P for a loaded footing. The D/6 middle-third
// fallback is unreachable once validation has run (P > 0), kept only so a
// zero axial load cannot divide by zero.
func criticalEccentricity(in Input) float64 {
	if in.PKN != 0 {
		return in.MKN / in.PKN
	}
	return in.DM / 6.0
}

func validate(in Input) error {
	for _, v := range []float64{in.PKN, in.MKN, in.BM, in.DM, in.EM} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return fmt.Errorf("invalid input: P, M, B, D and e must be finite positive numbers")
		}
	}
	return nil
}

func notes(c Case) string {
	switch c {
	case CaseFullContact:
		return "Full base contact, trapezoidal pressure distribution."
	case CaseBoundary:
		return "Boundary case, edge pressure reaches zero at the far edge."
	default:
		return "Partial base contact, resultant outside the middle third."
	}
}
