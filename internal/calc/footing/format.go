package footing

import (
	"math"
	"strconv"
)

// Format3SF renders a value rounded to three significant figures with
// insignificant trailing zeros trimmed: 1.2345 -> "1.23", 100.0 -> "100",
// 0.001234 -> "0.00123". The value is rounded by formatting at three
// significant digits and parsed back, so large magnitudes come out in plain
// notation instead of scientific. Applied at display and export time only;
// stored results keep full precision.
func Format3SF(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	rounded, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'g', 3, 64), 64)
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}
